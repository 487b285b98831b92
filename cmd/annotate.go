package cmd

import (
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/desktop-tree/internal/output"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Write an annotated screenshot of interactive controls",
	Long: `Capture a screenshot with every interactive control boxed and numbered,
write it as a PNG, and output the node list those numbers index into.`,
	RunE: runAnnotate,
}

func init() {
	rootCmd.AddCommand(annotateCmd)
	annotateCmd.Flags().String("out", "annotated.png", "Output PNG path")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")

	engine, err := newEngine()
	if err != nil {
		return err
	}
	img, nodes, err := engine.GetAnnotatedImageData(cmd.Context())
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", out, err)
	}

	return output.Print(output.AnnotateResult{
		Path:             out,
		TS:               time.Now().Unix(),
		InteractiveNodes: nodes,
	})
}
