package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/desktop-tree/internal/output"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Read one classified snapshot of the desktop",
	Long:  "Read the desktop accessibility tree and output the classified snapshot: interactive controls, readable text, and scrollable regions.",
	RunE:  runState,
}

func init() {
	rootCmd.AddCommand(stateCmd)
}

func runState(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}
	state, err := engine.GetState(cmd.Context())
	if err != nil {
		return err
	}
	return output.Print(output.StateResult{
		TS:               time.Now().Unix(),
		InteractiveNodes: state.InteractiveNodes,
		InformativeNodes: state.InformativeNodes,
		ScrollableNodes:  state.ScrollableNodes,
	})
}
