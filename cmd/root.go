package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mj1618/desktop-tree/internal/config"
	"github.com/mj1618/desktop-tree/internal/output"
	"github.com/mj1618/desktop-tree/internal/platform"
	"github.com/mj1618/desktop-tree/internal/tree"
	"github.com/mj1618/desktop-tree/internal/version"
)

var (
	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "desktop-tree",
	Short: "Snapshot and classify the desktop accessibility tree",
	Long:  "A tool that converts the desktop accessibility tree into a compact, classified snapshot (interactive controls, readable text, scrollable regions) for AI agents.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		path, _ := rootCmd.PersistentFlags().GetString("config")
		if path != "" {
			cfg, err = config.Load(path)
			if err != nil {
				return err
			}
		} else {
			cfg = config.Default()
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	}
}

// newEngine wires the platform backend into a tree engine.
func newEngine() (*tree.Engine, error) {
	desktop, err := platform.NewDesktop()
	if err != nil {
		return nil, err
	}
	return tree.New(desktop, cfg, logger), nil
}
