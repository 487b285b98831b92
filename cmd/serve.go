package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/desktop-tree/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing tree snapshots",
	Long: `Start a Model Context Protocol (MCP) server that exposes the tree engine
as tools (get_state, get_annotated_image). AI agents can pull snapshots
directly without shell overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  desktop-tree serve
  desktop-tree serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	engine, err := newEngine()
	if err != nil {
		return fmt.Errorf("failed to create tree engine: %w", err)
	}

	return server.New(engine).Serve(server.Config{
		Transport: transport,
		Port:      port,
	})
}
