// Package server exposes the tree engine over the Model Context Protocol
// so the external action loop can pull snapshots without shell overhead.
package server

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/desktop-tree/internal/tree"
	"github.com/mj1618/desktop-tree/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
}

// Server wraps the MCP server around one tree engine. The engine reads
// the live desktop, so tool calls are serialized.
type Server struct {
	engine   *tree.Engine
	engineMu sync.Mutex
	mcp      *mcpserver.MCPServer
}

// New creates and configures an MCP server with the tree-engine tools.
func New(engine *tree.Engine) *Server {
	s := &Server{engine: engine}
	s.mcp = mcpserver.NewMCPServer("desktop-tree", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("get_state",
			mcp.WithDescription("Read the desktop accessibility tree and return one classified snapshot: interactive controls, readable text, and scrollable regions."),
		),
		s.handleGetState,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_annotated_image",
			mcp.WithDescription("Capture a screenshot with every interactive control boxed and numbered, plus the node list those numbers index into. For vision-grounded operation."),
		),
		s.handleGetAnnotatedImage,
	)
}
