package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/desktop-tree/internal/output"
)

func (s *Server) handleGetState(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.engineMu.Lock()
	defer s.engineMu.Unlock()

	state, err := s.engine.GetState(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := output.StateResult{
		TS:               time.Now().Unix(),
		InteractiveNodes: state.InteractiveNodes,
		InformativeNodes: state.InformativeNodes,
		ScrollableNodes:  state.ScrollableNodes,
	}
	b, err := yaml.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleGetAnnotatedImage(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.engineMu.Lock()
	defer s.engineMu.Unlock()

	img, nodes, err := s.engine.GetAnnotatedImageData(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode png: %v", err)), nil
	}

	summary := fmt.Sprintf("%d interactive nodes annotated; labels index into this list:\n", len(nodes))
	b, err := yaml.Marshal(nodes)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: summary + string(b),
			},
			mcp.ImageContent{
				Type:     "image",
				Data:     base64.StdEncoding.EncodeToString(buf.Bytes()),
				MIMEType: "image/png",
			},
		},
	}, nil
}
