// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/designlens/designlens/internal/contract"
)

// NewMCPServer initializes and configures the DesignLens MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"DesignLens Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: score_design ---
	s.AddTool(mcp.NewTool("score_design",
		mcp.WithDescription("Score a UI design screenshot against the validated corpus and explain the result."),
		mcp.WithString("image_path", mcp.Description("Path to the design screenshot (png, jpg, gif, bmp, tiff, webp)."), mcp.Required()),
		mcp.WithString("categories", mcp.Description("Comma-separated category hints (landing-page, dashboard, mobile-app, e-commerce).")),
		mcp.WithString("detail", mcp.Description("Element detection detail level (basic, enhanced). Defaults to the server configuration."), mcp.Enum("basic", "enhanced")),
	), h.handleScoreDesign)

	// --- 2. Tool: compare_designs ---
	s.AddTool(mcp.NewTool("compare_designs",
		mcp.WithDescription("Score two design screenshots with the same engine and report both results with the score delta."),
		mcp.WithString("base_image", mcp.Description("Path to the base screenshot."), mcp.Required()),
		mcp.WithString("target_image", mcp.Description("Path to the target screenshot."), mcp.Required()),
		mcp.WithString("categories", mcp.Description("Comma-separated category hints applied to both images.")),
	), h.handleCompareDesigns)

	// --- 3. Tool: get_corpus_status ---
	s.AddTool(mcp.NewTool("get_corpus_status",
		mcp.WithDescription("Report the corpus backend, entry counts and entry timestamps."),
	), h.handleGetCorpusStatus)

	return s
}

// StartMCPServer starts the DesignLens MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
