package mcp_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designlens/designlens/internal/contract"
	mcp_internal "github.com/designlens/designlens/internal/mcp"
	"github.com/designlens/designlens/schema"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		Detail:   schema.BasicDetail,
		Tunables: schema.DefaultTunables(),
	}

	// A nil manager is enough because validation fails before any store access
	var mgr contract.StoreManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("score_design missing image_path", func(t *testing.T) {
		tool := s.GetTool("score_design")
		require.NotNil(t, tool, "Tool score_design should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "score_design",
				Arguments: map[string]any{"image_path": ""},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "image_path is required")
	})

	t.Run("score_design invalid category", func(t *testing.T) {
		tool := s.GetTool("score_design")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "score_design",
				Arguments: map[string]any{
					"image_path": "shot.png",
					"categories": "brochure",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid category")
	})

	t.Run("score_design invalid detail", func(t *testing.T) {
		tool := s.GetTool("score_design")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "score_design",
				Arguments: map[string]any{
					"image_path": "shot.png",
					"detail":     "deluxe",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid detail level")
	})

	t.Run("compare_designs missing target_image", func(t *testing.T) {
		tool := s.GetTool("compare_designs")
		require.NotNil(t, tool, "Tool compare_designs should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "compare_designs",
				Arguments: map[string]any{
					"base_image": "before.png",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "base_image and target_image are required")
	})
}

func TestMCPServerCorpusStatus_NoStore(t *testing.T) {
	baseCfg := &contract.Config{
		Detail:   schema.BasicDetail,
		Tunables: schema.DefaultTunables(),
	}

	var mgr contract.StoreManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	tool := s.GetTool("get_corpus_status")
	require.NotNil(t, tool, "Tool get_corpus_status should exist")

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: "get_corpus_status"},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, res.IsError)
	text := res.Content[0].(mcp.TextContent).Text
	assert.Contains(t, text, `"connected": false`)
}
