package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/designlens/designlens/core"
	"github.com/designlens/designlens/internal/contract"
	"github.com/designlens/designlens/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// parseCategories converts the comma-separated hint string into validated
// category values. Unknown names are rejected so the client gets a clear
// error instead of a silently ignored hint.
func parseCategories(raw string) ([]schema.Category, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	cats := make([]schema.Category, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		cat := schema.Category(strings.ToLower(trimmed))
		if _, ok := schema.ValidCategories[cat]; !ok {
			return nil, fmt.Errorf("invalid category %q", trimmed)
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

func (h *toolHandler) handleScoreDesign(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.ImagePath = request.GetString("image_path", "")
	if cfg.ImagePath == "" {
		return mcp.NewToolResultError("image_path is required"), nil
	}
	if d := request.GetString("detail", ""); d != "" {
		level := schema.DetailLevel(strings.ToLower(d))
		if _, ok := schema.ValidDetailLevels[level]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid detail level %q", d)), nil
		}
		cfg.Detail = level
	}
	cats, err := parseCategories(request.GetString("categories", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if cats != nil {
		cfg.Categories = cats
	}

	result, err := core.GetDesignScoreResult(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCompareDesigns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.BaseImage = request.GetString("base_image", "")
	cfg.TargetImage = request.GetString("target_image", "")
	if cfg.BaseImage == "" || cfg.TargetImage == "" {
		return mcp.NewToolResultError("base_image and target_image are required"), nil
	}
	cats, err := parseCategories(request.GetString("categories", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if cats != nil {
		cfg.Categories = cats
	}

	base, target, err := core.GetDesignCompareResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	type comparisonPayload struct {
		BaseImage   string                 `json:"base_image"`
		TargetImage string                 `json:"target_image"`
		ScoreDelta  float64                `json:"score_delta"`
		Base        *schema.AnalysisResult `json:"base"`
		Target      *schema.AnalysisResult `json:"target"`
	}
	payload := comparisonPayload{
		BaseImage:   cfg.BaseImage,
		TargetImage: cfg.TargetImage,
		ScoreDelta:  target.Prediction.PredictedScore - base.Prediction.PredictedScore,
		Base:        base,
		Target:      target,
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCorpusStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var store contract.CorpusStore
	if h.mgr != nil {
		store = h.mgr.GetCorpusStore()
	}
	if store == nil {
		status := schema.CorpusStatus{Backend: string(schema.NoneBackend), Connected: false}
		jsonData, _ := json.MarshalIndent(status, "", "  ")
		return mcp.NewToolResultText(string(jsonData)), nil
	}

	status, err := store.GetStatus()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("status query failed: %v", err)), nil
	}
	jsonData, _ := json.MarshalIndent(status, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
