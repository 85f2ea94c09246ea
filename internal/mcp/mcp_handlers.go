package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kr-muchiri/aidgi/core"
	"github.com/kr-muchiri/aidgi/internal/contract"
	"github.com/kr-muchiri/aidgi/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleGetIndexTable(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if w := request.GetFloat("adoption_weight", -1); w >= 0 {
		cfg.RawWeights.Adoption = w
	}
	if w := request.GetFloat("efficiency_weight", -1); w >= 0 {
		cfg.RawWeights.Efficiency = w
	}
	if w := request.GetFloat("revenue_weight", -1); w >= 0 {
		cfg.RawWeights.Revenue = w
	}
	if w := request.GetFloat("market_weight", -1); w >= 0 {
		cfg.RawWeights.Market = w
	}
	if w := request.GetFloat("growth_weight", -1); w >= 0 {
		cfg.RawWeights.Growth = w
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	ranked, err := core.GetTableResults(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("index computation failed: %v", err)), nil
	}

	enriched := schema.EnrichIndustries(ranked)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetIndustryDetail(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	name := request.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	result, err := core.GetDetailResult(cfg, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("detail lookup failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCompareMetrics(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	var metricArgs []string
	if raw := request.GetString("metrics", ""); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				metricArgs = append(metricArgs, part)
			}
		}
	}

	values, err := core.GetComparisonResults(cfg, metricArgs)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(values, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
