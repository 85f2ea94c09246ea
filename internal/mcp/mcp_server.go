// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/kr-muchiri/aidgi/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the AIDGI MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"AIDGI Index Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: get_index_table ---
	s.AddTool(mcp.NewTool("get_index_table",
		mcp.WithDescription("Compute the AI Disruption and Growth Index (AIDGI) and return the ranked industry table."),
		mcp.WithNumber("adoption_weight", mcp.Description("Raw weight for AI adoption rate (defaults to 0.35).")),
		mcp.WithNumber("efficiency_weight", mcp.Description("Raw weight for efficiency improvement (defaults to 0.25).")),
		mcp.WithNumber("revenue_weight", mcp.Description("Raw weight for revenue growth (defaults to 0.20).")),
		mcp.WithNumber("market_weight", mcp.Description("Raw weight for market size (defaults to 0.10).")),
		mcp.WithNumber("growth_weight", mcp.Description("Raw weight for growth potential (defaults to 0.10).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetIndexTable)

	// --- 2. Tool: get_industry_detail ---
	s.AddTool(mcp.NewTool("get_industry_detail",
		mcp.WithDescription("Return the drill-down view for a single industry: rank, score, tier and raw metrics."),
		mcp.WithString("name", mcp.Description("Industry name, e.g. 'Healthcare'."), mcp.Required()),
	), h.handleGetIndustryDetail)

	// --- 3. Tool: compare_metrics ---
	s.AddTool(mcp.NewTool("compare_metrics",
		mcp.WithDescription("Return the long-format (industry, metric, raw value) comparison for selected metrics."),
		mcp.WithString("metrics", mcp.Description("Comma-separated metric names (defaults to all five factors)."),
			mcp.Enum("ai_adoption", "efficiency_improvement", "revenue_growth", "market_size", "growth_potential")),
	), h.handleCompareMetrics)

	return s
}

// StartMCPServer starts the AIDGI MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
