// Package core has core logic for scoring, ranking and query projections.
package core

import (
	"time"

	"github.com/kr-muchiri/aidgi/internal/contract"
	"github.com/kr-muchiri/aidgi/internal/outwriter"
	"github.com/kr-muchiri/aidgi/schema"
)

// loadRecords resolves the industry dataset: an external JSON file when
// configured, otherwise the built-in table.
func loadRecords(cfg *contract.Config) ([]schema.IndustryMetrics, error) {
	if cfg.DataFile != "" {
		return schema.LoadIndustries(cfg.DataFile)
	}
	return schema.DefaultIndustries(), nil
}

// getFullTable runs the whole index pipeline without a limit:
// raw weights -> normalized vector -> scored records -> ranked table.
// Each stage produces a new value; nothing is cached between calls.
func getFullTable(cfg *contract.Config) ([]schema.ScoredIndustry, error) {
	records, err := loadRecords(cfg)
	if err != nil {
		return nil, err
	}
	weights, err := NormalizeWeights(cfg.RawWeights)
	if err != nil {
		return nil, err
	}
	scored, err := ScoreIndustries(records, weights)
	if err != nil {
		return nil, err
	}
	return RankIndustries(scored, 0), nil
}

// GetTableResults returns the ranked table, truncated to the configured
// result limit.
func GetTableResults(cfg *contract.Config) ([]schema.ScoredIndustry, error) {
	ranked, err := getFullTable(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.ResultLimit > 0 && len(ranked) > cfg.ResultLimit {
		ranked = ranked[:cfg.ResultLimit]
	}
	return ranked, nil
}

// GetDetailResult returns the drill-down projection for a single industry,
// including its rank in the full table.
func GetDetailResult(cfg *contract.Config, name string) (schema.EnrichedIndustryResult, error) {
	table, err := getFullTable(cfg)
	if err != nil {
		return schema.EnrichedIndustryResult{}, err
	}
	s, rank, err := Detail(table, name)
	if err != nil {
		return schema.EnrichedIndustryResult{}, err
	}
	return schema.EnrichedIndustryResult{
		Rank:           rank,
		Label:          schema.GetPlainLabel(s.Score),
		ScoredIndustry: s,
	}, nil
}

// GetComparisonResults returns the long-format raw-metric projection for the
// requested metric names. An empty request compares all five factors.
func GetComparisonResults(cfg *contract.Config, metricArgs []string) ([]schema.MetricValue, error) {
	keys := schema.AllMetricKeys
	if len(metricArgs) > 0 {
		keys = make([]schema.MetricKey, 0, len(metricArgs))
		for _, arg := range metricArgs {
			key, ok := schema.ParseMetricKey(arg)
			if !ok {
				// Pass the raw name through so MetricComparison reports it.
				key = schema.MetricKey(arg)
			}
			keys = append(keys, key)
		}
	}
	records, err := loadRecords(cfg)
	if err != nil {
		return nil, err
	}
	return MetricComparison(records, keys)
}

// ExecuteTable runs the index pipeline and prints the ranked table.
// It serves as the main entry point for the 'table' command.
func ExecuteTable(cfg *contract.Config) error {
	start := time.Now()
	ranked, err := GetTableResults(cfg)
	if err != nil {
		return err
	}
	ow := outwriter.NewOutWriter()
	return ow.WriteTable(ranked, cfg, time.Since(start))
}

// ExecuteDetail prints the drill-down view for one industry.
func ExecuteDetail(cfg *contract.Config, name string) error {
	result, err := GetDetailResult(cfg, name)
	if err != nil {
		return err
	}
	ow := outwriter.NewOutWriter()
	return ow.WriteDetail(result, cfg)
}

// ExecuteCompare prints the long-format raw-metric comparison.
func ExecuteCompare(cfg *contract.Config, metricArgs []string) error {
	values, err := GetComparisonResults(cfg, metricArgs)
	if err != nil {
		return err
	}
	ow := outwriter.NewOutWriter()
	return ow.WriteComparison(values, cfg)
}

// ExecuteWeights displays the active normalized weight vector and the index
// formula. No scoring is performed.
func ExecuteWeights(cfg *contract.Config) error {
	weights, err := NormalizeWeights(cfg.RawWeights)
	if err != nil {
		return err
	}
	ow := outwriter.NewOutWriter()
	return ow.WriteWeights(weights, cfg)
}
