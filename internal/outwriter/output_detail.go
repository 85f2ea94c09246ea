package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/kr-muchiri/aidgi/internal/contract"
	"github.com/kr-muchiri/aidgi/schema"
)

// WriteDetailResult outputs the drill-down view for one industry, dispatching
// based on the output format configured.
func WriteDetailResult(result schema.EnrichedIndustryResult, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVDetail(w, result, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDetailText(w, result, cfg, fmtFloat)
		}, "Wrote text")
	}
}

// writeDetailText displays the drill-down in human-readable text format.
func writeDetailText(w io.Writer, result schema.EnrichedIndustryResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "%s\n", result.Name); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Rank:  #%d\n", result.Rank); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Score: %s (%s)\n", fmtFloat(result.Score), labelFor(cfg, result.Score)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}

	metrics := []struct {
		name string
		unit string
		key  schema.MetricKey
	}{
		{"AI Adoption", "%", schema.MetricAdoption},
		{"Efficiency Improvement", "%", schema.MetricEfficiency},
		{"Revenue Growth", "%", schema.MetricRevenue},
		{"Market Size", "B USD", schema.MetricMarket},
		{"Growth Potential", "%", schema.MetricGrowth},
	}
	for _, m := range metrics {
		v, _ := result.Metric(m.key)
		line := fmt.Sprintf("  %-23s %s%s", m.name+":", fmtFloat(v), m.unit)
		if contribution, ok := result.Breakdown[m.key]; ok {
			line += fmt.Sprintf("  (weighted term: %s)", fmtFloat(contribution))
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVDetail writes the drill-down as a single CSV record.
func writeCSVDetail(w io.Writer, result schema.EnrichedIndustryResult, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"industry",
		"index_score",
		"label",
		"ai_adoption",
		"efficiency_improvement",
		"revenue_growth",
		"market_size",
		"growth_potential",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		return csvWriter.Write([]string{
			strconv.Itoa(result.Rank),
			result.Name,
			fmtFloat(result.Score),
			result.Label,
			fmtFloat(result.AIAdoption),
			fmtFloat(result.EfficiencyImprovement),
			fmtFloat(result.RevenueGrowth),
			fmtFloat(result.MarketSize),
			fmtFloat(result.GrowthPotential),
		})
	})
}
