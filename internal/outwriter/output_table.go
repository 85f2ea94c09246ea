package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kr-muchiri/aidgi/internal/contract"
	"github.com/kr-muchiri/aidgi/internal/parquet"
	"github.com/kr-muchiri/aidgi/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteTableResults outputs the ranked index table, dispatching based on the
// output format configured.
func WriteTableResults(table []schema.ScoredIndustry, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, schema.EnrichIndustries(table))
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForTable(w, table, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetResultsForTable(table, cfg)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeIndexTable(table, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeIndexTable generates and writes the human-readable table.
func writeIndexTable(results []schema.ScoredIndustry, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Industry", "Score", "Label"}
	if cfg.Detail {
		headers = append(headers, "Adoption%", "Efficiency%", "Revenue%", "Market($B)", "Growth%")
	}
	if cfg.Explain {
		headers = append(headers, "Breakdown")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxNameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for i, s := range results {
		row := []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncateName(s.Name, maxNameWidth), // Industry
			fmtFloat(s.Score),      // Score
			labelFor(cfg, s.Score), // Label
		}
		if cfg.Detail {
			row = append(
				row,
				fmtFloat(s.AIAdoption),
				fmtFloat(s.EfficiencyImprovement),
				fmtFloat(s.RevenueGrowth),
				fmtFloat(s.MarketSize),
				fmtFloat(s.GrowthPotential),
			)
		}
		if cfg.Explain {
			row = append(row, formatBreakdown(s.Breakdown, fmtFloat))
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d industries ranked by AIDGI score\n", len(results)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Computed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// formatBreakdown renders the per-term contributions, largest first.
func formatBreakdown(breakdown map[schema.MetricKey]float64, fmtFloat func(float64) string) string {
	keys := make([]schema.MetricKey, 0, len(breakdown))
	for k := range breakdown {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if breakdown[keys[i]] != breakdown[keys[j]] {
			return breakdown[keys[i]] > breakdown[keys[j]]
		}
		return keys[i] < keys[j]
	})

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, fmtFloat(breakdown[k])))
	}
	return strings.Join(parts, " ")
}

// writeCSVResultsForTable writes the ranked table in CSV format.
func writeCSVResultsForTable(w io.Writer, results []schema.ScoredIndustry, fmtFloat func(float64) string) error {
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
		for i, s := range results {
			rec := []string{
				strconv.Itoa(i + 1),
				s.Name,
				fmtFloat(s.Score),
				contract.GetPlainLabel(s.Score),
				fmtFloat(s.AIAdoption),
				fmtFloat(s.EfficiencyImprovement),
				fmtFloat(s.RevenueGrowth),
				fmtFloat(s.MarketSize),
				fmtFloat(s.GrowthPotential),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeParquetResultsForTable exports the ranked table to a Parquet file.
// Parquet always targets a file; the default name is used when no output
// file is configured.
func writeParquetResultsForTable(results []schema.ScoredIndustry, cfg *contract.Config) error {
	outputPath := cfg.OutputFile
	if outputPath == "" {
		outputPath = parquet.DefaultIndexFile
	}
	rows := parquet.ConvertRankedTable(results)
	if err := parquet.WriteIndexTableParquet(rows, outputPath); err != nil {
		return fmt.Errorf("error writing Parquet output: %w", err)
	}
	fmt.Printf("Wrote Parquet to %s\n", outputPath)
	return nil
}
