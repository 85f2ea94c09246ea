// Package parquet provides data structures and functions for exporting the
// AIDGI ranked table to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/kr-muchiri/aidgi/schema"
	"github.com/parquet-go/parquet-go"
)

// DefaultIndexFile is the output path used when none is configured.
const DefaultIndexFile = "aidgi_index.parquet"

// IndexRow represents one ranked industry in the Parquet export.
type IndexRow struct {
	// Rank is the 1-based position in the ranked table
	Rank int32 `parquet:"rank,snappy"`

	// Industry is the unique industry name
	Industry string `parquet:"industry,snappy"`

	// IndexScore is the composite AIDGI score under the active weights
	IndexScore float64 `parquet:"index_score,snappy"`

	// Label is the disruption tier derived from the score
	Label string `parquet:"label,snappy"`

	// AIAdoption is the AI adoption rate (percent)
	AIAdoption float64 `parquet:"ai_adoption,snappy"`

	// EfficiencyImprovement is the efficiency gain attributed to AI (percent)
	EfficiencyImprovement float64 `parquet:"efficiency_improvement,snappy"`

	// RevenueGrowth is the revenue expansion attributed to AI (percent)
	RevenueGrowth float64 `parquet:"revenue_growth,snappy"`

	// MarketSize is the addressable market size (billion USD)
	MarketSize float64 `parquet:"market_size,snappy"`

	// GrowthPotential is the future growth outlook (percent)
	GrowthPotential float64 `parquet:"growth_potential,snappy"`
}

// ConvertRankedTable converts a ranked table to Parquet export rows.
func ConvertRankedTable(table []schema.ScoredIndustry) []IndexRow {
	rows := make([]IndexRow, len(table))
	for i, s := range table {
		rows[i] = IndexRow{
			Rank:                  int32(i + 1),
			Industry:              s.Name,
			IndexScore:            s.Score,
			Label:                 schema.GetPlainLabel(s.Score),
			AIAdoption:            s.AIAdoption,
			EfficiencyImprovement: s.EfficiencyImprovement,
			RevenueGrowth:         s.RevenueGrowth,
			MarketSize:            s.MarketSize,
			GrowthPotential:       s.GrowthPotential,
		}
	}
	return rows
}

// WriteIndexTableParquet writes a slice of IndexRow structs to a Parquet file.
func WriteIndexTableParquet(rows []IndexRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the IndexRow struct tags
	writer := parquet.NewGenericWriter[IndexRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
