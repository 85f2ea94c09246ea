// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/kr-muchiri/aidgi/internal/contract"
	"github.com/kr-muchiri/aidgi/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for
// the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteTable prints the ranked index table using the configured output format.
func (ow *OutWriter) WriteTable(table []schema.ScoredIndustry, cfg *contract.Config, duration time.Duration) error {
	return WriteTableResults(table, cfg, duration)
}

// WriteDetail prints the drill-down view for a single industry.
func (ow *OutWriter) WriteDetail(result schema.EnrichedIndustryResult, cfg *contract.Config) error {
	return WriteDetailResult(result, cfg)
}

// WriteComparison prints the long-format raw-metric comparison.
func (ow *OutWriter) WriteComparison(values []schema.MetricValue, cfg *contract.Config) error {
	return WriteComparisonResults(values, cfg)
}

// WriteWeights prints the active weight distribution and index formula.
func (ow *OutWriter) WriteWeights(weights schema.WeightVector, cfg *contract.Config) error {
	return WriteWeightsResult(weights, cfg)
}

// getMaxTableNameWidth calculates the maximum width for industry names in
// table output based on terminal width and table configuration.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 25 // Rank + Score + Label with borders/padding

	if cfg.Detail {
		baseWidth += 45 // Five raw-metric columns with formatting
	}
	if cfg.Explain {
		baseWidth += 35 // Breakdown column with formatting
	}

	// Reserve space for table borders, separators, and padding
	baseWidth += 10

	available := termWidth - baseWidth
	if available < 10 {
		return 10
	}
	if available > 30 {
		// Industry names are short; cap the column
		return 30
	}
	return available
}

// labelFor returns the tier label for a score, colored when the config
// enables colors.
func labelFor(cfg *contract.Config, score float64) string {
	if cfg.UseColors {
		return contract.GetColorLabel(score)
	}
	return contract.GetPlainLabel(score)
}
