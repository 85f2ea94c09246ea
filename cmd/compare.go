package cmd

import (
	"github.com/kr-muchiri/aidgi/core"
	"github.com/kr-muchiri/aidgi/internal/contract"
	"github.com/spf13/cobra"
)

// compareCmd builds the long-format raw-metric comparison.
var compareCmd = &cobra.Command{
	Use:   "compare [metric...]",
	Short: "Compare raw metrics across industries.",
	Long: `Build the long-format comparison: one (industry, metric, value) row per
industry per requested metric. Values are the raw metric readings and are
never re-weighted, so this view is independent of the active weight vector.

Metrics can be named by canonical key (ai_adoption, efficiency_improvement,
revenue_growth, market_size, growth_potential) or by short alias (adoption,
efficiency, revenue, market, growth). With no arguments all five factors are
compared.

Examples:
  # Compare every factor across all industries
  aidgi compare

  # Focus on adoption and growth potential
  aidgi compare adoption growth

  # Feed a plotting tool
  aidgi compare --output csv --output-file metrics.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteCompare(cfg, args); err != nil {
			contract.LogFatal("Cannot compare metrics", err)
		}
	},
}
