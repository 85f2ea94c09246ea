package cmd

import (
	"github.com/kr-muchiri/aidgi/core"
	"github.com/kr-muchiri/aidgi/internal/contract"
	"github.com/spf13/cobra"
)

// tableCmd computes and displays the ranked index table.
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Show industries ranked by AIDGI score.",
	Long: `Compute the AI Disruption and Growth Index for every industry and rank them.

The index blends five factors per industry:
- AI adoption rate (percent, linear)
- Efficiency improvement (percent, linear)
- Revenue growth (percent, linear)
- Market size (billion USD, log-compressed)
- Growth potential (percent, exponentially amplified)

Weights are normalized to sum to 1 before scoring, so only their relative
proportions matter. The table is recomputed from scratch for whatever weights
you pass; nothing is cached between runs.

Examples:
  # Rank with the published default weights
  aidgi table

  # Emphasize adoption over everything else
  aidgi table --weight-adoption 0.8 --weight-efficiency 0.05

  # Include raw metrics and the per-term breakdown
  aidgi table --detail --explain

  # Export the ranked table for tracking
  aidgi table --output csv --output-file aidgi.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTable(cfg); err != nil {
			contract.LogFatal("Cannot compute index table", err)
		}
	},
}
