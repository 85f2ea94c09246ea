package cmd

import (
	"github.com/kr-muchiri/aidgi/core"
	"github.com/kr-muchiri/aidgi/internal/contract"
	"github.com/spf13/cobra"
)

// detailCmd shows the drill-down view for a single industry.
var detailCmd = &cobra.Command{
	Use:   "detail <industry>",
	Short: "Show the drill-down view for one industry.",
	Long: `Display the full projection for a single industry: rank, composite score,
disruption tier, raw metrics and the weighted contribution of each term.

The lookup runs against the current weight vector, so the rank and score
always match what 'aidgi table' would show. Unknown industry names fail
explicitly rather than returning an empty result.

Examples:
  # Inspect one industry under default weights
  aidgi detail Healthcare

  # Same drill-down under custom weights
  aidgi detail Finance --weight-growth 0.5

  # Machine-readable output
  aidgi detail Retail --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteDetail(cfg, args[0]); err != nil {
			contract.LogFatal("Cannot show industry detail", err)
		}
	},
}
