package cmd

import (
	"github.com/kr-muchiri/aidgi/core"
	"github.com/kr-muchiri/aidgi/internal/contract"
	"github.com/spf13/cobra"
)

// weightsCmd displays the active normalized weight vector and formula.
var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Display the active weight distribution and index formula",
	Long: `Show the normalized weight vector that would be applied to the index and
the resulting formula.

Raw weights from flags, environment variables or the config file are
rescaled so they sum to 1 while keeping their relative proportions. No
scoring is performed - this is purely informational.

Use this to:
- Verify how your raw weights normalize
- Document the scoring methodology
- Sanity-check a config file before running 'aidgi table'

Examples:
  # Show the published default distribution
  aidgi weights

  # See how custom raw weights normalize
  aidgi weights --weight-adoption 2 --weight-growth 1`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWeights(cfg); err != nil {
			contract.LogFatal("Cannot display weights", err)
		}
	},
}
