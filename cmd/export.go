package cmd

import (
	"github.com/kr-muchiri/aidgi/core"
	"github.com/kr-muchiri/aidgi/internal/contract"
	"github.com/kr-muchiri/aidgi/schema"
	"github.com/spf13/cobra"
)

// exportCmd writes the ranked table to a Parquet file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ranked index table to a Parquet file.",
	Long: `Compute the ranked index table and write it to a Parquet file for use in
analytics tooling (DuckDB, Spark, pandas, etc).

Equivalent to 'aidgi table --output parquet'. The default output file is
aidgi_index.parquet in the current directory.

Examples:
  # Export with default weights
  aidgi export

  # Export a custom scenario to a named file
  aidgi export --weight-growth 0.5 --output-file scenario.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		cfg.Output = schema.ParquetOut
		if err := core.ExecuteTable(cfg); err != nil {
			contract.LogFatal("Cannot export index table", err)
		}
	},
}
