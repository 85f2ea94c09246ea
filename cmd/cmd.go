// Package cmd defines the command-line interface for aidgi.
package cmd

import (
	"github.com/kr-muchiri/aidgi/internal/contract"
	"github.com/kr-muchiri/aidgi/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(detailCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(weightsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of industries to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("data", "", "Optional JSON file with a custom industry dataset")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().Float64("weight-adoption", schema.DefaultAdoptionWeight, "Raw weight for AI adoption rate")
	rootCmd.PersistentFlags().Float64("weight-efficiency", schema.DefaultEfficiencyWeight, "Raw weight for efficiency improvement")
	rootCmd.PersistentFlags().Float64("weight-revenue", schema.DefaultRevenueWeight, "Raw weight for revenue growth")
	rootCmd.PersistentFlags().Float64("weight-market", schema.DefaultMarketWeight, "Raw weight for market size")
	rootCmd.PersistentFlags().Float64("weight-growth", schema.DefaultGrowthWeight, "Raw weight for growth potential")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of tableCmd to Viper
	tableCmd.Flags().Bool("detail", false, "Print raw metric columns alongside the score")
	tableCmd.Flags().Bool("explain", false, "Print per-term score breakdown")
	if err := viper.BindPFlags(tableCmd.Flags()); err != nil {
		contract.LogFatal("Error binding table flags", err)
	}
}
