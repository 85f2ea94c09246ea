// Package contract holds configuration parsing, validation and shared
// console helpers for the aidgi CLI.
package contract

import (
	"fmt"

	"github.com/kr-muchiri/aidgi/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 100
	DefaultPrecision   = 2
	MaxPrecision       = 4
)

// Config holds the runtime configuration for one invocation.
// This struct remains the "final, validated" config.
type Config struct {
	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Detail      bool
	Explain     bool
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool
	DataFile    string

	// RawWeights is the weight vector exactly as supplied by the control
	// surface. Normalization happens in core on every run so scores always
	// reflect the current vector.
	RawWeights schema.WeightVector
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Limit      int    `mapstructure:"limit"`
	Precision  int    `mapstructure:"precision"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Detail     bool   `mapstructure:"detail"`
	Explain    bool   `mapstructure:"explain"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`
	Data       string `mapstructure:"data"`

	WeightAdoption   float64 `mapstructure:"weight-adoption"`
	WeightEfficiency float64 `mapstructure:"weight-efficiency"`
	WeightRevenue    float64 `mapstructure:"weight-revenue"`
	WeightMarket     float64 `mapstructure:"weight-market"`
	WeightGrowth     float64 `mapstructure:"weight-growth"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	output := schema.OutputMode(input.Output)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode: %s", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color value: %w", err)
	}
	cfg.UseColors = useColors

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative, got %d", input.Width)
	}
	cfg.Width = input.Width

	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.DataFile = input.Data

	cfg.RawWeights = schema.WeightVector{
		Adoption:   input.WeightAdoption,
		Efficiency: input.WeightEfficiency,
		Revenue:    input.WeightRevenue,
		Market:     input.WeightMarket,
		Growth:     input.WeightGrowth,
	}

	return nil
}
