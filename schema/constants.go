package schema

// Custom string types for type safety.
type (
	// MetricKey identifies one of the five index factors.
	MetricKey string

	// OutputMode represents the format of the output.
	OutputMode string
)

// Metric keys used in scoring, breakdowns and comparisons.
const (
	MetricAdoption   MetricKey = "ai_adoption"
	MetricEfficiency MetricKey = "efficiency_improvement"
	MetricRevenue    MetricKey = "revenue_growth"
	MetricMarket     MetricKey = "market_size"
	MetricGrowth     MetricKey = "growth_potential"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// AllMetricKeys lists the five factors in formula order.
var AllMetricKeys = []MetricKey{
	MetricAdoption,
	MetricEfficiency,
	MetricRevenue,
	MetricMarket,
	MetricGrowth,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidMetricKeys lists all valid metric keys.
var ValidMetricKeys = map[MetricKey]struct{}{
	MetricAdoption:   {},
	MetricEfficiency: {},
	MetricRevenue:    {},
	MetricMarket:     {},
	MetricGrowth:     {},
}

// metricAliases maps short factor names to their canonical metric keys.
var metricAliases = map[string]MetricKey{
	"adoption":   MetricAdoption,
	"efficiency": MetricEfficiency,
	"revenue":    MetricRevenue,
	"market":     MetricMarket,
	"growth":     MetricGrowth,
}

// ParseMetricKey resolves a user-supplied metric name to a canonical key.
// Both canonical keys (e.g. "ai_adoption") and short aliases (e.g. "adoption")
// are accepted.
func ParseMetricKey(name string) (MetricKey, bool) {
	if _, ok := ValidMetricKeys[MetricKey(name)]; ok {
		return MetricKey(name), true
	}
	if key, ok := metricAliases[name]; ok {
		return key, true
	}
	return "", false
}
