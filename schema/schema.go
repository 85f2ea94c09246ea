// Package schema has configs, models and global variables for all parts of aidgi.
package schema

// IndustryMetrics represents the raw AI impact metrics for a single industry.
// The four percentage fields are semantically bounded to [0,100]; MarketSize
// is expressed in billions of USD and must be positive since the index
// formula takes its natural logarithm.
type IndustryMetrics struct {
	Name                  string  `json:"name"`                   // Unique industry name within the dataset
	AIAdoption            float64 `json:"ai_adoption"`            // How widely AI is adopted in the industry (percent)
	EfficiencyImprovement float64 `json:"efficiency_improvement"` // Efficiency gains attributed to AI (percent)
	RevenueGrowth         float64 `json:"revenue_growth"`         // Revenue expansion attributed to AI (percent)
	MarketSize            float64 `json:"market_size"`            // Addressable market size (billion USD)
	GrowthPotential       float64 `json:"growth_potential"`       // Future AI-driven growth outlook (percent)
}

// Metric returns the raw value for the given metric key.
// The second return value is false for unknown keys.
func (m IndustryMetrics) Metric(key MetricKey) (float64, bool) {
	switch key {
	case MetricAdoption:
		return m.AIAdoption, true
	case MetricEfficiency:
		return m.EfficiencyImprovement, true
	case MetricRevenue:
		return m.RevenueGrowth, true
	case MetricMarket:
		return m.MarketSize, true
	case MetricGrowth:
		return m.GrowthPotential, true
	default:
		return 0, false
	}
}

// ScoredIndustry pairs an industry record with its composite index score.
// The score is always derived from the current weight vector and is never
// carried over across weight changes.
type ScoredIndustry struct {
	IndustryMetrics
	Score float64 `json:"index_score"` // Composite AIDGI score

	// Breakdown holds the contribution of each weighted term for explain mode.
	Breakdown map[MetricKey]float64 `json:"breakdown,omitempty"`
}

// MetricValue is one (industry, metric, value) triple of the long-format
// comparison projection. Values are raw metric readings, independent of the
// active weight vector.
type MetricValue struct {
	Industry string    `json:"industry"`
	Metric   MetricKey `json:"metric"`
	Value    float64   `json:"value"`
}
