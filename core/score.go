package core

import (
	"fmt"
	"math"

	"github.com/kr-muchiri/aidgi/schema"
)

// computeIndex calculates an industry's composite index score from the given
// weight vector. The formula keeps the three percentage metrics linear and
// transforms the other two:
//
//	score = wA*adoption + wE*efficiency + wR*revenue
//	      + wM*ln(market_size) + wG*exp(growth_potential/100)
//
// ln compresses market size so it contributes on the same scale as the
// percentage terms; exp amplifies high growth potential.
func computeIndex(m schema.IndustryMetrics, w schema.WeightVector) (float64, map[schema.MetricKey]float64) {
	breakdown := map[schema.MetricKey]float64{
		schema.MetricAdoption:   w.Adoption * m.AIAdoption,
		schema.MetricEfficiency: w.Efficiency * m.EfficiencyImprovement,
		schema.MetricRevenue:    w.Revenue * m.RevenueGrowth,
		schema.MetricMarket:     w.Market * math.Log(m.MarketSize),
		schema.MetricGrowth:     w.Growth * math.Exp(m.GrowthPotential/100),
	}

	// Sum in fixed key order; float addition is not associative, so ranging
	// over the map would make the score depend on iteration order.
	var score float64
	for _, key := range schema.AllMetricKeys {
		score += breakdown[key]
	}
	return score, breakdown
}

// validateMetrics rejects records the transforms cannot handle: a market size
// the logarithm would reject, or any non-finite metric.
func validateMetrics(m schema.IndustryMetrics) error {
	for _, key := range schema.AllMetricKeys {
		v, _ := m.Metric(key)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s has non-finite %s (%v)", schema.ErrInvalidMetric, m.Name, key, v)
		}
	}
	if m.MarketSize <= 0 {
		return fmt.Errorf("%w: %s has non-positive market_size (%v)", schema.ErrInvalidMetric, m.Name, m.MarketSize)
	}
	return nil
}

// ScoreIndustries applies the weight vector to every record and returns the
// scored collection in input order. Scoring is a pure function of
// (records, weights) and all-or-nothing: one invalid record fails the whole
// batch with no partial results.
func ScoreIndustries(records []schema.IndustryMetrics, weights schema.WeightVector) ([]schema.ScoredIndustry, error) {
	scored := make([]schema.ScoredIndustry, 0, len(records))
	for _, m := range records {
		if err := validateMetrics(m); err != nil {
			return nil, err
		}
		score, breakdown := computeIndex(m, weights)
		scored = append(scored, schema.ScoredIndustry{
			IndustryMetrics: m,
			Score:           score,
			Breakdown:       breakdown,
		})
	}
	return scored, nil
}
