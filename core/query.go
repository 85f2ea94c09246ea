package core

import (
	"fmt"

	"github.com/kr-muchiri/aidgi/schema"
)

// Detail returns the scored record whose name matches, along with its
// 1-based rank in the table. An unknown name fails with
// schema.ErrIndustryNotFound; a missing industry is reported, never silently
// empty.
func Detail(table []schema.ScoredIndustry, name string) (schema.ScoredIndustry, int, error) {
	for i, s := range table {
		if s.Name == name {
			return s, i + 1, nil
		}
	}
	return schema.ScoredIndustry{}, 0, fmt.Errorf("%w: %q", schema.ErrIndustryNotFound, name)
}

// MetricComparison builds the long-format (industry, metric, value)
// projection for the requested metrics. Values are raw metric readings taken
// straight from the records; the active weight vector plays no part here.
// Triples are grouped metric-first so grouped renderers can consume them in
// order.
func MetricComparison(records []schema.IndustryMetrics, metrics []schema.MetricKey) ([]schema.MetricValue, error) {
	values := make([]schema.MetricValue, 0, len(records)*len(metrics))
	for _, key := range metrics {
		if _, ok := schema.ValidMetricKeys[key]; !ok {
			return nil, fmt.Errorf("%w: %q", schema.ErrUnknownMetric, key)
		}
		for _, r := range records {
			v, _ := r.Metric(key)
			values = append(values, schema.MetricValue{
				Industry: r.Name,
				Metric:   key,
				Value:    v,
			})
		}
	}
	return values, nil
}
