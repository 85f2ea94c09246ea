package schema

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultIndustries returns the built-in industry dataset. The records are
// constructed once per call so callers can never mutate shared state.
func DefaultIndustries() []IndustryMetrics {
	return []IndustryMetrics{
		{Name: "Healthcare", AIAdoption: 75, EfficiencyImprovement: 30, RevenueGrowth: 20, MarketSize: 200, GrowthPotential: 90},
		{Name: "Finance", AIAdoption: 80, EfficiencyImprovement: 35, RevenueGrowth: 25, MarketSize: 180, GrowthPotential: 85},
		{Name: "Retail", AIAdoption: 70, EfficiencyImprovement: 25, RevenueGrowth: 15, MarketSize: 150, GrowthPotential: 80},
		{Name: "Manufacturing", AIAdoption: 65, EfficiencyImprovement: 20, RevenueGrowth: 10, MarketSize: 170, GrowthPotential: 75},
		{Name: "Transportation", AIAdoption: 60, EfficiencyImprovement: 15, RevenueGrowth: 5, MarketSize: 140, GrowthPotential: 70},
		{Name: "Education", AIAdoption: 55, EfficiencyImprovement: 10, RevenueGrowth: 5, MarketSize: 120, GrowthPotential: 65},
		{Name: "Entertainment", AIAdoption: 50, EfficiencyImprovement: 20, RevenueGrowth: 10, MarketSize: 130, GrowthPotential: 60},
	}
}

// LoadIndustries reads an industry dataset from a JSON file. The file holds
// an array of IndustryMetrics objects. Only structural checks happen here;
// value-level validation is owned by the scoring engine.
func LoadIndustries(path string) ([]IndustryMetrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read dataset: %w", err)
	}

	var records []IndustryMetrics
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("cannot parse dataset %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s has no records", path)
	}

	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		if r.Name == "" {
			return nil, fmt.Errorf("dataset %s: record %d has no name", path, i)
		}
		if _, dup := seen[r.Name]; dup {
			return nil, fmt.Errorf("dataset %s: duplicate industry %q", path, r.Name)
		}
		seen[r.Name] = struct{}{}
	}
	return records, nil
}
