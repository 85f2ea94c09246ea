package core

import (
	"math"
	"testing"

	"github.com/kr-muchiri/aidgi/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeIndexHandComputed(t *testing.T) {
	// Healthcare with the default weights, term by term:
	//   0.35*75 + 0.25*30 + 0.20*20 + 0.10*ln(200) + 0.10*exp(90/100)
	m := schema.IndustryMetrics{
		Name:                  "Healthcare",
		AIAdoption:            75,
		EfficiencyImprovement: 30,
		RevenueGrowth:         20,
		MarketSize:            200,
		GrowthPotential:       90,
	}
	score, breakdown := computeIndex(m, schema.DefaultWeights())

	want := 0.35*75 + 0.25*30 + 0.20*20 + 0.10*math.Log(200) + 0.10*math.Exp(0.9)
	assert.InDelta(t, want, score, 1e-12)
	assert.InDelta(t, 38.5258, score, 0.001)

	assert.InDelta(t, 26.25, breakdown[schema.MetricAdoption], 1e-12)
	assert.InDelta(t, 7.5, breakdown[schema.MetricEfficiency], 1e-12)
	assert.InDelta(t, 4.0, breakdown[schema.MetricRevenue], 1e-12)
	assert.InDelta(t, 0.10*math.Log(200), breakdown[schema.MetricMarket], 1e-12)
	assert.InDelta(t, 0.10*math.Exp(0.9), breakdown[schema.MetricGrowth], 1e-12)
}

func TestComputeIndexBreakdownSumsToScore(t *testing.T) {
	for _, m := range schema.DefaultIndustries() {
		score, breakdown := computeIndex(m, schema.DefaultWeights())
		var sum float64
		for _, v := range breakdown {
			sum += v
		}
		assert.InDelta(t, score, sum, 1e-9, "breakdown must reconcile for %s", m.Name)
	}
}

func TestScoreIndustriesDeterministic(t *testing.T) {
	records := schema.DefaultIndustries()
	weights := schema.DefaultWeights()

	first, err := ScoreIndustries(records, weights)
	require.NoError(t, err)
	second, err := ScoreIndustries(records, weights)
	require.NoError(t, err)

	require.Len(t, first, len(records))
	for i := range first {
		assert.Equal(t, records[i].Name, first[i].Name, "input order must be preserved")
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}

func TestComputeIndexBitExactAcrossCalls(t *testing.T) {
	// The terms must be summed in a fixed order: float addition is not
	// associative, so any order sensitivity shows up as bit-level drift
	// under repetition.
	m := schema.DefaultIndustries()[0]
	weights := schema.DefaultWeights()

	baseline, _ := computeIndex(m, weights)
	for i := 0; i < 10000; i++ {
		score, _ := computeIndex(m, weights)
		require.Equal(t, baseline, score, "score drifted on iteration %d", i)
	}
}

func TestRankedTableIdenticalForIdenticalWeights(t *testing.T) {
	weights := schema.DefaultWeights()

	baseline, err := ScoreIndustries(schema.DefaultIndustries(), weights)
	require.NoError(t, err)
	baselineRanked := RankIndustries(baseline, 0)

	for i := 0; i < 100; i++ {
		scored, err := ScoreIndustries(schema.DefaultIndustries(), weights)
		require.NoError(t, err)
		require.Equal(t, baselineRanked, RankIndustries(scored, 0))
	}
}

func TestScoreIndustriesAllOrNothing(t *testing.T) {
	tests := []struct {
		name string
		bad  schema.IndustryMetrics
	}{
		{
			name: "zero market size",
			bad: schema.IndustryMetrics{
				Name: "Broken", AIAdoption: 50, EfficiencyImprovement: 10,
				RevenueGrowth: 5, MarketSize: 0, GrowthPotential: 50,
			},
		},
		{
			name: "negative market size",
			bad: schema.IndustryMetrics{
				Name: "Broken", AIAdoption: 50, EfficiencyImprovement: 10,
				RevenueGrowth: 5, MarketSize: -10, GrowthPotential: 50,
			},
		},
		{
			name: "NaN adoption",
			bad: schema.IndustryMetrics{
				Name: "Broken", AIAdoption: math.NaN(), EfficiencyImprovement: 10,
				RevenueGrowth: 5, MarketSize: 100, GrowthPotential: 50,
			},
		},
		{
			name: "infinite growth potential",
			bad: schema.IndustryMetrics{
				Name: "Broken", AIAdoption: 50, EfficiencyImprovement: 10,
				RevenueGrowth: 5, MarketSize: 100, GrowthPotential: math.Inf(1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := append(schema.DefaultIndustries(), tt.bad)
			scored, err := ScoreIndustries(records, schema.DefaultWeights())
			assert.ErrorIs(t, err, schema.ErrInvalidMetric)
			assert.Nil(t, scored, "no partial results on failure")
		})
	}
}

func TestScoreIndustriesEmptyInput(t *testing.T) {
	scored, err := ScoreIndustries(nil, schema.DefaultWeights())
	require.NoError(t, err)
	assert.Empty(t, scored)
}

func TestScoreIndustriesMonotoneInWeight(t *testing.T) {
	// Raising the adoption weight must raise the score of any industry with a
	// positive adoption reading, all else equal.
	m := schema.DefaultIndustries()[0]
	low := schema.WeightVector{Adoption: 0.1, Efficiency: 0.3, Revenue: 0.2, Market: 0.2, Growth: 0.2}
	high := schema.WeightVector{Adoption: 0.4, Efficiency: 0.3, Revenue: 0.2, Market: 0.2, Growth: 0.2}

	lowScore, _ := computeIndex(m, low)
	highScore, _ := computeIndex(m, high)
	assert.Greater(t, highScore, lowScore)
}
