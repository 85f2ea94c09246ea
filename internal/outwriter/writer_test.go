package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/kr-muchiri/aidgi/internal/contract"
	"github.com/kr-muchiri/aidgi/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() []schema.ScoredIndustry {
	return []schema.ScoredIndustry{
		{
			IndustryMetrics: schema.IndustryMetrics{
				Name: "Finance", AIAdoption: 80, EfficiencyImprovement: 35,
				RevenueGrowth: 25, MarketSize: 180, GrowthPotential: 85,
			},
			Score: 42.5033,
			Breakdown: map[schema.MetricKey]float64{
				schema.MetricAdoption:   28,
				schema.MetricEfficiency: 8.75,
				schema.MetricRevenue:    5,
				schema.MetricMarket:     0.5193,
				schema.MetricGrowth:     0.2340,
			},
		},
		{
			IndustryMetrics: schema.IndustryMetrics{
				Name: "Education", AIAdoption: 55, EfficiencyImprovement: 10,
				RevenueGrowth: 5, MarketSize: 120, GrowthPotential: 65,
			},
			Score: 23.4203,
		},
	}
}

func TestCreateFormatter(t *testing.T) {
	assert.Equal(t, "42.50", createFormatter(2)(42.5033))
	assert.Equal(t, "42.5033", createFormatter(4)(42.50331))
	assert.Equal(t, "43", createFormatter(0)(42.6))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, schema.EnrichIndustries(sampleTable())))

	var decoded []schema.EnrichedIndustryResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, 1, decoded[0].Rank)
	assert.Equal(t, "Frontier", decoded[0].Label)
	assert.Equal(t, "Finance", decoded[0].Name)
	assert.InDelta(t, 42.5033, decoded[0].Score, 1e-9)
	assert.Equal(t, 2, decoded[1].Rank)
	assert.Equal(t, "Emerging", decoded[1].Label)
}

func TestWriteCSVResultsForTable(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVResultsForTable(&buf, sampleTable(), createFormatter(2))
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"rank", "industry", "index_score", "label", "ai_adoption",
		"efficiency_improvement", "revenue_growth", "market_size", "growth_potential",
	}, records[0])
	assert.Equal(t, []string{"1", "Finance", "42.50", "Frontier", "80.00", "35.00", "25.00", "180.00", "85.00"}, records[1])
	assert.Equal(t, "2", records[2][0])
	assert.Equal(t, "Emerging", records[2][3])
}

func TestWriteCSVDetail(t *testing.T) {
	result := schema.EnrichedIndustryResult{
		Rank:           1,
		Label:          "Frontier",
		ScoredIndustry: sampleTable()[0],
	}

	var buf bytes.Buffer
	require.NoError(t, writeCSVDetail(&buf, result, createFormatter(2)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"1", "Finance", "42.50", "Frontier", "80.00", "35.00", "25.00", "180.00", "85.00"}, records[1])
}

func TestWriteCSVComparison(t *testing.T) {
	values := []schema.MetricValue{
		{Industry: "Finance", Metric: schema.MetricAdoption, Value: 80},
		{Industry: "Education", Metric: schema.MetricAdoption, Value: 55},
		{Industry: "Finance", Metric: schema.MetricMarket, Value: 180},
	}

	var buf bytes.Buffer
	require.NoError(t, writeCSVComparison(&buf, values, createFormatter(1)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"metric", "industry", "value"}, records[0])
	assert.Equal(t, []string{"ai_adoption", "Finance", "80.0"}, records[1])
	assert.Equal(t, []string{"market_size", "Finance", "180.0"}, records[3])
}

func TestBuildWeightsRenderModel(t *testing.T) {
	model := buildWeightsRenderModel(schema.DefaultWeights())

	require.Len(t, model.Terms, 5)
	assert.Equal(t, schema.MetricAdoption, model.Terms[0].Key)
	assert.Equal(t, "linear", model.Terms[0].Transform)
	assert.Equal(t, "ln", model.Terms[3].Transform)
	assert.Equal(t, "exp(x/100)", model.Terms[4].Transform)

	want := "0.35*ai_adoption + 0.25*efficiency_improvement + 0.20*revenue_growth" +
		" + 0.10*ln(market_size) + 0.10*exp(growth_potential/100)"
	assert.Equal(t, want, model.Formula)
}

func TestWriteWeightsText(t *testing.T) {
	var buf bytes.Buffer
	model := buildWeightsRenderModel(schema.DefaultWeights())
	require.NoError(t, writeWeightsText(&buf, model))

	out := buf.String()
	assert.Contains(t, out, "AIDGI Weight Distribution")
	assert.Contains(t, out, "ai_adoption")
	assert.Contains(t, out, "0.3500")
	assert.Contains(t, out, "Formula: AIDGI = ")
}

func TestWriteCSVWeights(t *testing.T) {
	var buf bytes.Buffer
	model := buildWeightsRenderModel(schema.DefaultWeights())
	require.NoError(t, writeCSVWeights(&buf, model))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, []string{"metric", "weight", "transform"}, records[0])
	assert.Equal(t, []string{"ai_adoption", "0.3500", "linear"}, records[1])
	assert.Equal(t, []string{"growth_potential", "0.1000", "exp(x/100)"}, records[5])
}

func TestFormatBreakdown(t *testing.T) {
	breakdown := map[schema.MetricKey]float64{
		schema.MetricAdoption:   28,
		schema.MetricEfficiency: 8.75,
		schema.MetricRevenue:    5,
		schema.MetricMarket:     0.52,
		schema.MetricGrowth:     0.23,
	}

	got := formatBreakdown(breakdown, createFormatter(2))
	// Contributions are listed largest first.
	assert.Equal(t, "ai_adoption=28.00 efficiency_improvement=8.75 revenue_growth=5.00 market_size=0.52 growth_potential=0.23", got)
}

func TestFormatBreakdownTieOrder(t *testing.T) {
	breakdown := map[schema.MetricKey]float64{
		schema.MetricMarket: 1.5,
		schema.MetricGrowth: 1.5,
	}

	// Equal contributions fall back to key order for a stable rendering.
	got := formatBreakdown(breakdown, createFormatter(1))
	assert.Equal(t, "growth_potential=1.5 market_size=1.5", got)
}

func TestWriteDetailText(t *testing.T) {
	result := schema.EnrichedIndustryResult{
		Rank:           1,
		Label:          "Frontier",
		ScoredIndustry: sampleTable()[0],
	}
	cfg := &contract.Config{Precision: 2, Output: schema.TextOut}

	var buf bytes.Buffer
	require.NoError(t, writeDetailText(&buf, result, cfg, createFormatter(cfg.Precision)))

	out := buf.String()
	assert.Contains(t, out, "Finance")
	assert.Contains(t, out, "Rank:  #1")
	assert.Contains(t, out, "Score: 42.50")
	assert.Contains(t, out, "Market Size:")
	assert.Contains(t, out, "180.00B USD")
	assert.Contains(t, out, "(weighted term: 28.00)")
}

func TestWriteDetailTextWithoutBreakdown(t *testing.T) {
	result := schema.EnrichedIndustryResult{
		Rank:           2,
		Label:          "Emerging",
		ScoredIndustry: sampleTable()[1],
	}
	cfg := &contract.Config{Precision: 2, Output: schema.TextOut}

	var buf bytes.Buffer
	require.NoError(t, writeDetailText(&buf, result, cfg, createFormatter(cfg.Precision)))
	assert.NotContains(t, buf.String(), "weighted term")
}

func TestWriteIndexTable(t *testing.T) {
	cfg := &contract.Config{Precision: 2, Output: schema.TextOut, Width: 120}

	var buf bytes.Buffer
	err := writeIndexTable(sampleTable(), cfg, createFormatter(cfg.Precision), 0, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Finance")
	assert.Contains(t, out, "42.50")
	assert.Contains(t, out, "Frontier")
	assert.Contains(t, out, "Showing 2 industries ranked by AIDGI score")
	// Raw metric columns only appear with --detail.
	assert.NotContains(t, strings.ToUpper(out), "ADOPTION%")
}

func TestWriteIndexTableDetailAndExplain(t *testing.T) {
	cfg := &contract.Config{Precision: 2, Output: schema.TextOut, Width: 250, Detail: true, Explain: true}

	var buf bytes.Buffer
	err := writeIndexTable(sampleTable(), cfg, createFormatter(cfg.Precision), 0, &buf)
	require.NoError(t, err)

	out := strings.ToUpper(buf.String())
	for _, header := range []string{"Adoption%", "Efficiency%", "Revenue%", "Market($B)", "Growth%", "Breakdown"} {
		assert.Contains(t, out, strings.ToUpper(header))
	}
	assert.Contains(t, out, strings.ToUpper("ai_adoption=28.00"))
}

func TestWriteComparisonTable(t *testing.T) {
	values := []schema.MetricValue{
		{Industry: "Finance", Metric: schema.MetricAdoption, Value: 80},
		{Industry: "Education", Metric: schema.MetricAdoption, Value: 55},
	}

	var buf bytes.Buffer
	require.NoError(t, writeComparisonTable(&buf, values, createFormatter(2)))

	out := buf.String()
	assert.Contains(t, out, "ai_adoption")
	assert.Contains(t, out, "Finance")
	assert.Contains(t, out, "80.00")
}

func TestGetMaxTableNameWidth(t *testing.T) {
	tests := []struct {
		name string
		cfg  *contract.Config
		want int
	}{
		{name: "wide terminal caps at 30", cfg: &contract.Config{Width: 200}, want: 30},
		{name: "narrow terminal floors at 10", cfg: &contract.Config{Width: 40}, want: 10},
		{name: "mid width passes through", cfg: &contract.Config{Width: 60}, want: 25},
		{name: "detail columns shrink the name column", cfg: &contract.Config{Width: 100, Detail: true}, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getMaxTableNameWidth(tt.cfg))
		})
	}
}

func TestLabelFor(t *testing.T) {
	plain := &contract.Config{UseColors: false}
	assert.Equal(t, "Frontier", labelFor(plain, 45))
	assert.Equal(t, "Nascent", labelFor(plain, 5))

	colored := &contract.Config{UseColors: true}
	assert.Contains(t, labelFor(colored, 45), "Frontier")
}
