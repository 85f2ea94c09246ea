package schema

// WeightVector holds one weight per metric class. A vector is either raw
// (as supplied by flags, env or config) or normalized so the five components
// sum to 1; normalization lives in the core package.
type WeightVector struct {
	Adoption   float64 `json:"adoption" mapstructure:"weight-adoption"`
	Efficiency float64 `json:"efficiency" mapstructure:"weight-efficiency"`
	Revenue    float64 `json:"revenue" mapstructure:"weight-revenue"`
	Market     float64 `json:"market" mapstructure:"weight-market"`
	Growth     float64 `json:"growth" mapstructure:"weight-growth"`
}

// WeightComponent pairs a metric key with its weight value.
type WeightComponent struct {
	Key   MetricKey
	Value float64
}

// Components returns the weights in formula order.
func (w WeightVector) Components() []WeightComponent {
	return []WeightComponent{
		{MetricAdoption, w.Adoption},
		{MetricEfficiency, w.Efficiency},
		{MetricRevenue, w.Revenue},
		{MetricMarket, w.Market},
		{MetricGrowth, w.Growth},
	}
}

// Sum returns the total of the five components.
func (w WeightVector) Sum() float64 {
	return w.Adoption + w.Efficiency + w.Revenue + w.Market + w.Growth
}

// Default weight values mirror the published AIDGI formula emphasis.
const (
	DefaultAdoptionWeight   = 0.35
	DefaultEfficiencyWeight = 0.25
	DefaultRevenueWeight    = 0.20
	DefaultMarketWeight     = 0.10
	DefaultGrowthWeight     = 0.10
)

// DefaultWeights returns the weight vector of the published AIDGI formula.
// It is already normalized.
func DefaultWeights() WeightVector {
	return WeightVector{
		Adoption:   DefaultAdoptionWeight,
		Efficiency: DefaultEfficiencyWeight,
		Revenue:    DefaultRevenueWeight,
		Market:     DefaultMarketWeight,
		Growth:     DefaultGrowthWeight,
	}
}
