package schema

// EnrichedIndustryResult adds presentation data to a ScoredIndustry.
type EnrichedIndustryResult struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	ScoredIndustry
}

// GetPlainLabel returns a plain text label indicating the disruption tier
// based on the composite index score.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 40:
		return "Frontier"
	case score >= 30:
		return "Accelerating"
	case score >= 20:
		return "Emerging"
	default:
		return "Nascent"
	}
}

// EnrichIndustries adds rank and label to a ranked table.
func EnrichIndustries(table []ScoredIndustry) []EnrichedIndustryResult {
	output := make([]EnrichedIndustryResult, len(table))
	for i, s := range table {
		output[i] = EnrichedIndustryResult{
			Rank:           i + 1,
			Label:          GetPlainLabel(s.Score),
			ScoredIndustry: s,
		}
	}
	return output
}
