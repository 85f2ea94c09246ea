package core

import (
	"sort"

	"github.com/kr-muchiri/aidgi/schema"
)

// RankIndustries sorts scored industries by index score in descending order
// and returns the top 'limit' entries. A limit of 0 returns the full table.
// The sort is stable so equal scores keep their dataset order, and the input
// slice is left untouched.
func RankIndustries(scored []schema.ScoredIndustry, limit int) []schema.ScoredIndustry {
	ranked := make([]schema.ScoredIndustry, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if limit > 0 && len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}
