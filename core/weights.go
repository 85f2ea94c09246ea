package core

import (
	"fmt"
	"math"

	"github.com/kr-muchiri/aidgi/schema"
)

// WeightSumTolerance is the tolerance for the normalized-sum invariant.
const WeightSumTolerance = 1e-9

// NormalizeWeights rescales the raw weights so the five components sum to 1
// while preserving their relative proportions. The input is never mutated.
//
// Negative or non-finite components fail with schema.ErrInvalidWeight.
// An all-zero vector fails with schema.ErrDegenerateWeights rather than
// falling back to a uniform vector; callers that want uniform weights must
// ask for them explicitly.
func NormalizeWeights(raw schema.WeightVector) (schema.WeightVector, error) {
	for _, c := range raw.Components() {
		if c.Value < 0 || math.IsNaN(c.Value) || math.IsInf(c.Value, 0) {
			return schema.WeightVector{}, fmt.Errorf("%w: %s=%v", schema.ErrInvalidWeight, c.Key, c.Value)
		}
	}

	sum := raw.Sum()
	if sum == 0 {
		return schema.WeightVector{}, schema.ErrDegenerateWeights
	}

	return schema.WeightVector{
		Adoption:   raw.Adoption / sum,
		Efficiency: raw.Efficiency / sum,
		Revenue:    raw.Revenue / sum,
		Market:     raw.Market / sum,
		Growth:     raw.Growth / sum,
	}, nil
}
