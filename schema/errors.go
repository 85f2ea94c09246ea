package schema

import "errors"

// Error taxonomy for the index engine. All three conditions are surfaced to
// the caller unmodified; the engine never substitutes a default value.
var (
	// ErrDegenerateWeights is returned when every raw weight is zero and no
	// meaningful normalization is possible.
	ErrDegenerateWeights = errors.New("degenerate weights: all raw weights are zero")

	// ErrInvalidWeight is returned for negative or non-finite raw weights.
	ErrInvalidWeight = errors.New("invalid weight: weights must be finite and non-negative")

	// ErrInvalidMetric is returned when a record carries a non-positive
	// market size or a non-finite metric value.
	ErrInvalidMetric = errors.New("invalid metric")

	// ErrIndustryNotFound is returned by detail lookups on unknown names.
	ErrIndustryNotFound = errors.New("industry not found")

	// ErrUnknownMetric is returned for comparison requests that name a
	// metric outside the five index factors.
	ErrUnknownMetric = errors.New("unknown metric")
)
