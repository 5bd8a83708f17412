package compsens

import "errors"

var (
	// ErrEmptyVector indicates an empty input vector.
	ErrEmptyVector = errors.New("compsens: input vectors must be non-empty")

	// ErrDimensionMismatch indicates input vectors of differing lengths.
	ErrDimensionMismatch = errors.New("compsens: input vectors must have equal length")

	// ErrSkipIndex indicates a skip index outside [0, n] where n is the
	// number of age groups (0 = no skip, k = drop structure element k−1).
	ErrSkipIndex = errors.New("compsens: skip index out of range")
)
