package decompose

import "errors"

var (
	// ErrNilFunc indicates a nil function under decomposition.
	ErrNilFunc = errors.New("decompose: function must be non-nil")

	// ErrEmptyVector indicates empty parameter vectors.
	ErrEmptyVector = errors.New("decompose: parameter vectors must be non-empty")

	// ErrDimensionMismatch indicates pars1 and pars2 differ in length.
	// Vectors are never silently truncated.
	ErrDimensionMismatch = errors.New("decompose: parameter vectors must have equal length")

	// ErrBadOption indicates a nonsensical option value: Steps < 1,
	// Perturbation ≤ 0, or an Order that is not a permutation of 0..n−1.
	ErrBadOption = errors.New("decompose: invalid option value")

	// ErrBadDerivative indicates a user-supplied Derivative returned a
	// gradient of the wrong length.
	ErrBadDerivative = errors.New("decompose: derivative length mismatch")

	// ErrUnknownMethod indicates a Method value outside the enum.
	ErrUnknownMethod = errors.New("decompose: unknown method")

	// ErrIndexOutOfRange indicates a Sensitivity index outside the
	// parameter vector.
	ErrIndexOutOfRange = errors.New("decompose: index out of range")
)
