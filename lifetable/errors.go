package lifetable

import "errors"

var (
	// ErrEmptyVector indicates the rate vector has no entries.
	ErrEmptyVector = errors.New("lifetable: rate vector must be non-empty")

	// ErrInvalidRate indicates a negative or infinite mortality rate.
	ErrInvalidRate = errors.New("lifetable: rates must be finite and non-negative")

	// ErrMissingValue indicates a NaN rate entry while Options.MissingAsZero
	// is disabled. Enable the flag to coerce missing rates to zero hazard.
	ErrMissingValue = errors.New("lifetable: missing (NaN) rate entry")
)
