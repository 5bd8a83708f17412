package dataset

import "errors"

var (
	// ErrBadHeader indicates the CSV header does not match the documented
	// six-column layout.
	ErrBadHeader = errors.New("dataset: unexpected header")

	// ErrBadRecord indicates an unparsable field in a data row.
	ErrBadRecord = errors.New("dataset: malformed record")

	// ErrUnknownSex indicates a Sex value outside {Male, Female, Total}.
	ErrUnknownSex = errors.New("dataset: unknown sex")

	// ErrAgeOrder indicates ages that are not strictly ascending within a sex.
	ErrAgeOrder = errors.New("dataset: ages must be strictly ascending per sex")

	// ErrNegativeValue indicates a negative rate or exposure.
	ErrNegativeValue = errors.New("dataset: rates and exposures must be non-negative")

	// ErrNoRows indicates an empty table or an absent sex.
	ErrNoRows = errors.New("dataset: no rows")
)
