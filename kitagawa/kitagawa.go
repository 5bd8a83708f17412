package kitagawa

import (
	"errors"
	"math"
)

var (
	// ErrEmptyVector indicates an empty input vector.
	ErrEmptyVector = errors.New("kitagawa: input vectors must be non-empty")

	// ErrDimensionMismatch indicates input vectors of differing lengths.
	ErrDimensionMismatch = errors.New("kitagawa: input vectors must have equal length")

	// ErrNotComposition indicates a structure vector that does not sum to
	// 1 within Options.Epsilon while Normalize is disabled.
	ErrNotComposition = errors.New("kitagawa: structure must sum to 1")

	// ErrInvalidValue indicates a NaN/Inf or negative entry.
	ErrInvalidValue = errors.New("kitagawa: entries must be finite and non-negative")
)

// Options configures structure handling.
//
// Fields:
//   - Normalize — rescale each structure vector to sum to 1, so raw
//     exposure counts can be passed directly.
//   - Epsilon   — tolerance of the sum-to-1 check when Normalize is off.
type Options struct {
	Normalize bool
	Epsilon   float64
}

// DefaultOptions returns the documented defaults:
// Normalize=false, Epsilon=1e-9.
func DefaultOptions() Options {
	return Options{Epsilon: 1e-9}
}

// Result holds the two effect vectors, aligned with the input age groups.
type Result struct {
	RateEffect      []float64
	StructureEffect []float64
}

// RateTotal returns the (unique) total rate effect.
func (r Result) RateTotal() float64 { return total(r.RateEffect) }

// StructureTotal returns the total structure effect. The total is
// unique; its age pattern is not (see package docs).
func (r Result) StructureTotal() float64 { return total(r.StructureEffect) }

// Total returns the full decomposed gap, CDR2 − CDR1.
func (r Result) Total() float64 { return r.RateTotal() + r.StructureTotal() }

// CrudeRate computes Σ mx·cx, the structure-weighted summary rate.
func CrudeRate(mx, cx []float64) (float64, error) {
	if len(mx) == 0 || len(cx) == 0 {
		return 0, ErrEmptyVector
	}
	if len(mx) != len(cx) {
		return 0, ErrDimensionMismatch
	}
	var s float64
	for i := range mx {
		s += mx[i] * cx[i]
	}

	return s, nil
}

// Decompose splits CDR(mx2,cx2) − CDR(mx1,cx1) into rate and structure
// effects with midpoint weights:
//
//	rate_i      = (mx2_i − mx1_i)·(cx1_i + cx2_i)/2
//	structure_i = (cx2_i − cx1_i)·(mx1_i + mx2_i)/2
//
// The two effect totals add up to the crude-rate gap exactly (to
// floating-point tolerance) — an algebraic identity, verified in tests.
// A nil opts pointer means DefaultOptions().
func Decompose(mx1, cx1, mx2, cx2 []float64, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
		if o.Epsilon <= 0 {
			o.Epsilon = DefaultOptions().Epsilon
		}
	}

	n := len(mx1)
	if n == 0 || len(cx1) == 0 || len(mx2) == 0 || len(cx2) == 0 {
		return Result{}, ErrEmptyVector
	}
	if len(cx1) != n || len(mx2) != n || len(cx2) != n {
		return Result{}, ErrDimensionMismatch
	}
	for i := 0; i < n; i++ {
		for _, v := range [4]float64{mx1[i], cx1[i], mx2[i], cx2[i]} {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return Result{}, ErrInvalidValue
			}
		}
	}

	c1, err := structure(cx1, o)
	if err != nil {
		return Result{}, err
	}
	c2, err := structure(cx2, o)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		RateEffect:      make([]float64, n),
		StructureEffect: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		res.RateEffect[i] = (mx2[i] - mx1[i]) * (c1[i] + c2[i]) / 2
		res.StructureEffect[i] = (c2[i] - c1[i]) * (mx1[i] + mx2[i]) / 2
	}

	return res, nil
}

// structure validates or normalizes one composition vector.
func structure(cx []float64, o Options) ([]float64, error) {
	s := total(cx)
	if o.Normalize {
		if s == 0 {
			return nil, ErrNotComposition
		}
		out := make([]float64, len(cx))
		for i, v := range cx {
			out[i] = v / s
		}

		return out, nil
	}
	if math.Abs(s-1) > o.Epsilon {
		return nil, ErrNotComposition
	}

	return cx, nil
}

func total(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}

	return s
}
