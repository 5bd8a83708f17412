package lifetable

import "math"

// Survivorship computes the lx column from age-specific mortality rates.
//
// Algorithm Outline:
//  1. lx[0] = 1.
//  2. lx[i] = exp(−(mx[0] + … + mx[i−1])) for i = 1..n−1.
//
// The cumulative-hazard exponent is the constant-hazard (continuous)
// approximation applied in a discrete setting; it keeps lx strictly
// positive for finite hazards and non-increasing for non-negative ones.
//
// A NaN entry in mx means "not available": with opts.MissingAsZero (the
// default) it contributes zero hazard; otherwise ErrMissingValue is
// returned. Negative or ±Inf entries yield ErrInvalidRate. A nil opts
// pointer means DefaultOptions().
func Survivorship(mx []float64, opts *Options) ([]float64, error) {
	n := len(mx)
	if n == 0 {
		return nil, ErrEmptyVector
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	lx := make([]float64, n)
	lx[0] = 1
	var hazard float64
	for i := 0; i < n; i++ {
		m := mx[i]
		switch {
		case math.IsNaN(m):
			if !o.MissingAsZero {
				return nil, ErrMissingValue
			}
			m = 0
		case m < 0 || math.IsInf(m, 0):
			return nil, ErrInvalidRate
		}
		if i+1 < n {
			hazard += m
			lx[i+1] = math.Exp(-hazard)
		}
	}

	return lx, nil
}

// Deaths computes dx[i] = lx[i] − lx[i+1], with an implicit terminal
// survivorship of zero, so the final entry captures the remaining mass.
// The result sums to lx[0].
func Deaths(lx []float64) []float64 {
	n := len(lx)
	if n == 0 {
		return nil
	}
	dx := make([]float64, n)
	for i := 0; i < n-1; i++ {
		dx[i] = lx[i] - lx[i+1]
	}
	dx[n-1] = lx[n-1]

	return dx
}

// PersonYears computes Lx[i] = (lx[i] + lx[i+1]) / 2, the trapezoid
// (linear-interpolation) approximation of person-years lived within the
// interval. The terminal lx is padded with zero, so the last interval
// contributes lx[n−1]/2.
func PersonYears(lx []float64) []float64 {
	n := len(lx)
	if n == 0 {
		return nil
	}
	Lx := make([]float64, n)
	for i := 0; i < n-1; i++ {
		Lx[i] = (lx[i] + lx[i+1]) / 2
	}
	Lx[n-1] = lx[n-1] / 2

	return Lx
}

// TotalYears computes Tx as the reverse cumulative sum of Lx:
// Tx[i] = Lx[i] + Lx[i+1] + … + Lx[n−1].
func TotalYears(Lx []float64) []float64 {
	n := len(Lx)
	if n == 0 {
		return nil
	}
	Tx := make([]float64, n)
	Tx[n-1] = Lx[n-1]
	for i := n - 2; i >= 0; i-- {
		Tx[i] = Tx[i+1] + Lx[i]
	}

	return Tx
}

// Expectancy computes ex[i] = Tx[i] / lx[i] from a survivorship column.
// Where lx[i] = 0 the quotient is undefined and reported as NaN; callers
// must treat NaN as "no survivors at this age", never as zero years.
func Expectancy(lx []float64) []float64 {
	n := len(lx)
	if n == 0 {
		return nil
	}
	Tx := TotalYears(PersonYears(lx))
	ex := make([]float64, n)
	for i := 0; i < n; i++ {
		if lx[i] == 0 {
			ex[i] = math.NaN()
			continue
		}
		ex[i] = Tx[i] / lx[i]
	}

	return ex
}

// Complete derives every lifetable column for one rate vector in a
// single call. Convenient for decomposers that need lx, Lx and Tx for
// two populations side by side.
func Complete(mx []float64, opts *Options) (*Columns, error) {
	lx, err := Survivorship(mx, opts)
	if err != nil {
		return nil, err
	}
	Lx := PersonYears(lx)

	return &Columns{
		Survival:    lx,
		Deaths:      Deaths(lx),
		PersonYears: Lx,
		TotalYears:  TotalYears(Lx),
		Expectancy:  Expectancy(lx),
	}, nil
}

// E0 returns life expectancy at birth — ex[0] — for one rate vector.
// This is the single-scalar entry point consumed by the generalized
// decomposition framework. Since lx[0] = 1, e0 is always defined for
// valid input.
func E0(mx []float64, opts *Options) (float64, error) {
	lx, err := Survivorship(mx, opts)
	if err != nil {
		return 0, err
	}

	return Expectancy(lx)[0], nil
}
