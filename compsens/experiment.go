package compsens

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/demog/decompose"
)

// sentinel marks the "not applicable" slot of a skipped structure element.
var sentinel = math.NaN()

// Run decomposes the crude-rate gap between (mx1,cx1) and (mx2,cx2)
// under one parameterization.
//
// Algorithm Outline:
//  1. Flatten both populations into [rates…, structure…] vectors.
//  2. skip = 0: gradient-decompose the full 2n-vector with CrudeRate.
//     skip = k ∈ 1..n: drop structure element k−1 from both vectors
//     (ReduceAt), gradient-decompose with CrudeRateSkipping, then
//     reinsert a NaN sentinel at the skipped slot.
//  3. Split the 2n contributions back into rate and structure blocks.
//
// A nil opts pointer means DefaultOptions().
func Run(mx1, cx1, mx2, cx2 []float64, skip int, opts *Options) (Contribution, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	n := len(mx1)
	if n == 0 || len(cx1) == 0 || len(mx2) == 0 || len(cx2) == 0 {
		return Contribution{}, ErrEmptyVector
	}
	if len(cx1) != n || len(mx2) != n || len(cx2) != n {
		return Contribution{}, ErrDimensionMismatch
	}
	if skip < 0 || skip > n {
		return Contribution{}, ErrSkipIndex
	}

	pars1 := flatten(mx1, cx1)
	pars2 := flatten(mx2, cx2)

	dopts := decompose.DefaultOptions()
	dopts.Steps = o.Steps

	var delta []float64
	if skip == 0 {
		full, err := decompose.Horiuchi(CrudeRate(), pars1, pars2, &dopts)
		if err != nil {
			return Contribution{}, err
		}
		delta = full
	} else {
		r1, err := ReduceAt(pars1, skip)
		if err != nil {
			return Contribution{}, err
		}
		r2, err := ReduceAt(pars2, skip)
		if err != nil {
			return Contribution{}, err
		}
		reduced, err := decompose.Horiuchi(CrudeRateSkipping(skip, n), r1, r2, &dopts)
		if err != nil {
			return Contribution{}, err
		}
		delta = expandAt(reduced, skip, n)
	}

	return Contribution{
		Skip:            skip,
		RateEffect:      delta[:n],
		StructureEffect: delta[n:],
	}, nil
}

// RunAll executes Run for every skip index 0..n and returns the family
// of contributions ordered by skip. Runs are independent pure
// computations over private buffers, so they fan out concurrently.
func RunAll(mx1, cx1, mx2, cx2 []float64, opts *Options) ([]Contribution, error) {
	n := len(mx1)
	if n == 0 {
		return nil, ErrEmptyVector
	}

	out := make([]Contribution, n+1)
	var g errgroup.Group
	for skip := 0; skip <= n; skip++ {
		skip := skip
		g.Go(func() error {
			c, err := Run(mx1, cx1, mx2, cx2, skip, opts)
			if err != nil {
				return err
			}
			out[skip] = c

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// flatten concatenates the rate and structure blocks in the documented
// [rates…, structure…] order.
func flatten(mx, cx []float64) []float64 {
	out := make([]float64, 0, len(mx)+len(cx))
	out = append(out, mx...)
	out = append(out, cx...)

	return out
}
