package dataset

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/demog/arriaga"
	"github.com/katalvlaran/demog/compsens"
	"github.com/katalvlaran/demog/decompose"
	"github.com/katalvlaran/demog/lifetable"
)

// BatchOptions configures the cross-product runners.
//
// Fields:
//   - Steps   — integration midpoints for gradient-based runs.
//   - Methods — generalized methods to apply in ExpectancyGaps; empty
//     means all three.
type BatchOptions struct {
	Steps   int
	Methods []decompose.Method
}

// DefaultBatchOptions returns Steps=20 and all three methods.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{
		Steps:   20,
		Methods: []decompose.Method{decompose.Gradient, decompose.Stepwise, decompose.Derivative},
	}
}

// GapResult is one sex's life-expectancy-gap study: the e0 scalars, both
// Arriaga variants, and every requested generalized method's age pattern.
type GapResult struct {
	Sex       Sex
	E01950    float64
	E02000    float64
	Classic   []float64
	Symmetric []float64
	ByMethod  map[decompose.Method][]float64
}

// StructureResult is one sex's composition-sensitivity study: the full
// family of skip-index runs over the crude rate.
type StructureResult struct {
	Sex  Sex
	Runs []compsens.Contribution
}

// ExpectancyGaps decomposes the 1950→2000 e0 gap for every sex in the
// table, with classic and symmetric Arriaga plus each requested
// generalized method. Sexes fan out concurrently; results keep the
// table's first-appearance sex order.
func (t *Table) ExpectancyGaps(opts *BatchOptions) ([]GapResult, error) {
	o := DefaultBatchOptions()
	if opts != nil {
		o = *opts
		if o.Steps < 1 {
			o.Steps = DefaultBatchOptions().Steps
		}
		if len(o.Methods) == 0 {
			o.Methods = DefaultBatchOptions().Methods
		}
	}
	sexes := t.Sexes()
	if len(sexes) == 0 {
		return nil, ErrNoRows
	}

	e0 := func(pars []float64) float64 {
		v, err := lifetable.E0(pars, nil)
		if err != nil {
			return math.NaN()
		}

		return v
	}

	out := make([]GapResult, len(sexes))
	var g errgroup.Group
	for i, sex := range sexes {
		i, sex := i, sex
		g.Go(func() error {
			s, err := t.Series(sex)
			if err != nil {
				return err
			}
			// The numerical methods perturb raw parameters, so the
			// MissingAsZero coercion happens here, once, in the open.
			mx1950 := zeroMissing(s.Mx1950)
			mx2000 := zeroMissing(s.Mx2000)

			res := GapResult{Sex: sex, ByMethod: map[decompose.Method][]float64{}}
			if res.E01950, err = lifetable.E0(mx1950, nil); err != nil {
				return err
			}
			if res.E02000, err = lifetable.E0(mx2000, nil); err != nil {
				return err
			}
			if res.Classic, err = arriaga.Decompose(mx1950, mx2000, nil); err != nil {
				return err
			}
			if res.Symmetric, err = arriaga.Symmetric(mx1950, mx2000, nil); err != nil {
				return err
			}

			dopts := decompose.DefaultOptions()
			dopts.Steps = o.Steps
			for _, method := range o.Methods {
				delta, err := decompose.Decompose(method, e0, mx1950, mx2000, &dopts)
				if err != nil {
					return err
				}
				res.ByMethod[method] = delta
			}
			out[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// zeroMissing applies the MissingAsZero policy to a copy of mx: NaN
// entries become zero hazard before any numerical method perturbs them.
func zeroMissing(mx []float64) []float64 {
	out := make([]float64, len(mx))
	for i, v := range mx {
		if math.IsNaN(v) {
			continue
		}
		out[i] = v
	}

	return out
}

// StructureExperiments runs the full skip-index family (compsens.RunAll)
// on each sex's crude rate, exposures normalized to compositions.
func (t *Table) StructureExperiments(opts *BatchOptions) ([]StructureResult, error) {
	o := DefaultBatchOptions()
	if opts != nil {
		o = *opts
	}
	sexes := t.Sexes()
	if len(sexes) == 0 {
		return nil, ErrNoRows
	}

	out := make([]StructureResult, len(sexes))
	var g errgroup.Group
	for i, sex := range sexes {
		i, sex := i, sex
		g.Go(func() error {
			s, err := t.Series(sex)
			if err != nil {
				return err
			}
			cx1950, cx2000, err := s.Structures()
			if err != nil {
				return err
			}
			copts := compsens.DefaultOptions()
			if o.Steps > 0 {
				copts.Steps = o.Steps
			}
			runs, err := compsens.RunAll(zeroMissing(s.Mx1950), cx1950, zeroMissing(s.Mx2000), cx2000, &copts)
			if err != nil {
				return err
			}
			out[i] = StructureResult{Sex: sex, Runs: runs}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
