package compsens

import "math"

// Options configures the experiment's underlying gradient method.
//
// Fields:
//   - Steps — integration midpoints handed to decompose.Horiuchi. The
//     crude rate is bilinear, so even small values are exact; the
//     default mirrors the framework's.
type Options struct {
	Steps int
}

// DefaultOptions returns the documented defaults: Steps=20.
func DefaultOptions() Options {
	return Options{Steps: 20}
}

// Contribution is one experiment run: the decomposed crude-rate gap
// under one parameterization, split back into the rate block and the
// structure block. The skipped structure slot (when Skip > 0) carries a
// NaN sentinel so every run stays index-aligned with the age groups.
type Contribution struct {
	Skip            int
	RateEffect      []float64
	StructureEffect []float64
}

// RateTotal sums the rate block.
func (c Contribution) RateTotal() float64 { return nanSum(c.RateEffect) }

// StructureTotal sums the structure block over non-sentinel entries.
// Across all skip indices this margin is invariant — the point of the
// whole experiment.
func (c Contribution) StructureTotal() float64 { return nanSum(c.StructureEffect) }

// nanSum totals a vector, skipping NaN sentinels.
func nanSum(v []float64) float64 {
	var s float64
	for _, x := range v {
		if math.IsNaN(x) {
			continue
		}
		s += x
	}

	return s
}
