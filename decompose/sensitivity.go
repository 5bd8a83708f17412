package decompose

import "math"

// Sensitivity rebuilds an outcome function as the derivative of outcome
// with respect to parameter i, estimated by nudging that parameter up
// and down by the multiplicative factor (1±h) and averaging the two
// one-sided differences (which collapses to one central difference).
//
// This is the required mitigation for ratio-valued targets with
// near-zero denominators: instead of decomposing Δoutcome/Δdriver —
// unstable when the driver's net change approaches zero — decompose
// the SENSITIVITY of the outcome to the driver, fed to LTRE with a very
// small Perturbation. One construction, two evaluations of f per call:
// dramatically cheaper than differentiating the ratio numerically.
//
// The returned Func yields NaN when pars[i] = 0 (a multiplicative nudge
// of zero moves nothing) or when i falls outside the vector it is given;
// NaN is the caller's signal, never coerced.
func Sensitivity(f Func, i int, h float64) (Func, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if i < 0 {
		return nil, ErrIndexOutOfRange
	}
	if h <= 0 || h >= 1 {
		return nil, ErrBadOption
	}

	return func(pars []float64) float64 {
		if i >= len(pars) || pars[i] == 0 {
			return math.NaN()
		}
		up := make([]float64, len(pars))
		down := make([]float64, len(pars))
		copy(up, pars)
		copy(down, pars)
		up[i] = pars[i] * (1 + h)
		down[i] = pars[i] * (1 - h)

		// average of the two one-sided slopes around pars[i]
		return (f(up) - f(down)) / (2 * pars[i] * h)
	}, nil
}
