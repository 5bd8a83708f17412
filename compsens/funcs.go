package compsens

import "github.com/katalvlaran/demog/decompose"

// CrudeRate returns the crude-rate function over the full flattened
// parameter vector [m_1..m_n, c_1..c_n]: Σ m_i·c_i. The block order is
// load-bearing — every decomposition in this package indexes rates
// first, structure second.
func CrudeRate() decompose.Func {
	return func(pars []float64) float64 {
		n := len(pars) / 2
		var s float64
		for i := 0; i < n; i++ {
			s += pars[i] * pars[n+i]
		}

		return s
	}
}

// CrudeRateSkipping returns the crude-rate function over the REDUCED
// vector [m_1..m_ages, c_1..c_ages minus element skip−1]: the omitted
// share is imputed as 1 − Σ(remaining shares) before the weighted sum.
// skip is 1-based over the structure block.
func CrudeRateSkipping(skip, ages int) decompose.Func {
	drop := skip - 1 // 0-based structure position being imputed

	return func(pars []float64) float64 {
		var rest float64
		for _, c := range pars[ages:] {
			rest += c
		}
		imputed := 1 - rest

		var s float64
		j := ages // cursor into the reduced structure block
		for i := 0; i < ages; i++ {
			if i == drop {
				s += pars[i] * imputed
				continue
			}
			s += pars[i] * pars[j]
			j++
		}

		return s
	}
}

// ReduceAt drops the structure element skip−1 from a full flattened
// vector of 2·ages parameters, producing the reduced parameterization
// consumed by CrudeRateSkipping.
func ReduceAt(pars []float64, skip int) ([]float64, error) {
	if len(pars) == 0 {
		return nil, ErrEmptyVector
	}
	ages := len(pars) / 2
	if skip < 1 || skip > ages {
		return nil, ErrSkipIndex
	}
	at := ages + skip - 1

	out := make([]float64, 0, len(pars)-1)
	out = append(out, pars[:at]...)
	out = append(out, pars[at+1:]...)

	return out, nil
}

// expandAt reinserts the skipped slot as a NaN sentinel, restoring a
// reduced contribution vector to full 2·ages length.
func expandAt(delta []float64, skip, ages int) []float64 {
	at := ages + skip - 1
	out := make([]float64, 0, len(delta)+1)
	out = append(out, delta[:at]...)
	out = append(out, sentinel)
	out = append(out, delta[at:]...)

	return out
}
