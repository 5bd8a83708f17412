package arriaga

import (
	"errors"

	"github.com/katalvlaran/demog/lifetable"
)

var (
	// ErrEmptyVector indicates an empty rate vector.
	ErrEmptyVector = errors.New("arriaga: rate vectors must be non-empty")

	// ErrDimensionMismatch indicates mx1 and mx2 differ in length.
	ErrDimensionMismatch = errors.New("arriaga: rate vectors must have equal length")
)

// Decompose splits e0(mx2) − e0(mx1) into per-age contributions.
//
// Algorithm Outline (0-based index x, last index = open age interval):
//  1. Build both lifetables (lx, Lx, Tx) from mx1 and mx2.
//  2. direct[x]   = lx1[x]·(Lx2[x]/lx2[x] − Lx1[x]/lx1[x])
//  3. indirect[x] = Tx2[x+1]·(lx1[x]/lx2[x] − lx1[x+1]/lx2[x+1])
//     for every x but the last.
//  4. delta[x] = direct[x] + indirect[x]; the open interval instead
//     gets the single closing term
//     delta[last] = lx1·(Tx2/lx2 − Tx1/lx1),
//     which makes the telescoping sum collapse to the exact gap.
//
// Direction matters: contributions are weighted by population 1's
// survivorship, so Decompose(a, b) and −Decompose(b, a) agree in total
// but not elementwise. Use Symmetric for a direction-free pattern.
//
// Options are passed through to the lifetable pipeline (missing-rate
// policy); nil means defaults.
func Decompose(mx1, mx2 []float64, opts *lifetable.Options) ([]float64, error) {
	n := len(mx1)
	if n == 0 || len(mx2) == 0 {
		return nil, ErrEmptyVector
	}
	if n != len(mx2) {
		return nil, ErrDimensionMismatch
	}

	t1, err := lifetable.Complete(mx1, opts)
	if err != nil {
		return nil, err
	}
	t2, err := lifetable.Complete(mx2, opts)
	if err != nil {
		return nil, err
	}
	lx1, Lx1, Tx1 := t1.Survival, t1.PersonYears, t1.TotalYears
	lx2, Lx2, Tx2 := t2.Survival, t2.PersonYears, t2.TotalYears

	delta := make([]float64, n)
	for x := 0; x < n-1; x++ {
		direct := lx1[x] * (Lx2[x]/lx2[x] - Lx1[x]/lx1[x])
		indirect := Tx2[x+1] * (lx1[x]/lx2[x] - lx1[x+1]/lx2[x+1])
		delta[x] = direct + indirect
	}
	// Open interval: no lifetable exists beyond it, so the closing term
	// carries the whole remaining difference.
	last := n - 1
	delta[last] = lx1[last] * (Tx2[last]/lx2[last] - Tx1[last]/lx1[last])

	return delta, nil
}

// Symmetric averages both decomposition directions:
// (Decompose(mx1, mx2) − Decompose(mx2, mx1)) / 2.
// The total is unchanged; the age pattern loses its direction bias.
func Symmetric(mx1, mx2 []float64, opts *lifetable.Options) ([]float64, error) {
	fwd, err := Decompose(mx1, mx2, opts)
	if err != nil {
		return nil, err
	}
	bwd, err := Decompose(mx2, mx1, opts)
	if err != nil {
		return nil, err
	}

	delta := make([]float64, len(fwd))
	for i := range delta {
		delta[i] = (fwd[i] - bwd[i]) / 2
	}

	return delta, nil
}
