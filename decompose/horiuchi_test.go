package decompose_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/demog/arriaga"
	"github.com/katalvlaran/demog/decompose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Three-age e0 scenario shared by the convergence tests.
var (
	e0Mx1 = []float64{0.01, 0.001, 0.02}
	e0Mx2 = []float64{0.008, 0.0009, 0.018}
)

func maxAbsDiff(a, b []float64) float64 {
	var m float64
	for i := range a {
		m = math.Max(m, math.Abs(a[i]-b[i]))
	}

	return m
}

// TestHoriuchi_TotalMatchesGap verifies Σdelta ≈ f(p2) − f(p1) for the
// nonlinear e0 function.
func TestHoriuchi_TotalMatchesGap(t *testing.T) {
	opts := decompose.DefaultOptions()
	opts.Steps = 50

	delta, err := decompose.Horiuchi(e0Func, e0Mx1, e0Mx2, &opts)
	require.NoError(t, err)

	gap := e0Func(e0Mx2) - e0Func(e0Mx1)
	assert.InDelta(t, gap, sum(delta), 1e-7, "midpoint integration total must match the gap")
}

// TestHoriuchi_ConvergesToArriaga: the gradient method's age pattern
// approaches the symmetric Arriaga pattern as Steps grows (testable
// property 4). The classic single-direction Arriaga is cross-checked at
// a looser tolerance only — its systematic elementwise disagreement with
// the gradient method is a known, deliberately exposed discrepancy.
func TestHoriuchi_ConvergesToArriaga(t *testing.T) {
	coarse := decompose.DefaultOptions()
	coarse.Steps = 8
	fine := decompose.DefaultOptions()
	fine.Steps = 64

	d8, err := decompose.Horiuchi(e0Func, e0Mx1, e0Mx2, &coarse)
	require.NoError(t, err)
	d64, err := decompose.Horiuchi(e0Func, e0Mx1, e0Mx2, &fine)
	require.NoError(t, err)

	sym, err := arriaga.Symmetric(e0Mx1, e0Mx2, nil)
	require.NoError(t, err)
	classic, err := arriaga.Decompose(e0Mx1, e0Mx2, nil)
	require.NoError(t, err)

	assert.Less(t, maxAbsDiff(d64, d8), 1e-6, "midpoint sums must be Cauchy in Steps")
	assert.Less(t, maxAbsDiff(d64, sym), 1e-5, "fine grid must sit on the symmetric Arriaga pattern")
	assert.Less(t, maxAbsDiff(d64, classic), 1e-3, "classic Arriaga only cross-checks loosely")
}

// TestHoriuchi_ZeroDisplacement: coordinates with pars1==pars2 get an
// exactly zero contribution.
func TestHoriuchi_ZeroDisplacement(t *testing.T) {
	p1 := []float64{0.02, 0.01, 0.5, 0.5}
	p2 := []float64{0.018, 0.01, 0.6, 0.4} // second rate untouched

	delta, err := decompose.Horiuchi(crude, p1, p2, nil)
	require.NoError(t, err)
	assert.Zero(t, delta[1], "unchanged parameter must contribute exactly zero")
}

// TestHoriuchi_ProgressCallback verifies the optional instrumentation:
// one call per integration step, never affecting the result.
func TestHoriuchi_ProgressCallback(t *testing.T) {
	plain, err := decompose.Horiuchi(crude, crudeP1, crudeP2, nil)
	require.NoError(t, err)

	var calls, lastDone, lastTotal int
	opts := decompose.DefaultOptions()
	opts.Progress = func(done, total int) {
		calls++
		lastDone, lastTotal = done, total
	}
	instrumented, err := decompose.Horiuchi(crude, crudeP1, crudeP2, &opts)
	require.NoError(t, err)

	assert.Equal(t, opts.Steps, calls, "one progress call per step")
	assert.Equal(t, opts.Steps, lastDone, "final done equals total")
	assert.Equal(t, opts.Steps, lastTotal)
	assert.Equal(t, plain, instrumented, "instrumentation must not change results")
}
