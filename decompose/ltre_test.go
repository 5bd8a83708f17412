package decompose_test

import (
	"testing"

	"github.com/katalvlaran/demog/decompose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLTRE_AnalyticDerivative: a user-supplied gradient bypasses the
// numerical differencing and reproduces the midpoint weights exactly.
func TestLTRE_AnalyticDerivative(t *testing.T) {
	opts := decompose.DefaultOptions()
	opts.Derivative = func(pars []float64) []float64 {
		// ∂crude/∂m_i = c_i, ∂crude/∂c_i = m_i.
		n := len(pars) / 2
		grad := make([]float64, len(pars))
		for i := 0; i < n; i++ {
			grad[i] = pars[n+i]
			grad[n+i] = pars[i]
		}

		return grad
	}

	delta, err := decompose.LTRE(crude, crudeP1, crudeP2, &opts)
	require.NoError(t, err)
	for i, want := range crudeWant {
		assert.InDelta(t, want, delta[i], 1e-15, "analytic gradient at index %d", i)
	}
}

// TestLTRE_BadDerivative rejects gradients of the wrong length.
func TestLTRE_BadDerivative(t *testing.T) {
	opts := decompose.DefaultOptions()
	opts.Derivative = func(pars []float64) []float64 { return []float64{1} }

	_, err := decompose.LTRE(crude, crudeP1, crudeP2, &opts)
	assert.ErrorIs(t, err, decompose.ErrBadDerivative, "short gradient must be rejected")
}

// TestLTRE_FirstOrderTotal: for the mildly nonlinear e0 function the
// total only approximates the gap — first-order accuracy, documented.
func TestLTRE_FirstOrderTotal(t *testing.T) {
	delta, err := decompose.LTRE(e0Func, e0Mx1, e0Mx2, nil)
	require.NoError(t, err)

	gap := e0Func(e0Mx2) - e0Func(e0Mx1)
	assert.InDelta(t, gap, sum(delta), 1e-4, "first-order total tracks the gap approximately")
	assert.Len(t, delta, len(e0Mx1))
}

// TestLTRE_ZeroMidpointCoordinate: a coordinate whose midpoint is zero
// still receives a finite difference via the absolute fallback step.
func TestLTRE_ZeroMidpointCoordinate(t *testing.T) {
	// f = p0·p1 with p1 passing through zero at the midpoint.
	f := func(p []float64) float64 { return p[0] * p[1] }
	p1 := []float64{2, -1}
	p2 := []float64{2, 1}

	delta, err := decompose.LTRE(f, p1, p2, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, delta[0], 1e-9, "p0 does not move")
	assert.InDelta(t, 4.0, delta[1], 1e-6, "∂f/∂p1 = p0 = 2 times Δp1 = 2")
}
