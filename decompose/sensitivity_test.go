package decompose_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/demog/decompose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSensitivity_MatchesAnalyticDerivative: on f = p0²·p1 the symmetric
// multiplicative nudge reproduces ∂f/∂p0 = 2·p0·p1 exactly (quadratics
// have no third-order term).
func TestSensitivity_MatchesAnalyticDerivative(t *testing.T) {
	f := func(p []float64) float64 { return p[0] * p[0] * p[1] }

	sens, err := decompose.Sensitivity(f, 0, 1e-3)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, sens([]float64{2, 3}), 1e-9, "∂(p0²p1)/∂p0 at (2,3)")
}

// TestSensitivity_Validation covers construction errors and the NaN
// signals of the returned Func.
func TestSensitivity_Validation(t *testing.T) {
	f := func(p []float64) float64 { return p[0] }

	_, err := decompose.Sensitivity(nil, 0, 1e-3)
	assert.ErrorIs(t, err, decompose.ErrNilFunc)

	_, err = decompose.Sensitivity(f, -1, 1e-3)
	assert.ErrorIs(t, err, decompose.ErrIndexOutOfRange)

	_, err = decompose.Sensitivity(f, 0, 0)
	assert.ErrorIs(t, err, decompose.ErrBadOption, "h must lie in (0,1)")

	sens, err := decompose.Sensitivity(f, 3, 1e-3)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(sens([]float64{1, 2})), "index beyond the vector signals NaN")
	sens0, err := decompose.Sensitivity(f, 0, 1e-3)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(sens0([]float64{0, 2})), "multiplicative nudge of zero signals NaN")
}

// TestSensitivity_FeedsLTRE: the near-zero-denominator mitigation —
// decompose the sensitivity of the crude rate to the first age's rate
// instead of a ratio of near-zero differences.
func TestSensitivity_FeedsLTRE(t *testing.T) {
	sens, err := decompose.Sensitivity(crude, 0, 1e-4)
	require.NoError(t, err)

	// For the bilinear crude rate the sensitivity to m_A is exactly c_A,
	// so the decomposition target is c_A's change: 0.6 − 0.5.
	opts := decompose.DefaultOptions()
	opts.Perturbation = 1e-7 // very small step, per the LTRE mitigation
	delta, err := decompose.LTRE(sens, crudeP1, crudeP2, &opts)
	require.NoError(t, err)

	assert.InDelta(t, 0.1, sum(delta), 1e-6, "contributions sum to Δc_A")
	assert.InDelta(t, 0.1, delta[2], 1e-6, "the whole change is owed to c_A itself")
}
