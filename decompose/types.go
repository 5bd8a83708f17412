package decompose

// Func is the capability every method is polymorphic over: any
// deterministic scalar-valued function of a flat parameter vector.
// Implementations must not retain or mutate the slice they receive —
// the framework reuses its working buffers between evaluations.
type Func func(pars []float64) float64

// Method selects one of the three decomposition algorithms behind the
// unified Decompose entry point.
type Method int

const (
	// Gradient integrates the numerical gradient of f along the straight
	// line between the parameter vectors (Horiuchi's method).
	Gradient Method = iota

	// Stepwise replaces one coordinate at a time and records the change
	// in f per replacement.
	Stepwise

	// Derivative evaluates midpoint partial derivatives times parameter
	// differences (the LTRE method).
	Derivative
)

// Direction controls the replacement order of the stepwise method.
type Direction int

const (
	// Forward replaces coordinates in ascending order (or Options.Order).
	Forward Direction = iota

	// Backward replaces coordinates in descending order (or reversed
	// Options.Order).
	Backward

	// Both averages the Forward and Backward sweeps elementwise.
	Both
)

// Options configures the decomposition methods. Zero-affinity fields are
// ignored by methods that do not use them.
//
// Fields:
//   - Steps        — number of integration midpoints (Gradient). More
//     steps buy accuracy at O(Steps·n) evaluations of f.
//   - Direction    — sweep order policy (Stepwise).
//   - Order        — explicit replacement order (Stepwise); must be a
//     permutation of 0..n−1. Empty means natural order.
//   - Perturbation — relative step size for numerical partials
//     (Derivative); the absolute step for a coordinate is
//     Perturbation·|midpoint| with Perturbation itself as the
//     fallback when the midpoint coordinate is zero.
//   - Derivative   — optional analytic gradient of f at a point; when
//     set, the Derivative method skips numerical differencing.
//   - Progress     — optional instrumentation callback, invoked by the
//     Gradient method after each integration step as (done, total).
//     Purely informational; never affects results.
//
// Example:
//
//	opts := decompose.DefaultOptions()
//	opts.Steps = 100
//	opts.Progress = func(done, total int) { fmt.Printf("%d/%d\n", done, total) }
//	delta, err := decompose.Horiuchi(f, p1, p2, &opts)
type Options struct {
	Steps        int
	Direction    Direction
	Order        []int
	Perturbation float64
	Derivative   func(pars []float64) []float64
	Progress     func(done, total int)
}

// DefaultOptions returns the documented defaults:
// Steps=20, Direction=Both, Perturbation=1e-6.
func DefaultOptions() Options {
	return Options{
		Steps:        20,
		Direction:    Both,
		Perturbation: 1e-6,
	}
}

// gather validates the shared preconditions and merges defaults.
func gather(f Func, pars1, pars2 []float64, opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if f == nil {
		return o, ErrNilFunc
	}
	if len(pars1) == 0 || len(pars2) == 0 {
		return o, ErrEmptyVector
	}
	if len(pars1) != len(pars2) {
		return o, ErrDimensionMismatch
	}
	if o.Steps < 1 || o.Perturbation <= 0 {
		return o, ErrBadOption
	}

	return o, nil
}
