package decompose

// Decompose runs the selected method on f between pars1 and pars2. It is
// the single switchable entry point over Horiuchi, StepwiseReplacement
// and LTRE; see each method for its accuracy/cost trade-off.
//
// A nil opts pointer means DefaultOptions(). Unknown methods yield
// ErrUnknownMethod.
func Decompose(method Method, f Func, pars1, pars2 []float64, opts *Options) ([]float64, error) {
	switch method {
	case Gradient:
		return Horiuchi(f, pars1, pars2, opts)
	case Stepwise:
		return StepwiseReplacement(f, pars1, pars2, opts)
	case Derivative:
		return LTRE(f, pars1, pars2, opts)
	default:
		return nil, ErrUnknownMethod
	}
}
