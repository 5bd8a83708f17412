package decompose

// StepwiseReplacement decomposes f(pars2) − f(pars1) by replacing one
// coordinate at a time from pars1's value to pars2's value.
//
// Algorithm Outline:
//  1. Start from a copy of pars1.
//  2. Visit coordinates in the sweep order (Options.Order, or natural
//     order; reversed for Backward). At each visit, set the coordinate
//     to its pars2 value; its contribution is f(after) − f(before).
//  3. Direction=Both runs the Forward and Backward sweeps and averages
//     them elementwise.
//
// The total telescopes to exactly f(pars2) − f(pars1) for EVERY
// ordering; the per-coordinate values are path-dependent. That is a
// documented limitation of the method, not a defect.
//
// Cost: O(n) evaluations of f, O(2n) for Direction=Both.
func StepwiseReplacement(f Func, pars1, pars2 []float64, opts *Options) ([]float64, error) {
	o, err := gather(f, pars1, pars2, opts)
	if err != nil {
		return nil, err
	}
	n := len(pars1)

	order := o.Order
	if len(order) == 0 {
		order = make([]int, n)
		for i := range order {
			order[i] = i
		}
	} else if !isPermutation(order, n) {
		return nil, ErrBadOption
	}

	switch o.Direction {
	case Forward:
		return sweep(f, pars1, pars2, order), nil
	case Backward:
		return sweep(f, pars1, pars2, reversed(order)), nil
	case Both:
		fwd := sweep(f, pars1, pars2, order)
		bwd := sweep(f, pars1, pars2, reversed(order))
		for i := range fwd {
			fwd[i] = (fwd[i] + bwd[i]) / 2
		}

		return fwd, nil
	default:
		return nil, ErrBadOption
	}
}

// sweep performs one replacement pass in the given order.
func sweep(f Func, pars1, pars2 []float64, order []int) []float64 {
	n := len(pars1)
	cur := make([]float64, n)
	copy(cur, pars1)

	delta := make([]float64, n)
	before := f(cur)
	for _, i := range order {
		cur[i] = pars2[i]
		after := f(cur)
		delta[i] = after - before
		before = after
	}

	return delta
}

// isPermutation reports whether order visits each of 0..n−1 exactly once.
func isPermutation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, i := range order {
		if i < 0 || i >= n || seen[i] {
			return false
		}
		seen[i] = true
	}

	return true
}

// reversed returns a reversed copy of order.
func reversed(order []int) []int {
	out := make([]int, len(order))
	for i, v := range order {
		out[len(order)-1-i] = v
	}

	return out
}
