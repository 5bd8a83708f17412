// Package decompose attributes the difference f(pars2) − f(pars1) of an
// ARBITRARY scalar function to the individual parameters, with three
// interchangeable numerical methods.
//
// 🚀 What is generalized decomposition?
//
//	Take any deterministic f: []float64 → float64 (life expectancy from
//	rates, a crude rate from rates+structure, anything you can write as
//	a Func) and two parameter vectors. Each method returns one value per
//	parameter; the values sum to the observed difference, exactly or
//	within a controllable numerical tolerance.
//
// ✨ The three methods:
//
//   - Gradient (Horiuchi) — integrates the gradient of f along the
//     straight line from pars1 to pars2 over Steps midpoints, with a
//     symmetric per-coordinate perturbation at each midpoint.
//     Cost O(Steps·n) evaluations; exact as Steps→∞ for smooth f and
//     already exact (to float rounding) for bilinear f.
//
//   - Stepwise — replaces one coordinate at a time from pars1's value
//     to pars2's value in a caller-chosen order; a step's contribution
//     is the change in f it causes. The TOTAL telescopes to the exact
//     difference for every ordering; the per-coordinate values are
//     order-dependent. That path dependence is a known limitation of
//     the method, not a defect — average Forward and Backward sweeps
//     (Direction=Both) to soften it. Cost O(n) or O(2n) evaluations.
//
//   - Derivative (LTRE) — partial derivatives at the midpoint
//     (pars1+pars2)/2, analytic if supplied, else central differences,
//     multiplied by (pars2 − pars1). Cheapest at O(n) evaluations but
//     first-order accurate: exact only where f is locally linear, with
//     error growing with |pars2 − pars1| and with curvature of f.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/demog/decompose"
//
//	f := func(pars []float64) float64 { ... }
//	opts := decompose.DefaultOptions()
//	opts.Steps = 50
//	delta, err := decompose.Decompose(decompose.Gradient, f, p1, p2, &opts)
//
// Near-zero denominators:
//
//	Ratio-valued targets such as Δcause / Δall-cause blow up when the
//	net change approaches zero; decomposing them naively is numerically
//	unstable. The required mitigation is architectural, not a runtime
//	exception: rebuild the target as a SENSITIVITY via Sensitivity()
//	(derivative of the outcome with respect to one nudged input) and
//	feed that Func to LTRE with a very small Perturbation. This is also
//	dramatically cheaper than generic numerical differentiation of the
//	ratio itself.
//
// The framework assumes nothing about f beyond determinism and, for
// the derivative-based methods, local smoothness. NaN returned by f
// propagates into the contributions — it is the caller's signal, never
// swallowed.
package decompose
