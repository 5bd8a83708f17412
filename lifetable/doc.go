// Package lifetable converts an age-specific mortality-rate vector into
// the classic lifetable columns — survivorship, deaths, person-years —
// and into life expectancy.
//
// 🚀 What is a lifetable?
//
//	Given mortality rates mx (one entry per age group), a lifetable
//	answers "how long does a cohort exposed to these rates live?":
//	  • lx — probability of surviving from birth to age x
//	  • dx — deaths within the interval [x, x+1)
//	  • Lx — person-years lived within the interval
//	  • Tx — person-years remaining above age x
//	  • ex — expected remaining years of life at age x (ex[0] = e0)
//
// ✨ Key properties:
//   - lx[0] = 1 and lx is non-increasing for non-negative rates
//   - constant-hazard discretization: lx[i] = exp(−Σ mx[0..i−1]).
//     This is an approximation in a discrete setting, not exact
//     actuarial survivorship — document-grade, tutorial-grade math.
//   - Lx uses the trapezoid rule between consecutive lx values, with
//     an implicit terminal survivorship of zero.
//   - ex[i] = Tx[i]/lx[i]; where lx[i] = 0 the quotient is undefined
//     and reported as NaN — never silently coerced to zero.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/demog/lifetable"
//
//	mx := []float64{0.01, 0.001, 0.02}
//	e0, err := lifetable.E0(mx, nil) // nil ⇒ DefaultOptions()
//
// Missing rates: a NaN entry in mx means "not available". With
// Options.MissingAsZero (the default) it contributes nothing to the
// cumulative hazard; with the flag disabled Survivorship returns
// ErrMissingValue so the caller decides.
//
// Complexity: every transform is a single O(n) pass.
package lifetable
