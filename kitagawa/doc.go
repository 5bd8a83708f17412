// Package kitagawa splits the gap between two crude rates into an
// age-specific rate effect and an age-specific structure effect.
//
// 🚀 What is a Kitagawa decomposition?
//
//	A crude rate CDR = Σ c_i·m_i mixes age-specific rates m with the
//	population composition c (shares summing to 1). Two populations can
//	differ in CDR because their rates differ, because their structures
//	differ, or both. Kitagawa's midpoint weighting makes the split
//	additive and symmetric:
//	  rate_i      = (m2_i − m1_i)·(c1_i + c2_i)/2
//	  structure_i = (c2_i − c1_i)·(m1_i + m2_i)/2
//	  Σ rate + Σ structure = CDR2 − CDR1   (exactly, provable)
//
// ✨ Uniqueness caveat:
//
//	The rate effect's AGE PATTERN is unique — it only involves per-age
//	quantities with independent meaning. The structure effect's TOTAL
//	is unique too, but its age pattern is NOT: a composition carries
//	one redundant degree of freedom (shares sum to 1), and different
//	reparameterizations spread the same total differently across ages.
//	Package compsens demonstrates and quantifies this; do not read the
//	per-age structure effect as a unique attribution.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/demog/kitagawa"
//
//	res, err := kitagawa.Decompose(mx1, cx1, mx2, cx2, nil)
//	fmt.Println(res.RateTotal(), res.StructureTotal())
//
// Structures must sum to 1 within Epsilon; set Options.Normalize to
// rescale raw exposure counts instead of erroring.
//
// Complexity: O(n) time and memory.
package kitagawa
