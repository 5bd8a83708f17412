// Package compsens runs the composition-sensitivity experiment: it
// shows — constructively, not by assertion — that the age pattern of a
// Kitagawa structure effect is an artifact of parameterization.
//
// 🚀 The idea
//
//	A structure vector of n shares carries only n−1 degrees of freedom:
//	any one element k is algebraically determined as 1 − Σ(others).
//	Drop element k, decompose the crude rate over the REDUCED parameter
//	vector (rates + n−1 shares, the dropped share imputed inside the
//	function), and reinsert a NaN sentinel at the skipped slot. Each
//	choice of k is an equally valid parameterization — and each yields
//	a DIFFERENT structure-effect age pattern, while three margins never
//	move:
//	  • the rate-effect age pattern (unique per age)
//	  • the total structure effect
//	  • the overall crude-rate gap
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/demog/compsens"
//
//	runs, err := compsens.RunAll(mx1, cx1, mx2, cx2, nil)
//	for _, run := range runs {
//	  fmt.Println(run.Skip, run.StructureEffect) // patterns diverge
//	}
//
// Skip index 0 means "no skip": the full 2n-parameter vector is
// decomposed directly. Skip k ∈ 1..n drops structure element k−1
// (1-based over the structure block, mirroring the ages).
//
// Decomposition runs under the hood use the gradient-integration
// method; for the bilinear crude rate it is exact at any step count.
// All runs are independent pure computations and RunAll fans them out
// concurrently.
package compsens
