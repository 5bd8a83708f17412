// Package dataset ingests the age×sex rate/exposure table the
// decomposition engines consume, and batches independent decomposition
// runs over its cross-products.
//
// 🚀 Input shape
//
//	One CSV row per (Sex, Age) with the columns
//	  Sex,Age,Mx_1950,Mx_2000,Px_1950,Px_2000
//	where Sex ∈ {Male, Female, Total}, ages ascend and are unique per
//	sex, rates are non-negative (empty or "NA" means missing → NaN) and
//	exposures are non-negative counts. The table is consumed once at
//	start; nothing is written back.
//
// ✨ What it gives you:
//
//   - Series — per-sex rate and exposure vectors, with exposures
//     normalizable to compositions (shares summing to 1)
//   - ExpectancyGaps — per sex, the e0 gap decomposed by classic and
//     symmetric Arriaga plus every generalized method
//   - StructureExperiments — per sex, the full skip-index family of
//     crude-rate decompositions (compsens.RunAll)
//
// Batch runners only iterate cross-products of (sex, skip, method) and
// call the stateless cores; sexes fan out concurrently since no run
// shares state. Presentation (plotting, tabulation) stays out of scope:
// results are plain index-aligned vectors.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/demog/dataset"
//
//	table, err := dataset.ReadTable(file)
//	gaps, err := table.ExpectancyGaps(nil)
//	runs, err := table.StructureExperiments(nil)
package dataset
