// Package demog is an in-memory toolkit for demographic decomposition —
// attributing the gap between two summary statistics (life expectancy,
// crude rates) to the age-specific parameters that produced it.
//
// 🚀 What is demog?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Lifetable transforms: mx → lx → Lx → Tx → ex over flat []float64
//		• Arriaga: closed-form age decomposition of a life-expectancy gap
//		• A generalized framework: gradient-integration (Horiuchi),
//		  stepwise replacement, and LTRE — over ANY scalar function
//		• Kitagawa: additive rate/structure split of a crude-rate gap
//		• A composition-sensitivity experiment quantifying why the
//		  structure effect's age pattern is not unique
//
// ✨ Why choose demog?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – pure functions, no shared mutable state
//   - Pure Go numerics – flat []float64 in, flat []float64 out
//   - Extensible – decompose any func([]float64) float64 you can write
//
// Everything is organized under small focused subpackages:
//
//	lifetable/ — survivorship, person-years, deaths, life expectancy
//	arriaga/   — classic & symmetric age decomposition of an e0 gap
//	decompose/ — Horiuchi, stepwise-replacement and LTRE methods
//	kitagawa/  — rate/structure decomposition of crude rates
//	compsens/  — skip-one-element reparameterization experiment
//	dataset/   — the age×sex rate/exposure table and batch runners
//
// Quick sketch of the data flow:
//
//	rates ──► lifetable ──► e0 ──► decompose/arriaga ──► per-age Δ
//	rates + structure ──► kitagawa / compsens ──► rate & structure Δ
//
// Every decomposition call owns its working vectors exclusively; calls
// are independent and safe to run in parallel. Dive into the package
// docs and example_test.go files for worked scenarios.
//
//	go get github.com/katalvlaran/demog
package demog
