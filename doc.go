// Package spheroids is a toolkit for directional statistics on the
// unit sphere — layout-aware array bridging, Möbius transformations,
// Poisson kernel-based and spherical Cauchy distributions, and EM
// mixture modelling on top of gonum.
//
// 🚀 What is spheroids?
//
//	A focused numeric library that brings together:
//		• Array bridge: borrow row- or column-major buffers into gonum
//		  matrices without copying, copy back out on egress
//		• Möbius transform: the rotation-free reparameterization of
//		  S^{d-1} that concentrates mass toward a chosen pole
//		• PKBD: density, weighted maximum likelihood, exact ACG sampler
//		• Spherical Cauchy: density, weighted maximum likelihood, and a
//		  sampler that is literally a Möbius push-forward of the uniform
//		• Mixtures: seeded EM with log-sum-exp responsibilities,
//		  component pruning, and a plotted likelihood trace
//
// ✨ Why choose spheroids?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – every sampler and fit takes an explicit rand source
//   - Pure Go – gonum underneath, no cgo, no global state
//   - Honest errors – package-prefixed sentinels, matched with errors.Is
//
// Everything is organized under five subpackages:
//
//	bridge/   — layout-aware Array type + gonum converters
//	sphere/   — Möbius transform, normalization, uniform sampling
//	pkbd/     — Poisson kernel-based distribution
//	spcauchy/ — spherical Cauchy distribution
//	mixture/  — EM mixture fitting, prediction, trace plotting
//
// Quick sketch:
//
//	x on S² ──Moebius(μ,ρ)──▶ y on S²    (ρ=0 is the identity,
//	y on S² ──Moebius(μ,-ρ)─▶ x on S²     -ρ undoes +ρ)
//
// Dive into the per-package docs and runnable examples for the full
// formulas and fitting recipes.
//
//	go get github.com/katalvlaran/spheroids
package spheroids
