// Package spcauchy implements the spherical Cauchy distribution on
// S^{d-1}: log-density evaluation, weighted maximum likelihood, and
// exact sampling through the Möbius map.
//
// 🚀 The distribution
//
//	spCauchy(mu, rho) has density
//
//	  f(x; mu, rho) = C_d · ((1 - rho²) / (1 + rho² - 2·rho·muᵀx))^{d-1}
//
//	with C_d = Γ(d/2) / (2·π^{d/2}). It is the image of the uniform
//	distribution on the sphere under the Möbius map with parameters
//	(mu, rho) — heavier-tailed than PKBD at the same rho, and the
//	spherical analogue of the wrapped Cauchy on the circle.
//
// ✨ Surface:
//   - LogLik — per-observation log densities
//   - MStep  — weighted MLE of (mu, rho), same alternating scheme as
//     package pkbd with the Cauchy score
//   - Sample — exact draws: uniform sphere noise pushed through
//     sphere.Moebius; no rejection loop needed
//
// Validation policy matches package pkbd: dimensions and rho range are
// checked, row norms are not.
package spcauchy
