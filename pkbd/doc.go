// Package pkbd implements the Poisson Kernel-Based Distribution on the
// unit sphere S^{d-1}: log-density evaluation, weighted maximum
// likelihood (the M-step of an EM mixture), and exact random sampling.
//
// 🚀 The distribution
//
//	PKBD(mu, rho) has density
//
//	  f(x; mu, rho) = C_d · (1 - rho²) / (1 + rho² - 2·rho·muᵀx)^{d/2}
//
//	with C_d = Γ(d/2) / (2·π^{d/2}), mean direction mu on the sphere
//	and concentration rho in [0, 1). rho = 0 is the uniform
//	distribution; rho → 1 concentrates all mass at mu.
//
// ✨ Surface:
//   - LogLik — per-observation log densities for a batch of directions
//   - MStep  — weighted MLE of (mu, rho) by a fixed-point update of mu
//     and a bisection of the concentration score
//   - Sample — exact draws via rejection from an angular central
//     Gaussian envelope (acceptance bound solved in closed form)
//
// The batch X is expected row-per-observation with unit rows; norms are
// not checked (consistent with the density being a function of muᵀx
// only). Dimension agreement between X and mu IS checked and fails
// with ErrDimensionMismatch.
package pkbd
