// Package sphere implements geometry on the unit sphere S^{d-1}: the
// Möbius reparameterization map over batches of directions, row
// normalization, and uniform sampling.
//
// 🚀 The Möbius map
//
//	Moebius moves every point x on the sphere toward (rho > 0) or away
//	from (rho < 0) a direction mu:
//
//	  y = rho·mu + (1 - rho²) · (x + rho·mu) / (1 + 2·rho·(x·mu) + rho²)
//
//	For rho in (-1, 1) and unit x, mu it is a bijection of the sphere
//	onto itself; it is the workhorse behind spherical-Cauchy sampling
//	and directional-data reparameterization.
//
// ✨ Surface:
//   - Moebius       — whole-matrix map, one image row per input row
//   - MoebiusVec    — single-point convenience wrapper
//   - Normalize     — in-place row projection onto the unit sphere
//   - UniformSample — n uniform draws on S^{d-1}
//
// Numeric policy: standard IEEE-754 arithmetic throughout. The map
// does not validate rho or the norm of mu — a degenerate parameter
// (rho at or beyond ±1, zero denominator) propagates as ±Inf/NaN in
// the output rather than failing, matching the closed-form contract.
// What IS validated, loudly, is the dimension agreement between mu and
// the columns of X (ErrDimensionMismatch): a silent broadcast mismatch
// would corrupt every downstream result.
package sphere
