// SPDX-License-Identifier: MIT

// Package bridge converts externally-owned numeric buffers into the
// dense vector/matrix values the rest of spheroids computes on, and
// materializes results back into plain buffers the caller fully owns.
//
// 🚀 Why a bridge?
//
//	Numeric data rarely originates in Go: CSV dumps, R / NumPy exports,
//	Fortran and Armadillo blobs all arrive as flat float64 buffers with
//	a declared shape and a declared memory order. The bridge is the one
//	place where layout is interpreted, so every other package can work
//	with gonum's mat types and never think about storage order again.
//
// ✨ Surface:
//   - Array          — a borrowed buffer plus explicit shape and Order
//   - ToVector       — rank-1/rank-2 buffer → zero-copy mat.VecDense view
//   - ToMatrix       — rank-2 buffer → mat.Dense (zero-copy when row-major)
//   - VectorToArray  — vector → freshly allocated rank-1 Array
//   - MatrixToArray  — matrix → freshly allocated rank-2 row-major Array
//
// Ownership contract:
//
//	Ingest (ToVector, row-major ToMatrix) borrows the caller's memory:
//	the result is valid only while the source buffer is alive and
//	unmodified, and mutating either side is visible through the other.
//	Egress (VectorToArray, MatrixToArray) always copies: the returned
//	Array is fully independent of the source value.
//
// The row-major ↔ column-major reordering lives in exactly one helper
// pair (layout.go); it is the only part of this package where getting
// an index wrong silently transposes every downstream result, so it is
// deliberately small and heavily tested.
//
// All errors are package-level sentinels matched via errors.Is.
package bridge
