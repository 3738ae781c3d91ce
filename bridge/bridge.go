// SPDX-License-Identifier: MIT

package bridge

import "gonum.org/v1/gonum/mat"

// ToVector exposes a rank-1 or rank-2 array as a gonum vector without
// copying.
//
//   - Rank 1 of length n: a view over the same n values.
//   - Rank 2 of shape (r, c): a view over all r·c values in stored
//     element order. Flattening is only semantically meaningful when
//     the buffer is one contiguous block the caller intends as a
//     sequence (e.g. an (n,1) column vector); the bridge does not
//     second-guess that.
//   - Any other rank: ErrShape. Input is never truncated or reshaped.
//
// The returned vector borrows a's buffer: it is valid only while the
// buffer is alive, and concurrent mutation through another reference
// is the caller's hazard to manage.
// Complexity: O(1), zero copies.
func ToVector(a *Array) (*mat.VecDense, error) {
	if a == nil {
		return nil, ErrNilArray
	}
	if r := a.Rank(); r != 1 && r != 2 {
		return nil, ErrShape
	}

	return mat.NewVecDense(len(a.data), a.data), nil
}

// ToMatrix exposes a rank-2 array of shape (n, d) as a gonum matrix
// whose element (i, j) equals the array's element (i, j).
//
// Row-major input wraps the buffer directly (zero-copy borrow: the
// matrix aliases a's memory). Column-major input is first
// reinterpreted as the row-major layout of the (d, n) transpose — the
// two layouts share bytes — and then reordered into a fresh row-major
// (n, d) matrix, so the result owns its memory.
//
// Returns ErrShape for any rank other than 2.
// Complexity: O(1) row-major, O(n·d) column-major.
func ToMatrix(a *Array) (*mat.Dense, error) {
	if a == nil {
		return nil, ErrNilArray
	}
	if a.Rank() != 2 {
		return nil, ErrShape
	}
	n, d := a.shape[0], a.shape[1]

	if a.order == RowMajor {
		// Zero-copy borrow: gonum's Dense is row-major with stride d.
		return mat.NewDense(n, d, a.data), nil
	}

	out := mat.NewDense(n, d, nil)
	colToRow(out.RawMatrix().Data, a.data, n, d)

	return out, nil
}

// VectorToArray materializes v into a freshly allocated rank-1 Array.
// The result owns its buffer: mutating v afterwards does not affect
// it, and vice versa.
// Complexity: O(n).
func VectorToArray(v mat.Vector) (*Array, error) {
	if v == nil {
		return nil, ErrNilArray
	}
	n := v.Len()
	data := make([]float64, n)
	for i := 0; i < n; i++ {
		data[i] = v.AtVec(i)
	}

	return &Array{data: data, shape: []int{n}, order: RowMajor}, nil
}

// MatrixToArray materializes m into a freshly allocated rank-2
// row-major Array of the same shape, preserving (i, j) value identity
// regardless of m's internal representation (plain, transposed or
// strided views all work). The result owns its buffer.
// Complexity: O(n·d).
func MatrixToArray(m mat.Matrix) (*Array, error) {
	return MatrixToArrayOrder(m, RowMajor)
}

// MatrixToArrayOrder is MatrixToArray with an explicit target layout,
// for callers handing data back to a column-major consumer (R,
// Fortran, Armadillo). Element (i, j) identity is preserved in either
// layout.
// Complexity: O(n·d).
func MatrixToArrayOrder(m mat.Matrix, order Order) (*Array, error) {
	if m == nil {
		return nil, ErrNilArray
	}
	if !order.valid() {
		return nil, ErrBadOrder
	}
	n, d := m.Dims()
	data := make([]float64, n*d)

	// Fast path: a plain Dense with contiguous rows can be bulk-copied
	// and, for column-major targets, reordered by the helper pair.
	if dense, ok := m.(*mat.Dense); ok {
		raw := dense.RawMatrix()
		if raw.Stride == d {
			if order == RowMajor {
				copy(data, raw.Data[:n*d])
			} else {
				rowToCol(data, raw.Data[:n*d], n, d)
			}

			return &Array{data: data, shape: []int{n, d}, order: order}, nil
		}
	}

	if order == RowMajor {
		for i := 0; i < n; i++ {
			for j := 0; j < d; j++ {
				data[i*d+j] = m.At(i, j)
			}
		}
	} else {
		for j := 0; j < d; j++ {
			for i := 0; i < n; i++ {
				data[j*n+i] = m.At(i, j)
			}
		}
	}

	return &Array{data: data, shape: []int{n, d}, order: order}, nil
}
