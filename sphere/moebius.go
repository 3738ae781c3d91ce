package sphere

import "gonum.org/v1/gonum/mat"

// Moebius applies the Möbius sphere map to every row of X.
//
// For each row x_i the image is
//
//	y_i = rho·mu + (1 - rho²) · (x_i + rho·mu) / (1 + 2·rho·(x_i·mu) + rho²)
//
// computed as: shift X by rho·mu, scale by (1 - rho²), divide each row
// by its scalar denominator, shift by rho·mu again. The result has X's
// shape; X and mu are never mutated.
//
// Returns ErrNilInput on nil arguments and ErrDimensionMismatch when
// mu.Len() != columns of X. rho is NOT validated: values at or beyond
// ±1, or a non-unit mu, may produce non-finite output rows — by
// contract that propagates instead of erroring.
//
// Complexity: O(n·d).
func Moebius(X mat.Matrix, mu mat.Vector, rho float64) (*mat.Dense, error) {
	if X == nil || mu == nil {
		return nil, ErrNilInput
	}
	n, d := X.Dims()
	if mu.Len() != d {
		return nil, ErrDimensionMismatch
	}

	// Per-row scalar denominators come from the single matrix-vector
	// product X·mu.
	dots := mat.NewVecDense(n, nil)
	dots.MulVec(X, mu)

	scale := 1 - rho*rho
	Y := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		denom := 1 + 2*rho*dots.AtVec(i) + rho*rho
		row := Y.RawRowView(i)
		for j := 0; j < d; j++ {
			shift := rho * mu.AtVec(j)
			row[j] = shift + scale*(X.At(i, j)+shift)/denom
		}
	}

	return Y, nil
}

// MoebiusVec maps a single point x; see Moebius for the contract.
// Complexity: O(d).
func MoebiusVec(x, mu mat.Vector, rho float64) (*mat.VecDense, error) {
	if x == nil || mu == nil {
		return nil, ErrNilInput
	}
	d := x.Len()
	if mu.Len() != d {
		return nil, ErrDimensionMismatch
	}

	X := mat.NewDense(1, d, nil)
	for j := 0; j < d; j++ {
		X.Set(0, j, x.AtVec(j))
	}
	Y, err := Moebius(X, mu, rho)
	if err != nil {
		return nil, err
	}

	return mat.NewVecDense(d, Y.RawRowView(0)), nil
}
