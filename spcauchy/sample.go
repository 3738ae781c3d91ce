package spcauchy

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spheroids/sphere"
)

// Sample draws n independent spCauchy(mu, rho) observations, one per
// row. The spherical Cauchy is exactly the Möbius image of the uniform
// distribution, so sampling is two steps with no rejection: draw
// uniform directions, push them through sphere.Moebius with (mu, rho).
//
// mu is normalized internally. src may be nil (global source); pass
// rand.NewPCG for reproducible draws.
//
// Returns ErrSampleSize, ErrNilInput, ErrZeroDirection or ErrRhoRange
// on invalid arguments. Complexity: O(n·d).
func Sample(n int, mu mat.Vector, rho float64, src rand.Source) (*mat.Dense, error) {
	if n <= 0 {
		return nil, ErrSampleSize
	}
	if mu == nil {
		return nil, ErrNilInput
	}
	if rho < 0 || rho >= 1 {
		return nil, ErrRhoRange
	}
	d := mu.Len()

	dir := make([]float64, d)
	for j := 0; j < d; j++ {
		dir[j] = mu.AtVec(j)
	}
	norm := floats.Norm(dir, 2)
	if norm == 0 {
		return nil, ErrZeroDirection
	}
	floats.Scale(1/norm, dir)

	U, err := sphere.UniformSample(n, d, src)
	if err != nil {
		return nil, err
	}

	return sphere.Moebius(U, mat.NewVecDense(d, dir), rho)
}
