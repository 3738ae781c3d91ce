package pkbd

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/spheroids/sphere"
)

// sampleMaxTries bounds the rejection attempts for a single draw. The
// envelope's acceptance rate stays well above 1/d for any rho the
// float format can distinguish from 1, so hitting this limit signals a
// degenerate parameterization rather than bad luck.
const sampleMaxTries = 10000

// Sample draws n independent PKBD(mu, rho) observations, one per row
// of the returned n×d matrix.
//
// Algorithm — rejection from an angular central Gaussian (ACG)
// envelope: with b = 2·rho/(1+rho²) the ACG with inverse shape
// I - b·mu·muᵀ has density proportional to (1 - b·t²)^{-d/2} in
// t = muᵀx, while the target kernel is (1 + rho² - 2·rho·t)^{-d/2}.
// The acceptance bound is the maximum over t ∈ [-1, 1] of
// g(t) = (1 - b·t²)/(1 + rho² - 2·rho·t), available in closed form
// from the roots of b·rho·t² - b·(1+rho²)·t + rho = 0.
//
// mu is normalized internally; rho = 0 falls back to uniform sampling.
// src may be nil (global source); pass rand.NewPCG for reproducibility.
//
// Returns ErrSampleSize, ErrNilInput, ErrZeroDirection, ErrRhoRange on
// invalid arguments and ErrNoSample if the attempt budget is exhausted.
// Complexity: O(n·d) expected.
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

	if rho == 0 {
		X, err := sphere.UniformSample(n, d, src)
		if err != nil {
			return nil, err
		}

		return X, nil
	}

	b := 2 * rho / (1 + rho*rho)
	logGmax := maxLogRatio(b, rho)
	stretch := 1/math.Sqrt(1-b) - 1

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	unif := distuv.Uniform{Min: 0, Max: 1, Src: src}

	X := mat.NewDense(n, d, nil)
	z := make([]float64, d)
	for k := 0; k < n; k++ {
		row := X.RawRowView(k)
		accepted := false
		for try := 0; try < sampleMaxTries; try++ {
			for j := range z {
				z[j] = normal.Rand()
			}
			// y = normalize((I + stretch·mu·muᵀ)·z) is an ACG draw.
			t0 := floats.Dot(dir, z)
			for j := range z {
				row[j] = z[j] + stretch*t0*dir[j]
			}
			yNorm := floats.Norm(row, 2)
			if yNorm == 0 {
				continue
			}
			floats.Scale(1/yNorm, row)

			t := floats.Dot(dir, row)
			logg := math.Log1p(-b*t*t) - math.Log(1+rho*rho-2*rho*t)
			if math.Log(unif.Rand()) <= float64(d)/2*(logg-logGmax) {
				accepted = true

				break
			}
		}
		if !accepted {
			return nil, ErrNoSample
		}
	}

	return X, nil
}

// maxLogRatio returns log of the maximum of
// g(t) = (1 - b·t²)/(1 + rho² - 2·rho·t) over t ∈ [-1, 1]; the
// acceptance test compares (d/2)·(log g(t) - maxLogRatio).
func maxLogRatio(b, rho float64) float64 {
	g := func(t float64) float64 {
		return (1 - b*t*t) / (1 + rho*rho - 2*rho*t)
	}

	best := math.Max(g(-1), g(1))
	// Stationary points of g: b·rho·t² - b·(1+rho²)·t + rho = 0.
	a, bb, c := b*rho, -b*(1+rho*rho), rho
	if disc := bb*bb - 4*a*c; disc >= 0 && a != 0 {
		sq := math.Sqrt(disc)
		for _, t := range []float64{(-bb - sq) / (2 * a), (-bb + sq) / (2 * a)} {
			if t > -1 && t < 1 {
				best = math.Max(best, g(t))
			}
		}
	}

	return math.Log(best)
}
