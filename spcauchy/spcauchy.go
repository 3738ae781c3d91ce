package spcauchy

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MStep convergence defaults; see MStepOptions.
const (
	DefaultMStepMaxIter = 100
	DefaultMStepTol     = 1e-9
)

// MStepOptions configures the weighted maximum-likelihood iteration;
// nil means defaults. MaxIter bounds the alternating updates, Tol is
// the convergence threshold on |Δrho| and on 1 - muᵀmu_prev.
type MStepOptions struct {
	MaxIter int
	Tol     float64
}

// DefaultMStepOptions returns the documented defaults.
func DefaultMStepOptions() MStepOptions {
	return MStepOptions{MaxIter: DefaultMStepMaxIter, Tol: DefaultMStepTol}
}

// LogLik evaluates the spherical Cauchy log density at every row of X:
//
//	log f(x_i) = log C_d + (d-1)·(log(1-rho²) - log(1 + rho² - 2·rho·muᵀx_i))
//
// with the full normalizing constant C_d = Γ(d/2)/(2·π^{d/2}), so the
// values are directly comparable with package pkbd inside a mixture.
//
// Returns ErrNilInput, ErrDimensionMismatch or ErrRhoRange on invalid
// arguments. Complexity: O(n·d).
func LogLik(X mat.Matrix, mu mat.Vector, rho float64) ([]float64, error) {
	if X == nil || mu == nil {
		return nil, ErrNilInput
	}
	n, d := X.Dims()
	if mu.Len() != d {
		return nil, ErrDimensionMismatch
	}
	if rho < 0 || rho >= 1 {
		return nil, ErrRhoRange
	}

	dots := mat.NewVecDense(n, nil)
	dots.MulVec(X, mu)

	lg, _ := math.Lgamma(float64(d) / 2)
	logC := lg - math.Ln2 - float64(d)/2*math.Log(math.Pi)
	shape := float64(d - 1)
	logScale := math.Log1p(-rho * rho)

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = logC + shape*(logScale-math.Log(1+rho*rho-2*rho*dots.AtVec(i)))
	}

	return out, nil
}

// MStep computes the weighted maximum-likelihood estimate of (mu, rho).
// The scheme mirrors pkbd.MStep — a fixed-point direction update with
// kernel weights w_i/(1 + rho² - 2·rho·muᵀx_i) alternating with a
// bisection of the Cauchy concentration score
//
//	(d-1)·Σ_i w_i·[ -2·rho/(1-rho²) + 2·(t_i - rho)/(1 + rho² - 2·rho·t_i) ]
//
// on [0, 1). Inputs are never mutated.
//
// Returns ErrBadWeights, ErrZeroDirection and the shape/range
// sentinels on invalid arguments. Complexity: O(MaxIter·n·d).
func MStep(X mat.Matrix, w []float64, mu0 mat.Vector, rho0 float64, opts *MStepOptions) (*mat.VecDense, float64, error) {
	if X == nil || mu0 == nil {
		return nil, 0, ErrNilInput
	}
	n, d := X.Dims()
	if mu0.Len() != d {
		return nil, 0, ErrDimensionMismatch
	}
	if rho0 < 0 || rho0 >= 1 {
		return nil, 0, ErrRhoRange
	}
	if len(w) != n {
		return nil, 0, ErrBadWeights
	}
	mass := 0.0
	for _, wi := range w {
		if wi < 0 || math.IsNaN(wi) {
			return nil, 0, ErrBadWeights
		}
		mass += wi
	}
	if mass == 0 {
		return nil, 0, ErrBadWeights
	}

	o := DefaultMStepOptions()
	if opts != nil {
		if opts.MaxIter > 0 {
			o.MaxIter = opts.MaxIter
		}
		if opts.Tol > 0 {
			o.Tol = opts.Tol
		}
	}

	mu := make([]float64, d)
	for j := 0; j < d; j++ {
		mu[j] = mu0.AtVec(j)
	}
	norm := floats.Norm(mu, 2)
	if norm == 0 {
		return nil, 0, ErrZeroDirection
	}
	floats.Scale(1/norm, mu)
	muVec := mat.NewVecDense(d, mu)

	rho := rho0
	dots := mat.NewVecDense(n, nil)
	acc := make([]float64, d)
	for it := 0; it < o.MaxIter; it++ {
		dots.MulVec(X, muVec)

		for j := range acc {
			acc[j] = 0
		}
		for i := 0; i < n; i++ {
			c := w[i] / (1 + rho*rho - 2*rho*dots.AtVec(i))
			for j := 0; j < d; j++ {
				acc[j] += c * X.At(i, j)
			}
		}
		muShift := 0.0
		if resultant := floats.Norm(acc, 2); resultant > 0 {
			floats.Scale(1/resultant, acc)
			muShift = 1 - floats.Dot(mu, acc)
			copy(mu, acc)
		}

		dots.MulVec(X, muVec)
		rhoNew := solveRho(dots.RawVector().Data, w, d)
		rhoShift := math.Abs(rhoNew - rho)
		rho = rhoNew

		if rhoShift < o.Tol && muShift < o.Tol {
			break
		}
	}

	out := mat.NewVecDense(d, nil)
	for j := 0; j < d; j++ {
		out.SetVec(j, mu[j])
	}

	return out, rho, nil
}

// cauchyScore is the derivative of the weighted log likelihood in rho.
func cauchyScore(rho float64, dots, w []float64, d int) float64 {
	s := 0.0
	for i, t := range dots {
		s += w[i] * (-2*rho/(1-rho*rho) + 2*(t-rho)/(1+rho*rho-2*rho*t))
	}

	return float64(d-1) * s
}

// solveRho bisects the Cauchy concentration score on [0, 1).
func solveRho(dots, w []float64, d int) float64 {
	const hi0 = 1 - 1e-9
	if cauchyScore(0, dots, w, d) <= 0 {
		return 0
	}
	if cauchyScore(hi0, dots, w, d) >= 0 {
		return hi0
	}

	lo, hi := 0.0, hi0
	for hi-lo > 1e-12 {
		mid := (lo + hi) / 2
		if cauchyScore(mid, dots, w, d) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2
}
