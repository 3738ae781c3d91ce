package pkbd

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MStep convergence defaults; see MStepOptions.
const (
	// DefaultMStepMaxIter bounds the alternating mu/rho updates.
	DefaultMStepMaxIter = 100

	// DefaultMStepTol stops the alternation once both the rho change and
	// the angular mu change fall below it.
	DefaultMStepTol = 1e-9
)

// MStepOptions configures the weighted maximum-likelihood iteration.
//
// Fields:
//   - MaxIter — maximum alternating updates of mu and rho.
//   - Tol     — convergence threshold on |Δrho| and on 1 - muᵀmu_prev.
//
// A nil options pointer means defaults.
type MStepOptions struct {
	MaxIter int
	Tol     float64
}

// DefaultMStepOptions returns the documented defaults.
func DefaultMStepOptions() MStepOptions {
	return MStepOptions{MaxIter: DefaultMStepMaxIter, Tol: DefaultMStepTol}
}

// logUnitSphereConst returns -log of the surface area of S^{d-1},
// i.e. log Γ(d/2) - log 2 - (d/2)·log π.
func logUnitSphereConst(d int) float64 {
	lg, _ := math.Lgamma(float64(d) / 2)

	return lg - math.Ln2 - float64(d)/2*math.Log(math.Pi)
}

// rowDots returns X·mu as a flat slice of per-row inner products.
func rowDots(X mat.Matrix, mu mat.Vector) []float64 {
	n, _ := X.Dims()
	dots := mat.NewVecDense(n, nil)
	dots.MulVec(X, mu)

	return dots.RawVector().Data
}

// LogLik evaluates the PKBD log density at every row of X:
//
//	log f(x_i) = log C_d + log(1-rho²) - (d/2)·log(1 + rho² - 2·rho·muᵀx_i)
//
// The full normalizing constant is included, so the values are directly
// comparable across distributions in a mixture.
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

	dots := rowDots(X, mu)
	base := logUnitSphereConst(d) + math.Log1p(-rho*rho)
	half := float64(d) / 2

	out := make([]float64, n)
	for i, t := range dots {
		out[i] = base - half*math.Log(1+rho*rho-2*rho*t)
	}

	return out, nil
}

// MStep computes the weighted maximum-likelihood estimate of (mu, rho)
// given per-observation weights w (the responsibilities of one mixture
// component). It alternates:
//
//  1. mu — fixed point: mu ∝ Σ_i w_i·x_i / (1 + rho² - 2·rho·muᵀx_i),
//     renormalized to the sphere;
//  2. rho — root of the profile score
//     Σ_i w_i·[ -2·rho/(1-rho²) + d·(t_i - rho)/(1 + rho² - 2·rho·t_i) ]
//     by bisection on [0, 1).
//
// Inputs are never mutated. mu0/rho0 seed the iteration; any direction
// with nonzero norm works, a previous EM estimate converges fastest.
//
// Returns ErrBadWeights for malformed w, ErrZeroDirection for a zero
// mu0 and the usual shape/range sentinels otherwise.
// Complexity: O(MaxIter·n·d).
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
	if err := checkWeights(w, n); err != nil {
		return nil, 0, err
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

	rho := rho0
	acc := make([]float64, d)
	muVec := mat.NewVecDense(d, mu)
	for it := 0; it < o.MaxIter; it++ {
		dots := rowDots(X, muVec)

		// Fixed-point mu update with the Poisson-kernel weights.
		for j := range acc {
			acc[j] = 0
		}
		for i := 0; i < n; i++ {
			c := w[i] / (1 + rho*rho - 2*rho*dots[i])
			for j := 0; j < d; j++ {
				acc[j] += c * X.At(i, j)
			}
		}
		muShift := 0.0
		if norm := floats.Norm(acc, 2); norm > 0 {
			floats.Scale(1/norm, acc)
			muShift = 1 - floats.Dot(mu, acc)
			copy(mu, acc)
		}

		// Concentration update against the refreshed direction.
		dots = rowDots(X, muVec)
		rhoNew := solveRho(dots, w, d)
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

// checkWeights validates length, sign and total mass of w.
func checkWeights(w []float64, n int) error {
	if len(w) != n {
		return ErrBadWeights
	}
	sum := 0.0
	for _, wi := range w {
		if wi < 0 || math.IsNaN(wi) {
			return ErrBadWeights
		}
		sum += wi
	}
	if sum == 0 {
		return ErrBadWeights
	}

	return nil
}

// score is the derivative of the weighted PKBD log likelihood in rho.
func score(rho float64, dots, w []float64, d int) float64 {
	s := 0.0
	dd := float64(d)
	for i, t := range dots {
		s += w[i] * (-2*rho/(1-rho*rho) + dd*(t-rho)/(1+rho*rho-2*rho*t))
	}

	return s
}

// solveRho finds the root of the concentration score on [0, 1) by
// bisection. The score is d·Σw_i·t_i at rho=0 and tends to -∞ as
// rho → 1, so a sign change brackets the maximizer whenever the
// weighted resultant points along mu.
func solveRho(dots, w []float64, d int) float64 {
	const hi0 = 1 - 1e-9
	if score(0, dots, w, d) <= 0 {
		return 0
	}
	if score(hi0, dots, w, d) >= 0 {
		return hi0
	}

	lo, hi := 0.0, hi0
	for hi-lo > 1e-12 {
		mid := (lo + hi) / 2
		if score(mid, dots, w, d) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2
}
