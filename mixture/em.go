package mixture

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spheroids/pkbd"
	"github.com/katalvlaran/spheroids/spcauchy"
)

// component is the working state of one mixture component during EM.
type component struct {
	mu    *mat.VecDense
	rho   float64
	logPi float64
}

// Fit estimates a k-component mixture of the given family on the rows
// of X (n×d, unit rows) by expectation-maximization.
//
// The fit starts from randomized soft responsibilities, alternates
// M-steps (weighted maximum likelihood per component) with E-steps
// (posterior responsibilities via log-sum-exp), prunes components
// whose mixing weight falls below Options.MinWeight, and stops when
// the log-likelihood improvement drops below Options.Tol or MaxIter
// is reached.
//
// A nil opts pointer means DefaultOptions. Identical seeds reproduce
// the fit exactly.
//
// Errors: ErrNilInput, ErrEmptyData, ErrTooFewComponents,
// ErrTooManyComponents, ErrUnknownDistribution, ErrBadOptions,
// ErrAllPruned, plus wrapped component errors from pkbd / spcauchy.
func Fit(X *mat.Dense, k int, dist Distribution, opts *Options) (*Model, error) {
	if X == nil {
		return nil, ErrNilInput
	}
	n, d := X.Dims()
	if n == 0 || d == 0 {
		return nil, ErrEmptyData
	}
	if k < 1 {
		return nil, ErrTooFewComponents
	}
	if k > n {
		return nil, ErrTooManyComponents
	}
	if !dist.valid() {
		return nil, ErrUnknownDistribution
	}
	o, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(o.Seed, o.Seed))

	// Randomized soft start: each observation leans on one random
	// component, the remainder is spread evenly. Equal mixing weights.
	W := initResponsibilities(n, k, rng)
	comps := make([]component, k)
	for c := range comps {
		w := mat.Col(nil, c, W)
		mu0 := weightedMeanDirection(X, w, rng.IntN(n))
		mu, rho, mErr := compMStep(dist, X, w, mu0, initRho, o.MStepMaxIter)
		if mErr != nil {
			return nil, fmt.Errorf("mixture: component %d: %w", c, mErr)
		}
		comps[c] = component{mu: mu, rho: rho, logPi: -math.Log(float64(k))}
	}

	var (
		ll    float64
		trace []float64
		prev  = math.Inf(-1)
	)
	for it := 0; it < o.MaxIter; it++ {
		W, ll, err = estep(X, dist, comps)
		if err != nil {
			return nil, err
		}

		// Mixing weights are the column means of the responsibilities.
		for c := range comps {
			comps[c].logPi = math.Log(floats.Sum(mat.Col(nil, c, W)) / float64(n))
		}

		if o.MinWeight > 0 && len(comps) > 1 {
			kept := prune(comps, o.MinWeight)
			if len(kept) == 0 {
				return nil, ErrAllPruned
			}
			if len(kept) < len(comps) {
				comps = kept
				W, ll, err = estep(X, dist, comps)
				if err != nil {
					return nil, err
				}
				// Pruning invalidates the previous likelihood.
				prev = math.Inf(-1)
			}
		}
		trace = append(trace, ll)

		if math.Abs(ll-prev) < o.Tol {
			break
		}
		prev = ll

		for c := range comps {
			w := mat.Col(nil, c, W)
			mu, rho, mErr := compMStep(dist, X, w, comps[c].mu, comps[c].rho, o.MStepMaxIter)
			if mErr != nil {
				return nil, fmt.Errorf("mixture: component %d: %w", c, mErr)
			}
			comps[c].mu, comps[c].rho = mu, rho
		}
	}

	return assemble(dist, d, comps, W, ll, trace), nil
}

// initResponsibilities builds the n×k soft assignment matrix: a 0.9
// share on one random component per row, the rest split evenly.
func initResponsibilities(n, k int, rng *rand.Rand) *mat.Dense {
	W := mat.NewDense(n, k, nil)
	if k == 1 {
		for i := 0; i < n; i++ {
			W.Set(i, 0, 1)
		}

		return W
	}
	rest := 0.1 / float64(k-1)
	for i := 0; i < n; i++ {
		j := rng.IntN(k)
		for c := 0; c < k; c++ {
			if c == j {
				W.Set(i, c, 0.9)
			} else {
				W.Set(i, c, rest)
			}
		}
	}

	return W
}

// weightedMeanDirection returns the normalized w-weighted mean of the
// rows of X, falling back to the given data row when the mean vanishes.
func weightedMeanDirection(X *mat.Dense, w []float64, fallback int) *mat.VecDense {
	_, d := X.Dims()
	acc := make([]float64, d)
	for i, wi := range w {
		floats.AddScaled(acc, wi, X.RawRowView(i))
	}
	if floats.Norm(acc, 2) < 1e-12 {
		copy(acc, X.RawRowView(fallback))
	}
	floats.Scale(1/floats.Norm(acc, 2), acc)

	return mat.NewVecDense(d, acc)
}

// estep evaluates the per-component log-densities, normalizes them
// row-wise with log-sum-exp, and returns the fresh responsibility
// matrix together with the total log-likelihood.
func estep(X *mat.Dense, dist Distribution, comps []component) (*mat.Dense, float64, error) {
	n, _ := X.Dims()
	k := len(comps)
	W := mat.NewDense(n, k, nil)
	for c := range comps {
		li, err := compLogLik(dist, X, comps[c].mu, comps[c].rho)
		if err != nil {
			return nil, 0, fmt.Errorf("mixture: component %d: %w", c, err)
		}
		for i := 0; i < n; i++ {
			W.Set(i, c, li[i]+comps[c].logPi)
		}
	}

	var total float64
	row := make([]float64, k)
	for i := 0; i < n; i++ {
		copy(row, W.RawRowView(i))
		lse := floats.LogSumExp(row)
		total += lse
		for c := 0; c < k; c++ {
			W.Set(i, c, math.Exp(row[c]-lse))
		}
	}

	return W, total, nil
}

// prune drops components below the weight threshold and renormalizes
// the mixing weights of the survivors.
func prune(comps []component, minWeight float64) []component {
	kept := comps[:0:0]
	var sum float64
	for _, c := range comps {
		pi := math.Exp(c.logPi)
		if pi >= minWeight {
			kept = append(kept, c)
			sum += pi
		}
	}
	for i := range kept {
		kept[i].logPi -= math.Log(sum)
	}

	return kept
}

// assemble packs the working components into an exported Model.
func assemble(dist Distribution, d int, comps []component, W *mat.Dense, ll float64, trace []float64) *Model {
	k := len(comps)
	m := &Model{
		Dist:   dist,
		Dim:    d,
		Mu:     mat.NewDense(k, d, nil),
		Rho:    make([]float64, k),
		LogPi:  make([]float64, k),
		W:      W,
		LogLik: ll,
		Trace:  trace,
	}
	for c, comp := range comps {
		m.Mu.SetRow(c, comp.mu.RawVector().Data)
		m.Rho[c] = comp.rho
		m.LogPi[c] = comp.logPi
	}

	return m
}

// compLogLik dispatches LogLik on the component family.
func compLogLik(dist Distribution, X mat.Matrix, mu mat.Vector, rho float64) ([]float64, error) {
	if dist == SpCauchy {
		return spcauchy.LogLik(X, mu, rho)
	}

	return pkbd.LogLik(X, mu, rho)
}

// compMStep dispatches the weighted maximum-likelihood update on the
// component family.
func compMStep(dist Distribution, X mat.Matrix, w []float64, mu0 mat.Vector, rho0 float64, maxIter int) (*mat.VecDense, float64, error) {
	if dist == SpCauchy {
		o := spcauchy.MStepOptions{MaxIter: maxIter, Tol: spcauchy.DefaultMStepTol}

		return spcauchy.MStep(X, w, mu0, rho0, &o)
	}
	o := pkbd.MStepOptions{MaxIter: maxIter, Tol: pkbd.DefaultMStepTol}

	return pkbd.MStep(X, w, mu0, rho0, &o)
}
