package mixture

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// check verifies that m carries parameters and that X matches the
// fitted dimension.
func (m *Model) check(X *mat.Dense) (n int, err error) {
	if m == nil || m.K() == 0 || m.Mu == nil {
		return 0, ErrNotFitted
	}
	if X == nil {
		return 0, ErrNilInput
	}
	n, d := X.Dims()
	if n == 0 || d == 0 {
		return 0, ErrEmptyData
	}
	if d != m.Dim {
		return 0, ErrDimensionMismatch
	}

	return n, nil
}

// components rebuilds the working view of the fitted parameters.
func (m *Model) components() []component {
	comps := make([]component, m.K())
	for c := range comps {
		comps[c] = component{
			mu:    mat.NewVecDense(m.Dim, mat.Row(nil, c, m.Mu)),
			rho:   m.Rho[c],
			logPi: m.LogPi[c],
		}
	}

	return comps
}

// Posterior returns the n×K responsibility matrix of new data under
// the fitted mixture. Rows of X must be unit vectors in the fitted
// dimension.
//
// Errors: ErrNotFitted, ErrNilInput, ErrEmptyData,
// ErrDimensionMismatch, plus wrapped component errors.
func (m *Model) Posterior(X *mat.Dense) (*mat.Dense, error) {
	if _, err := m.check(X); err != nil {
		return nil, err
	}
	W, _, err := estep(X, m.Dist, m.components())
	if err != nil {
		return nil, err
	}

	return W, nil
}

// Assign returns the hard cluster label of each row of X, the argmax
// of its posterior responsibilities.
func (m *Model) Assign(X *mat.Dense) ([]int, error) {
	W, err := m.Posterior(X)
	if err != nil {
		return nil, err
	}
	n, _ := W.Dims()
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		labels[i] = floats.MaxIdx(W.RawRowView(i))
	}

	return labels, nil
}

// LogLikelihood returns the total log-likelihood of X under the
// fitted mixture.
func (m *Model) LogLikelihood(X *mat.Dense) (float64, error) {
	if _, err := m.check(X); err != nil {
		return math.Inf(-1), err
	}
	_, ll, err := estep(X, m.Dist, m.components())
	if err != nil {
		return math.Inf(-1), err
	}

	return ll, nil
}
