// Domain types. Options live in options.go, sentinel errors in
// errors.go, the EM loop in em.go.

package mixture

import "gonum.org/v1/gonum/mat"

// Distribution selects the component family of the mixture.
type Distribution int

const (
	// PKBD components: Poisson Kernel-Based Distribution (package pkbd).
	PKBD Distribution = iota

	// SpCauchy components: spherical Cauchy (package spcauchy).
	SpCauchy
)

// String returns the conventional name of the family.
func (d Distribution) String() string {
	switch d {
	case PKBD:
		return "pkbd"
	case SpCauchy:
		return "spcauchy"
	default:
		return "unknown"
	}
}

// valid reports whether d names a supported family.
func (d Distribution) valid() bool {
	return d == PKBD || d == SpCauchy
}

// Model holds a fitted mixture. All fields describe the surviving
// components after pruning; their count K() may be smaller than the
// count requested from Fit.
type Model struct {
	// Dist is the component family the model was fitted with.
	Dist Distribution

	// Dim is the ambient dimension d of the data sphere S^{d-1}.
	Dim int

	// Mu holds one unit mean direction per component, row-wise (K×d).
	Mu *mat.Dense

	// Rho holds the per-component concentrations, each in [0, 1).
	Rho []float64

	// LogPi holds the log mixing weights; exp(LogPi) sums to 1.
	LogPi []float64

	// W is the n×K posterior responsibility matrix of the training data.
	W *mat.Dense

	// LogLik is the final training log-likelihood.
	LogLik float64

	// Trace records the log-likelihood after every EM iteration.
	Trace []float64
}

// K returns the number of surviving components.
func (m *Model) K() int {
	if m == nil {
		return 0
	}

	return len(m.Rho)
}
