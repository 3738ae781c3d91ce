package mixture_test

import (
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/spheroids/mixture"
	"github.com/katalvlaran/spheroids/pkbd"
	"github.com/katalvlaran/spheroids/spcauchy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-9

// twoClusters draws n points around +e_x and n around -e_x, both with
// the given concentration, and stacks them into a single 2n×3 matrix.
func twoClusters(t *testing.T, n int, rho float64, seed uint64) *mat.Dense {
	t.Helper()

	pos, err := pkbd.Sample(n, mat.NewVecDense(3, []float64{1, 0, 0}), rho, rand.NewPCG(seed, seed))
	require.NoError(t, err)
	neg, err := pkbd.Sample(n, mat.NewVecDense(3, []float64{-1, 0, 0}), rho, rand.NewPCG(seed+1, seed+1))
	require.NoError(t, err)

	X := mat.NewDense(2*n, 3, nil)
	for i := 0; i < n; i++ {
		X.SetRow(i, pos.RawRowView(i))
		X.SetRow(n+i, neg.RawRowView(i))
	}

	return X
}

// TestFit_Validation covers the argument sentinels.
func TestFit_Validation(t *testing.T) {
	X := mat.NewDense(4, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1, 1, 0, 0})

	_, err := mixture.Fit(nil, 2, mixture.PKBD, nil)
	assert.ErrorIs(t, err, mixture.ErrNilInput)
	_, err = mixture.Fit(X, 0, mixture.PKBD, nil)
	assert.ErrorIs(t, err, mixture.ErrTooFewComponents)
	_, err = mixture.Fit(X, 5, mixture.PKBD, nil)
	assert.ErrorIs(t, err, mixture.ErrTooManyComponents)
	_, err = mixture.Fit(X, 2, mixture.Distribution(42), nil)
	assert.ErrorIs(t, err, mixture.ErrUnknownDistribution)
	_, err = mixture.Fit(X, 2, mixture.PKBD, &mixture.Options{MinWeight: 1.5})
	assert.ErrorIs(t, err, mixture.ErrBadOptions)
	_, err = mixture.Fit(X, 2, mixture.PKBD, &mixture.Options{Tol: -1})
	assert.ErrorIs(t, err, mixture.ErrBadOptions)
}

// TestFit_SingleComponentRecovers: with k=1 the EM degenerates to one
// weighted maximum-likelihood fit, so the known parameters of the
// generating distribution must come back.
func TestFit_SingleComponentRecovers(t *testing.T) {
	trueMu := mat.NewVecDense(3, []float64{0, 0, 1})
	X, err := pkbd.Sample(500, trueMu, 0.6, rand.NewPCG(3, 3))
	require.NoError(t, err)

	m, err := mixture.Fit(X, 1, mixture.PKBD, nil)
	require.NoError(t, err)

	require.Equal(t, 1, m.K())
	assert.Equal(t, 3, m.Dim)
	assert.Greater(t, m.Mu.At(0, 2), 0.95, "direction must align with the truth")
	assert.InDelta(t, 0.6, m.Rho[0], 0.15, "concentration must be near the truth")
	assert.InDelta(t, 0.0, m.LogPi[0], tol, "a lone component carries all the mass")
	require.NotEmpty(t, m.Trace)
	assert.Equal(t, m.Trace[len(m.Trace)-1], m.LogLik)
}

// TestFit_TwoClusters: two well-separated caps must be split into two
// components whose directions sit near the opposite poles, and hard
// assignments must recover the generating partition (up to label swap).
func TestFit_TwoClusters(t *testing.T) {
	X := twoClusters(t, 200, 0.9, 11)

	m, err := mixture.Fit(X, 2, mixture.PKBD, nil)
	require.NoError(t, err)
	require.Equal(t, 2, m.K(), "both balanced components must survive pruning")

	// Identify which fitted component points toward +e_x.
	posComp := 0
	if m.Mu.At(0, 0) < m.Mu.At(1, 0) {
		posComp = 1
	}
	assert.Greater(t, m.Mu.At(posComp, 0), 0.9)
	assert.Less(t, m.Mu.At(1-posComp, 0), -0.9)

	labels, err := m.Assign(X)
	require.NoError(t, err)
	correct := 0
	for i, l := range labels {
		if (i < 200) == (l == posComp) {
			correct++
		}
	}
	assert.Greater(t, correct, 380, "at least 95%% of the points must be assigned to their cap")

	// Balanced caps give near-equal mixing weights.
	assert.InDelta(t, 0.5, math.Exp(m.LogPi[0]), 0.1)
	assert.InDelta(t, 0.5, math.Exp(m.LogPi[1]), 0.1)
}

// TestFit_SpCauchyTwoClusters runs the same separation scenario with
// spherical Cauchy components.
func TestFit_SpCauchyTwoClusters(t *testing.T) {
	X := twoClusters(t, 200, 0.9, 17)

	m, err := mixture.Fit(X, 2, mixture.SpCauchy, nil)
	require.NoError(t, err)
	require.Equal(t, 2, m.K())
	assert.Equal(t, mixture.SpCauchy, m.Dist)

	labels, err := m.Assign(X)
	require.NoError(t, err)
	same := 0
	for i := 0; i < 200; i++ {
		if labels[i] == labels[0] {
			same++
		}
		if labels[200+i] != labels[0] {
			same++
		}
	}
	assert.Greater(t, same, 380, "hard assignments must follow the caps")
}

// TestFit_SurvivorsRespectMinWeight: every surviving component of a
// multi-component fit must carry at least the pruning threshold.
func TestFit_SurvivorsRespectMinWeight(t *testing.T) {
	X := twoClusters(t, 150, 0.8, 23)

	m, err := mixture.Fit(X, 3, mixture.PKBD, nil)
	require.NoError(t, err)

	require.GreaterOrEqual(t, m.K(), 1)
	var total float64
	for _, lp := range m.LogPi {
		pi := math.Exp(lp)
		total += pi
		if m.K() > 1 {
			assert.GreaterOrEqual(t, pi, mixture.DefaultMinWeight)
		}
	}
	assert.InDelta(t, 1.0, total, 1e-6, "mixing weights must sum to one")
}

// TestFit_Deterministic: identical seeds reproduce the fit exactly.
func TestFit_Deterministic(t *testing.T) {
	X := twoClusters(t, 100, 0.9, 5)
	opts := mixture.DefaultOptions()
	opts.Seed = 77

	a, err := mixture.Fit(X, 2, mixture.PKBD, &opts)
	require.NoError(t, err)
	b, err := mixture.Fit(X, 2, mixture.PKBD, &opts)
	require.NoError(t, err)

	assert.Equal(t, a.LogLik, b.LogLik)
	assert.True(t, mat.Equal(a.Mu, b.Mu))
	assert.Equal(t, a.Rho, b.Rho)
	assert.Equal(t, a.Trace, b.Trace)
}

// TestFit_WithoutPruning keeps every requested component alive.
func TestFit_WithoutPruning(t *testing.T) {
	X := twoClusters(t, 100, 0.8, 29)
	opts := mixture.DefaultOptions().WithoutPruning()

	m, err := mixture.Fit(X, 3, mixture.PKBD, &opts)
	require.NoError(t, err)

	assert.Equal(t, 3, m.K())
}

// TestModel_Posterior: responsibilities of the training data must form
// proper row distributions.
func TestModel_Posterior(t *testing.T) {
	X := twoClusters(t, 100, 0.9, 41)

	m, err := mixture.Fit(X, 2, mixture.PKBD, nil)
	require.NoError(t, err)

	W, err := m.Posterior(X)
	require.NoError(t, err)
	n, k := W.Dims()
	require.Equal(t, 200, n)
	require.Equal(t, m.K(), k)
	for i := 0; i < n; i++ {
		var sum float64
		for c := 0; c < k; c++ {
			w := W.At(i, c)
			assert.GreaterOrEqual(t, w, 0.0)
			sum += w
		}
		assert.InDelta(t, 1.0, sum, tol, "row %d must sum to one", i)
	}
}

// TestModel_LogLikelihood: scoring the training data reproduces the
// final training log-likelihood.
func TestModel_LogLikelihood(t *testing.T) {
	X := twoClusters(t, 100, 0.9, 41)

	m, err := mixture.Fit(X, 2, mixture.PKBD, nil)
	require.NoError(t, err)

	ll, err := m.LogLikelihood(X)
	require.NoError(t, err)
	assert.InDelta(t, m.LogLik, ll, 1e-6)
}

// TestModel_PredictValidation covers the sentinels of the prediction
// surface.
func TestModel_PredictValidation(t *testing.T) {
	var empty mixture.Model
	_, err := empty.Posterior(mat.NewDense(1, 3, []float64{1, 0, 0}))
	assert.ErrorIs(t, err, mixture.ErrNotFitted)

	X := twoClusters(t, 50, 0.9, 41)
	m, err := mixture.Fit(X, 2, mixture.PKBD, nil)
	require.NoError(t, err)

	_, err = m.Posterior(nil)
	assert.ErrorIs(t, err, mixture.ErrNilInput)
	_, err = m.Assign(mat.NewDense(1, 4, []float64{1, 0, 0, 0}))
	assert.ErrorIs(t, err, mixture.ErrDimensionMismatch)
	_, err = m.LogLikelihood(mat.NewDense(1, 2, []float64{1, 0}))
	assert.ErrorIs(t, err, mixture.ErrDimensionMismatch)
}

// TestModel_SaveTrace writes a PNG chart of the likelihood trace.
func TestModel_SaveTrace(t *testing.T) {
	X := twoClusters(t, 50, 0.9, 41)
	m, err := mixture.Fit(X, 2, mixture.PKBD, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "trace.png")
	require.NoError(t, m.SaveTrace(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	var empty mixture.Model
	assert.ErrorIs(t, empty.SaveTrace(path), mixture.ErrNotFitted)
}

// TestFit_SpCauchySingle pins the alternative family on the degenerate
// single-component path.
func TestFit_SpCauchySingle(t *testing.T) {
	trueMu := mat.NewVecDense(3, []float64{0, 1, 0})
	X, err := spcauchy.Sample(600, trueMu, 0.5, rand.NewPCG(13, 13))
	require.NoError(t, err)

	m, err := mixture.Fit(X, 1, mixture.SpCauchy, nil)
	require.NoError(t, err)

	require.Equal(t, 1, m.K())
	assert.Greater(t, m.Mu.At(0, 1), 0.9)
	assert.InDelta(t, 0.5, m.Rho[0], 0.15)
}
