package mixture

// DEFAULTS — single source of truth for zero-value behavior. These
// constants MUST reflect the intended defaults in DefaultOptions.
const (
	// DefaultMaxIter bounds the number of EM iterations.
	DefaultMaxIter = 100

	// DefaultTol stops EM once the log-likelihood improves by less
	// than Tol between consecutive iterations.
	DefaultTol = 1e-6

	// DefaultMinWeight prunes a component when its mixing weight drops
	// below this threshold (matching the reference model's 5%).
	DefaultMinWeight = 0.05

	// DefaultMStepMaxIter bounds the inner weighted-MLE iterations of
	// each component per EM step.
	DefaultMStepMaxIter = 25

	// DefaultSeed seeds the deterministic responsibility initialization.
	DefaultSeed = 1

	// initRho seeds every component's concentration before the first
	// M-step; any interior value works, small values converge steadily.
	initRho = 0.2
)

// Options configures Fit.
//
// Fields (zero values fall back to the documented defaults; MinWeight
// may be set to 0 explicitly to disable pruning):
//   - MaxIter      — maximum EM iterations.
//   - Tol          — convergence threshold on the log-likelihood delta.
//   - MinWeight    — pruning threshold on mixing weights, in [0, 1).
//   - MStepMaxIter — inner iteration bound forwarded to the component
//     M-steps.
//   - Seed         — PCG seed; identical seeds reproduce the fit exactly.
type Options struct {
	MaxIter      int
	Tol          float64
	MinWeight    float64
	MStepMaxIter int
	Seed         uint64

	// minWeightSet distinguishes "use default" from an explicit zero;
	// constructors set it, literal Options{} keeps the default.
	minWeightSet bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxIter:      DefaultMaxIter,
		Tol:          DefaultTol,
		MinWeight:    DefaultMinWeight,
		MStepMaxIter: DefaultMStepMaxIter,
		Seed:         DefaultSeed,
		minWeightSet: true,
	}
}

// WithoutPruning returns o with component pruning disabled.
func (o Options) WithoutPruning() Options {
	o.MinWeight = 0
	o.minWeightSet = true

	return o
}

// resolve merges o over the defaults and validates the result.
func (o *Options) resolve() (Options, error) {
	out := DefaultOptions()
	if o == nil {
		return out, nil
	}
	if o.MaxIter > 0 {
		out.MaxIter = o.MaxIter
	}
	if o.Tol > 0 {
		out.Tol = o.Tol
	}
	if o.minWeightSet || o.MinWeight > 0 {
		out.MinWeight = o.MinWeight
	}
	if o.MStepMaxIter > 0 {
		out.MStepMaxIter = o.MStepMaxIter
	}
	if o.Seed != 0 {
		out.Seed = o.Seed
	}

	if o.MaxIter < 0 || o.Tol < 0 || o.MinWeight < 0 || o.MinWeight >= 1 || o.MStepMaxIter < 0 {
		return out, ErrBadOptions
	}

	return out, nil
}
