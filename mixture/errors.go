package mixture

import "errors"

var (
	// ErrNilInput indicates a nil data matrix.
	ErrNilInput = errors.New("mixture: nil data matrix")

	// ErrEmptyData indicates a data matrix with no rows or no columns.
	ErrEmptyData = errors.New("mixture: data must have at least one row and one column")

	// ErrTooFewComponents indicates a requested component count below 1.
	ErrTooFewComponents = errors.New("mixture: component count must be >= 1")

	// ErrTooManyComponents indicates more components than observations.
	ErrTooManyComponents = errors.New("mixture: component count exceeds observation count")

	// ErrUnknownDistribution indicates a Distribution value that is
	// neither PKBD nor SpCauchy.
	ErrUnknownDistribution = errors.New("mixture: unknown distribution")

	// ErrBadOptions indicates nonsensical option values (negative
	// tolerance, MinWeight outside [0, 1)).
	ErrBadOptions = errors.New("mixture: invalid options")

	// ErrAllPruned indicates every component fell below MinWeight in
	// one iteration; MinWeight is too aggressive for the data.
	ErrAllPruned = errors.New("mixture: all components pruned")

	// ErrNotFitted indicates a Model method was called before Fit
	// produced parameters.
	ErrNotFitted = errors.New("mixture: model is not fitted")

	// ErrDimensionMismatch indicates new data whose column count does
	// not match the fitted dimension.
	ErrDimensionMismatch = errors.New("mixture: data dimension does not match model")
)
