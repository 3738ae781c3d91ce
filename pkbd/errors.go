package pkbd

import "errors"

var (
	// ErrNilInput indicates a nil matrix or vector argument.
	ErrNilInput = errors.New("pkbd: nil matrix or vector")

	// ErrDimensionMismatch indicates mu's length does not equal the
	// column count of X.
	ErrDimensionMismatch = errors.New("pkbd: mu length must equal column count")

	// ErrRhoRange indicates a concentration outside [0, 1); the density
	// is not defined there.
	ErrRhoRange = errors.New("pkbd: rho must lie in [0, 1)")

	// ErrBadWeights indicates observation weights of wrong length,
	// with negative entries, or summing to zero.
	ErrBadWeights = errors.New("pkbd: invalid observation weights")

	// ErrZeroDirection indicates a zero mu where a direction is required.
	ErrZeroDirection = errors.New("pkbd: mu must have nonzero norm")

	// ErrSampleSize indicates a non-positive number of requested draws.
	ErrSampleSize = errors.New("pkbd: sample size must be > 0")

	// ErrNoSample indicates the rejection sampler exhausted its attempt
	// budget for one draw; with the closed-form envelope bound this only
	// happens for rho pathologically close to 1.
	ErrNoSample = errors.New("pkbd: rejection sampling budget exhausted")
)
