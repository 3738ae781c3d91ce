package spcauchy

import "errors"

var (
	// ErrNilInput indicates a nil matrix or vector argument.
	ErrNilInput = errors.New("spcauchy: nil matrix or vector")

	// ErrDimensionMismatch indicates mu's length does not equal the
	// column count of X.
	ErrDimensionMismatch = errors.New("spcauchy: mu length must equal column count")

	// ErrRhoRange indicates a concentration outside [0, 1).
	ErrRhoRange = errors.New("spcauchy: rho must lie in [0, 1)")

	// ErrBadWeights indicates observation weights of wrong length, with
	// negative entries, or summing to zero.
	ErrBadWeights = errors.New("spcauchy: invalid observation weights")

	// ErrZeroDirection indicates a zero mu where a direction is required.
	ErrZeroDirection = errors.New("spcauchy: mu must have nonzero norm")

	// ErrSampleSize indicates a non-positive number of requested draws.
	ErrSampleSize = errors.New("spcauchy: sample size must be > 0")
)
