package sphere

import "errors"

var (
	// ErrNilInput indicates a nil matrix or vector argument.
	ErrNilInput = errors.New("sphere: nil matrix or vector")

	// ErrDimensionMismatch indicates mu's length does not equal the
	// column count of X. This is validated deliberately: the closed
	// form would otherwise read out of bounds or silently mis-broadcast.
	ErrDimensionMismatch = errors.New("sphere: mu length must equal column count")

	// ErrBadShape indicates non-positive requested dimensions.
	ErrBadShape = errors.New("sphere: dimensions must be > 0")

	// ErrZeroVector indicates a row with zero norm where a direction is
	// required (normalization has no defined result).
	ErrZeroVector = errors.New("sphere: cannot normalize a zero row")
)
