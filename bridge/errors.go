// SPDX-License-Identifier: MIT

package bridge

import "errors"

// Sentinel error set for the bridge package. All conversions MUST return
// these sentinels (optionally wrapped with fmt.Errorf("ctx: %w", ...))
// and tests match them via errors.Is. No conversion panics on
// user-triggered conditions.
var (
	// ErrNilArray indicates a nil *Array (or nil vector/matrix) argument.
	ErrNilArray = errors.New("bridge: nil array")

	// ErrBadShape indicates an invalid shape at construction time:
	// no dimensions, a non-positive dimension, or a dimension product
	// that does not match the buffer length.
	ErrBadShape = errors.New("bridge: invalid shape")

	// ErrBadOrder indicates an Order value that is neither RowMajor nor ColMajor.
	ErrBadOrder = errors.New("bridge: unknown memory order")

	// ErrShape indicates a rank unsupported by the requested conversion:
	// ToVector accepts rank 1 or 2, ToMatrix accepts rank 2 only.
	// Conversions never truncate or reshape out-of-rank input.
	ErrShape = errors.New("bridge: expected a 1D or 2D array")

	// ErrOutOfRange indicates an index outside the array bounds.
	ErrOutOfRange = errors.New("bridge: index out of range")

	// ErrIndexArity indicates At was called with a number of indices
	// different from the array rank.
	ErrIndexArity = errors.New("bridge: index arity must equal rank")
)
