// SPDX-License-Identifier: MIT

// The external Array type and its accessors. Conversions live in
// bridge.go, layout reordering in layout.go, sentinel errors in
// errors.go.

package bridge

// Order declares how a rank-2 buffer maps (row, col) onto flat memory.
//
//   - RowMajor — consecutive addresses vary fastest along the column
//     index (C / NumPy default).
//   - ColMajor — consecutive addresses vary fastest along the row
//     index (Fortran / R / Armadillo).
//
// Rank-1 buffers have a single meaningful order; their Order is
// reported as RowMajor.
type Order int

const (
	// RowMajor layout: element (i,j) sits at data[i*cols+j].
	RowMajor Order = iota

	// ColMajor layout: element (i,j) sits at data[j*rows+i].
	ColMajor
)

// String returns the conventional name of the layout.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return "unknown"
	}
}

// valid reports whether o is a declared Order value.
func (o Order) valid() bool {
	return o == RowMajor || o == ColMajor
}

// Array is an externally-owned buffer of float64 values with an
// explicit shape. The buffer is borrowed, never copied: an Array built
// with New aliases the caller's slice for its whole lifetime, and the
// caller must not free or concurrently mutate it while any view
// derived from the Array is alive.
//
// Arrays of any rank may be constructed; rank validation happens at
// conversion time so that out-of-rank input fails with ErrShape there,
// exactly once, instead of being silently reshaped.
type Array struct {
	data  []float64 // borrowed backing buffer, length == product(shape)
	shape []int     // one entry per dimension, each > 0
	order Order     // memory layout, meaningful for rank 2
}

// New wraps data as a RowMajor Array of the given shape.
// The slice is borrowed, not copied.
//
// Returns ErrBadShape when shape is empty, contains a non-positive
// dimension, or its product differs from len(data).
// Complexity: O(rank) time, zero copies.
func New(data []float64, shape ...int) (*Array, error) {
	return NewWithOrder(RowMajor, data, shape...)
}

// NewWithOrder wraps data as an Array of the given shape and memory
// order. The slice is borrowed, not copied.
//
// Returns ErrBadOrder for an undeclared order and ErrBadShape for an
// inconsistent shape (see New).
// Complexity: O(rank) time, zero copies.
func NewWithOrder(order Order, data []float64, shape ...int) (*Array, error) {
	if !order.valid() {
		return nil, ErrBadOrder
	}
	if len(shape) == 0 {
		return nil, ErrBadShape
	}
	size := 1
	for _, dim := range shape {
		if dim <= 0 {
			return nil, ErrBadShape
		}
		size *= dim
	}
	if size != len(data) {
		return nil, ErrBadShape
	}

	// Copy the shape slice (cheap) so later caller mutations of the
	// variadic backing array cannot corrupt the Array; the data slice
	// itself stays borrowed by contract.
	own := make([]int, len(shape))
	copy(own, shape)

	return &Array{data: data, shape: own, order: order}, nil
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.shape) }

// Len returns the total number of elements.
func (a *Array) Len() int { return len(a.data) }

// Order returns the declared memory layout.
func (a *Array) Order() Order { return a.order }

// Shape returns a copy of the dimension sizes.
// Complexity: O(rank).
func (a *Array) Shape() []int {
	out := make([]int, len(a.shape))
	copy(out, a.shape)

	return out
}

// Data exposes the backing buffer without copying. Mutations through
// the returned slice are visible to every view that borrows this
// Array. Use Clone first when independence is required.
func (a *Array) Data() []float64 { return a.data }

// At reads the element at the given multi-index, honoring the declared
// memory order for rank-2 arrays.
//
// Returns ErrIndexArity when len(idx) != Rank() and ErrOutOfRange when
// any index is outside its dimension.
// Complexity: O(rank).
func (a *Array) At(idx ...int) (float64, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrIndexArity
	}
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, ErrOutOfRange
		}
	}

	return a.data[a.flatIndex(idx)], nil
}

// flatIndex maps a validated multi-index to a buffer position.
// Rank 2 honors order; other ranks use lexicographic (row-major) strides.
func (a *Array) flatIndex(idx []int) int {
	if len(a.shape) == 2 && a.order == ColMajor {
		return idx[1]*a.shape[0] + idx[0]
	}
	flat := 0
	for k, i := range idx {
		flat = flat*a.shape[k] + i
	}

	return flat
}

// Clone returns a deep copy of the array: fresh buffer, same shape and
// order. The clone is fully independent of the original.
// Complexity: O(Len).
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)
	shape := make([]int, len(a.shape))
	copy(shape, a.shape)

	return &Array{data: data, shape: shape, order: a.order}
}
