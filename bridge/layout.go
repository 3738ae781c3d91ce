// SPDX-License-Identifier: MIT

package bridge

// Layout reordering helper pair. This is the single most error-prone
// piece of the bridge: a swapped index here transposes every downstream
// numeric result without any visible failure. Both helpers therefore
// state their contract in terms of the (row, col) value identity and
// nothing else touches layout arithmetic.
//
// Both helpers assume len(dst) == len(src) == rows*cols and dst not
// aliasing src; callers in this package guarantee both.

// colToRow copies a rows×cols matrix stored column-major in src into
// dst in row-major order, preserving element (i,j) identity:
//
//	dst[i*cols+j] = src[j*rows+i]
//
// Complexity: O(rows·cols).
func colToRow(dst, src []float64, rows, cols int) {
	for j := 0; j < cols; j++ {
		colBase := j * rows
		for i := 0; i < rows; i++ {
			dst[i*cols+j] = src[colBase+i]
		}
	}
}

// rowToCol copies a rows×cols matrix stored row-major in src into dst
// in column-major order, preserving element (i,j) identity:
//
//	dst[j*rows+i] = src[i*cols+j]
//
// Complexity: O(rows·cols).
func rowToCol(dst, src []float64, rows, cols int) {
	for i := 0; i < rows; i++ {
		rowBase := i * cols
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = src[rowBase+j]
		}
	}
}
