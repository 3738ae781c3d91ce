package sphere

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normalize projects every row of X onto the unit sphere, in place.
// Returns ErrZeroVector (wrapped with the offending row index) when a
// row has zero norm; rows before it are already normalized at that
// point, so callers treating the error as fatal should discard X.
// Complexity: O(n·d).
func Normalize(X *mat.Dense) error {
	if X == nil {
		return ErrNilInput
	}
	n, _ := X.Dims()
	for i := 0; i < n; i++ {
		row := X.RawRowView(i)
		norm := floats.Norm(row, 2)
		if norm == 0 {
			return fmt.Errorf("row %d: %w", i, ErrZeroVector)
		}
		floats.Scale(1/norm, row)
	}

	return nil
}

// UniformSample draws n points uniformly distributed on S^{d-1} by
// normalizing rows of independent standard gaussians. src may be nil,
// in which case the global source is used; pass rand.NewPCG for
// reproducible draws.
// Complexity: O(n·d).
func UniformSample(n, d int, src rand.Source) (*mat.Dense, error) {
	if n <= 0 || d <= 0 {
		return nil, ErrBadShape
	}
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	X := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		row := X.RawRowView(i)
		for {
			for j := range row {
				row[j] = normal.Rand()
			}
			// A zero gaussian row has probability zero but would make
			// the projection undefined; redraw instead of erroring.
			if norm := floats.Norm(row, 2); norm > 0 {
				floats.Scale(1/norm, row)

				break
			}
		}
	}

	return X, nil
}
