package sphere_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spheroids/sphere"
	"gonum.org/v1/gonum/mat"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMoebius
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Pull the two canonical basis directions of the circle toward
//	mu = (1, 0) with rho = 0.5. The target direction is a fixed point;
//	every other point slides along a great circle toward it.
//
// Complexity: O(n·d).
func ExampleMoebius() {
	X := mat.NewDense(2, 2, []float64{
		1, 0,
		0, 1,
	})
	mu := mat.NewVecDense(2, []float64{1, 0})

	Y, err := sphere.Moebius(X, mu, 0.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("y0 = [%.2f %.2f]\n", Y.At(0, 0), Y.At(0, 1))
	fmt.Printf("y1 = [%.2f %.2f]\n", Y.At(1, 0), Y.At(1, 1))
	// Output:
	// y0 = [1.00 0.00]
	// y1 = [0.80 0.60]
}

// ExampleMoebius_inverse shows that negating rho undoes the map.
func ExampleMoebius_inverse() {
	X := mat.NewDense(1, 2, []float64{0, 1})
	mu := mat.NewVecDense(2, []float64{1, 0})

	Y, _ := sphere.Moebius(X, mu, 0.5)
	back, _ := sphere.Moebius(Y, mu, -0.5)

	diff := math.Max(math.Abs(back.At(0, 0)-X.At(0, 0)), math.Abs(back.At(0, 1)-X.At(0, 1)))
	fmt.Printf("forward = [%.2f %.2f]\n", Y.At(0, 0), Y.At(0, 1))
	fmt.Printf("restored within 1e-12: %t\n", diff < 1e-12)
	// Output:
	// forward = [0.80 0.60]
	// restored within 1e-12: true
}
