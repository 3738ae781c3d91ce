package mixture_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/spheroids/mixture"
	"github.com/katalvlaran/spheroids/pkbd"
	"gonum.org/v1/gonum/mat"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFit
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Draw two concentrated caps on opposite poles of S², fit a
//	2-component PKBD mixture, and check that the hard assignment
//	separates the caps.
func ExampleFit() {
	pos, err := pkbd.Sample(150, mat.NewVecDense(3, []float64{1, 0, 0}), 0.9, rand.NewPCG(1, 1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	neg, err := pkbd.Sample(150, mat.NewVecDense(3, []float64{-1, 0, 0}), 0.9, rand.NewPCG(2, 2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	X := mat.NewDense(300, 3, nil)
	for i := 0; i < 150; i++ {
		X.SetRow(i, pos.RawRowView(i))
		X.SetRow(150+i, neg.RawRowView(i))
	}

	m, err := mixture.Fit(X, 2, mixture.PKBD, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	labels, err := m.Assign(X)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("components: %d\n", m.K())
	fmt.Printf("dimension: %d\n", m.Dim)
	fmt.Printf("caps separated: %t\n", labels[0] != labels[299])
	// Output:
	// components: 2
	// dimension: 3
	// caps separated: true
}
