package sphere_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/spheroids/sphere"
	"gonum.org/v1/gonum/mat"
)

// BenchmarkMoebius measures the batched map on a typical workload.
func BenchmarkMoebius(b *testing.B) {
	X, err := sphere.UniformSample(1000, 3, rand.NewPCG(1, 1))
	if err != nil {
		b.Fatal(err)
	}
	mu := mat.NewVecDense(3, []float64{1, 0, 0})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = sphere.Moebius(X, mu, 0.5); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkUniformSample measures draw throughput.
func BenchmarkUniformSample(b *testing.B) {
	src := rand.NewPCG(2, 2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sphere.UniformSample(1000, 3, src); err != nil {
			b.Fatal(err)
		}
	}
}
