package dispersion_test

import (
	"math"
	"testing"

	"github.com/qlattice/kronig/dispersion"
)

// benchmarkEnergies sweeps one band over a zone grid of the given size.
func benchmarkEnergies(b *testing.B, samples int, opts ...dispersion.Option) {
	p := dispersion.DefaultParams()
	ks := make([]float64, samples)
	for i := range ks {
		ks[i] = -math.Pi + float64(i)*(2*math.Pi/float64(samples-1))
	}

	b.ResetTimer() // ignore grid setup
	for i := 0; i < b.N; i++ {
		if _, err := dispersion.Energies(ks, p, opts...); err != nil {
			b.Fatalf("Energies failed: %v", err)
		}
	}
}

// BenchmarkEnergies_Sequential benchmarks the default 100-sample sweep.
func BenchmarkEnergies_Sequential(b *testing.B) {
	benchmarkEnergies(b, 100)
}

// BenchmarkEnergies_Parallel benchmarks the same sweep with the errgroup fan-out.
func BenchmarkEnergies_Parallel(b *testing.B) {
	benchmarkEnergies(b, 100, dispersion.WithParallel())
}
