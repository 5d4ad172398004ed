package band_test

import (
	"testing"

	"github.com/qlattice/kronig/band"
	"github.com/qlattice/kronig/dispersion"
)

// benchmarkBands runs one full assembly per iteration.
func benchmarkBands(b *testing.B, opts band.Options) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := band.Bands(opts); err != nil {
			b.Fatalf("Bands failed: %v", err)
		}
	}
}

// BenchmarkBands_Reference benchmarks the default 3×100 sweep.
func BenchmarkBands_Reference(b *testing.B) {
	benchmarkBands(b, band.DefaultOptions())
}

// BenchmarkBands_Parallel benchmarks the same sweep with concurrent samples.
func BenchmarkBands_Parallel(b *testing.B) {
	opts := band.DefaultOptions()
	opts.Disp = []dispersion.Option{dispersion.WithParallel()}
	benchmarkBands(b, opts)
}
