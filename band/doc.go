// Package band assembles complete energy bands by sweeping the dispersion
// solver over one Brillouin zone.
//
// 🚀 What is a band sweep?
//
//	The Brillouin zone [-π/a, π/a] is sampled on an even grid (100 points
//	by default, both edges included), and for each band index i the energy
//	solver runs independently over every sample. The result is an ordered
//	list of bands: bands[i] is the i-th band, aligned 1:1 with the grid.
//
// ✨ Key features:
//   - Wavenumbers — the inclusive zone grid, exact at both edges
//   - Bands / Sweep — N complete bands, each computed independently,
//     no deduplication and no gap detection between bands
//   - Results — the same sweep with per-point convergence diagnostics
//   - band 0 is the lowest band, assuming the seed heuristic holds
//
// ⚙️ Usage:
//
//	import "github.com/qlattice/kronig/band"
//
//	ks, bands, err := band.Sweep(band.DefaultOptions())
//	for i, bd := range bands {
//	    // bd[j] is the energy of band i at wavenumber ks[j]
//	}
//
// Every call recomputes from scratch: there is no cache and no state that
// outlives the invocation.
//
// Errors (sentinel): ErrBadBandCount, ErrBadSampleCount; parameter errors
// propagate from the dispersion package (e.g. dispersion.ErrZeroSpacing).
package band
