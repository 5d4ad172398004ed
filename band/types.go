// Package band defines options and result types for Brillouin-zone sweeps.
package band

import (
	"errors"

	"github.com/qlattice/kronig/dispersion"
)

// Sentinel errors returned by the band package.
var (
	// ErrBadBandCount indicates that fewer than one band was requested.
	ErrBadBandCount = errors.New("band: NBands must be at least 1")

	// ErrBadSampleCount indicates a grid too small to span the zone
	// (both edges are included, so at least two samples are required).
	ErrBadSampleCount = errors.New("band: Samples must be at least 2")
)

// Band is one energy branch, aligned 1:1 with the wavenumber grid it was
// swept over. Bands are produced fresh per invocation, never mutated.
type Band []float64

// Assembly defaults.
const (
	// DefaultBands is the default number of bands to assemble.
	DefaultBands = 3

	// DefaultSamples is the default Brillouin-zone grid size.
	DefaultSamples = 100
)

// Options configures one band assembly.
//
// NBands  – how many bands to compute, counted from the lowest.
// Samples – grid size over [-π/a, π/a], both edges included.
// Params  – model parameters forwarded to the dispersion solver.
// Disp    – extra dispersion options (finder injection, solver knobs,
// parallelism). A WithBand among them is overridden per band.
type Options struct {
	NBands  int
	Samples int
	Params  dispersion.Params
	Disp    []dispersion.Option
}

// DefaultOptions returns the standard configuration: 3 bands, 100 samples,
// a = 1, U0b = 4, sequential sweep with the bundled Newton finder.
func DefaultOptions() Options {
	return Options{
		NBands:  DefaultBands,
		Samples: DefaultSamples,
		Params:  dispersion.DefaultParams(),
	}
}
