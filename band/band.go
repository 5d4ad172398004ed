package band

import (
	"fmt"
	"math"

	"github.com/qlattice/kronig/dispersion"
)

// Band assembly — Brillouin-zone sweep
//
// Description:
//
//	Builds the zone grid once, then runs the dispersion solver elementwise
//	for each band index 0..NBands-1. Bands are fully independent of one
//	another: no dedup, no gap detection, no shared state.
//
// Complexity: O(NBands · Samples) root searches; memory O(NBands · Samples).

// Wavenumbers returns the Brillouin-zone grid: samples evenly spaced points
// over [-π/a, π/a], inclusive of both edges (the upper edge is pinned
// exactly, not left to accumulated rounding).
func Wavenumbers(a float64, samples int) ([]float64, error) {
	if a == 0 {
		return nil, dispersion.ErrZeroSpacing
	}
	if samples < 2 {
		return nil, ErrBadSampleCount
	}

	edge := math.Pi / a
	step := 2 * edge / float64(samples-1)
	ks := make([]float64, samples)
	for i := range ks {
		ks[i] = -edge + float64(i)*step
	}
	ks[samples-1] = edge

	return ks, nil
}

// Bands assembles opts.NBands bands over the zone grid. bands[i] is the
// i-th band; band 0 is the lowest, assuming the seed heuristic holds.
func Bands(opts Options) ([]Band, error) {
	_, bands, err := Sweep(opts)

	return bands, err
}

// Sweep is Bands plus the wavenumber grid the bands are aligned with, so
// presenters need not rebuild it.
func Sweep(opts Options) ([]float64, []Band, error) {
	if opts.NBands < 1 {
		return nil, nil, ErrBadBandCount
	}
	ks, err := Wavenumbers(opts.Params.A, opts.Samples)
	if err != nil {
		return nil, nil, err
	}

	bands := make([]Band, opts.NBands)
	for i := range bands {
		// WithBand appended last so it overrides any band option in Disp.
		es, err := dispersion.Energies(ks, opts.Params, append(opts.Disp[:len(opts.Disp):len(opts.Disp)], dispersion.WithBand(i))...)
		if err != nil {
			return nil, nil, fmt.Errorf("band %d: %w", i, err)
		}
		bands[i] = es
	}

	return ks, bands, nil
}

// Results runs the same sweep as Bands but keeps the per-point solver
// diagnostics, one row per band. Use it to audit convergence without
// changing what Bands returns.
func Results(opts Options) ([][]dispersion.Result, error) {
	if opts.NBands < 1 {
		return nil, ErrBadBandCount
	}
	ks, err := Wavenumbers(opts.Params.A, opts.Samples)
	if err != nil {
		return nil, err
	}

	rows := make([][]dispersion.Result, opts.NBands)
	for i := range rows {
		row, err := dispersion.SolveAll(ks, opts.Params, append(opts.Disp[:len(opts.Disp):len(opts.Disp)], dispersion.WithBand(i))...)
		if err != nil {
			return nil, fmt.Errorf("band %d: %w", i, err)
		}
		rows[i] = row
	}

	return rows, nil
}
