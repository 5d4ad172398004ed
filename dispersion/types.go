// Package dispersion defines parameters, options and results for the
// Kronig-Penney energy solver.
package dispersion

import (
	"errors"

	"github.com/qlattice/kronig/solver"
)

// Sentinel errors returned by the dispersion package.
var (
	// ErrZeroSpacing indicates that the lattice spacing a is exactly zero,
	// which degenerates the dispersion relation (k·a and K·a collapse).
	ErrZeroSpacing = errors.New("dispersion: lattice spacing must be non-zero")

	// ErrNegativeBand indicates a negative band index; bands are counted
	// from 0 (the lowest branch).
	ErrNegativeBand = errors.New("dispersion: band index must be non-negative")
)

// Params holds the fixed model parameters of one computation.
//
// A   – lattice spacing a (non-zero; conventionally positive).
// U0b – dimensionless potential strength (the "area" of one barrier).
//
// Params are constant for the duration of a band computation; the zero
// value is invalid (A == 0), use DefaultParams or set fields explicitly.
type Params struct {
	A   float64
	U0b float64
}

// Textbook defaults: unit spacing, moderately strong barriers.
const (
	// DefaultSpacing is the default lattice spacing a.
	DefaultSpacing = 1.0

	// DefaultStrength is the default potential strength U0b.
	DefaultStrength = 4.0
)

// DefaultParams returns the textbook parameters: a = 1, U0b = 4.
func DefaultParams() Params {
	return Params{A: DefaultSpacing, U0b: DefaultStrength}
}

// Result reports one solved (wavenumber, band) point.
//
// Energy     – K², in reduced units (ħ²/2m = 1).
// K          – the root of the dispersion residual that was found.
// Converged  – the root-finder's confidence flag; a false value means
// Energy is a best-effort estimate, returned unchanged.
// Iterations – root-finder iterations consumed for this point.
type Result struct {
	Energy     float64
	K          float64
	Converged  bool
	Iterations int
}

// Options configures one energy solve (scalar or elementwise).
//
// Band     – which solution branch to target, counted from 0.
// Finder   – the injected root-finder; nil selects solver.Newton{}.
// Solver   – pass-through tuning knobs for the finder (Tol, MaxIter, Step).
// Parallel – solve elementwise sweeps concurrently; per-point problems are
// independent, so ordering never affects results.
type Options struct {
	Band     int               // target branch, n ≥ 0
	Finder   solver.RootFinder // nil → solver.Newton{}
	Solver   solver.Options    // forwarded to the finder untouched
	Parallel bool              // concurrent elementwise application
}

// Option represents a functional option for configuring the solve.
type Option func(*Options)

// WithBand targets the n-th solution branch (band), counted from 0.
// Negative values cause ErrNegativeBand at solve time.
func WithBand(n int) Option {
	return func(o *Options) {
		o.Band = n
	}
}

// WithFinder injects a custom root-finder implementation.
// Passing nil keeps the bundled solver.Newton default.
func WithFinder(f solver.RootFinder) Option {
	return func(o *Options) {
		if f != nil {
			o.Finder = f
		}
	}
}

// WithSolver forwards tuning knobs (tolerance, iteration cap, derivative
// step) to the root-finder. This is the extension point for finder-specific
// configuration; the dispersion package never interprets these values.
func WithSolver(opts solver.Options) Option {
	return func(o *Options) {
		o.Solver = opts
	}
}

// WithParallel enables concurrent elementwise application in SolveAll and
// Energies. Scalar solves are unaffected.
func WithParallel() Option {
	return func(o *Options) {
		o.Parallel = true
	}
}

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use this as a starting point for functional-option overrides.
//
// Defaults:
//   - Band:     0 (lowest band)
//   - Finder:   nil (resolved to solver.Newton{} at solve time)
//   - Solver:   solver.DefaultOptions()
//   - Parallel: false (sequential sweep)
func DefaultOptions() Options {
	return Options{
		Band:     0,
		Finder:   nil,
		Solver:   solver.DefaultOptions(),
		Parallel: false,
	}
}
