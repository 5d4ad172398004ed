// Package solver defines types and configuration options for scalar
// nonlinear root-finding from an initial guess.
package solver

import "errors"

// Sentinel errors returned by RootFinder implementations.
var (
	// ErrNilFunc indicates that a nil residual function was passed to Solve.
	ErrNilFunc = errors.New("solver: residual function is nil")

	// ErrBadGuess indicates that the initial guess is NaN or infinite.
	ErrBadGuess = errors.New("solver: initial guess must be finite")

	// ErrBadTolerance indicates that Options.Tol is zero or negative.
	ErrBadTolerance = errors.New("solver: Tol must be positive")

	// ErrBadMaxIter indicates that Options.MaxIter is smaller than one.
	ErrBadMaxIter = errors.New("solver: MaxIter must be at least 1")

	// ErrBadStep indicates that Options.Step is zero or negative.
	ErrBadStep = errors.New("solver: Step must be positive")
)

// Func is a scalar residual: Solve searches for x with Func(x) == 0.
type Func func(x float64) float64

// Result reports the outcome of one Solve call.
//
// Root       – best root estimate found (always finite when err == nil).
// Converged  – true iff |f(Root)| dropped at or below Options.Tol.
// Iterations – number of Newton iterations consumed.
// Residual   – f(Root), the final residual value.
//
// A non-converged Result is not an error: the estimate is returned as-is
// and the caller decides whether to trust it.
type Result struct {
	Root       float64
	Converged  bool
	Iterations int
	Residual   float64
}

// Options configures a RootFinder.
//
// Tol     – convergence threshold on |f(x)|. Must be > 0.
// MaxIter – iteration cap; on exhaustion the best estimate is returned
// with Converged == false. Must be ≥ 1.
// Step    – relative step for the finite-difference derivative. Must be > 0.
type Options struct {
	Tol     float64 // |f(x)| threshold for convergence
	MaxIter int     // iteration cap
	Step    float64 // relative finite-difference step
}

// Named defaults (no magic numbers at call sites).
const (
	// DefaultTol is the default convergence threshold on |f(x)|.
	DefaultTol = 1e-10

	// DefaultMaxIter is the default iteration cap.
	DefaultMaxIter = 100

	// DefaultStep is the default relative finite-difference step.
	DefaultStep = 1e-6
)

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use this as a starting point and override individual fields.
//
// Defaults:
//   - Tol:     1e-10
//   - MaxIter: 100
//   - Step:    1e-6
func DefaultOptions() Options {
	return Options{
		Tol:     DefaultTol,
		MaxIter: DefaultMaxIter,
		Step:    DefaultStep,
	}
}

// RootFinder is the black-box local root-search contract.
//
// Implementations search for a zero of f near guess. They must tolerate
// non-convergence by returning the best estimate reached, flagged via
// Result.Converged, rather than failing; errors are reserved for unusable
// inputs (nil f, non-finite guess, invalid Options).
type RootFinder interface {
	Solve(f Func, guess float64, opts Options) (Result, error)
}
