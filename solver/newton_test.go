package solver_test

import (
	"math"
	"testing"

	"github.com/qlattice/kronig/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewton_NilFunc verifies that a nil residual function yields ErrNilFunc.
func TestNewton_NilFunc(t *testing.T) {
	_, err := solver.Newton{}.Solve(nil, 1.0, solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrNilFunc, "nil residual must error ErrNilFunc")
}

// TestNewton_BadGuess verifies that NaN and infinite guesses yield ErrBadGuess.
func TestNewton_BadGuess(t *testing.T) {
	f := func(x float64) float64 { return x }

	_, err := solver.Newton{}.Solve(f, math.NaN(), solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrBadGuess, "NaN guess must error ErrBadGuess")

	_, err = solver.Newton{}.Solve(f, math.Inf(1), solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrBadGuess, "+Inf guess must error ErrBadGuess")
}

// TestNewton_BadOptions checks the Options range validations.
func TestNewton_BadOptions(t *testing.T) {
	f := func(x float64) float64 { return x }

	opts := solver.DefaultOptions()
	opts.Tol = 0
	_, err := solver.Newton{}.Solve(f, 1, opts)
	assert.ErrorIs(t, err, solver.ErrBadTolerance, "Tol=0 must error ErrBadTolerance")

	opts = solver.DefaultOptions()
	opts.MaxIter = 0
	_, err = solver.Newton{}.Solve(f, 1, opts)
	assert.ErrorIs(t, err, solver.ErrBadMaxIter, "MaxIter=0 must error ErrBadMaxIter")

	opts = solver.DefaultOptions()
	opts.Step = -1
	_, err = solver.Newton{}.Solve(f, 1, opts)
	assert.ErrorIs(t, err, solver.ErrBadStep, "Step<0 must error ErrBadStep")
}

// TestNewton_SimpleRoot verifies convergence to the root of sin near π.
func TestNewton_SimpleRoot(t *testing.T) {
	res, err := solver.Newton{}.Solve(math.Sin, 3.0, solver.DefaultOptions())
	require.NoError(t, err, "well-posed problem should not error")

	assert.True(t, res.Converged, "sin has a simple root at π; must converge")
	assert.InDelta(t, math.Pi, res.Root, 1e-8, "root must be π")
	assert.LessOrEqual(t, math.Abs(res.Residual), solver.DefaultTol, "residual must honor Tol")
}

// TestNewton_GuessSelectsBranch verifies that the initial guess biases the
// search toward the nearest root rather than a global one.
func TestNewton_GuessSelectsBranch(t *testing.T) {
	res, err := solver.Newton{}.Solve(math.Sin, 6.0, solver.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.InDelta(t, 2*math.Pi, res.Root, 1e-8, "guess near 2π must pick the 2π root")
}

// TestNewton_ExactGuess verifies that a guess already at the root converges
// in zero iterations.
func TestNewton_ExactGuess(t *testing.T) {
	f := func(x float64) float64 { return x * x * x }
	res, err := solver.Newton{}.Solve(f, 0, solver.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Zero(t, res.Iterations, "guess at the root must not iterate")
	assert.Zero(t, res.Root)
}

// TestNewton_NonConvergence verifies the fsolve-style contract: a rootless
// residual exhausts MaxIter and returns a finite best estimate with
// Converged == false and no error.
func TestNewton_NonConvergence(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 } // no real root
	res, err := solver.Newton{}.Solve(f, 1.0, solver.DefaultOptions())
	require.NoError(t, err, "non-convergence must not be an error")

	assert.False(t, res.Converged, "rootless residual cannot converge")
	assert.Equal(t, solver.DefaultMaxIter, res.Iterations, "must run the full iteration budget")
	assert.False(t, math.IsNaN(res.Root), "best estimate must stay finite")
	assert.False(t, math.IsInf(res.Root, 0), "best estimate must stay finite")
}

// TestNewton_DoubleRoot verifies that a double root (flat crossing) still
// converges within the default budget, just more slowly.
func TestNewton_DoubleRoot(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(x) - 1 } // double root at 0
	res, err := solver.Newton{}.Solve(f, math.Pi/2, solver.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, res.Converged, "double root must still converge on |f| tolerance")
	assert.InDelta(t, 0, res.Root, 1e-4, "root of cos(x)-1 near the origin is 0")
}
