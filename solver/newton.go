package solver

import "math"

// Newton — damped Newton iteration with finite-difference derivative
//
// Description:
//
//	Newton is the bundled RootFinder. It iterates
//	    x ← x − f(x)/f'(x)
//	with f' estimated by a central difference, and halves the step while
//	the full step would increase |f| (or leave the finite domain). The
//	damping keeps the search local, which matters when the caller's
//	initial guess is a branch selector rather than a tight bracket.
//
// Algorithm Outline:
//  1. Validate inputs (nil f, non-finite guess, Options ranges).
//  2. Repeat up to MaxIter times:
//     a. stop if |f(x)| ≤ Tol;
//     b. estimate d = (f(x+h) − f(x−h)) / 2h with h = Step·max(1,|x|);
//     c. if d is zero or non-finite, nudge x by h and retry;
//     d. take the Newton step, halving it (≤ maxHalvings times) while
//     |f| would not decrease.
//  3. Return the best estimate with Converged = |f(x)| ≤ Tol.
//
// Complexity: O(MaxIter) residual evaluations (≤ 3 + maxHalvings per step).
//
// Errors: ErrNilFunc, ErrBadGuess, ErrBadTolerance, ErrBadMaxIter, ErrBadStep.
type Newton struct{}

// maxHalvings bounds the damping loop inside one Newton step.
const maxHalvings = 30

// Solve searches for a zero of f near guess. See the type documentation
// for the iteration details and the RootFinder docs for the contract.
func (Newton) Solve(f Func, guess float64, opts Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunc
	}
	if math.IsNaN(guess) || math.IsInf(guess, 0) {
		return Result{}, ErrBadGuess
	}
	if opts.Tol <= 0 {
		return Result{}, ErrBadTolerance
	}
	if opts.MaxIter < 1 {
		return Result{}, ErrBadMaxIter
	}
	if opts.Step <= 0 {
		return Result{}, ErrBadStep
	}

	x := guess
	fx := f(x)

	var it int
	for it = 0; it < opts.MaxIter; it++ {
		if math.Abs(fx) <= opts.Tol {
			return Result{Root: x, Converged: true, Iterations: it, Residual: fx}, nil
		}

		// Central-difference derivative; h scales with |x| to stay
		// meaningful far from the origin.
		h := opts.Step * math.Max(1, math.Abs(x))
		d := (f(x+h) - f(x-h)) / (2 * h)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			// Flat or singular locally; nudge off the bad point.
			x += h
			fx = f(x)
			continue
		}

		// Damped Newton step: halve while |f| would not decrease.
		dx := fx / d
		next := x - dx
		fn := f(next)
		for i := 0; i < maxHalvings && (math.IsNaN(fn) || math.IsInf(fn, 0) || math.Abs(fn) > math.Abs(fx)); i++ {
			dx /= 2
			next = x - dx
			fn = f(next)
		}
		x, fx = next, fn
	}

	// Iterations exhausted: best-effort estimate, flagged.
	return Result{
		Root:       x,
		Converged:  math.Abs(fx) <= opts.Tol,
		Iterations: it,
		Residual:   fx,
	}, nil
}
