// Package solver defines the scalar nonlinear root-finder contract consumed
// by the dispersion package, plus a bundled damped-Newton implementation.
//
// 🚀 What is solver?
//
//	A deliberately small seam: the band computation treats root-finding as a
//	black box that searches for a zero of f near an initial guess. The
//	contract mirrors classic local solvers (fsolve-style):
//	  • Solve(f, guess, opts) returns its best root estimate
//	  • non-convergence is NOT an error — the estimate comes back with
//	    Result.Converged == false, and the caller decides what to do
//	  • errors are reserved for unusable inputs (nil f, non-finite guess,
//	    meaningless tolerances)
//
// ✨ Key features:
//   - RootFinder interface — inject any local solver you like
//   - Newton — damped Newton iteration with a central finite-difference
//     derivative; step halving keeps it from overshooting into a
//     neighboring branch
//   - Result carries Root, Converged, Iterations and the final residual,
//     so callers can surface confidence without changing values
//
// ⚙️ Usage:
//
//	import "github.com/qlattice/kronig/solver"
//
//	res, err := solver.Newton{}.Solve(f, 1.5, solver.DefaultOptions())
//	if err != nil { ... }           // bad inputs only
//	if !res.Converged { ... }       // best-effort estimate, low confidence
//	root := res.Root
//
// Errors (sentinel): ErrNilFunc, ErrBadGuess, ErrBadTolerance, ErrBadMaxIter.
package solver
