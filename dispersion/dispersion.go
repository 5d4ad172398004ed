package dispersion

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/qlattice/kronig/solver"
)

// Energy solving — Kronig-Penney model
//
// Description:
//
//	For a Bloch wavenumber k and band index n, the allowed energy is E = K²
//	where K is a root of the dispersion residual (see Residual). One branch
//	of roots lives near each half-integer multiple of π in K·a-space
//	(free-particle-like structure for large K), so the n-th band is selected
//	by seeding the root-finder at (n + 1/2)·π.
//
// Algorithm Outline (per point):
//  1. Validate: a ≠ 0, n ≥ 0.
//  2. guess = (n + 1/2)·π.
//  3. K = finder.Solve(K ↦ Residual(K, k, a, U0b), guess, opts.Solver).
//  4. E = K². Convergence flag and iteration count are passed through.
//
// The seed is a heuristic, not a bracket: near band crossings or for very
// strong coupling the finder may settle on a neighboring branch. Callers
// that care inspect Result.Converged and the band-ordering of their sweep.
//
// Complexity: one root search per point; elementwise application is
// embarrassingly parallel (enable with WithParallel).
//
// Errors: ErrZeroSpacing, ErrNegativeBand; finder input errors propagate.

// Residual is the Kronig-Penney dispersion relation in root-finding form:
//
//	Residual(K) = U0b/(2K)·sin(K·a) + cos(K·a) − cos(k·a)
//
// Its zeros in K, for fixed k, are the allowed states. The function is
// undefined at K = 0 (division by zero); solvers must never seed there.
// Pure function of its four inputs.
func Residual(K, k, a, U0b float64) float64 {
	return U0b/(2*K)*math.Sin(K*a) + math.Cos(K*a) - math.Cos(k*a)
}

// Solve computes the energy at one (wavenumber, band) point and returns the
// full Result, including the root-finder's convergence flag.
func Solve(k float64, p Params, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(p, o); err != nil {
		return Result{}, err
	}

	return solveOne(k, p, o)
}

// Energy computes the energy at one (wavenumber, band) point, in reduced
// units (ħ²/2m = 1). It is Solve with the confidence flag dropped:
// non-converged points silently yield the finder's best estimate.
func Energy(k float64, p Params, opts ...Option) (float64, error) {
	res, err := Solve(k, p, opts...)
	if err != nil {
		return 0, err
	}

	return res.Energy, nil
}

// SolveAll applies the scalar solve independently to each element of ks and
// returns a same-shaped Result slice. With WithParallel the points are
// solved concurrently; results are identical either way because no point
// depends on another.
func SolveAll(ks []float64, p Params, opts ...Option) ([]Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(p, o); err != nil {
		return nil, err
	}

	out := make([]Result, len(ks))

	if !o.Parallel || len(ks) < 2 {
		for i, k := range ks {
			res, err := solveOne(k, p, o)
			if err != nil {
				return nil, fmt.Errorf("dispersion: sample %d (k=%g): %w", i, k, err)
			}
			out[i] = res
		}

		return out, nil
	}

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, k := range ks {
		i, k := i, k
		g.Go(func() error {
			res, err := solveOne(k, p, o)
			if err != nil {
				return fmt.Errorf("dispersion: sample %d (k=%g): %w", i, k, err)
			}
			out[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Energies applies Energy independently to each element of ks, returning a
// same-shaped energy slice. See SolveAll for the parallel variant semantics.
func Energies(ks []float64, p Params, opts ...Option) ([]float64, error) {
	results, err := SolveAll(ks, p, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = r.Energy
	}

	return out, nil
}

// solveOne performs the seeded root search for a single point.
// Preconditions (validated by callers): p.A ≠ 0, o.Band ≥ 0.
func solveOne(k float64, p Params, o Options) (Result, error) {
	finder := o.Finder
	if finder == nil {
		finder = solver.Newton{}
	}

	guess := (float64(o.Band) + 0.5) * math.Pi
	res, err := finder.Solve(func(K float64) float64 {
		return Residual(K, k, p.A, p.U0b)
	}, guess, o.Solver)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Energy:     res.Root * res.Root,
		K:          res.Root,
		Converged:  res.Converged,
		Iterations: res.Iterations,
	}, nil
}

// validate checks the model parameters and options shared by all solves.
func validate(p Params, o Options) error {
	if p.A == 0 {
		return ErrZeroSpacing
	}
	if o.Band < 0 {
		return ErrNegativeBand
	}

	return nil
}
