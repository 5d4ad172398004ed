// Package dispersion implements the Kronig-Penney dispersion relation and
// the per-point energy solver built on top of it.
//
// 🚀 What is the Kronig-Penney model?
//
//	An idealized 1D crystal: delta-like potential barriers of dimensionless
//	strength U0b repeating with lattice spacing a. Bloch's theorem turns
//	the Schrödinger equation into a transcendental relation
//
//	    U0b/(2K)·sin(K·a) + cos(K·a) = cos(k·a)
//
//	whose roots K (for a fixed Bloch wavenumber k) are the allowed states.
//	In reduced units (ħ²/2m = 1) the energy is simply E = K².
//
// ✨ Key features:
//   - Residual — the relation in root-finding form, a pure four-argument
//     function (undefined at K = 0; the solver never seeds there)
//   - Solve / Energy — one (k, band) pair to one energy, seeding the
//     injected root-finder at (n+1/2)·π to select the n-th branch
//   - SolveAll / Energies — independent elementwise application over a
//     wavenumber sequence, optionally errgroup-parallel
//   - Result.Converged — per-point confidence flag; values are returned
//     either way (fsolve-style best effort)
//
// ⚙️ Usage:
//
//	import "github.com/qlattice/kronig/dispersion"
//
//	p := dispersion.DefaultParams()            // a=1, U0b=4
//	e, err := dispersion.Energy(0.3, p,
//	    dispersion.WithBand(1),                // second band
//	)
//
// The (n+1/2)·π seed is a heuristic, not a guarantee: for strongly coupled
// parameters the finder may settle on a neighboring branch. That is the
// accepted behavior of the model, surfaced via Result rather than "fixed".
//
// Errors (sentinel): ErrZeroSpacing, ErrNegativeBand.
package dispersion
