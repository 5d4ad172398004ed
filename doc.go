// Package kronig computes and plots electron energy bands for the
// Kronig-Penney model — the classic one-dimensional periodic-potential
// approximation of solid-state physics.
//
// 🚀 What is kronig?
//
//	A small, pure-computation library that turns the Kronig-Penney
//	transcendental dispersion relation into band structures:
//		• Dispersion residual: the rearranged relation in root-finding form
//		• Energy solver: one (wavenumber, band) pair → one energy, via a
//		  band-seeded local root search
//		• Band assembler: sweeps a Brillouin zone into complete bands
//		• Presenter: hands the bands to a pluggable 2D rendering sink
//
// ✨ Why choose kronig?
//
//   - Minimal API — explicit Params/Options structs, documented defaults
//   - Pure functions — no hidden state, no caches, every call recomputes
//   - Injectable root-finder — bring your own solver.RootFinder
//   - Opt-in parallel sweeps — every sample is independent
//
// Everything is organized under four subpackages plus a CLI:
//
//	solver/     — black-box scalar root-finder contract + damped-Newton default
//	dispersion/ — Kronig-Penney residual and the per-point energy solver
//	band/       — Brillouin-zone sampling and band assembly
//	bandplot/   — rendering-sink interface + gonum/plot backend
//	cmd/kronig/ — command-line band plotter
//
// Quick sketch of the model:
//
//	U(x)
//	 ┃ ▇   ▇   ▇   ▇     periodic barriers, spacing a,
//	 ┃ ▇   ▇   ▇   ▇     strength U0b (dimensionless)
//	 ┗━━━━━━━━━━━━━━ x
//
// Energies are in reduced units (ħ²/2m = 1), so E = K² for the root K of
// the dispersion relation. See README.md and the examples/ directory for
// full walkthroughs.
//
//	go get github.com/qlattice/kronig
package kronig
