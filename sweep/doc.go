// Package sweep drives a spectrum computation along a parameter path:
// at every point it re-derives the operator terms, assembles the
// Hamiltonian, diagonalizes it with the system's commutation structure,
// and collects the sorted eigenvalues into one results matrix.
//
// 🚀 What is a sweep?
//
//	Band structures, magnon dispersions and phonon spectra are all the
//	same loop: walk a path (momentum points, a field ramp, a coupling
//	scan), solve one fixed-dimension eigenproblem per point, and stack
//	the eigenvalues row by row for plotting.
//
// ✨ Key pieces:
//   - System — immutable configuration: kind, statistics, basis table,
//     commutator (selected once at construction) and a pure per-point
//     term generator; analytical systems supply a matrix function instead
//   - Point — named parameters plus an optional momentum vector
//   - Run — the sequential driver; one Hamiltonian alive at a time
//   - Result — coordinate vector of length L and an L×N matrix of
//     ascending eigenvalues, ready for plotting or serialization
//
// ⚙️ Usage:
//
//	import "github.com/wwangnju/tightbind/sweep"
//
//	sys, err := sweep.NewSystem(kind, stats, table, generate)
//	res, err := sweep.Run(path, sys, nil)
//
// Coordinate rule: a point with exactly one named parameter uses that
// value as its coordinate; otherwise the 1-based position along the path
// is used. A failing point aborts the sweep with its index in the error;
// skipping would silently misalign the output rows.
//
// Complexity: O(L·N³) time, O(L·N + N²) memory.
package sweep
