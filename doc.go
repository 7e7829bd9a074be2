// Package tightbind computes single-particle excitation spectra of free
// (quadratic) lattice Hamiltonians — tight-binding bands, fermionic and
// bosonic Bogoliubov–de Gennes spectra, and phonon branches.
//
// 🚀 What is tightbind?
//
//	A small, focused library that takes a basis-index table and a sequence
//	of quadratic operator terms, and returns energy bands along any
//	parameter path:
//	  • Data model: system kinds, basis labels, index tables, operator terms
//	  • Commutator selection: fermionic, bosonic and phononic structures
//	  • Matrix assembly: momentum phases, nambu doubling, Hermitian reads
//	  • Structured diagonalization: plain Hermitian and paraunitary (Colpa)
//	  • Sweep driver: one sorted-eigenvalue row per path point
//
// ✨ Why choose tightbind?
//
//   - Physics-first API — supply terms and a table, get bands back
//   - Explicit numerics — sentinel errors for every failure mode, no panics
//   - gonum under the hood — dense complex storage and symmetric eigensolvers
//   - Deterministic — pure per-point term generation, stable output ordering
//
// Everything is organized under four subpackages:
//
//	quadratic/   — kinds, statistics, basis labels, tables, terms, commutators
//	hamiltonian/ — the matrix assembler
//	eigen/       — Hermitian and paraunitary eigensolvers
//	sweep/       — system configuration and the spectrum sweep driver
//
// Dive into the per-package doc.go files and examples/ for runnable
// scenarios: an SSH chain band structure and a ferromagnetic magnon
// dispersion solved through the paraunitary branch.
//
//	go get github.com/wwangnju/tightbind
package tightbind
