// Package hamiltonian folds an ordered sequence of quadratic operator terms
// into a dense complex Hermitian matrix — the single-point Hamiltonian a
// structured eigensolver consumes.
//
// 🚀 What does the assembler do?
//
//	For each term c·O†(i)O(j) with displacement r it accumulates
//
//	  H[s1, s2] += c · exp(−i·k·r)
//
//	where s1, s2 are sequence numbers from the basis-index table. Ordinary
//	systems accumulate once per term; particle-hole (BdG) systems mirror
//	(creation, annihilation) terms into the nambu-swapped location with a
//	statistics sign and a conjugated phase; phononic systems double
//	self-paired diagonal terms and write symmetric pairs explicitly.
//
// ✨ Conventions:
//   - Term data encodes the (i†, j) ordering, so each physical term
//     populates the relevant triangle once and Hermiticity is enforced by
//     an explicit upper-triangle read at the end (upper wins, lower is its
//     conjugate, diagonal is forced real). Both triangles are never written
//     for the same term outside the phononic branch.
//   - An optional Atol is added on the diagonal to guard the later Cholesky
//     factorization against rounding noise; enable it only when a
//     non-trivial commutator follows.
//
// ⚙️ Usage:
//
//	import "github.com/wwangnju/tightbind/hamiltonian"
//
//	opts := hamiltonian.DefaultOptions()
//	h, err := hamiltonian.Assemble(kind, stats, terms, table, k, &opts)
//
// Complexity: O(T + N²) time, O(N²) memory for T terms and dimension N.
package hamiltonian
