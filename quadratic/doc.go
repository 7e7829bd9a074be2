// Package quadratic defines the data model shared by every stage of a
// tight-binding spectrum computation: system kind and statistics tags,
// basis-index labels, the bijective index table, quadratic operator terms,
// and the commutation matrix selected for structured diagonalization.
//
// 🚀 What lives here?
//
//	A quadratic lattice Hamiltonian is a finite sum of terms c·O†ᵢOⱼ.
//	Before anything can be assembled or diagonalized, each basis label
//	(site + orbital + spin + nambu) must map to a stable sequence number,
//	and the system must know which commutation structure — if any —
//	governs its excitations:
//	  • Ordinary systems and fermionic BdG systems need none.
//	  • Bosonic BdG systems need the signed identity diag(+1…,−1…).
//	  • Phononic systems need [[0,−i],[i,0]] ⊗ I.
//
// ✨ Key pieces:
//   - Kind / Statistics / Nambu — closed tags, fixed at construction
//   - Index — one basis label; Dagger() flips its nambu attribute
//   - Table — bijective label ↔ sequence mapping, built once, reused
//   - Operator — one immutable quadratic term (indices, displacement,
//     complex coefficient)
//   - Commutator — pure selector of the commutation matrix
//
// ⚙️ Usage:
//
//	import "github.com/wwangnju/tightbind/quadratic"
//
//	table, err := quadratic.NewTable(labels)
//	comm, err := quadratic.Commutator(quadratic.ParticleHole, quadratic.Bosonic, table.Size())
//
// All functions are pure; all errors are package sentinels checked with
// errors.Is. See the hamiltonian, eigen and sweep packages for the stages
// consuming this model.
package quadratic
