// Package eigen diagonalizes the Hermitian matrices assembled from
// quadratic lattice Hamiltonians, with or without an indefinite
// commutation structure.
//
// 🚀 Two branches, one entry point:
//
//	Diagonalize(H, commutator)
//	  • commutator == nil — standard Hermitian eigendecomposition:
//	    eigenvalues ascending, eigenvectors orthonormal.
//	  • commutator != nil — paraunitary (Colpa) procedure, required for
//	    bosonic/phononic BdG spectra: Cholesky H = Uᴴ·U, Hermitian eigen
//	    of K = U·C·Uᴴ, hole-branch sign correction, and eigenvector
//	    recovery V = U⁻¹·Q·diag(√λ). V is not orthonormal; it satisfies
//	    the paraunitary normalization Vᴴ·C·V = diag(+I, −I), which is C
//	    itself for the bosonic signed-identity commutator.
//
// ✨ Numerical notes:
//   - The Hermitian branch runs through the real-symmetric embedding
//     [[A,−B],[B,A]] of H = A + iB, solved by gonum's EigenSym; complex
//     eigenvectors are recovered with Gram–Schmidt inside degenerate
//     clusters, which keeps symmetry points of a momentum path stable.
//   - Cholesky failure signals a non-positive-definite Hamiltonian — an
//     unphysical or misconfigured input, surfaced as ErrNotPositiveDefinite.
//   - The paraunitary branch returns the particle branch first, so the
//     eigenvalue vector reads (ω₁…ω_m, ω₁…ω_m) with both halves positive.
//
// ⚙️ Usage:
//
//	import "github.com/wwangnju/tightbind/eigen"
//
//	vals, vecs, err := eigen.Diagonalize(h, commutator)
//
// All errors are package sentinels checked with errors.Is.
// Complexity: O(n³) time, O(n²) memory per call.
package eigen
