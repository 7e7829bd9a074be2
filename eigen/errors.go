package eigen

import "errors"

var (
	// ErrNonSquare indicates a non-square input matrix.
	ErrNonSquare = errors.New("eigen: matrix is not square")

	// ErrDimensionMismatch indicates the commutator and the Hamiltonian
	// have different dimensions.
	ErrDimensionMismatch = errors.New("eigen: dimension mismatch")

	// ErrNotHermitian indicates the input violated Hermiticity beyond the
	// numeric tolerance.
	ErrNotHermitian = errors.New("eigen: matrix is not Hermitian within tolerance")

	// ErrNotPositiveDefinite indicates the Cholesky factorization met a
	// non-positive pivot; the input Hamiltonian is not positive definite.
	ErrNotPositiveDefinite = errors.New("eigen: matrix is not positive definite")

	// ErrOddDimension indicates a paraunitary diagonalization was requested
	// for an odd dimension, which cannot split into particle/hole halves.
	ErrOddDimension = errors.New("eigen: paraunitary dimension must be even")

	// ErrNegativeEigenvalue indicates a sign-corrected eigenvalue was
	// negative under the square root, typically an ill-conditioned or
	// unphysical input.
	ErrNegativeEigenvalue = errors.New("eigen: negative eigenvalue under square root")

	// ErrEigenFailed indicates the underlying symmetric eigensolver did not
	// converge or the complex eigenvectors could not be recovered.
	ErrEigenFailed = errors.New("eigen: eigendecomposition failed")
)
