package hamiltonian

import "errors"

var (
	// ErrNilTable indicates a nil basis-index table was passed to Assemble.
	ErrNilTable = errors.New("hamiltonian: table is nil")

	// ErrDimensionMismatch indicates the momentum and a term displacement
	// have different lengths.
	ErrDimensionMismatch = errors.New("hamiltonian: momentum/displacement dimension mismatch")

	// ErrBadAtol indicates a negative diagonal tolerance.
	ErrBadAtol = errors.New("hamiltonian: Atol must be non-negative")
)
