package sweep

import "errors"

var (
	// ErrNilSystem indicates Run was called without a system configuration.
	ErrNilSystem = errors.New("sweep: system is nil")

	// ErrEmptyPath indicates an empty parameter path.
	ErrEmptyPath = errors.New("sweep: path must contain at least one point")

	// ErrNilTable indicates a term-based system was built without a
	// basis-index table.
	ErrNilTable = errors.New("sweep: table is nil")

	// ErrNilGenerator indicates a term-based system was built without a
	// term generator.
	ErrNilGenerator = errors.New("sweep: term generator is nil")

	// ErrNilMatrixFunc indicates an analytical system was built without a
	// matrix function.
	ErrNilMatrixFunc = errors.New("sweep: matrix function is nil")

	// ErrBadDimension indicates a non-positive analytical dimension, or a
	// matrix function returning a matrix of the wrong size.
	ErrBadDimension = errors.New("sweep: bad matrix dimension")
)
