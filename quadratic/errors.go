package quadratic

import "errors"

var (
	// ErrOddDimension indicates a dimension that must split into two equal
	// particle/hole blocks was odd.
	ErrOddDimension = errors.New("quadratic: dimension must be even")

	// ErrDuplicateIndex indicates the same basis label appeared twice while
	// building a table; the mapping must stay bijective.
	ErrDuplicateIndex = errors.New("quadratic: duplicate basis index")

	// ErrUnknownIndex indicates a basis label absent from the table.
	ErrUnknownIndex = errors.New("quadratic: unknown basis index")

	// ErrSequenceRange indicates a sequence number outside [0, Size).
	ErrSequenceRange = errors.New("quadratic: sequence number out of range")

	// ErrBadKind indicates an invalid kind/statistics combination requested
	// at construction (e.g. a commutator for the Analytical kind).
	ErrBadKind = errors.New("quadratic: invalid kind/statistics combination")

	// ErrEmptyTable indicates a table was requested over zero labels.
	ErrEmptyTable = errors.New("quadratic: table must contain at least one label")
)
