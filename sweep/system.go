package sweep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/wwangnju/tightbind/hamiltonian"
	"github.com/wwangnju/tightbind/quadratic"
)

// TermGenerator derives the expanded operator terms for one evaluation
// point from its named parameters. Generators must be pure: each call
// returns a fresh term slice and mutates nothing shared, which keeps sweep
// points independent.
type TermGenerator func(params map[string]float64) ([]quadratic.Operator, error)

// MatrixFunc supplies the Hamiltonian matrix of an analytical system
// directly, bypassing term assembly. The returned matrix must be Hermitian
// and of the system's fixed dimension.
type MatrixFunc func(params map[string]float64, momentum []float64) (*mat.CDense, error)

// System is the immutable configuration shared read-only by all sweep
// evaluations: kind, statistics, basis table, the commutation matrix
// selected once at construction, and the per-point term source.
type System struct {
	kind       quadratic.Kind
	statistics quadratic.Statistics
	table      *quadratic.Table
	generate   TermGenerator
	matrix     MatrixFunc
	commutator *mat.CDense
	dim        int
}

// NewSystem builds a term-based (Ordinary or ParticleHole) system
// configuration. The commutation matrix is selected here, once; an invalid
// kind/statistics combination or an odd doubled dimension fails at
// construction and is never retried.
// Returns ErrNilTable, ErrNilGenerator, or the wrapped quadratic sentinels.
func NewSystem(
	kind quadratic.Kind,
	statistics quadratic.Statistics,
	table *quadratic.Table,
	generate TermGenerator,
) (*System, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	if generate == nil {
		return nil, ErrNilGenerator
	}

	commutator, err := quadratic.Commutator(kind, statistics, table.Size())
	if err != nil {
		return nil, fmt.Errorf("NewSystem: %w", err)
	}

	return &System{
		kind:       kind,
		statistics: statistics,
		table:      table,
		generate:   generate,
		commutator: commutator,
		dim:        table.Size(),
	}, nil
}

// NewAnalytical builds a system whose dim×dim Hamiltonian is supplied
// directly by fn at every point. Analytical systems carry no commutator
// and are diagonalized as plain Hermitian matrices.
// Returns ErrBadDimension for dim < 1 and ErrNilMatrixFunc for a nil fn.
func NewAnalytical(dim int, fn MatrixFunc) (*System, error) {
	if dim < 1 {
		return nil, ErrBadDimension
	}
	if fn == nil {
		return nil, ErrNilMatrixFunc
	}

	return &System{
		kind:   quadratic.Analytical,
		matrix: fn,
		dim:    dim,
	}, nil
}

// Kind reports the system kind.
func (s *System) Kind() quadratic.Kind { return s.kind }

// Statistics reports the basis statistics tag.
func (s *System) Statistics() quadratic.Statistics { return s.statistics }

// Dimension reports the fixed Hilbert-space dimension N per evaluation.
func (s *System) Dimension() int { return s.dim }

// Commutator exposes the commutation matrix selected at construction, or
// nil when the system is diagonalized directly. Callers must treat it as
// read-only.
func (s *System) Commutator() *mat.CDense { return s.commutator }

// matrixAt produces the Hamiltonian of one point. For term-based systems
// the diagonal guard atol is forwarded to assembly only when a non-trivial
// commutator will be used afterwards.
func (s *System) matrixAt(pt Point, atol float64) (*mat.CDense, error) {
	if s.kind == quadratic.Analytical {
		h, err := s.matrix(pt.Params, pt.Momentum)
		if err != nil {
			return nil, err
		}
		r, c := h.Dims()
		if r != s.dim || c != s.dim {
			return nil, fmt.Errorf("matrix function returned %dx%d, want %dx%d: %w", r, c, s.dim, s.dim, ErrBadDimension)
		}

		return h, nil
	}

	terms, err := s.generate(pt.Params)
	if err != nil {
		return nil, err
	}
	opts := hamiltonian.Options{}
	if s.commutator != nil {
		opts.Atol = atol
	}

	return hamiltonian.Assemble(s.kind, s.statistics, terms, s.table, pt.Momentum, &opts)
}
