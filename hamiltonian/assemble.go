package hamiltonian

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/wwangnju/tightbind/quadratic"
)

// Assemble folds terms into the N×N dense complex Hermitian matrix of one
// evaluation point, N = table.Size().
//
// Algorithm:
//  1. Start from an N×N zero matrix.
//  2. For each term: phase = 1 if momentum is nil, else exp(−i·momentum·r);
//     look up s1 = table[Left.Dagger()], s2 = table[Right] and accumulate
//     matrix[s1, s2] += Coefficient·phase.
//  3. ParticleHole kind: a (creation, annihilation) term is additionally
//     mirrored into the nambu-swapped location
//     (table[Right.Dagger()], table[Left]) with a conjugated phase and a
//     sign of +1 for bosonic/phononic statistics, −1 for fermionic — the
//     redundant doubled-basis representation required by BdG.
//  4. Phononic statistics: lookups use the raw labels on both sides;
//     self-paired terms (s1 == s2) contribute twice the coefficient to the
//     diagonal, pairs populate (s1,s2) and (s2,s1) with the value and its
//     conjugate.
//  5. opts.Atol is added to every diagonal entry, then the matrix is read
//     through the upper triangle: H[j,i] = conj(H[i,j]) for i < j and the
//     diagonal is forced real.
//
// Errors: ErrNilTable, ErrBadAtol, ErrDimensionMismatch (momentum and
// displacement lengths differ), quadratic.ErrUnknownIndex (wrapped) for a
// label absent from the table, quadratic.ErrBadKind (wrapped) for the
// Analytical kind, which supplies its matrix directly.
//
// An empty term sequence yields the all-zero N×N matrix.
// Complexity: O(T + N²) time, O(N²) memory.
func Assemble(
	kind quadratic.Kind,
	statistics quadratic.Statistics,
	terms []quadratic.Operator,
	table *quadratic.Table,
	momentum []float64,
	opts *Options,
) (*mat.CDense, error) {
	// Stage 1: Validate input.
	if table == nil {
		return nil, ErrNilTable
	}
	if kind != quadratic.Ordinary && kind != quadratic.ParticleHole {
		return nil, fmt.Errorf("Assemble: kind %s: %w", kind, quadratic.ErrBadKind)
	}
	atol := 0.0
	if opts != nil {
		if opts.Atol < 0 {
			return nil, ErrBadAtol
		}
		atol = opts.Atol
	}

	n := table.Size()
	h := mat.NewCDense(n, n, nil)

	// Mirror sign for the particle-hole doubled representation.
	sign := complex128(1)
	if statistics == quadratic.Fermionic {
		sign = -1
	}

	// Stage 2: Accumulate terms.
	for ti, term := range terms {
		phase, err := phaseFactor(momentum, term.Displacement)
		if err != nil {
			return nil, fmt.Errorf("Assemble: term %d: %w", ti, err)
		}
		value := term.Coefficient * phase

		if statistics == quadratic.Phononic {
			// Phonon operators are self-adjoint; no nambu conjugation on lookup.
			s1, err := table.Sequence(term.Left)
			if err != nil {
				return nil, fmt.Errorf("Assemble: term %d: %w", ti, err)
			}
			s2, err := table.Sequence(term.Right)
			if err != nil {
				return nil, fmt.Errorf("Assemble: term %d: %w", ti, err)
			}
			if s1 == s2 {
				h.Set(s1, s1, h.At(s1, s1)+2*value)
			} else {
				h.Set(s1, s2, h.At(s1, s2)+value)
				h.Set(s2, s1, h.At(s2, s1)+cmplx.Conj(value))
			}

			continue
		}

		s1, err := table.Sequence(term.Left.Dagger())
		if err != nil {
			return nil, fmt.Errorf("Assemble: term %d: %w", ti, err)
		}
		s2, err := table.Sequence(term.Right)
		if err != nil {
			return nil, fmt.Errorf("Assemble: term %d: %w", ti, err)
		}
		h.Set(s1, s2, h.At(s1, s2)+value)

		// Stage 3: Particle-hole mirror of (creation, annihilation) terms.
		if kind == quadratic.ParticleHole &&
			term.Left.Nambu == quadratic.Creation &&
			term.Right.Nambu == quadratic.Annihilation {
			r1, err := table.Sequence(term.Right.Dagger())
			if err != nil {
				return nil, fmt.Errorf("Assemble: term %d: %w", ti, err)
			}
			r2, err := table.Sequence(term.Left)
			if err != nil {
				return nil, fmt.Errorf("Assemble: term %d: %w", ti, err)
			}
			h.Set(r1, r2, h.At(r1, r2)+sign*term.Coefficient*cmplx.Conj(phase))
		}
	}

	// Stage 4: Diagonal guard, then the Hermitian upper-triangle read.
	for i := 0; i < n; i++ {
		h.Set(i, i, complex(real(h.At(i, i))+atol, 0))
		for j := i + 1; j < n; j++ {
			h.Set(j, i, cmplx.Conj(h.At(i, j)))
		}
	}

	return h, nil
}

// phaseFactor computes exp(−i·momentum·r). A nil momentum or a nil
// displacement yields 1; mismatched non-empty lengths error.
func phaseFactor(momentum, r []float64) (complex128, error) {
	if momentum == nil || len(r) == 0 {
		return 1, nil
	}
	if len(momentum) != len(r) {
		return 0, ErrDimensionMismatch
	}
	dot := 0.0
	for d := range momentum {
		dot += momentum[d] * r[d]
	}

	return cmplx.Exp(complex(0, -dot)), nil
}
