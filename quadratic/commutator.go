package quadratic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Commutator selects the commutation matrix defining the inner-product
// structure for diagonalization, or nil when the Hamiltonian is
// diagonalized directly.
//
// Selection rules:
//   - Ordinary, any statistics            → nil (no structure needed).
//   - ParticleHole + Fermionic            → nil (fermionic BdG Hamiltonians
//     stay Hermitian; the ± symmetry lives in the doubled basis itself).
//   - ParticleHole + Bosonic              → diag(+1 ×n/2, −1 ×n/2).
//   - ParticleHole + Phononic             → [[0,−i],[i,0]] ⊗ I(n/2).
//
// Returns ErrOddDimension when a doubled structure is requested for odd n,
// and ErrBadKind for the Analytical kind or an unknown tag (analytical
// systems supply their matrix directly and carry no commutator).
// Pure function of its inputs. Complexity: O(n²) for the allocation.
func Commutator(kind Kind, statistics Statistics, n int) (*mat.CDense, error) {
	switch kind {
	case Ordinary:
		return nil, nil
	case ParticleHole:
		// handled below
	default:
		return nil, fmt.Errorf("Commutator: kind %s: %w", kind, ErrBadKind)
	}

	switch statistics {
	case Fermionic:
		return nil, nil
	case Bosonic:
		if n%2 != 0 {
			return nil, fmt.Errorf("Commutator: n=%d: %w", n, ErrOddDimension)
		}
		c := mat.NewCDense(n, n, nil)
		half := n / 2
		for i := 0; i < half; i++ {
			c.Set(i, i, 1)
			c.Set(half+i, half+i, -1)
		}

		return c, nil
	case Phononic:
		if n%2 != 0 {
			return nil, fmt.Errorf("Commutator: n=%d: %w", n, ErrOddDimension)
		}
		// Kronecker product of [[0,−i],[i,0]] with the (n/2)×(n/2) identity.
		c := mat.NewCDense(n, n, nil)
		half := n / 2
		for i := 0; i < half; i++ {
			c.Set(i, half+i, complex(0, -1))
			c.Set(half+i, i, complex(0, 1))
		}

		return c, nil
	default:
		return nil, fmt.Errorf("Commutator: statistics %s: %w", statistics, ErrBadKind)
	}
}
