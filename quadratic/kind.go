package quadratic

// Kind tags the structural class of a system. It determines index-doubling
// rules, the basis metric, and which assembler/solver branch applies.
// Fixed at construction; never mutated.
//
//   - Ordinary     — particle-number-conserving Hamiltonian; the basis is
//     not doubled and the matrix is diagonalized directly.
//   - ParticleHole — Bogoliubov–de Gennes doubled basis (particle + hole
//     blocks of equal size); pairing terms are mirrored between blocks.
//   - Analytical   — the Hamiltonian matrix is supplied directly as a
//     function of the sweep parameters, bypassing term assembly.
type Kind int

const (
	// Ordinary is a particle-number-conserving (non-doubled) system.
	Ordinary Kind = iota

	// ParticleHole is a BdG system on the nambu-doubled basis.
	ParticleHole

	// Analytical is a system whose matrix is user-supplied per point.
	Analytical
)

// String returns the canonical tag name.
func (k Kind) String() string {
	switch k {
	case Ordinary:
		return "Ordinary"
	case ParticleHole:
		return "ParticleHole"
	case Analytical:
		return "Analytical"
	default:
		return "Kind(?)"
	}
}

// Statistics tags the exchange statistics of the basis operators.
// Together with Kind it selects the commutation matrix and the sign of the
// particle-hole mirror in the assembler.
type Statistics int

const (
	// Fermionic operators anticommute; BdG fermionic Hamiltonians are
	// Hermitian and need no commutator.
	Fermionic Statistics = iota

	// Bosonic operators commute; BdG bosonic systems require the signed
	// identity commutator and the paraunitary diagonalization.
	Bosonic

	// Phononic systems use displacement/momentum pairs with the
	// [[0,−i],[i,0]] ⊗ I commutation block.
	Phononic
)

// String returns the canonical tag name.
func (s Statistics) String() string {
	switch s {
	case Fermionic:
		return "Fermionic"
	case Bosonic:
		return "Bosonic"
	case Phononic:
		return "Phononic"
	default:
		return "Statistics(?)"
	}
}
