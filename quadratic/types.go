package quadratic

// Nambu distinguishes the annihilation and creation halves of a doubled
// (BdG) basis. Ordinary (non-doubled) bases label every state with
// Annihilation.
type Nambu int

const (
	// Annihilation tags the particle (annihilation-operator) half.
	Annihilation Nambu = iota

	// Creation tags the hole (creation-operator) half.
	Creation
)

// String returns the canonical tag name.
func (n Nambu) String() string {
	switch n {
	case Annihilation:
		return "Annihilation"
	case Creation:
		return "Creation"
	default:
		return "Nambu(?)"
	}
}

// Index identifies one basis state: a lattice site, an orbital, a spin
// projection and a nambu attribute. Index is a comparable value type and is
// used directly as a table key.
type Index struct {
	Site    int
	Orbital int
	Spin    int
	Nambu   Nambu
}

// Dagger returns the Hermitian-conjugate label: the same site/orbital/spin
// with the nambu attribute flipped.
// Complexity: O(1).
func (i Index) Dagger() Index {
	if i.Nambu == Annihilation {
		i.Nambu = Creation
	} else {
		i.Nambu = Annihilation
	}

	return i
}

// Operator is one expanded quadratic term c · O†(Left) O(Right), carrying
// the real-space displacement between the two states and a complex
// coefficient. Operators are immutable values; the term-expansion
// collaborator produces a fresh slice per evaluation point.
type Operator struct {
	// Left is the first (conjugated) basis label of the pair.
	Left Index

	// Right is the second basis label of the pair.
	Right Index

	// Displacement is the real-space vector between the two states,
	// dotted with the momentum to produce the phase factor.
	Displacement []float64

	// Coefficient is the complex amplitude of the term.
	Coefficient complex128
}
