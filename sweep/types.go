package sweep

import "gonum.org/v1/gonum/mat"

// Point is one evaluation point of a parameter path: a set of named
// numeric parameters handed to the term generator (or matrix function) and
// an optional momentum vector for the phase factors.
type Point struct {
	// Params are the named parameters of this point. A point with exactly
	// one parameter uses its value as the output coordinate.
	Params map[string]float64

	// Momentum is the momentum vector of this point; nil means no
	// momentum-dependent phases.
	Momentum []float64
}

// coordinate derives the scalar output coordinate of the point at
// 0-based path position i: the single numeric parameter value when the
// point has exactly one, otherwise the 1-based position.
func (p Point) coordinate(i int) float64 {
	if len(p.Params) == 1 {
		for _, v := range p.Params {
			return v
		}
	}

	return float64(i + 1)
}

// Result is the output of a sweep: one coordinate per path point and the
// matching rows of ascending eigenvalues. It is the sole externally
// visible product of the core and is laid out for direct plotting or
// serialization.
type Result struct {
	// Coordinates has one entry per path point, in path order.
	Coordinates []float64

	// Energies is the L×N matrix of eigenvalues; row i holds the sorted
	// (ascending) spectrum of path point i.
	Energies *mat.Dense
}
