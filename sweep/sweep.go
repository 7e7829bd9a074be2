package sweep

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/wwangnju/tightbind/eigen"
)

// Run evaluates the system along path, in order, and collects one row of
// ascending eigenvalues per point.
//
// For each point i: the coordinate is derived (single-parameter value or
// 1-based position), the point's terms are generated and assembled (or the
// analytical matrix is fetched), the matrix is diagonalized with the
// system's commutator, and the sorted eigenvalues become row i of the
// result. Only one Hamiltonian is alive at a time; eigenvectors are
// discarded.
//
// A failing point aborts the whole sweep — the error wraps the underlying
// sentinel (e.g. eigen.ErrNotPositiveDefinite) and names the point index.
// Skipping a point instead would misalign the output rows, and retrying a
// deterministic numerical failure with identical inputs cannot succeed.
//
// Complexity: O(L·N³) time for L points of dimension N.
func Run(path []Point, sys *System, opts *Options) (*Result, error) {
	// Stage 1: Validate input.
	if sys == nil {
		return nil, ErrNilSystem
	}
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	n := sys.Dimension()
	res := &Result{
		Coordinates: make([]float64, len(path)),
		Energies:    mat.NewDense(len(path), n, nil),
	}

	// Stage 2: Sequential per-point evaluation.
	for i, pt := range path {
		res.Coordinates[i] = pt.coordinate(i)

		h, err := sys.matrixAt(pt, o.Atol)
		if err != nil {
			return nil, fmt.Errorf("sweep: point %d: %w", i, err)
		}

		vals, _, err := eigen.Diagonalize(h, sys.commutator)
		if err != nil {
			return nil, fmt.Errorf("sweep: point %d: %w", i, err)
		}

		sort.Float64s(vals)
		res.Energies.SetRow(i, vals)
	}

	return res, nil
}
