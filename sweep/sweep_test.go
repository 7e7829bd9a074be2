package sweep_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/wwangnju/tightbind/eigen"
	"github.com/wwangnju/tightbind/quadratic"
	"github.com/wwangnju/tightbind/sweep"
)

// chainSystem builds a one-band tight-binding chain: a single site per
// cell with hopping t to both neighbours, H(k) = 2t·cos k.
func chainSystem(t *testing.T, hop float64) *sweep.System {
	t.Helper()
	table, err := quadratic.NewTable([]quadratic.Index{{Site: 0}})
	require.NoError(t, err)

	gen := func(map[string]float64) ([]quadratic.Operator, error) {
		left := quadratic.Index{Site: 0, Nambu: quadratic.Creation}
		right := quadratic.Index{Site: 0}

		return []quadratic.Operator{
			{Left: left, Right: right, Displacement: []float64{1}, Coefficient: complex(hop, 0)},
			{Left: left, Right: right, Displacement: []float64{-1}, Coefficient: complex(hop, 0)},
		}, nil
	}

	sys, err := sweep.NewSystem(quadratic.Ordinary, quadratic.Fermionic, table, gen)
	require.NoError(t, err)

	return sys
}

// magnonSystem builds a single-site bosonic BdG system with on-site
// energy ε and a pairing amplitude read from the point parameter "delta".
func magnonSystem(t *testing.T, eps float64) *sweep.System {
	t.Helper()
	table, err := quadratic.NewTable([]quadratic.Index{
		{Site: 0, Nambu: quadratic.Annihilation},
		{Site: 0, Nambu: quadratic.Creation},
	})
	require.NoError(t, err)

	gen := func(params map[string]float64) ([]quadratic.Operator, error) {
		delta := params["delta"]

		return []quadratic.Operator{
			{ // ε b†b
				Left:        quadratic.Index{Site: 0, Nambu: quadratic.Creation},
				Right:       quadratic.Index{Site: 0, Nambu: quadratic.Annihilation},
				Coefficient: complex(eps, 0),
			},
			{ // Δ b†b†
				Left:        quadratic.Index{Site: 0, Nambu: quadratic.Creation},
				Right:       quadratic.Index{Site: 0, Nambu: quadratic.Creation},
				Coefficient: complex(delta, 0),
			},
			{ // Δ bb
				Left:        quadratic.Index{Site: 0, Nambu: quadratic.Annihilation},
				Right:       quadratic.Index{Site: 0, Nambu: quadratic.Annihilation},
				Coefficient: complex(delta, 0),
			},
		}, nil
	}

	sys, err := sweep.NewSystem(quadratic.ParticleHole, quadratic.Bosonic, table, gen)
	require.NoError(t, err)

	return sys
}

// TestRun_MomentumPath verifies the three-point momentum sweep: three
// coordinates, three rows, each row the cosine band value, rows in path
// order with positional coordinates.
func TestRun_MomentumPath(t *testing.T) {
	sys := chainSystem(t, 1)
	path := []sweep.Point{
		{Momentum: []float64{0}},
		{Momentum: []float64{math.Pi / 3}},
		{Momentum: []float64{math.Pi}},
	}

	res, err := sweep.Run(path, sys, nil)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, res.Coordinates, "no single parameter: 1-based positions")

	rows, cols := res.Energies.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 1, cols)
	assert.InDelta(t, 2, res.Energies.At(0, 0), 1e-10, "k=0 band top")
	assert.InDelta(t, 1, res.Energies.At(1, 0), 1e-10, "k=π/3")
	assert.InDelta(t, -2, res.Energies.At(2, 0), 1e-10, "k=π band bottom")
}

// TestRun_SingleParameterCoordinate verifies the coordinate rule: exactly
// one named parameter → its value becomes the coordinate.
func TestRun_SingleParameterCoordinate(t *testing.T) {
	sys := magnonSystem(t, 2)
	path := []sweep.Point{
		{Params: map[string]float64{"delta": 0.0}},
		{Params: map[string]float64{"delta": 0.5}},
		{Params: map[string]float64{"delta": 1.0}},
	}

	res, err := sweep.Run(path, sys, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, res.Coordinates, "single parameter value is the coordinate")

	for i, delta := range []float64{0, 0.5, 1} {
		omega := math.Sqrt(4 - delta*delta)
		assert.InDelta(t, omega, res.Energies.At(i, 0), 1e-8, "row %d lower branch", i)
		assert.InDelta(t, omega, res.Energies.At(i, 1), 1e-8, "row %d upper branch", i)
	}
}

// TestRun_RowsSortedAscending verifies each output row ascends.
func TestRun_RowsSortedAscending(t *testing.T) {
	table, err := quadratic.NewTable([]quadratic.Index{{Site: 0}, {Site: 1}})
	require.NoError(t, err)
	gen := func(map[string]float64) ([]quadratic.Operator, error) {
		return []quadratic.Operator{{
			Left:        quadratic.Index{Site: 0, Nambu: quadratic.Creation},
			Right:       quadratic.Index{Site: 1},
			Coefficient: complex(1.5, 0),
		}}, nil
	}
	sys, err := sweep.NewSystem(quadratic.Ordinary, quadratic.Fermionic, table, gen)
	require.NoError(t, err)

	res, err := sweep.Run([]sweep.Point{{}, {}}, sys, nil)
	require.NoError(t, err)

	rows, cols := res.Energies.Dims()
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		mat.Row(row, i, res.Energies)
		assert.True(t, sort.Float64sAreSorted(row), "row %d must ascend", i)
		assert.InDeltaSlice(t, []float64{-1.5, 1.5}, row, 1e-10)
	}
}

// TestRun_FailingPointAborts verifies a non-positive-definite point stops
// the sweep and is identified by index, with no partial result returned.
func TestRun_FailingPointAborts(t *testing.T) {
	sys := magnonSystem(t, 2)
	path := []sweep.Point{
		{Params: map[string]float64{"delta": 0.5}},
		{Params: map[string]float64{"delta": 2.5}}, // |Δ| ≥ ε: unphysical
	}

	res, err := sweep.Run(path, sys, nil)
	assert.Nil(t, res, "no partial result on failure")
	assert.ErrorIs(t, err, eigen.ErrNotPositiveDefinite)
	assert.ErrorContains(t, err, "point 1", "the offending point is identified")
}

// TestRun_Analytical verifies the analytical kind: the matrix function is
// evaluated per point and diagonalized directly.
func TestRun_Analytical(t *testing.T) {
	fn := func(_ map[string]float64, momentum []float64) (*mat.CDense, error) {
		h := mat.NewCDense(2, 2, nil)
		h.Set(0, 1, complex(math.Cos(momentum[0]), 0))
		h.Set(1, 0, complex(math.Cos(momentum[0]), 0))

		return h, nil
	}
	sys, err := sweep.NewAnalytical(2, fn)
	require.NoError(t, err)

	res, err := sweep.Run([]sweep.Point{
		{Momentum: []float64{0}},
		{Momentum: []float64{math.Pi}},
	}, sys, nil)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{-1, 1}, []float64{res.Energies.At(0, 0), res.Energies.At(0, 1)}, 1e-10)
	assert.InDeltaSlice(t, []float64{-1, 1}, []float64{res.Energies.At(1, 0), res.Energies.At(1, 1)}, 1e-10)
}

// TestRun_AnalyticalWrongDims verifies a matrix function returning the
// wrong size is rejected with the point identified.
func TestRun_AnalyticalWrongDims(t *testing.T) {
	fn := func(map[string]float64, []float64) (*mat.CDense, error) {
		return mat.NewCDense(3, 3, nil), nil
	}
	sys, err := sweep.NewAnalytical(2, fn)
	require.NoError(t, err)

	_, err = sweep.Run([]sweep.Point{{}}, sys, nil)
	assert.ErrorIs(t, err, sweep.ErrBadDimension)
}

// TestRun_Validation verifies the driver's input sentinels.
func TestRun_Validation(t *testing.T) {
	sys := chainSystem(t, 1)

	_, err := sweep.Run([]sweep.Point{{}}, nil, nil)
	assert.ErrorIs(t, err, sweep.ErrNilSystem)

	_, err = sweep.Run(nil, sys, nil)
	assert.ErrorIs(t, err, sweep.ErrEmptyPath)
}

// TestNewSystem_Validation verifies construction-time configuration errors.
func TestNewSystem_Validation(t *testing.T) {
	table, err := quadratic.NewTable([]quadratic.Index{{Site: 0}})
	require.NoError(t, err)
	gen := func(map[string]float64) ([]quadratic.Operator, error) { return nil, nil }

	_, err = sweep.NewSystem(quadratic.Ordinary, quadratic.Fermionic, nil, gen)
	assert.ErrorIs(t, err, sweep.ErrNilTable)

	_, err = sweep.NewSystem(quadratic.Ordinary, quadratic.Fermionic, table, nil)
	assert.ErrorIs(t, err, sweep.ErrNilGenerator)

	// Odd doubled dimension: the commutator selection fails at construction.
	_, err = sweep.NewSystem(quadratic.ParticleHole, quadratic.Bosonic, table, gen)
	assert.ErrorIs(t, err, quadratic.ErrOddDimension)

	// Analytical systems cannot be built through the term-based path.
	_, err = sweep.NewSystem(quadratic.Analytical, quadratic.Fermionic, table, gen)
	assert.ErrorIs(t, err, quadratic.ErrBadKind)
}

// TestNewAnalytical_Validation verifies analytical construction sentinels.
func TestNewAnalytical_Validation(t *testing.T) {
	_, err := sweep.NewAnalytical(0, func(map[string]float64, []float64) (*mat.CDense, error) { return nil, nil })
	assert.ErrorIs(t, err, sweep.ErrBadDimension)

	_, err = sweep.NewAnalytical(2, nil)
	assert.ErrorIs(t, err, sweep.ErrNilMatrixFunc)
}

// TestSystem_Accessors pins the exported configuration surface.
func TestSystem_Accessors(t *testing.T) {
	sys := magnonSystem(t, 2)
	assert.Equal(t, quadratic.ParticleHole, sys.Kind())
	assert.Equal(t, quadratic.Bosonic, sys.Statistics())
	assert.Equal(t, 2, sys.Dimension())
	require.NotNil(t, sys.Commutator(), "bosonic BdG carries the signed identity")
	assert.Equal(t, complex128(1), sys.Commutator().At(0, 0))
	assert.Equal(t, complex128(-1), sys.Commutator().At(1, 1))

	chain := chainSystem(t, 1)
	assert.Nil(t, chain.Commutator(), "ordinary systems carry no commutator")
}
