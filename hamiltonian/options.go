package hamiltonian

// DefaultAtol is the near-zero threshold conventionally added to the
// diagonal before a Cholesky-based diagonalization: the library numeric
// tolerance (1e−12) divided by five.
const DefaultAtol = 1e-12 / 5

// Options configures matrix assembly.
//
// Fields:
//   - Atol — non-negative value added to every diagonal entry to guard the
//     later Cholesky factorization against negative-definite rounding
//     noise. Leave zero unless a non-trivial commutator will be used for
//     diagonalization; DefaultAtol is the conventional choice then.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Atol = DefaultAtol // bosonic/phononic BdG assembly
//	h, err := Assemble(kind, stats, terms, table, k, &opts)
type Options struct {
	Atol float64
}

// DefaultOptions returns the assembly defaults: no diagonal guard.
func DefaultOptions() Options {
	return Options{Atol: 0}
}
