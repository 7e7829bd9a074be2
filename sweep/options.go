package sweep

import "github.com/wwangnju/tightbind/hamiltonian"

// Options configures a sweep.
//
// Fields:
//   - Atol — diagonal guard forwarded to assembly at points whose
//     diagonalization uses a non-trivial commutator; systems without a
//     commutator never apply it. DefaultOptions sets the conventional
//     hamiltonian.DefaultAtol.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Atol = 1e-10 // a noisier model needs a wider guard
//	res, err := Run(path, sys, &opts)
type Options struct {
	Atol float64
}

// DefaultOptions returns the sweep defaults.
func DefaultOptions() Options {
	return Options{Atol: hamiltonian.DefaultAtol}
}
