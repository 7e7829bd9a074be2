package eigen

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// pivotTol is the relative pivot threshold below which the factorization
// treats the input as not positive definite.
const pivotTol = 1e-12

// Cholesky factorizes the Hermitian positive-definite matrix h into
// h = Uᴴ·U with U upper triangular and a real positive diagonal.
//
// gonum's Cholesky is real-only, so the complex factorization is done
// directly, column-oriented:
//
//	U[i,i] = sqrt(h[i,i] − Σ_{k<i} |U[k,i]|²)
//	U[i,j] = (h[i,j] − Σ_{k<i} conj(U[k,i])·U[k,j]) / U[i,i],  j > i
//
// A pivot at or below pivotTol relative to the largest diagonal entry of
// h means h is not positive definite within working precision; the
// offending pivot index is reported with ErrNotPositiveDefinite. An
// absolute zero test would let a semi-definite input slip through on
// rounding noise (an exact-zero pivot computes as ~1e−16) and feed a
// spurious near-zero spectrum downstream. Entries below the diagonal of h
// are never read.
// Complexity: O(n³) time, O(n²) memory.
func Cholesky(h *mat.CDense) (*mat.CDense, error) {
	n, cols := h.Dims()
	if n != cols {
		return nil, ErrNonSquare
	}

	maxDiag := 0.0
	for i := 0; i < n; i++ {
		if d := real(h.At(i, i)); d > maxDiag {
			maxDiag = d
		}
	}

	u := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s := h.At(i, j)
			for k := 0; k < i; k++ {
				s -= cmplx.Conj(u.At(k, i)) * u.At(k, j)
			}
			if j == i {
				d := real(s)
				if d <= pivotTol*maxDiag || math.IsNaN(d) {
					return nil, fmt.Errorf("Cholesky: pivot %d: %w", i, ErrNotPositiveDefinite)
				}
				u.Set(i, i, complex(math.Sqrt(d), 0))
			} else {
				u.Set(i, j, s/u.At(i, i))
			}
		}
	}

	return u, nil
}

// solveUpper solves U·X = B for X by back substitution, U upper triangular
// with a non-zero diagonal. Complexity: O(n³) for an n×n right-hand side.
func solveUpper(u, b *mat.CDense) *mat.CDense {
	n, cols := b.Dims()
	x := mat.NewCDense(n, cols, nil)
	for c := 0; c < cols; c++ {
		for i := n - 1; i >= 0; i-- {
			s := b.At(i, c)
			for k := i + 1; k < n; k++ {
				s -= u.At(i, k) * x.At(k, c)
			}
			x.Set(i, c, s/u.At(i, i))
		}
	}

	return x
}
