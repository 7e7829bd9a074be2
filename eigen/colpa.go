package eigen

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// negTol bounds the relative magnitude of a negative sign-corrected
// eigenvalue tolerated (and clamped to zero) before the square root.
const negTol = 1e-10

// Diagonalize decomposes the assembled Hamiltonian h.
//
// With a nil commutator it is plain Hermitian diagonalization: eigenvalues
// ascending, eigenvectors orthonormal (see Hermitian).
//
// With a commutator C it runs the paraunitary Colpa procedure required
// when the excitation operators are non-orthogonal (bosonic/phononic BdG):
//
//  1. Cholesky h = Uᴴ·U — fails with ErrNotPositiveDefinite when h is not
//     positive definite (an unphysical or misconfigured Hamiltonian).
//  2. K = U·C·Uᴴ, hermitized against rounding.
//  3. Hermitian eigendecomposition of K → λ ascending, vectors Q. K is
//     congruent to C, so λ splits into n/2 negative and n/2 positive
//     values; an odd dimension fails with ErrOddDimension.
//  4. The negative (hole) half is negated and the particle branch is
//     returned first: the eigenvalue vector reads (ω₁…ω_m, ω₁…ω_m), both
//     halves ascending. A value that stays negative beyond tolerance under
//     the square root fails with ErrNegativeEigenvalue.
//  5. V = U⁻¹·Q·diag(√λ), computed by triangular back substitution. V is
//     not orthonormal; under the C-metric its columns are orthogonal with
//     the particle columns normalized to +1 and the hole columns to −1, so
//     Vᴴ·C·V is the signed identity — equal to C itself whenever C is the
//     bosonic signed-identity commutator.
//
// Complexity: O(n³) time, O(n²) memory.
func Diagonalize(h, commutator *mat.CDense) ([]float64, *mat.CDense, error) {
	if commutator == nil {
		return Hermitian(h)
	}

	// Stage 1: Validate dimensions.
	n, cols := h.Dims()
	if n != cols {
		return nil, nil, ErrNonSquare
	}
	cr, cc := commutator.Dims()
	if cr != n || cc != n {
		return nil, nil, ErrDimensionMismatch
	}
	if n%2 != 0 {
		return nil, nil, fmt.Errorf("Diagonalize: n=%d: %w", n, ErrOddDimension)
	}
	m := n / 2

	// Stage 2: Cholesky factorization.
	u, err := Cholesky(h)
	if err != nil {
		return nil, nil, fmt.Errorf("Diagonalize: %w", err)
	}

	// Stage 3: K = U·C·Uᴴ, hermitized.
	k := mulc(mulc(u, commutator), u.H())
	hermitize(k)

	// Stage 4: Hermitian eigendecomposition of K.
	w, q, err := Hermitian(k)
	if err != nil {
		return nil, nil, fmt.Errorf("Diagonalize: %w", err)
	}

	// Stage 5: Sign-correct the hole branch, particle branch first.
	scale := math.Max(math.Abs(w[0]), math.Abs(w[n-1]))
	if scale < 1 {
		scale = 1
	}
	vals := make([]float64, n)
	for i := 0; i < m; i++ {
		vals[i] = w[m+i]
		vals[m+i] = -w[m-1-i]
	}
	for i, v := range vals {
		if v < -negTol*scale {
			return nil, nil, fmt.Errorf("Diagonalize: value %d = %g: %w", i, v, ErrNegativeEigenvalue)
		}
		if v < 0 {
			vals[i] = 0
		}
	}

	// Stage 6: V = U⁻¹ · Q(reordered) · diag(√λ).
	b := mat.NewCDense(n, n, nil)
	for col := 0; col < n; col++ {
		src := m + col
		if col >= m {
			src = m - 1 - (col - m)
		}
		root := complex(math.Sqrt(vals[col]), 0)
		for r := 0; r < n; r++ {
			b.Set(r, col, q.At(r, src)*root)
		}
	}

	return vals, solveUpper(u, b), nil
}

// mulc returns the dense product a·b. gonum's complex dense type carries
// no multiplication (products live in cblas128), so the product is formed
// directly. Complexity: O(n³).
func mulc(a, b mat.CMatrix) *mat.CDense {
	ar, ac := a.Dims()
	_, bc := b.Dims()
	out := mat.NewCDense(ar, bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < bc; j++ {
			var s complex128
			for k := 0; k < ac; k++ {
				s += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, s)
		}
	}

	return out
}

// hermitize forces exact Hermiticity in place: the matched off-diagonal
// pair is replaced by its Hermitian average and the diagonal is made real.
func hermitize(a *mat.CDense) {
	n, _ := a.Dims()
	for i := 0; i < n; i++ {
		a.Set(i, i, complex(real(a.At(i, i)), 0))
		for j := i + 1; j < n; j++ {
			avg := 0.5 * (a.At(i, j) + cmplx.Conj(a.At(j, i)))
			a.Set(i, j, avg)
			a.Set(j, i, cmplx.Conj(avg))
		}
	}
}
