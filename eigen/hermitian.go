package eigen

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

const (
	// hermTol bounds the relative Hermiticity violation accepted on input.
	hermTol = 1e-10

	// clusterRel widens an eigenvalue cluster: values closer than
	// clusterRel·scale are treated as degenerate during vector recovery.
	clusterRel = 1e-9

	// dropTol is the Gram–Schmidt residual norm below which a candidate
	// vector is considered dependent and skipped.
	dropTol = 1e-7
)

// Hermitian computes the eigendecomposition of the complex Hermitian
// matrix h: eigenvalues in ascending order and orthonormal eigenvectors as
// the columns of the returned matrix.
//
// Algorithm:
//  1. Validate shape and Hermiticity (ErrNonSquare, ErrNotHermitian).
//  2. Embed h = A + iB into the real symmetric 2n×2n matrix
//     [[A, −B], [B, A]] and factorize it with gonum's EigenSym. Every
//     eigenvalue of h appears twice in the embedding, once for each of the
//     paired real vectors (x; y) and (−y; x) of the complex vector x + iy.
//  3. Collapse value pairs and recover one complex eigenvector per pair:
//     inside each cluster of (near-)degenerate values, candidates
//     z = x + iy are orthogonalized by modified Gram–Schmidt and dependent
//     candidates are dropped.
//
// Returns ErrEigenFailed if the symmetric factorization does not converge
// or a cluster yields fewer independent vectors than its multiplicity.
// Complexity: O(n³) time, O(n²) memory.
func Hermitian(h *mat.CDense) ([]float64, *mat.CDense, error) {
	n, cols := h.Dims()
	if n != cols {
		return nil, nil, ErrNonSquare
	}
	if err := checkHermitian(h); err != nil {
		return nil, nil, err
	}

	// Stage 1: Real-symmetric embedding.
	sym := mat.NewSymDense(2*n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			re := real(h.At(i, j))
			sym.SetSym(i, j, re)
			sym.SetSym(n+i, n+j, re)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sym.SetSym(i, n+j, -imag(h.At(i, j)))
		}
	}

	// Stage 2: Symmetric eigendecomposition (ascending values).
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, ErrEigenFailed
	}
	w := es.Values(nil)
	var rv mat.Dense
	es.VectorsTo(&rv)

	// Stage 3: Collapse the doubled spectrum.
	vals := make([]float64, n)
	for p := 0; p < n; p++ {
		vals[p] = 0.5 * (w[2*p] + w[2*p+1])
	}

	// Stage 4: Recover complex eigenvectors cluster by cluster.
	scale := math.Max(math.Abs(w[0]), math.Abs(w[2*n-1]))
	if scale < 1 {
		scale = 1
	}
	ctol := clusterRel * scale

	vecs := mat.NewCDense(n, n, nil)
	for p := 0; p < n; {
		q := p + 1
		for q < n && vals[q]-vals[q-1] <= ctol {
			q++
		}
		if err := recoverCluster(&rv, n, p, q, vecs); err != nil {
			return nil, nil, err
		}
		p = q
	}

	return vals, vecs, nil
}

// checkHermitian verifies h[i,j] == conj(h[j,i]) within hermTol.
func checkHermitian(h *mat.CDense) error {
	n, _ := h.Dims()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			a, b := h.At(i, j), h.At(j, i)
			if !scalar.EqualWithinAbsOrRel(real(a), real(b), hermTol, hermTol) ||
				!scalar.EqualWithinAbsOrRel(imag(a), -imag(b), hermTol, hermTol) {
				return ErrNotHermitian
			}
		}
	}

	return nil
}

// recoverCluster extracts q−p orthonormal complex eigenvectors for the
// degenerate value cluster [p, q) from the real embedding eigenvectors
// (columns 2p..2q−1 of rv) and stores them as columns p..q−1 of dst.
func recoverCluster(rv *mat.Dense, n, p, q int, dst *mat.CDense) error {
	want := q - p
	basis := make([][]complex128, 0, want)
	for c := 2 * p; c < 2*q && len(basis) < want; c++ {
		z := make([]complex128, n)
		for r := 0; r < n; r++ {
			z[r] = complex(rv.At(r, c), rv.At(n+r, c))
		}
		// Modified Gram–Schmidt against the accepted basis.
		for _, u := range basis {
			proj := cdot(u, z)
			for r := range z {
				z[r] -= proj * u[r]
			}
		}
		nrm := cnorm(z)
		if nrm <= dropTol {
			continue
		}
		inv := complex(1/nrm, 0)
		for r := range z {
			z[r] *= inv
		}
		basis = append(basis, z)
	}
	if len(basis) != want {
		return ErrEigenFailed
	}
	for k, z := range basis {
		for r := 0; r < n; r++ {
			dst.Set(r, p+k, z[r])
		}
	}

	return nil
}

// cdot returns the complex inner product Σ conj(u[r])·z[r].
func cdot(u, z []complex128) complex128 {
	var s complex128
	for r := range u {
		ur := u[r]
		s += complex(real(ur), -imag(ur)) * z[r]
	}

	return s
}

// cnorm returns the Euclidean norm of z.
func cnorm(z []complex128) float64 {
	s := 0.0
	for _, v := range z {
		s += real(v)*real(v) + imag(v)*imag(v)
	}

	return math.Sqrt(s)
}
