package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// CholeskyDecomposeLower overwrites the square, symmetric positive-definite
// view s with its lower Cholesky factor L, such that L*L' reconstructs the
// original s. Entries above the diagonal are set to zero, making s safe to
// feed into ops that read the full matrix, such as InvertLower.
//
// The factorization itself is delegated to gonum's mat.Cholesky, which is
// the companion library this primitive's contract assumes.
func CholeskyDecomposeLower(s View) error {
	if s.rows != s.cols {
		return fmt.Errorf("matrix: cholesky_decompose_lower requires a square matrix, got %dx%d", s.rows, s.cols)
	}
	n := s.rows

	sym := mat.NewSymDense(n, s.data)
	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return fmt.Errorf("matrix: cholesky_decompose_lower: matrix is not positive-definite")
	}

	tri := mat.NewTriDense(n, mat.Lower, s.data)
	chol.LTo(tri)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s.Set(i, j, 0)
		}
	}
	return nil
}

// InvertLower computes lInv = l^-1, assuming l is lower-triangular with a
// non-zero diagonal. The general-purpose inverse from gonum is used rather
// than a specialized triangular algorithm.
func InvertLower(l, lInv View) error {
	if l.rows != l.cols {
		return fmt.Errorf("matrix: invert_lower requires a square matrix, got %dx%d", l.rows, l.cols)
	}
	if !lInv.SameShape(l) {
		return fmt.Errorf("matrix: invert_lower destination shape mismatch: want %dx%d, got %dx%d", l.rows, l.cols, lInv.rows, lInv.cols)
	}

	dst := lInv.Dense()
	if err := dst.Inverse(l.Dense()); err != nil {
		return fmt.Errorf("matrix: invert_lower: %w", err)
	}
	return nil
}

// SPDInverseFromLower computes inv = (L*L')^-1 given L's lower Cholesky
// factor, using the identity (L*L')^-1 = L^-T * L^-1. This is the true
// inverse of the original symmetric positive-definite matrix, not merely
// L^-1, and is what the Kalman gain actually needs.
func SPDInverseFromLower(l, inv View) error {
	if l.rows != l.cols {
		return fmt.Errorf("matrix: spd_inverse_from_lower requires a square matrix, got %dx%d", l.rows, l.cols)
	}
	if !inv.SameShape(l) {
		return fmt.Errorf("matrix: spd_inverse_from_lower destination shape mismatch: want %dx%d, got %dx%d", l.rows, l.cols, inv.rows, inv.cols)
	}

	var linv mat.Dense
	if err := linv.Inverse(l.Dense()); err != nil {
		return fmt.Errorf("matrix: spd_inverse_from_lower: %w", err)
	}

	dst := inv.Dense()
	dst.Mul(linv.T(), &linv)
	return nil
}
