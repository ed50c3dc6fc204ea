// Package noise represents the process- and measurement-noise (and initial
// state) covariance matrices the filter engine consumes, generalized from
// github.com/milosgajdos/go-estimate's noise.Gaussian.
//
// Covariance never samples: the engine it backs is a deterministic linear
// Kalman filter that consumes Q and R directly as matrices and never draws
// disturbances from them. The sampling idiom lives in internal/testgen
// instead, where it is exactly what is needed to build randomized test
// fixtures.
package noise

import (
	"fmt"
	"math"

	"github.com/golkf/linearkf/matrix"
)

// Covariance wraps a square matrix view used as a noise or initial-state
// covariance.
type Covariance struct {
	view matrix.View
}

// New wraps view as a Covariance, failing if it is not square.
func New(view matrix.View) (Covariance, error) {
	if view.Rows() != view.Cols() {
		return Covariance{}, fmt.Errorf("noise: covariance must be square, got %dx%d", view.Rows(), view.Cols())
	}
	return Covariance{view: view}, nil
}

// View returns the underlying matrix view.
func (c Covariance) View() matrix.View { return c.view }

// IsZero reports whether c is the zero-value Covariance (unset).
func (c Covariance) IsZero() bool { return c.view.IsZero() }

// Size returns the covariance's side length.
func (c Covariance) Size() int { return c.view.Rows() }

// Symmetric reports whether the covariance is symmetric within tol. This is
// a diagnostic used by tests, not a condition the validator enforces: there
// is no error kind for "asymmetric covariance", and rejecting one outright
// would be inventing a failure mode the error taxonomy does not define.
func (c Covariance) Symmetric(tol float64) bool {
	n := c.view.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(c.view.At(i, j)-c.view.At(j, i)) > tol {
				return false
			}
		}
	}
	return true
}

// String implements the Stringer interface.
func (c Covariance) String() string {
	return fmt.Sprintf("Covariance%v", matrix.Format(c.view))
}
