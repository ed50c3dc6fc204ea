// Package model bundles the static matrices of a discrete linear system and
// derives and validates the dimensions they imply.
package model

import (
	"fmt"

	"github.com/golkf/linearkf/matrix"
)

// LinearSystem bundles the state transition F, an optional control matrix B,
// and the measurement matrix H of a discrete linear system, generalized from
// a full state-space (A, B, C, D) quadruple down to the three matrices a
// linear Kalman filter needs.
type LinearSystem struct {
	F matrix.View
	B *matrix.View
	H matrix.View

	n, m, k int
}

// New validates F, B (optional) and H against state dimension n and derives
// the number of controls m (0 if B is nil) and measurements k.
func New(n int, f matrix.View, b *matrix.View, h matrix.View) (*LinearSystem, error) {
	if f.Rows() != n || f.Cols() != n {
		return nil, fmt.Errorf("model: state transition matrix must be %dx%d, got %dx%d", n, n, f.Rows(), f.Cols())
	}
	if h.Cols() != n {
		return nil, fmt.Errorf("model: measurement matrix must have %d columns, got %d", n, h.Cols())
	}

	m := 0
	if b != nil {
		if b.Rows() != n {
			return nil, fmt.Errorf("model: control matrix must have %d rows, got %d", n, b.Rows())
		}
		m = b.Cols()
	}

	return &LinearSystem{F: f, B: b, H: h, n: n, m: m, k: h.Rows()}, nil
}

// Dims returns the state, control and measurement dimensions.
func (s *LinearSystem) Dims() (n, m, k int) { return s.n, s.m, s.k }

// HasControl reports whether the system declares a control matrix.
func (s *LinearSystem) HasControl() bool { return s.B != nil }
