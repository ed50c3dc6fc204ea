// Package estimate provides a read-only copy of a filter's state estimate
// and covariance, generalized from github.com/milosgajdos/go-estimate's
// estimate.Base to sit alongside (rather than replace) the engine's
// in-place mutation of its working matrices.
package estimate

import "github.com/golkf/linearkf/matrix"

// Snapshot is an owned copy of a state vector and covariance matrix taken at
// one instant. Unlike the views Predict and Update mutate in place, a
// Snapshot is safe for a caller to hold across the next Predict or Update
// call.
type Snapshot struct {
	x matrix.View
	p matrix.View
}

// New copies x and p into a new, independently-backed Snapshot.
func New(x, p matrix.View) (*Snapshot, error) {
	xData := append([]float64(nil), x.RawData()...)
	pData := append([]float64(nil), p.RawData()...)

	xView, err := matrix.NewView(x.Rows(), x.Cols(), xData)
	if err != nil {
		return nil, err
	}
	pView, err := matrix.NewView(p.Rows(), p.Cols(), pData)
	if err != nil {
		return nil, err
	}

	return &Snapshot{x: xView, p: pView}, nil
}

// State returns the snapshotted state vector.
func (s *Snapshot) State() matrix.View { return s.x }

// Cov returns the snapshotted covariance matrix.
func (s *Snapshot) Cov() matrix.View { return s.p }
