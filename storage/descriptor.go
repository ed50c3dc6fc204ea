// Package storage describes the caller-provided, non-owning backing regions
// the filter engine binds its working matrices to.
package storage

import (
	"fmt"

	"github.com/golkf/linearkf/matrix"
)

// Descriptor is a (capacity, region) pair describing one scratch or
// persistent working matrix. Capacity counts scalar elements, not bytes,
// and is the value validated against a required minimum. Capacity may be
// smaller than len(Region) when a caller intentionally shares a larger
// backing array across descriptors; validation always trusts Capacity.
type Descriptor struct {
	Capacity int
	Region   []float64
}

// Sufficient reports whether d has a non-nil region with at least required
// scalars of capacity.
func (d Descriptor) Sufficient(required int) bool {
	return d.Region != nil && d.Capacity >= required
}

// Bind validates that d is sufficient for a rows x cols matrix and returns a
// View over its region. It never copies Region.
func (d Descriptor) Bind(rows, cols int) (matrix.View, error) {
	required := rows * cols
	if !d.Sufficient(required) {
		return matrix.View{}, fmt.Errorf("storage: descriptor has capacity %d, need %d", d.Capacity, required)
	}
	return matrix.NewView(rows, cols, d.Region)
}
