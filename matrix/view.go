// Package matrix provides shape-checked dense matrix views over caller-owned
// backing slices, and the small set of arithmetic primitives the linear
// Kalman filter engine is built from.
//
// A View never allocates or copies its backing data: it borrows the slice
// passed to NewView for as long as the View is used. This mirrors the
// storage-descriptor model of the filter engine, where every working matrix
// is backed by memory the caller owns.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// View is a rows x cols matrix laid out in row-major order over a borrowed
// slice. It does not own the slice.
type View struct {
	rows, cols int
	data       []float64
}

// NewView wraps data as a rows x cols matrix view. data must hold at least
// rows*cols elements; only the first rows*cols are used.
func NewView(rows, cols int, data []float64) (View, error) {
	if rows <= 0 || cols <= 0 {
		return View{}, fmt.Errorf("matrix: invalid shape %dx%d", rows, cols)
	}
	need := rows * cols
	if data == nil || len(data) < need {
		return View{}, fmt.Errorf("matrix: insufficient backing data: need %d, have %d", need, len(data))
	}
	return View{rows: rows, cols: cols, data: data[:need]}, nil
}

// Rows returns the number of rows.
func (v View) Rows() int { return v.rows }

// Cols returns the number of columns.
func (v View) Cols() int { return v.cols }

// At returns the element at row r, column c.
func (v View) At(r, c int) float64 { return v.data[r*v.cols+c] }

// Set stores val at row r, column c.
func (v View) Set(r, c int, val float64) { v.data[r*v.cols+c] = val }

// RawData returns the view's backing slice. Callers must not retain it
// beyond the lifetime of the storage it was bound from.
func (v View) RawData() []float64 { return v.data }

// SameShape reports whether v and o have identical dimensions.
func (v View) SameShape(o View) bool {
	return v.rows == o.rows && v.cols == o.cols
}

// IsZero reports whether v is the zero-value View (unbound).
func (v View) IsZero() bool { return v.data == nil }

// Dense returns a *mat.Dense sharing v's backing slice. Mutations to the
// returned matrix are visible through v and vice versa.
func (v View) Dense() *mat.Dense {
	return mat.NewDense(v.rows, v.cols, v.data)
}

// overlaps reports whether a and b share the same backing array, detected by
// comparing the address of their first element. It does not detect partial
// overlap between two different slices of a larger array, which never
// happens for the descriptor-bound views this package operates on.
func overlaps(a, b View) bool {
	if len(a.data) == 0 || len(b.data) == 0 {
		return false
	}
	return &a.data[0] == &b.data[0]
}
