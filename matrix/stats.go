package matrix

import "gonum.org/v1/gonum/floats"

// RowSums returns a slice containing v's row sums, generalized from
// github.com/milosgajdos/go-estimate's matrix.RowSums to operate on a View
// instead of allocating a *mat.Dense.
func RowSums(v View) []float64 {
	sums := make([]float64, v.Rows())
	for r := 0; r < v.Rows(); r++ {
		row := v.data[r*v.cols : r*v.cols+v.cols]
		sums[r] = floats.Sum(row)
	}
	return sums
}

// ColSums returns a slice containing v's column sums.
func ColSums(v View) []float64 {
	sums := make([]float64, v.Cols())
	for r := 0; r < v.Rows(); r++ {
		for c := 0; c < v.Cols(); c++ {
			sums[c] += v.At(r, c)
		}
	}
	return sums
}
