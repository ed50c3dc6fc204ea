package matrix

import "fmt"

// Mul computes dst = a*b, where a is p x q, b is q x r and dst is p x r.
//
// dst is permitted to alias a or b. When it does, aux must hold at least
// max(a.Cols(), a.Rows()) scalars; Mul uses it to stage one row or column of
// the aliased operand before that memory is overwritten, so the result is
// always equivalent to a non-aliasing multiply. When dst aliases neither
// operand, aux is unused and may be nil.
func Mul(dst, a, b View, aux []float64) error {
	if a.cols != b.rows {
		return fmt.Errorf("matrix: mul shape mismatch: %dx%d * %dx%d", a.rows, a.cols, b.rows, b.cols)
	}
	if dst.rows != a.rows || dst.cols != b.cols {
		return fmt.Errorf("matrix: mul destination shape mismatch: want %dx%d, got %dx%d", a.rows, b.cols, dst.rows, dst.cols)
	}

	aliasA := overlaps(dst, a)
	aliasB := overlaps(dst, b)

	if !aliasA && !aliasB {
		dst.Dense().Mul(a.Dense(), b.Dense())
		return nil
	}

	if aliasB && !aliasA {
		// dst overwrites b: stage one column of b at a time. Each output
		// column depends only on the corresponding column of b, so the
		// snapshot only ever needs b.rows (== a.cols) scalars.
		need := b.rows
		if len(aux) < need {
			return fmt.Errorf("matrix: mul aliasing b requires aux of at least %d scalars, got %d", need, len(aux))
		}
		col := aux[:need]
		for j := 0; j < b.cols; j++ {
			for r := 0; r < b.rows; r++ {
				col[r] = b.At(r, j)
			}
			for i := 0; i < a.rows; i++ {
				var sum float64
				for c := 0; c < a.cols; c++ {
					sum += a.At(i, c) * col[c]
				}
				dst.Set(i, j, sum)
			}
		}
		return nil
	}

	// dst overwrites a (or both): stage one row of a at a time. Each output
	// row depends only on the corresponding row of a.
	need := a.cols
	if len(aux) < need {
		return fmt.Errorf("matrix: mul aliasing a requires aux of at least %d scalars, got %d", need, len(aux))
	}
	row := aux[:need]
	for i := 0; i < a.rows; i++ {
		for c := 0; c < a.cols; c++ {
			row[c] = a.At(i, c)
		}
		for j := 0; j < b.cols; j++ {
			var sum float64
			for c := 0; c < a.cols; c++ {
				sum += row[c] * b.At(c, j)
			}
			dst.Set(i, j, sum)
		}
	}
	return nil
}

// MulTransB computes dst = a*b^T, where a is p x q, b is r x q and dst is
// p x r. dst is permitted to alias a, which is the case the predict step
// needs for P <- P*F'; aux, if long enough, is used to stage the aliased
// row, avoiding an allocation on the hot path. A nil or short aux falls
// back to an internally allocated scratch row.
func MulTransB(dst, a, b View, aux []float64) error {
	if a.cols != b.cols {
		return fmt.Errorf("matrix: mul_transb shape mismatch: %dx%d * (%dx%d)'", a.rows, a.cols, b.rows, b.cols)
	}
	if dst.rows != a.rows || dst.cols != b.rows {
		return fmt.Errorf("matrix: mul_transb destination shape mismatch: want %dx%d, got %dx%d", a.rows, b.rows, dst.rows, dst.cols)
	}

	if !overlaps(dst, a) && !overlaps(dst, b) {
		dst.Dense().Mul(a.Dense(), b.Dense().T())
		return nil
	}

	need := a.cols
	row := aux
	if len(row) < need {
		row = make([]float64, need)
	} else {
		row = row[:need]
	}
	for i := 0; i < a.rows; i++ {
		for c := 0; c < a.cols; c++ {
			row[c] = a.At(i, c)
		}
		for j := 0; j < b.rows; j++ {
			var sum float64
			for c := 0; c < a.cols; c++ {
				sum += row[c] * b.At(j, c)
			}
			dst.Set(i, j, sum)
		}
	}
	return nil
}

// AddInPlace computes a += b. a and b must have identical shape.
func AddInPlace(a, b View) error {
	if !a.SameShape(b) {
		return fmt.Errorf("matrix: add_inplace shape mismatch: %dx%d vs %dx%d", a.rows, a.cols, b.rows, b.cols)
	}
	for i := 0; i < len(a.data); i++ {
		a.data[i] += b.data[i]
	}
	return nil
}

// Sub computes dst = a - b. All three must have identical shape; dst may
// alias a or b since the operation is purely elementwise.
func Sub(dst, a, b View) error {
	if !a.SameShape(b) || !a.SameShape(dst) {
		return fmt.Errorf("matrix: sub shape mismatch: dst %dx%d, a %dx%d, b %dx%d", dst.rows, dst.cols, a.rows, a.cols, b.rows, b.cols)
	}
	for i := range dst.data {
		dst.data[i] = a.data[i] - b.data[i]
	}
	return nil
}

// SubInPlaceB computes b = a - b, the minuend-first form the innovation
// step needs (z - H*x, where b already holds H*x).
func SubInPlaceB(a, b View) error {
	if !a.SameShape(b) {
		return fmt.Errorf("matrix: sub_inplace_b shape mismatch: %dx%d vs %dx%d", a.rows, a.cols, b.rows, b.cols)
	}
	for i := range b.data {
		b.data[i] = a.data[i] - b.data[i]
	}
	return nil
}

// CopyInto copies src into dst elementwise. Shapes must match.
func CopyInto(dst, src View) error {
	if !dst.SameShape(src) {
		return fmt.Errorf("matrix: copy shape mismatch: %dx%d vs %dx%d", dst.rows, dst.cols, src.rows, src.cols)
	}
	copy(dst.data, src.data)
	return nil
}
