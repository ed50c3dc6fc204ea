package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Format returns a fmt.Formatter for v, for use with %v in debug output and
// test failure messages.
func Format(v View) fmt.Formatter {
	return mat.Formatted(v.Dense(), mat.Prefix(""), mat.Squeeze())
}
