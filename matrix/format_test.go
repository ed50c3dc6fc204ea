package matrix

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert := assert.New(t)

	v := view(t, 2, 2, []float64{1.2, 3.4, 4.5, 6.7})
	out := fmt.Sprintf("%v", Format(v))

	assert.Contains(out, "1.2")
	assert.Contains(out, "6.7")
}
