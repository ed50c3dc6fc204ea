package noise

import (
	"testing"

	"github.com/golkf/linearkf/matrix"
	"github.com/stretchr/testify/assert"
)

func TestNewCovariance(t *testing.T) {
	assert := assert.New(t)

	v, _ := matrix.NewView(2, 2, []float64{1, 0, 0, 1})
	c, err := New(v)
	assert.NoError(err)
	assert.Equal(2, c.Size())

	bad, _ := matrix.NewView(1, 2, []float64{1, 0})
	_, err = New(bad)
	assert.Error(err)
}

func TestSymmetric(t *testing.T) {
	assert := assert.New(t)

	sym, _ := matrix.NewView(2, 2, []float64{4, 2, 2, 3})
	c, err := New(sym)
	assert.NoError(err)
	assert.True(c.Symmetric(1e-9))

	asym, _ := matrix.NewView(2, 2, []float64{4, 2, 9, 3})
	c2, err := New(asym)
	assert.NoError(err)
	assert.False(c2.Symmetric(1e-9))
}

func TestString(t *testing.T) {
	assert := assert.New(t)

	v, _ := matrix.NewView(1, 1, []float64{1})
	c, _ := New(v)
	assert.Contains(c.String(), "Covariance")
}
