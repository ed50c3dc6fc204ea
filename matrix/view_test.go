package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewView(t *testing.T) {
	assert := assert.New(t)

	v, err := NewView(2, 3, []float64{1, 2, 3, 4, 5, 6})
	assert.NoError(err)
	assert.Equal(2, v.Rows())
	assert.Equal(3, v.Cols())
	assert.Equal(5.0, v.At(1, 1))

	// extra backing capacity is fine, only the prefix is used
	v2, err := NewView(2, 2, []float64{1, 2, 3, 4, 5, 6})
	assert.NoError(err)
	assert.Equal(4, len(v2.RawData()))

	_, err = NewView(0, 2, []float64{1, 2})
	assert.Error(err)

	_, err = NewView(2, 2, []float64{1, 2})
	assert.Error(err)

	_, err = NewView(2, 2, nil)
	assert.Error(err)
}

func TestViewSetGet(t *testing.T) {
	assert := assert.New(t)

	v, err := NewView(2, 2, make([]float64, 4))
	assert.NoError(err)

	v.Set(0, 0, 1)
	v.Set(0, 1, 2)
	v.Set(1, 0, 3)
	v.Set(1, 1, 4)

	assert.Equal([]float64{1, 2, 3, 4}, v.RawData())
	assert.Equal(2.0, v.At(0, 1))
}

func TestSameShapeAndZero(t *testing.T) {
	assert := assert.New(t)

	a, _ := NewView(2, 2, make([]float64, 4))
	b, _ := NewView(2, 2, make([]float64, 4))
	c, _ := NewView(1, 4, make([]float64, 4))

	assert.True(a.SameShape(b))
	assert.False(a.SameShape(c))

	var z View
	assert.True(z.IsZero())
	assert.False(a.IsZero())
}

func TestOverlaps(t *testing.T) {
	assert := assert.New(t)

	data := make([]float64, 4)
	a, _ := NewView(2, 2, data)
	b, _ := NewView(2, 2, data)
	c, _ := NewView(2, 2, make([]float64, 4))

	assert.True(overlaps(a, b))
	assert.False(overlaps(a, c))
}
