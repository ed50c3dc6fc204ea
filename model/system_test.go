package model

import (
	"testing"

	"github.com/golkf/linearkf/matrix"
	"github.com/stretchr/testify/assert"
)

func mustView(t *testing.T, rows, cols int, data []float64) matrix.View {
	t.Helper()
	v, err := matrix.NewView(rows, cols, data)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	return v
}

func TestNewLinearSystemNoControl(t *testing.T) {
	assert := assert.New(t)

	f := mustView(t, 2, 2, []float64{1, 0.001, 0, 1})
	h := mustView(t, 1, 2, []float64{1, 0})

	sys, err := New(2, f, nil, h)
	assert.NoError(err)

	n, m, k := sys.Dims()
	assert.Equal(2, n)
	assert.Equal(0, m)
	assert.Equal(1, k)
	assert.False(sys.HasControl())
}

func TestNewLinearSystemWithControl(t *testing.T) {
	assert := assert.New(t)

	f := mustView(t, 2, 2, []float64{1, 0.001, 0, 1})
	b := mustView(t, 2, 2, []float64{1, 1, 1, 1})
	h := mustView(t, 1, 2, []float64{1, 0})

	sys, err := New(2, f, &b, h)
	assert.NoError(err)

	n, m, k := sys.Dims()
	assert.Equal(2, n)
	assert.Equal(2, m)
	assert.Equal(1, k)
	assert.True(sys.HasControl())
}

func TestNewLinearSystemBadShapes(t *testing.T) {
	assert := assert.New(t)

	badF := mustView(t, 1, 2, []float64{1, 0})
	h := mustView(t, 1, 2, []float64{1, 0})
	_, err := New(2, badF, nil, h)
	assert.Error(err)

	f := mustView(t, 2, 2, []float64{1, 0, 0, 1})
	badH := mustView(t, 1, 3, []float64{1, 0, 0})
	_, err = New(2, f, nil, badH)
	assert.Error(err)

	badB := mustView(t, 3, 2, make([]float64, 6))
	_, err = New(2, f, &badB, h)
	assert.Error(err)
}
