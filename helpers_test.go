package linearkf

import (
	"github.com/golkf/linearkf/matrix"
	"github.com/golkf/linearkf/noise"
	"github.com/golkf/linearkf/storage"
)

// storageDescriptor builds a Descriptor whose Capacity tracks the actual
// length of region, so a test that shrinks a fixture's backing slice (to
// exercise storage-too-small rejection) doesn't need to separately update a
// claimed capacity.
func storageDescriptor(region []float64) storage.Descriptor {
	return storage.Descriptor{Capacity: len(region), Region: region}
}

// fixture bundles a Config together with the slices backing it, so tests
// can mutate the slices directly (e.g. to corrupt a storage capacity) and
// re-derive views without the fixture going stale.
type fixture struct {
	n, k, m int

	xInit, f, b, q, pInit, h, r []float64

	xStorage, pStorage                 []float64
	tempXHat, tempBu, tempMeasurement  []float64
	pHt, y, s, sInv, kMat, kH, kHP     []float64
}

// newFixture builds a fixture with exactly-sized storage for state
// dimension n, measurement dimension k and control dimension m (0 means no
// control matrix).
func newFixture(n, k, m int, xInit, f, b, q, pInit, h, r []float64) *fixture {
	fx := &fixture{
		n: n, k: k, m: m,
		xInit: xInit, f: f, b: b, q: q, pInit: pInit, h: h, r: r,
		xStorage:        make([]float64, n),
		pStorage:        make([]float64, n*n),
		tempXHat:        make([]float64, n),
		tempMeasurement: make([]float64, k),
		pHt:             make([]float64, n*k),
		y:               make([]float64, k),
		s:               make([]float64, k*k),
		sInv:            make([]float64, k*k),
		kMat:            make([]float64, n*k),
		kH:              make([]float64, n*n),
		kHP:             make([]float64, n*n),
	}
	if m > 0 {
		fx.tempBu = make([]float64, n)
	}
	return fx
}

func mustView(rows, cols int, data []float64) *matrix.View {
	v, err := matrix.NewView(rows, cols, data)
	if err != nil {
		panic(err)
	}
	return &v
}

func mustCovariance(size int, data []float64) noise.Covariance {
	v, err := matrix.NewView(size, size, data)
	if err != nil {
		panic(err)
	}
	c, err := noise.New(v)
	if err != nil {
		panic(err)
	}
	return c
}

// config builds a *Config from the fixture's current slices, so tests can
// mutate a slice (e.g. shrink xStorage) before calling config() again to
// observe the validator reject it.
func (fx *fixture) config() *Config {
	cfg := &Config{
		XInit: mustView(fx.n, 1, fx.xInit),
		F:     mustView(fx.n, fx.n, fx.f),
		Q:     mustCovariance(fx.n, fx.q),
		PInit: mustCovariance(fx.n, fx.pInit),
		H:     mustView(fx.k, fx.n, fx.h),
		R:     mustCovariance(fx.k, fx.r),
		Storage: Storage{
			X:               storageDescriptor(fx.xStorage),
			P:               storageDescriptor(fx.pStorage),
			TempXHat:        storageDescriptor(fx.tempXHat),
			TempMeasurement: storageDescriptor(fx.tempMeasurement),
			PHt:             storageDescriptor(fx.pHt),
			Y:               storageDescriptor(fx.y),
			S:               storageDescriptor(fx.s),
			SInv:            storageDescriptor(fx.sInv),
			K:               storageDescriptor(fx.kMat),
			KH:              storageDescriptor(fx.kH),
			KHP:             storageDescriptor(fx.kHP),
		},
	}
	if fx.m > 0 {
		cfg.B = mustView(fx.n, fx.m, fx.b)
		cfg.Storage.TempBu = storageDescriptor(fx.tempBu)
	}
	return cfg
}
