// Package linearkf implements a linear Kalman filter over caller-owned,
// non-reallocated backing memory, generalized from
// github.com/milosgajdos/go-estimate's kalman/kf package and its root
// Filter/Propagator/Observer/Model interfaces.
//
// Every working and scratch matrix of a Filter is a matrix.View bound to a
// region the caller supplies in a Config's Storage, trading allocate-once
// convenience for the predictability a realtime or embedded caller needs.
// Predict and Update still allocate on the heap: each returns a newly
// allocated estimate.Snapshot, and Update's Cholesky factorization and
// inverse of S use gonum temporaries. There is exactly one filter here; the family of
// swappable filter interfaces a nonlinear (EKF/UKF) extension would need is
// collapsed, since that extension is out of scope.
package linearkf

import (
	"github.com/golkf/linearkf/estimate"
	"github.com/golkf/linearkf/matrix"
	"github.com/golkf/linearkf/model"
	"github.com/golkf/linearkf/storage"
)

// Filter is a linear Kalman filter bound to caller-owned backing memory. The
// zero value is not usable; a Filter is only produced by New.
type Filter struct {
	cfg         *Config
	initialized bool

	n, m, k int
	sys     *model.LinearSystem

	x, p matrix.View

	tempXHat        matrix.View
	tempBu          matrix.View
	tempMeasurement matrix.View

	pHt, y, s, sInv, gain, kH, kHP matrix.View
}

type storageSlot struct {
	name       string
	descriptor storage.Descriptor
	rows, cols int
}

// New validates cfg and returns a ready Filter bound to its storage, or an
// *Error describing the first failing precondition, in the validation order
// a caller can rely on: required pointers, then shapes, then storage
// sufficiency, then binding and copying the initial state.
//
// cfg must outlive the returned Filter. On error New returns (nil, err): no
// partially-bound Filter is ever handed back.
func New(cfg *Config) (*Filter, error) {
	if cfg == nil {
		return nil, wrapf(KindInvalidPointer, "config is nil")
	}
	if cfg.XInit == nil {
		return nil, wrapf(KindInvalidPointer, "XInit is nil")
	}
	if cfg.F == nil {
		return nil, wrapf(KindInvalidPointer, "F is nil")
	}
	if cfg.PInit.IsZero() {
		return nil, wrapf(KindInvalidPointer, "PInit is nil")
	}
	if cfg.Q.IsZero() {
		return nil, wrapf(KindInvalidPointer, "Q is nil")
	}
	if cfg.H == nil {
		return nil, wrapf(KindInvalidPointer, "H is nil")
	}
	if cfg.R.IsZero() {
		return nil, wrapf(KindInvalidPointer, "R is nil")
	}

	n := cfg.XInit.Rows()
	if cfg.XInit.Cols() != 1 {
		return nil, wrapf(KindInvalidDimensions, "XInit must have 1 column, got %d", cfg.XInit.Cols())
	}
	if cfg.F.Rows() != n || cfg.F.Cols() != n {
		return nil, wrapf(KindInvalidDimensions, "F must be %dx%d, got %dx%d", n, n, cfg.F.Rows(), cfg.F.Cols())
	}
	if cfg.PInit.Size() != n {
		return nil, wrapf(KindInvalidDimensions, "PInit must be %dx%d, got %dx%d", n, n, cfg.PInit.Size(), cfg.PInit.Size())
	}
	if cfg.Q.Size() != n {
		return nil, wrapf(KindInvalidDimensions, "Q must be %dx%d, got %dx%d", n, n, cfg.Q.Size(), cfg.Q.Size())
	}
	if cfg.H.Cols() != n {
		return nil, wrapf(KindInvalidDimensions, "H must have %d columns, got %d", n, cfg.H.Cols())
	}
	k := cfg.H.Rows()
	if cfg.R.Size() != k {
		return nil, wrapf(KindInvalidDimensions, "R must be %dx%d, got %dx%d", k, k, cfg.R.Size(), cfg.R.Size())
	}

	m := 0
	if cfg.B != nil {
		if cfg.B.Rows() != n {
			return nil, wrapf(KindInvalidDimensions, "B must have %d rows, got %d", n, cfg.B.Rows())
		}
		m = cfg.B.Cols()
	}

	sys, err := model.New(n, *cfg.F, cfg.B, *cfg.H)
	if err != nil {
		return nil, wrapf(KindInvalidDimensions, "%v", err)
	}

	slots := []storageSlot{
		{"X_storage", cfg.Storage.X, n, 1},
		{"P_storage", cfg.Storage.P, n, n},
		{"temp_x_hat", cfg.Storage.TempXHat, n, 1},
		{"temp_measurement", cfg.Storage.TempMeasurement, k, 1},
		{"P_Ht", cfg.Storage.PHt, n, k},
		{"Y", cfg.Storage.Y, k, 1},
		{"S", cfg.Storage.S, k, k},
		{"S_inv", cfg.Storage.SInv, k, k},
		{"K", cfg.Storage.K, n, k},
		{"K_H", cfg.Storage.KH, n, n},
		{"K_H_P", cfg.Storage.KHP, n, n},
	}
	if m > 0 {
		slots = append(slots, storageSlot{"temp_Bu", cfg.Storage.TempBu, n, 1})
	}

	views := make(map[string]matrix.View, len(slots))
	for _, slot := range slots {
		required := slot.rows * slot.cols
		if slot.descriptor.Region == nil {
			return nil, wrapf(KindInvalidPointer, "%s region is nil", slot.name)
		}
		if !slot.descriptor.Sufficient(required) {
			return nil, wrapf(KindStorageTooSmall, "%s needs %d scalars, has capacity %d", slot.name, required, slot.descriptor.Capacity)
		}
		v, err := slot.descriptor.Bind(slot.rows, slot.cols)
		if err != nil {
			return nil, wrapf(KindInvalidPointer, "%s: %v", slot.name, err)
		}
		views[slot.name] = v
	}

	f := &Filter{
		cfg:             cfg,
		n:               n,
		m:               m,
		k:               k,
		sys:             sys,
		x:               views["X_storage"],
		p:               views["P_storage"],
		tempXHat:        views["temp_x_hat"],
		tempMeasurement: views["temp_measurement"],
		pHt:             views["P_Ht"],
		y:               views["Y"],
		s:               views["S"],
		sInv:            views["S_inv"],
		gain:            views["K"],
		kH:              views["K_H"],
		kHP:             views["K_H_P"],
	}
	if m > 0 {
		f.tempBu = views["temp_Bu"]
	}

	if err := matrix.CopyInto(f.x, *cfg.XInit); err != nil {
		return nil, wrapf(KindInvalidDimensions, "copying XInit: %v", err)
	}
	if err := matrix.CopyInto(f.p, cfg.PInit.View()); err != nil {
		return nil, wrapf(KindInvalidDimensions, "copying PInit: %v", err)
	}

	f.initialized = true
	return f, nil
}

// Dims returns the state, control and measurement dimensions this filter
// was initialized with.
func (f *Filter) Dims() (n, m, k int) { return f.n, f.m, f.k }

// State returns the filter's current state view. It aliases the Filter's
// internal storage: Predict and Update mutate it in place. Callers that
// need a stable copy across calls should use package estimate.
func (f *Filter) State() matrix.View { return f.x }

// Cov returns the filter's current covariance view, with the same aliasing
// caveat as State.
func (f *Filter) Cov() matrix.View { return f.p }

// Predict advances the filter by one time step: X <- F*X (+ B*u), P <-
// F*P*F' + Q. u must be non-nil with shape (m, 1) when the configuration
// declares a control matrix, and nil otherwise. On success it returns an
// independent snapshot of the post-mutation state and covariance; f.State()
// and f.Cov() remain the authoritative, in-place views.
func (f *Filter) Predict(u *matrix.View) (*estimate.Snapshot, error) {
	if f == nil {
		return nil, wrapf(KindInvalidPointer, "filter is nil")
	}
	if !f.initialized {
		return nil, wrapf(KindNotInitialized, "Predict called before New succeeded")
	}
	if f.m == 0 {
		if u != nil {
			return nil, wrapf(KindControlMatrixNotEnabled, "Predict called with u but no control matrix was configured")
		}
	} else {
		if u == nil {
			return nil, wrapf(KindInvalidPointer, "u is nil but filter has a control matrix")
		}
		if u.Rows() != f.m || u.Cols() != 1 {
			return nil, wrapf(KindInvalidDimensions, "u must be %dx1, got %dx%d", f.m, u.Rows(), u.Cols())
		}
	}

	scratch := f.tempXHat.RawData()

	if err := matrix.Mul(f.x, f.sys.F, f.x, scratch); err != nil {
		return nil, wrapf(KindInvalidDimensions, "predict: F*X: %v", err)
	}

	if f.m > 0 {
		if err := matrix.Mul(f.tempBu, *f.sys.B, *u, nil); err != nil {
			return nil, wrapf(KindInvalidDimensions, "predict: B*u: %v", err)
		}
		if err := matrix.AddInPlace(f.x, f.tempBu); err != nil {
			return nil, wrapf(KindInvalidDimensions, "predict: X+Bu: %v", err)
		}
	}

	if err := matrix.Mul(f.p, f.sys.F, f.p, scratch); err != nil {
		return nil, wrapf(KindInvalidDimensions, "predict: F*P: %v", err)
	}
	if err := matrix.MulTransB(f.p, f.p, f.sys.F, scratch); err != nil {
		return nil, wrapf(KindInvalidDimensions, "predict: P*F': %v", err)
	}
	if err := matrix.AddInPlace(f.p, f.cfg.Q.View()); err != nil {
		return nil, wrapf(KindInvalidDimensions, "predict: P+Q: %v", err)
	}

	snap, err := estimate.New(f.x, f.p)
	if err != nil {
		return nil, wrapf(KindInvalidDimensions, "predict: snapshot: %v", err)
	}
	return snap, nil
}

// Update applies the measurement correction for z, shape (k, 1). mask, if
// non-nil, must have length k with every entry true: selective-validity row
// filtering of H and R is reserved for a future extension, so a mask with
// any false entry returns ErrMaskNotSupported rather than being silently
// ignored or half-applied. On success it returns an independent snapshot of
// the post-mutation state and covariance; f.State() and f.Cov() remain the
// authoritative, in-place views.
func (f *Filter) Update(z *matrix.View, mask []bool) (*estimate.Snapshot, error) {
	if f == nil {
		return nil, wrapf(KindInvalidPointer, "filter is nil")
	}
	if z == nil {
		return nil, wrapf(KindInvalidPointer, "z is nil")
	}
	if !f.initialized {
		return nil, wrapf(KindNotInitialized, "Update called before New succeeded")
	}
	if z.Rows() != f.k || z.Cols() != 1 {
		return nil, wrapf(KindInvalidDimensions, "z must be %dx1, got %dx%d", f.k, z.Rows(), z.Cols())
	}
	if mask != nil {
		if len(mask) != f.k {
			return nil, wrapf(KindInvalidDimensions, "mask must have length %d, got %d", f.k, len(mask))
		}
		for _, valid := range mask {
			if !valid {
				return nil, wrapf(KindMaskNotSupported, "partial measurement validity is not supported")
			}
		}
	}

	scratch := f.tempMeasurement.RawData()

	if err := matrix.Mul(f.y, f.sys.H, f.x, nil); err != nil {
		return nil, wrapf(KindInvalidDimensions, "update: H*X: %v", err)
	}
	if err := matrix.SubInPlaceB(*z, f.y); err != nil {
		return nil, wrapf(KindInvalidDimensions, "update: z-Y: %v", err)
	}

	if err := matrix.MulTransB(f.pHt, f.p, f.sys.H, nil); err != nil {
		return nil, wrapf(KindInvalidDimensions, "update: P*H': %v", err)
	}
	if err := matrix.Mul(f.s, f.sys.H, f.pHt, scratch); err != nil {
		return nil, wrapf(KindInvalidDimensions, "update: H*P_Ht: %v", err)
	}
	if err := matrix.AddInPlace(f.s, f.cfg.R.View()); err != nil {
		return nil, wrapf(KindInvalidDimensions, "update: S+R: %v", err)
	}

	if err := matrix.CholeskyDecomposeLower(f.s); err != nil {
		return nil, wrapf(KindInvalidDimensions, "update: cholesky(S): %v", err)
	}
	if err := matrix.SPDInverseFromLower(f.s, f.sInv); err != nil {
		return nil, wrapf(KindInvalidDimensions, "update: invert(S): %v", err)
	}
	if err := matrix.Mul(f.gain, f.pHt, f.sInv, scratch); err != nil {
		return nil, wrapf(KindInvalidDimensions, "update: P_Ht*S_inv: %v", err)
	}

	if err := matrix.Mul(f.tempXHat, f.gain, f.y, nil); err != nil {
		return nil, wrapf(KindInvalidDimensions, "update: K*Y: %v", err)
	}
	if err := matrix.AddInPlace(f.x, f.tempXHat); err != nil {
		return nil, wrapf(KindInvalidDimensions, "update: X+K*Y: %v", err)
	}

	if err := matrix.Mul(f.kH, f.gain, f.sys.H, scratch); err != nil {
		return nil, wrapf(KindInvalidDimensions, "update: K*H: %v", err)
	}
	if err := matrix.Mul(f.kHP, f.kH, f.p, f.tempXHat.RawData()); err != nil {
		return nil, wrapf(KindInvalidDimensions, "update: K_H*P: %v", err)
	}
	if err := matrix.Sub(f.p, f.p, f.kHP); err != nil {
		return nil, wrapf(KindInvalidDimensions, "update: P-K_H_P: %v", err)
	}

	snap, err := estimate.New(f.x, f.p)
	if err != nil {
		return nil, wrapf(KindInvalidDimensions, "update: snapshot: %v", err)
	}
	return snap, nil
}
