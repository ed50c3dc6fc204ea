package linearkf

import (
	"github.com/golkf/linearkf/matrix"
	"github.com/golkf/linearkf/noise"
	"github.com/golkf/linearkf/storage"
)

// Storage bundles every caller-provided backing region the filter needs,
// both the persistent working matrices and the scratch regions the
// primitive layer stages aliased multiplies through.
//
// Scratch descriptors (TempXHat, TempBu, TempMeasurement) may legally be
// shared across filter instances that are never invoked concurrently; the
// persistent descriptors must not be shared.
type Storage struct {
	// X and P back the filter's current state and covariance.
	X, P storage.Descriptor

	// TempXHat is scratch of at least n scalars, reused across predict's
	// F*X and F*P steps and update's K*Y step.
	TempXHat storage.Descriptor
	// TempBu is scratch of at least n scalars, required only when the
	// configuration declares a control matrix B.
	TempBu storage.Descriptor
	// TempMeasurement is scratch of at least k scalars, passed as aux to
	// update's H*P_Ht, P_Ht*S_inv and K*H steps.
	TempMeasurement storage.Descriptor

	// PHt, Y, S, SInv, K, KH and KHP are persistent intermediates used
	// only within update, but bound once at initialization like every
	// other working matrix.
	PHt, Y, S, SInv, K, KH, KHP storage.Descriptor
}

// Config is the immutable, caller-owned bundle of matrices and storage
// descriptors a Filter is built from. Config must outlive the Filter built
// from it: a Filter holds a reference to it, not a copy.
type Config struct {
	// XInit is the initial state estimate, shape (n, 1).
	XInit *matrix.View
	// F is the state transition matrix, shape (n, n).
	F *matrix.View
	// B is the optional control input matrix, shape (n, m). Nil means the
	// filter has no control input and Predict must be called with a nil u.
	B *matrix.View
	// Q is the process-noise covariance, shape (n, n).
	Q noise.Covariance
	// PInit is the initial state covariance, shape (n, n).
	PInit noise.Covariance
	// H is the measurement matrix, shape (k, n).
	H *matrix.View
	// R is the measurement-noise covariance, shape (k, k).
	R noise.Covariance

	// Storage holds the backing regions for every working matrix.
	Storage Storage
}
