package linearkf

import "fmt"

// ErrorKind identifies a class of failure from New, Predict or Update,
// mirroring a closed C-style enum as a small, named sum type.
type ErrorKind int

const (
	// KindNone is the zero value; no *Error ever carries it.
	KindNone ErrorKind = iota
	// KindInvalidPointer means a required reference (state, config, a
	// required matrix, a required storage region, a required input) was
	// nil.
	KindInvalidPointer
	// KindInvalidDimensions means a matrix's declared shape violates a
	// relationship the engine requires.
	KindInvalidDimensions
	// KindStorageTooSmall means a storage descriptor's capacity was less
	// than the required minimum for its role.
	KindStorageTooSmall
	// KindNotInitialized means Predict or Update was called before a
	// successful call to New.
	KindNotInitialized
	// KindControlMatrixNotEnabled means Predict was called with a non-nil
	// control input on a filter configured without a control matrix.
	KindControlMatrixNotEnabled
	// KindMaskNotSupported means Update was called with a measurement
	// validity mask that is not all-valid; see Update's documentation.
	KindMaskNotSupported
)

// String implements the Stringer interface.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidPointer:
		return "invalid pointer"
	case KindInvalidDimensions:
		return "invalid dimensions"
	case KindStorageTooSmall:
		return "storage too small"
	case KindNotInitialized:
		return "not initialized"
	case KindControlMatrixNotEnabled:
		return "control matrix not enabled"
	case KindMaskNotSupported:
		return "measurement validity mask not supported"
	default:
		return fmt.Sprintf("unknown error kind (%d)", int(k))
	}
}

// Error is the concrete error type returned by New, Predict and Update. Test
// and caller code should match on Kind via errors.Is against one of the
// sentinel Err* values below, not on the message text.
type Error struct {
	Kind ErrorKind
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is reports whether target is an *Error with the same Kind, so that
// errors.Is(err, linearkf.ErrNotInitialized) works regardless of Msg.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func wrapf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Sentinel errors, one per ErrorKind, for use with errors.Is.
var (
	ErrInvalidPointer          = &Error{Kind: KindInvalidPointer}
	ErrInvalidDimensions       = &Error{Kind: KindInvalidDimensions}
	ErrStorageTooSmall         = &Error{Kind: KindStorageTooSmall}
	ErrNotInitialized          = &Error{Kind: KindNotInitialized}
	ErrControlMatrixNotEnabled = &Error{Kind: KindControlMatrixNotEnabled}
	ErrMaskNotSupported        = &Error{Kind: KindMaskNotSupported}
)
