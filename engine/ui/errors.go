package ui

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the category of an Error.
type ErrorKind int

const (
	// KindConfiguration indicates the handler was drawn before it was fully configured.
	KindConfiguration ErrorKind = iota + 1
	// KindIndex indicates a widget lookup past the end of a collection.
	KindIndex
	// KindReleased indicates use of a frame scope after it was handed off or ended.
	KindReleased
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindIndex:
		return "index"
	case KindReleased:
		return "released"
	default:
		return "unknown"
	}
}

var (
	ErrNoActionFunc    = errors.New("buttons present but no action function set")
	ErrSliderIndex     = errors.New("slider index out of range")
	ErrSurfaceReleased = errors.New("drawing surface already released")
)

// Error is returned by every fallible ui operation.
type Error struct {
	// Op is the operation that failed (e.g. "Handler.Draw").
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("ui: %s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func indexError(op string, index, length int) error {
	return &Error{Op: op, Kind: KindIndex, Err: fmt.Errorf("%w: index %d, %d sliders", ErrSliderIndex, index, length)}
}
