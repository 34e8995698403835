package failure

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	KindInvalidArgument Kind = iota + 1
	KindSourceUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindSourceUnavailable:
		return "SourceUnavailable"
	default:
		return "Unknown"
	}
}

// Error is the only error type surfaced to the user. Every Error ends the run.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Cause() error {
	return e.cause
}

func (e *Error) Unwrap() error {
	return e.cause
}

func InvalidArgument(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindInvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}

func SourceUnavailable(cause error, format string, args ...interface{}) *Error {
	e := &Error{
		Kind:    KindSourceUnavailable,
		Message: fmt.Sprintf(format, args...),
	}
	if cause != nil {
		e.cause = errors.WithStack(cause)
	}
	return e
}

// KindOf reports the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
