// Package apperr defines the error type used for user-facing application
// errors
package apperr

import "fmt"

// Error is an application error with a message that may contain formatting
// verbs.
type Error struct {
	Cause   error
	parent  *Error
	Message string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

// Fmt returns a copy of the error with its message formatted using the
// provided arguments. The copy still matches the original through errors.Is.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		parent:  e,
	}
}

// Wrap returns a copy of the error that records err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		parent:  e,
	}
}

func (e *Error) Unwrap() []error {
	var errs []error

	if e.parent != nil {
		errs = append(errs, e.parent)
	}

	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}

	return errs
}
