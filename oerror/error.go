package oerror

import "fmt"

// Error is an error raised by the movement controller or one of its authoring-time validators.
type Error struct {
	Err   string
	cause error
}

// New returns an Error formatted with the given arguments. If one of the arguments is an error and the
// format uses %w, it is kept as the cause and can be retrieved with errors.Unwrap.
func New(format string, args ...any) *Error {
	wrapped := fmt.Errorf(format, args...)
	return &Error{Err: wrapped.Error(), cause: unwrapOnce(wrapped)}
}

func (e *Error) Error() string {
	return e.Err
}

func (e *Error) Unwrap() error {
	return e.cause
}

func unwrapOnce(err error) error {
	if u, ok := err.(interface{ Unwrap() error }); ok {
		return u.Unwrap()
	}
	return nil
}
