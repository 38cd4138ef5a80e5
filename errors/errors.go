package errors

import "fmt"

// Errno identifies the specific error.
type Errno int

// Values holds the arguments substituted into a Errno's message template.
type Values []interface{}

// GochipError is the error type used throughout gochip8.
type GochipError struct {
	Errno  Errno
	Values Values
}

// New creates a GochipError from an Errno and its message arguments.
func New(errno Errno, values ...interface{}) GochipError {
	return GochipError{Errno: errno, Values: values}
}

func (e GochipError) Error() string {
	return fmt.Sprintf(messages[e.Errno], e.Values...)
}

// ErrnoValue returns e's Errno. It exists so that types embedding
// GochipError (such as chip.Fault) promote it and so satisfy errnoer
// without Is having to know about those wrapper types.
func (e GochipError) ErrnoValue() Errno {
	return e.Errno
}

// errnoer is implemented by any error carrying an Errno, whether it is a
// bare GochipError or a type that embeds one.
type errnoer interface {
	ErrnoValue() Errno
}

// Is reports whether err carries the given Errno, directly or via an
// embedded GochipError.
func Is(err error, errno Errno) bool {
	ge, ok := err.(errnoer)
	if !ok {
		return false
	}
	return ge.ErrnoValue() == errno
}
