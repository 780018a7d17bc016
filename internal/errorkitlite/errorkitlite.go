package errorkitlite

import (
	"errors"
	"fmt"
)

// Error is a string based error type that allows declaring error values as constants.
//
//	const ErrSomething errorkitlite.Error = "something went wrong"
type Error string

func (err Error) Error() string { return string(err) }

// F will format a detailed error message, while keeping Error as the error's identity for errors.Is.
func (err Error) F(format string, a ...any) error {
	return W{E: err, W: fmt.Errorf(format, a...)}
}

// Recover will attempt a recover, and if recovery yields a value, it sets it as an error.
//
// Usage:
//
//	defer errorkitlite.Recover(&returnError)
func Recover(returnErr *error) {
	r := recover()
	if r == nil {
		return
	}
	switch r := r.(type) {
	case error:
		*returnErr = r
	default:
		*returnErr = fmt.Errorf("%v", r)
	}
}

// W wraps a detail error under a constant Error.
type W struct {
	E Error
	W error
}

func (w W) Error() string {
	var msg string
	if w.W != nil {
		msg = w.W.Error()
	}
	return fmt.Sprintf("[%s] %s", w.E, msg)
}

func (w W) As(target any) bool {
	if errors.As(w.E, target) {
		return true
	}
	if errors.As(w.W, target) {
		return true
	}
	return false
}

func (w W) Is(target error) bool {
	if errors.Is(w.E, target) {
		return true
	}
	if errors.Is(w.W, target) {
		return true
	}
	return false
}

func (w W) Unwrap() error { return w.W }
