// Package apperr defines the error taxonomy shared by the conversion steps.
// Every failure is terminal for the run; the code tells the driver how to
// report it.
package apperr

import (
	"errors"
	"fmt"
)

// Error codes.
var (
	ErrUsage       = errors.New("usage error")
	ErrIO          = errors.New("io error")
	ErrFormat      = errors.New("format error")
	ErrConsistency = errors.New("consistency error")
)

// Error wraps an original cause with a code and a readable message.
type Error struct {
	orig error
	code error
	msg  string
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

// Is reports a match against the error code, so errors.Is works for both
// the code and the wrapped cause.
func (e *Error) Is(target error) bool {
	return e.code == target
}

// Code returns one of the Err* sentinels.
func (e *Error) Code() error {
	return e.code
}

// Wrapf builds an Error. orig may be nil.
func Wrapf(orig error, code error, format string, a ...any) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

// Usagef, Formatf and Consistencyf are shorthands for errors without a cause.
func Usagef(format string, a ...any) error {
	return Wrapf(nil, ErrUsage, format, a...)
}

func Formatf(format string, a ...any) error {
	return Wrapf(nil, ErrFormat, format, a...)
}

func Consistencyf(format string, a ...any) error {
	return Wrapf(nil, ErrConsistency, format, a...)
}

// CodeOf returns the code of the first *Error in the chain, or nil.
func CodeOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}

	return nil
}
