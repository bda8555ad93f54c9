package errors

import (
	"errors"
	"fmt"
)

// Basic error check functions from standard library
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// Sentinels matching any Error of the same Kind when used with Is
var (
	ErrRead      = &Error{Kind: KindRead}
	ErrParse     = &Error{Kind: KindParse}
	ErrConfig    = &Error{Kind: KindConfig}
	ErrActuation = &Error{Kind: KindActuation}
	ErrNetwork   = &Error{Kind: KindNetwork}
)

type Error struct {
	Kind Kind
	// Op describes what was attempted, e.g. "read /sys/class/thermal/thermal_zone0/temp"
	Op  string
	Err error
}

func (e *Error) Error() string {
	msg := Message(e.Kind)
	if e.Op != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Op)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an Error of the same Kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New creates an Error of the given kind with a formatted operation description
func New(kind Kind, format string, a ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Op:   fmt.Sprintf(format, a...),
	}
}

// Wrap creates an Error of the given kind wrapping err
func Wrap(kind Kind, err error, format string, a ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Op:   fmt.Sprintf(format, a...),
		Err:  err,
	}
}

// KindOf returns the Kind of the first Error in the chain of err, or an empty Kind
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
