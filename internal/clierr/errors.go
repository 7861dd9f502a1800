// Package clierr provides categorised errors for the changelog CLI.
// Every fatal condition surfaces as one of three kinds so the command line
// can report it consistently and pick an exit status.
package clierr

import (
	"errors"
	"fmt"
)

// Kind is the category of a fatal error.
type Kind int

const (
	// KindUnknown marks errors that were not produced by this package.
	KindUnknown Kind = iota
	// KindRange errors mean a revision reference could not be resolved.
	KindRange
	// KindConfiguration errors mean the requested setup is invalid, e.g. an unknown format.
	KindConfiguration
	// KindIO errors come from cloning a repository or writing output.
	KindIO
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindRange:
		return "Range Error"
	case KindConfiguration:
		return "Configuration Error"
	case KindIO:
		return "IO Error"
	default:
		return "Error"
	}
}

// Error is a categorised error with an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Range creates a KindRange error.
func Range(err error, format string, args ...any) *Error {
	return &Error{Kind: KindRange, Message: fmt.Sprintf(format, args...), Err: err}
}

// Configuration creates a KindConfiguration error.
func Configuration(err error, format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, Message: fmt.Sprintf(format, args...), Err: err}
}

// IO creates a KindIO error.
func IO(err error, format string, args ...any) *Error {
	return &Error{Kind: KindIO, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
