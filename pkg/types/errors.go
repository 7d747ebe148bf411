// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a pipeline failure by the stage that raised it.
type ErrorKind string

const (
	KindConfiguration ErrorKind = "configuration"
	KindExtraction    ErrorKind = "extraction"
	KindGeneration    ErrorKind = "generation"
	KindIO            ErrorKind = "io"
)

// Error is returned by every pipeline stage. Op names the failing
// operation ("read pdf", "parse response", ...) and Err carries the cause.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error of the same kind, so callers can write
// errors.Is(err, &types.Error{Kind: types.KindExtraction}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
}

// NewError builds an *Error of the given kind.
func NewError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func ConfigurationError(op string, err error) *Error { return NewError(KindConfiguration, op, err) }
func ExtractionError(op string, err error) *Error    { return NewError(KindExtraction, op, err) }
func GenerationError(op string, err error) *Error    { return NewError(KindGeneration, op, err) }
func IOError(op string, err error) *Error            { return NewError(KindIO, op, err) }

// KindOf returns the kind of the first *Error in err's chain, or "" when
// err carries none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
