/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package ccittfax

import (
	"golang.org/x/xerrors"
)

// Kind classifies a decode failure. All decode errors are fatal: none are
// retried, and no partial line is ever delivered to the line callback once
// a Kind has been returned.
type Kind int

const (
	// UnexpectedEnd means the bit stream was exhausted mid-symbol.
	UnexpectedEnd Kind = iota
	// InvalidCode means no entry in the white, black or mode table
	// matched the upcoming bits.
	InvalidCode
	// MissingMarker means an expected EOL or EOFB marker was not found.
	MissingMarker
	// InvalidMode means a mode's dispatch could not be completed, such
	// as a transitions cursor that could not locate a required
	// reference position.
	InvalidMode
)

func (k Kind) String() string {
	switch k {
	case UnexpectedEnd:
		return "unexpected end of stream"
	case InvalidCode:
		return "invalid code"
	case MissingMarker:
		return "missing marker"
	case InvalidMode:
		return "invalid mode"
	default:
		return "unknown decode error"
	}
}

// Error is a fatal decode failure, tagged with the Kind of failure and the
// processing stage (e.g. "group4: eofb" or "run") in which it occurred.
type Error struct {
	Kind  Kind
	Stage string
	err   error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.Stage + ": " + e.Kind.String() + ": " + e.err.Error()
	}
	return e.Stage + ": " + e.Kind.String()
}

func (e *Error) Unwrap() error { return e.err }

// newError builds a decode Error, wrapping cause (which may be nil) with
// golang.org/x/xerrors so callers can still Is/As through to the
// underlying bitio sentinel.
func newError(kind Kind, stage string, cause error) *Error {
	var err error
	if cause != nil {
		err = xerrors.Errorf("%s: %w", stage, cause)
	}
	return &Error{Kind: kind, Stage: stage, err: err}
}
