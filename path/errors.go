// Copyright (c) 2021, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package path

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPath is returned when the path string is empty.
	ErrEmptyPath = errors.New("empty path")

	// ErrInvalidFormat is returned for malformed path syntax:
	// consecutive dots, bare dots, empty segments, unterminated
	// brackets, or bracket contents that are not a decimal index.
	ErrInvalidFormat = errors.New("invalid path format")

	// ErrInvalidKey is returned when a segment is neither a decimal
	// index nor an identifier of the form [A-Za-z_$][A-Za-z0-9_$]*.
	ErrInvalidKey = errors.New("invalid property key")

	// ErrForbiddenKey is returned when a segment names one of the
	// disallowed properties. These names are always rejected, on every
	// segment of the path, before any traversal occurs.
	ErrForbiddenKey = errors.New("forbidden property key")
)

// Error is the error type produced by the parser. It records the
// full path and, where applicable, the offending segment.
type Error struct {
	Path    string
	Segment string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Segment != "" {
		return fmt.Sprintf("path %q: %s %q", e.Path, e.Err, e.Segment)
	}
	return fmt.Sprintf("path %q: %s", e.Path, e.Err)
}

// Unwrap returns the sentinel error this Error wraps.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the Error against its sentinel.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

func pathError(path, segment string, sentinel error) *Error {
	return &Error{Path: path, Segment: segment, Err: sentinel}
}
