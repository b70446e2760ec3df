// Copyright (c) 2021, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package path

import (
	"strings"

	"jsouthworth.net/go/try"
)

// New parses a path string into a Path. New will panic with an *Error
// if the path is malformed; use Parse for the error returning form.
// Paths are parsed eagerly so that invalid and forbidden segments are
// rejected before any traversal is attempted.
func New(path string) *Path {
	if p, ok := cacheFind(path); ok {
		return p
	}
	p := (&Path{}).parse(path)
	cacheAdd(path, p)
	return p
}

// Parse parses a path string into a Path, converting parse failures
// into errors. The returned error wraps one of the package's
// sentinel errors and can be inspected with errors.Is.
func Parse(path string) (p *Path, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, isError := r.(error)
		if !isError {
			panic(r)
		}
		p, err = nil, e
	}()
	return New(path), nil
}

// Valid reports whether the supplied string is a parsable path.
func Valid(path string) bool {
	_, err := try.Apply(New, path)
	return err == nil
}

// Path is a parsed dot/bracket path expression such as
// "profile.settings[0].theme". Semantically it is an ordered sequence
// of segments, each either a property name or a decimal array index.
// Paths are immutable once parsed.
//
// Paths match the following grammar:
//     path     = segment *(("." segment) / index) / index *(("." segment) / index)
//     segment  = (ALPHA / "_" / "$") *(ALPHA / DIGIT / "_" / "$")
//     index    = "[" 1*DIGIT "]"
type Path struct {
	tokens []string
}

// parse implements the path grammar by rewriting bracketed indices
// into dot segments and splitting on dots. Errors are reported by
// panicking with an *Error, which Parse and Valid recover at the API
// boundary.
func (p *Path) parse(input string) *Path {
	if input == "" {
		panic(pathError(input, "", ErrEmptyPath))
	}
	var rewritten strings.Builder
	for i := 0; i < len(input); i++ {
		switch c := input[i]; c {
		case '[':
			end := strings.IndexByte(input[i:], ']')
			if end == -1 {
				panic(pathError(input, input[i:],
					ErrInvalidFormat))
			}
			index := input[i+1 : i+end]
			if !isDecimal(index) {
				panic(pathError(input, input[i:i+end+1],
					ErrInvalidFormat))
			}
			rewritten.WriteByte('.')
			rewritten.WriteString(index)
			i += end
		case ']':
			panic(pathError(input, "]", ErrInvalidFormat))
		default:
			rewritten.WriteByte(c)
		}
	}
	s := rewritten.String()
	if input[0] == '[' {
		// The path began with an index; drop exactly the one
		// leading dot the rewrite introduced.
		s = s[1:]
	}
	tokens := strings.Split(s, ".")
	for _, token := range tokens {
		p.checkToken(input, token)
	}
	p.tokens = tokens
	return p
}

func (p *Path) checkToken(input, token string) {
	if token == "" {
		panic(pathError(input, token, ErrInvalidFormat))
	}
	switch token {
	case "__proto__", "constructor", "prototype":
		panic(pathError(input, token, ErrForbiddenKey))
	}
	if isDecimal(token) || isIdentifier(token) {
		return
	}
	panic(pathError(input, token, ErrInvalidKey))
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isIdentifier(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_' || c == '$':
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}

// Tokens returns the path's segments in order. The returned slice is
// a copy; callers may modify it freely.
func (p *Path) Tokens() []string {
	out := make([]string, len(p.tokens))
	copy(out, p.tokens)
	return out
}

// Len returns the number of segments in the path.
func (p *Path) Len() int {
	return len(p.tokens)
}

// At returns the segment at the supplied position.
func (p *Path) At(i int) string {
	return p.tokens[i]
}

// Leaf returns the final segment, the one a write assigns into.
func (p *Path) Leaf() string {
	return p.tokens[len(p.tokens)-1]
}

// Branch returns the path to the leaf's parent container. A
// single-segment path has an empty branch.
func (p *Path) Branch() *Path {
	return &Path{tokens: p.tokens[:len(p.tokens)-1]}
}

// String formats the path in its canonical form, with decimal
// segments rendered in bracket notation.
func (p *Path) String() string {
	return p.canonical()
}

func (p *Path) canonical() string {
	var b strings.Builder
	for i, token := range p.tokens {
		switch {
		case isDecimal(token):
			b.WriteByte('[')
			b.WriteString(token)
			b.WriteByte(']')
		case i == 0:
			b.WriteString(token)
		default:
			b.WriteByte('.')
			b.WriteString(token)
		}
	}
	return b.String()
}

// Equal determines whether two paths address the same location. It
// implements a common equality interface so other must be interface{}.
func (p *Path) Equal(other interface{}) bool {
	op, isPath := other.(*Path)
	if !isPath || len(op.tokens) != len(p.tokens) {
		return false
	}
	for i, token := range p.tokens {
		if op.tokens[i] != token {
			return false
		}
	}
	return true
}
