// Copyright (c) 2021, AT&T Intellectual Property.
//
// SPDX-License-Identifier: MPL-2.0

// Package path parses dot/bracket path expressions, such as
// "profile.settings[0].theme", into ordered segment sequences. A
// segment is either a property name or a decimal array index written
// in bracket notation. Parsing is strict: empty paths, empty
// segments, non-numeric bracket contents, and segments that are not
// plain identifiers are all rejected, as are the property names used
// for prototype pollution attacks (__proto__, constructor,
// prototype). Every segment of a path is validated at parse time, so
// a Path that parses successfully is safe to traverse with.
package path
