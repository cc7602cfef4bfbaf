// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package cerrors defines the shared error taxonomy used by every codec
// package in this module.
package cerrors

// Kind classifies why a codec operation failed.
type Kind int

const (
	// InvalidArgument is raised for a null/zero-sized required buffer, a
	// bit width out of range, or a type mismatch.
	InvalidArgument Kind = iota
	// InsufficientOutputSpace is raised when an encode requires more bytes
	// than the caller-supplied capacity.
	InsufficientOutputSpace
	// EndOfData is raised when a decoder reaches the documented value
	// count cleanly. Not a bug.
	EndOfData
	// MalformedInput is raised for any stream inconsistency: truncated
	// varint, a bit-packed run requiring bytes past the input end, a
	// prefix length exceeding the previous value, an index beyond
	// dictionary size, a Bloom size that isn't a block multiple, a delta
	// header with a zero block size, an RLE run claiming a length that
	// would exceed the remaining bytes.
	MalformedInput
	// ResourceExhausted is raised when a dictionary or reconstruction
	// buffer cannot grow.
	ResourceExhausted
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case InsufficientOutputSpace:
		return "insufficient output space"
	case EndOfData:
		return "end of data"
	case MalformedInput:
		return "malformed input"
	case ResourceExhausted:
		return "resource exhausted"
	default:
		return "unknown"
	}
}

// Error is the wrapper type for errors raised by this module's codecs.
type Error struct {
	Kind Kind
	Msg  string
}

func (e Error) Error() string { return "carquet: " + e.Kind.String() + ": " + e.Msg }

// Is reports whether target is an Error of the same Kind, ignoring Msg, so
// errors.Is(err, cerrors.ErrCorrupt) matches any MalformedInput error.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Kind == e.Kind
}

// New constructs an Error of the given Kind.
func New(k Kind, msg string) error { return Error{Kind: k, Msg: msg} }

var (
	// ErrEndOfData is the canonical EndOfData sentinel.
	ErrEndOfData error = Error{Kind: EndOfData, Msg: "decoder exhausted its value count"}
	// ErrCorrupt is the canonical MalformedInput sentinel for a generically
	// corrupt stream; codecs that can be more specific construct their own
	// Error{Kind: MalformedInput, ...} instead.
	ErrCorrupt error = Error{Kind: MalformedInput, Msg: "stream is corrupted"}
)
