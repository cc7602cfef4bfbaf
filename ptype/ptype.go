// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package ptype enumerates the Parquet primitive physical types that every
// codec in this module is polymorphic over.
package ptype

// Type identifies a Parquet primitive physical type.
type Type int

const (
	Boolean Type = iota
	Int32
	Int64
	Int96
	Float
	Double
	ByteArray
	FixedLenByteArray
)

func (t Type) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Int96:
		return "INT96"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case ByteArray:
		return "BYTE_ARRAY"
	case FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// ByteWidth reports the in-memory byte width of a fixed-width type and
// whether the type is in fact fixed-width. BYTE_ARRAY is variable length and
// returns (0, false). FIXED_LEN_BYTE_ARRAY's width is configured by the
// caller and is not knowable from the Type alone, so it also returns
// (0, false); callers that need FIXED_LEN_BYTE_ARRAY's width must carry it
// alongside the Type (e.g. as a typeLength parameter).
func (t Type) ByteWidth() (n int, fixed bool) {
	switch t {
	case Boolean:
		return 1, false // packed 8/byte; caller must not assume 1 value/byte
	case Int32, Float:
		return 4, true
	case Int64, Double:
		return 8, true
	case Int96:
		return 12, true
	default:
		return 0, false
	}
}
