// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package encoding enumerates the Parquet value encodings this module
// implements and is imported by the page orchestration layer to select a
// concrete encoding/* codec.
package encoding

// Encoding identifies a Parquet column encoding.
type Encoding int

const (
	Plain Encoding = iota
	RLE
	RLEDictionary
	DeltaBinaryPacked
	DeltaLengthByteArray
	DeltaByteArray
	ByteStreamSplit
)

func (e Encoding) String() string {
	switch e {
	case Plain:
		return "PLAIN"
	case RLE:
		return "RLE"
	case RLEDictionary:
		return "RLE_DICTIONARY"
	case DeltaBinaryPacked:
		return "DELTA_BINARY_PACKED"
	case DeltaLengthByteArray:
		return "DELTA_LENGTH_BYTE_ARRAY"
	case DeltaByteArray:
		return "DELTA_BYTE_ARRAY"
	case ByteStreamSplit:
		return "BYTE_STREAM_SPLIT"
	default:
		return "UNKNOWN"
	}
}
