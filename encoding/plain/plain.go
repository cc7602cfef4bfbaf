// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package plain implements Parquet's PLAIN encoding: a direct copy of each
// value's natural little-endian in-memory representation.
package plain

import (
	"encoding/binary"
	"math"

	"github.com/Vitruves/carquet-sub002/cerrors"
	"github.com/Vitruves/carquet-sub002/simd"
)

// EncodeBool packs values 8-per-byte, LSB-first, zero-padding the unused
// high bits of a partial trailing byte. Routed through the dispatch table
// per spec §4.11 ("boolean pack/unpack" is a dispatched operation).
func EncodeBool(values []bool) []byte {
	out := make([]byte, (len(values)+7)/8)
	simd.Get().BoolPack(values, out)
	return out
}

// DecodeBool unpacks n boolean values from src.
func DecodeBool(src []byte, n int) ([]bool, error) {
	if len(src) < (n+7)/8 {
		return nil, cerrors.New(cerrors.MalformedInput, "plain: bool buffer too short")
	}
	out := make([]bool, n)
	simd.Get().BoolUnpack(src, n, out)
	return out, nil
}

// EncodeInt32 writes each value as 4 little-endian bytes.
func EncodeInt32(values []int32) []byte {
	out := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[4*i:], uint32(v))
	}
	return out
}

// DecodeInt32 reads n little-endian int32 values from src.
func DecodeInt32(src []byte, n int) ([]int32, error) {
	if len(src) < 4*n {
		return nil, cerrors.New(cerrors.MalformedInput, "plain: int32 buffer too short")
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(src[4*i:]))
	}
	return out, nil
}

// EncodeInt64 writes each value as 8 little-endian bytes.
func EncodeInt64(values []int64) []byte {
	out := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(out[8*i:], uint64(v))
	}
	return out
}

// DecodeInt64 reads n little-endian int64 values from src.
func DecodeInt64(src []byte, n int) ([]int64, error) {
	if len(src) < 8*n {
		return nil, cerrors.New(cerrors.MalformedInput, "plain: int64 buffer too short")
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(binary.LittleEndian.Uint64(src[8*i:]))
	}
	return out, nil
}

// Int96 is three little-endian 32-bit lanes, in the documented order.
type Int96 [3]uint32

// EncodeInt96 writes each value as three little-endian 32-bit lanes.
func EncodeInt96(values []Int96) []byte {
	out := make([]byte, 12*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[12*i:], v[0])
		binary.LittleEndian.PutUint32(out[12*i+4:], v[1])
		binary.LittleEndian.PutUint32(out[12*i+8:], v[2])
	}
	return out
}

// DecodeInt96 reads n Int96 values from src.
func DecodeInt96(src []byte, n int) ([]Int96, error) {
	if len(src) < 12*n {
		return nil, cerrors.New(cerrors.MalformedInput, "plain: int96 buffer too short")
	}
	out := make([]Int96, n)
	for i := range out {
		out[i][0] = binary.LittleEndian.Uint32(src[12*i:])
		out[i][1] = binary.LittleEndian.Uint32(src[12*i+4:])
		out[i][2] = binary.LittleEndian.Uint32(src[12*i+8:])
	}
	return out, nil
}

// EncodeFloat writes each value as its IEEE-754 binary32 little-endian bit
// pattern, preserving NaN payloads and signed zero exactly.
func EncodeFloat(values []float32) []byte {
	out := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(v))
	}
	return out
}

// DecodeFloat reads n float32 values from src.
func DecodeFloat(src []byte, n int) ([]float32, error) {
	if len(src) < 4*n {
		return nil, cerrors.New(cerrors.MalformedInput, "plain: float buffer too short")
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[4*i:]))
	}
	return out, nil
}

// EncodeDouble writes each value as its IEEE-754 binary64 little-endian bit
// pattern, preserving NaN payloads and signed zero exactly.
func EncodeDouble(values []float64) []byte {
	out := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(out[8*i:], math.Float64bits(v))
	}
	return out
}

// DecodeDouble reads n float64 values from src.
func DecodeDouble(src []byte, n int) ([]float64, error) {
	if len(src) < 8*n {
		return nil, cerrors.New(cerrors.MalformedInput, "plain: double buffer too short")
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(src[8*i:]))
	}
	return out, nil
}

// ByteArrayValue is a borrowed (address, length) view into a decode buffer.
// Decode never copies; the slice aliases the page buffer handed to Decode.
type ByteArrayValue []byte

// EncodeByteArray writes each value as a 4-byte little-endian length
// followed by that many bytes.
func EncodeByteArray(values [][]byte) []byte {
	size := 0
	for _, v := range values {
		size += 4 + len(v)
	}
	out := make([]byte, size)
	off := 0
	for _, v := range values {
		binary.LittleEndian.PutUint32(out[off:], uint32(len(v)))
		off += 4
		off += copy(out[off:], v)
	}
	return out
}

// DecodeByteArray reads n length-prefixed byte array values from src. Each
// returned value borrows its bytes from src; src must outlive the result.
func DecodeByteArray(src []byte, n int) ([]ByteArrayValue, error) {
	out := make([]ByteArrayValue, n)
	off := 0
	for i := 0; i < n; i++ {
		if off+4 > len(src) {
			return nil, cerrors.New(cerrors.MalformedInput, "plain: byte array length truncated")
		}
		l := int(binary.LittleEndian.Uint32(src[off:]))
		off += 4
		if l < 0 || off+l > len(src) {
			return nil, cerrors.New(cerrors.MalformedInput, "plain: byte array value truncated")
		}
		out[i] = ByteArrayValue(src[off : off+l])
		off += l
	}
	return out, nil
}

// EncodeFixedLenByteArray concatenates equally-sized payloads. Every value
// in values must have length == width.
func EncodeFixedLenByteArray(values [][]byte, width int) ([]byte, error) {
	out := make([]byte, width*len(values))
	for i, v := range values {
		if len(v) != width {
			return nil, cerrors.New(cerrors.InvalidArgument, "plain: fixed-len value has wrong width")
		}
		copy(out[width*i:], v)
	}
	return out, nil
}

// DecodeFixedLenByteArray splits src into n values of the given width, each
// borrowing from src.
func DecodeFixedLenByteArray(src []byte, n, width int) ([]ByteArrayValue, error) {
	if width <= 0 {
		return nil, cerrors.New(cerrors.InvalidArgument, "plain: fixed-len width must be positive")
	}
	if len(src) < width*n {
		return nil, cerrors.New(cerrors.MalformedInput, "plain: fixed-len buffer too short")
	}
	out := make([]ByteArrayValue, n)
	for i := range out {
		out[i] = ByteArrayValue(src[width*i : width*(i+1)])
	}
	return out, nil
}
