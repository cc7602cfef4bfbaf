// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitutil

// MaxVarint32Bytes and MaxVarint64Bytes bound how many bytes a ULEB128
// varint reader will consume before declaring the stream malformed, per the
// Parquet/Thrift convention referenced in the delta block format.
const (
	MaxVarint32Bytes = 5
	MaxVarint64Bytes = 10
)

// ZigZag32 maps a signed 32-bit value to an unsigned 32-bit value so that
// small-magnitude values (positive or negative) encode to small varints.
func ZigZag32(v int32) uint32 { return uint32(v<<1) ^ uint32(v>>31) }

// UnZigZag32 is the inverse of ZigZag32.
func UnZigZag32(v uint32) int32 { return int32(v>>1) ^ -int32(v&1) }

// ZigZag64 maps a signed 64-bit value to an unsigned 64-bit value.
func ZigZag64(v int64) uint64 { return uint64(v<<1) ^ uint64(v>>63) }

// UnZigZag64 is the inverse of ZigZag64.
func UnZigZag64(v uint64) int64 { return int64(v>>1) ^ -int64(v&1) }

// PutUvarint32 appends the ULEB128 encoding of v to dst and returns the
// extended slice.
func PutUvarint32(dst []byte, v uint32) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// PutUvarint64 appends the ULEB128 encoding of v to dst and returns the
// extended slice.
func PutUvarint64(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// Uvarint32 decodes a ULEB128-encoded uint32 from the front of src,
// returning the value and the number of bytes consumed. It returns
// (0, 0) if src does not contain a complete, in-range varint within
// MaxVarint32Bytes bytes.
func Uvarint32(src []byte) (v uint32, n int) {
	var shift uint
	for i := 0; i < len(src) && i < MaxVarint32Bytes; i++ {
		b := src[i]
		if b < 0x80 {
			if i == MaxVarint32Bytes-1 && b > 0xf {
				return 0, 0 // would overflow 32 bits
			}
			v |= uint32(b) << shift
			return v, i + 1
		}
		v |= uint32(b&0x7f) << shift
		shift += 7
	}
	return 0, 0
}

// Uvarint64 decodes a ULEB128-encoded uint64 from the front of src,
// returning the value and the number of bytes consumed. It returns
// (0, 0) if src does not contain a complete, in-range varint within
// MaxVarint64Bytes bytes.
func Uvarint64(src []byte) (v uint64, n int) {
	var shift uint
	for i := 0; i < len(src) && i < MaxVarint64Bytes; i++ {
		b := src[i]
		if b < 0x80 {
			if i == MaxVarint64Bytes-1 && b > 1 {
				return 0, 0 // would overflow 64 bits
			}
			v |= uint64(b) << shift
			return v, i + 1
		}
		v |= uint64(b&0x7f) << shift
		shift += 7
	}
	return 0, 0
}
