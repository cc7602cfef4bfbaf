// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package deltastring implements Parquet's DELTA_LENGTH_BYTE_ARRAY and
// DELTA_BYTE_ARRAY encodings, both layered over encoding/delta.
package deltastring

import (
	"github.com/Vitruves/carquet-sub002/cerrors"
	"github.com/Vitruves/carquet-sub002/encoding/delta"
)

// EncodeLengthByteArray emits a delta-integer stream over the lengths of
// values, followed by their concatenated raw bytes.
func EncodeLengthByteArray(values [][]byte) []byte {
	lengths := make([]int64, len(values))
	for i, v := range values {
		lengths[i] = int64(len(v))
	}
	out := delta.EncodeAll(lengths)
	for _, v := range values {
		out = append(out, v...)
	}
	return out
}

// DecodeLengthByteArray decodes a DELTA_LENGTH_BYTE_ARRAY stream of n
// values. Returned values borrow from src.
func DecodeLengthByteArray(src []byte, n int) ([][]byte, error) {
	var d delta.Decoder
	if err := d.Init(src); err != nil {
		return nil, err
	}
	lengths := make([]int64, n)
	for i := 0; i < n; i++ {
		v, err := d.Next()
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, cerrors.New(cerrors.MalformedInput, "deltastring: negative length")
		}
		lengths[i] = v
	}
	suffixOff := d.BytesConsumed()
	out := make([][]byte, n)
	off := suffixOff
	for i := 0; i < n; i++ {
		l := int(lengths[i])
		if off+l > len(src) {
			return nil, cerrors.New(cerrors.MalformedInput, "deltastring: value bytes truncated")
		}
		out[i] = src[off : off+l]
		off += l
	}
	return out, nil
}

// EncodeByteArray emits the DELTA_BYTE_ARRAY stream for values: the
// prefix-length delta stream, then the suffix-length delta stream, then the
// concatenated suffix bytes. Per spec §4.6, prefix_len[i] is the longest
// common prefix of values[i-1] and values[i] (zero for i=0).
func EncodeByteArray(values [][]byte) []byte {
	prefixLens := make([]int64, len(values))
	suffixLens := make([]int64, len(values))
	var suffixSize int
	for i, v := range values {
		var p int
		if i > 0 {
			p = commonPrefixLen(values[i-1], v)
		}
		prefixLens[i] = int64(p)
		suffixLens[i] = int64(len(v) - p)
		suffixSize += len(v) - p
	}
	out := delta.EncodeAll(prefixLens)
	out = append(out, delta.EncodeAll(suffixLens)...)
	out = append(make([]byte, 0, len(out)+suffixSize), out...)
	for i, v := range values {
		out = append(out, v[prefixLens[i]:]...)
	}
	return out
}

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// DecodeByteArray decodes a DELTA_BYTE_ARRAY stream of n values into scratch,
// which must be large enough to hold the sum of all reconstructed value
// lengths (the caller sizes it, e.g. from a page's uncompressed byte count).
// Returned values borrow from scratch, which must outlive the returned
// batch.
func DecodeByteArray(src []byte, n int, scratch []byte) ([][]byte, error) {
	var pd delta.Decoder
	if err := pd.Init(src); err != nil {
		return nil, err
	}
	prefixLens := make([]int64, n)
	for i := 0; i < n; i++ {
		v, err := pd.Next()
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, cerrors.New(cerrors.MalformedInput, "deltastring: negative prefix length")
		}
		prefixLens[i] = v
	}
	off := pd.BytesConsumed()

	var sd delta.Decoder
	if err := sd.Init(src[off:]); err != nil {
		return nil, err
	}
	suffixLens := make([]int64, n)
	for i := 0; i < n; i++ {
		v, err := sd.Next()
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, cerrors.New(cerrors.MalformedInput, "deltastring: negative suffix length")
		}
		suffixLens[i] = v
	}
	off += sd.BytesConsumed()

	out := make([][]byte, n)
	scratchOff := 0
	srcOff := off
	for i := 0; i < n; i++ {
		pl := int(prefixLens[i])
		sl := int(suffixLens[i])
		if i == 0 && pl != 0 {
			return nil, cerrors.New(cerrors.MalformedInput, "deltastring: first value has non-zero prefix length")
		}
		if i > 0 && pl > len(out[i-1]) {
			return nil, cerrors.New(cerrors.MalformedInput, "deltastring: prefix length exceeds previous value length")
		}
		if scratchOff+pl+sl > len(scratch) {
			return nil, cerrors.New(cerrors.ResourceExhausted, "deltastring: scratch buffer too small")
		}
		if srcOff+sl > len(src) {
			return nil, cerrors.New(cerrors.MalformedInput, "deltastring: suffix bytes truncated")
		}
		start := scratchOff
		if pl > 0 {
			copy(scratch[scratchOff:], out[i-1][:pl])
			scratchOff += pl
		}
		copy(scratch[scratchOff:], src[srcOff:srcOff+sl])
		scratchOff += sl
		srcOff += sl
		out[i] = scratch[start:scratchOff]
	}
	return out, nil
}
