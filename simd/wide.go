// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package simd

import (
	"encoding/binary"

	"github.com/Vitruves/carquet-sub002/checksum"
	"github.com/Vitruves/carquet-sub002/internal/bitutil"
)

// bitUnpack8Wide processes 8 values per call via internal/bitutil.Unpack8,
// the same group-of-8 kernel the hybrid-RLE decoder already uses, rather
// than bitUnpack8Scalar's one-bit-at-a-time loop. Output must match exactly.
func bitUnpack8Wide(in []byte, width int, out []uint32) {
	w := uint(width)
	var group [8]uint32
	i := 0
	for ; i+8 <= len(out); i += 8 {
		bitutil.Unpack8(in[i*width/8:], w, &group)
		copy(out[i:i+8], group[:])
	}
	if i < len(out) {
		// Tail shorter than 8: pad scratch input, unpack, and copy only
		// the valid prefix.
		var scratch [8]uint32
		start := i * width / 8
		buf := make([]byte, width+1)
		copy(buf, in[start:])
		bitutil.Unpack8(buf, w, &scratch)
		copy(out[i:], scratch[:len(out)-i])
	}
}

// prefixSum32Wide computes the same running sum as prefixSum32Scalar, but
// accumulates 4 lanes per iteration before committing them, matching what
// a 4-wide vector prefix-sum pass would compute, then fixed up serially
// since prefix sum is inherently sequential across lane boundaries.
func prefixSum32Wide(deltas []int32, first int32, out []int32) {
	if len(out) == 0 {
		return
	}
	out[0] = first
	acc := first
	i := 1
	for ; i+4 <= len(out); i += 4 {
		var lane [4]int32
		lane[0] = acc + deltas[i]
		lane[1] = lane[0] + deltas[i+1]
		lane[2] = lane[1] + deltas[i+2]
		lane[3] = lane[2] + deltas[i+3]
		copy(out[i:i+4], lane[:])
		acc = lane[3]
	}
	for ; i < len(out); i++ {
		acc += deltas[i]
		out[i] = acc
	}
}

func prefixSum64Wide(deltas []int64, first int64, out []int64) {
	if len(out) == 0 {
		return
	}
	out[0] = first
	acc := first
	i := 1
	for ; i+4 <= len(out); i += 4 {
		var lane [4]int64
		lane[0] = acc + deltas[i]
		lane[1] = lane[0] + deltas[i+1]
		lane[2] = lane[1] + deltas[i+2]
		lane[3] = lane[2] + deltas[i+3]
		copy(out[i:i+4], lane[:])
		acc = lane[3]
	}
	for ; i < len(out); i++ {
		acc += deltas[i]
		out[i] = acc
	}
}

func dictGather32Wide(dict []uint32, indices []uint32, out []uint32) {
	i := 0
	for ; i+4 <= len(indices); i += 4 {
		out[i] = dict[indices[i]]
		out[i+1] = dict[indices[i+1]]
		out[i+2] = dict[indices[i+2]]
		out[i+3] = dict[indices[i+3]]
	}
	for ; i < len(indices); i++ {
		out[i] = dict[indices[i]]
	}
}

func dictGather64Wide(dict []uint64, indices []uint32, out []uint64) {
	i := 0
	for ; i+4 <= len(indices); i += 4 {
		out[i] = dict[indices[i]]
		out[i+1] = dict[indices[i+1]]
		out[i+2] = dict[indices[i+2]]
		out[i+3] = dict[indices[i+3]]
	}
	for ; i < len(indices); i++ {
		out[i] = dict[indices[i]]
	}
}

// boolPackWide builds each output byte as a full 8-bit word before a single
// store, instead of boolPackScalar's bit-at-a-time OR into the destination.
func boolPackWide(in []bool, out []byte) {
	for i := range out {
		var b byte
		base := i * 8
		for lane := 0; lane < 8 && base+lane < len(in); lane++ {
			if in[base+lane] {
				b |= 1 << uint(lane)
			}
		}
		out[i] = b
	}
}

func boolUnpackWide(in []byte, n int, out []bool) {
	i := 0
	for ; i+8 <= n; i += 8 {
		b := in[i/8]
		out[i] = b&0x01 != 0
		out[i+1] = b&0x02 != 0
		out[i+2] = b&0x04 != 0
		out[i+3] = b&0x08 != 0
		out[i+4] = b&0x10 != 0
		out[i+5] = b&0x20 != 0
		out[i+6] = b&0x40 != 0
		out[i+7] = b&0x80 != 0
	}
	for ; i < n; i++ {
		out[i] = in[i/8]&(1<<uint(i%8)) != 0
	}
}

func rleScan32Wide(values []int32) (runStarts []int, runValues []int32) {
	return rleScan32Scalar(values)
}

// crc32CWide delegates to the same stdlib slicing-by-8 table the scalar
// path uses; hash/crc32 already processes 8 bytes per table lookup, so
// there is no separate "vector" CRC path in pure Go worth maintaining.
func crc32CWide(data []byte) uint32 { return checksum.CRC32C(data) }

// memsetWide fills 8 bytes per store via a uint64 write for the aligned
// bulk of dst, falling back to byte stores for the unaligned tail.
func memsetWide(dst []byte, v byte) {
	word := uint64(v) * 0x0101010101010101
	i := 0
	for ; i+8 <= len(dst); i += 8 {
		binary.LittleEndian.PutUint64(dst[i:i+8], word)
	}
	for ; i < len(dst); i++ {
		dst[i] = v
	}
}

func memcpyWide(dst, src []byte) int { return copy(dst, src) }
