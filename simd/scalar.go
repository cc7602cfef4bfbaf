// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package simd

import "github.com/Vitruves/carquet-sub002/checksum"

func bitUnpack8Scalar(in []byte, width int, out []uint32) {
	if width == 0 {
		for i := range out {
			out[i] = 0
		}
		return
	}
	var bitPos int
	for i := range out {
		var v uint32
		for b := 0; b < width; b++ {
			byteIdx := (bitPos + b) / 8
			bitIdx := uint((bitPos + b) % 8)
			if in[byteIdx]&(1<<bitIdx) != 0 {
				v |= 1 << uint(b)
			}
		}
		out[i] = v
		bitPos += width
	}
}

func prefixSum32Scalar(deltas []int32, first int32, out []int32) {
	acc := first
	for i, d := range deltas {
		if i == 0 {
			out[i] = first
			continue
		}
		acc += d
		out[i] = acc
	}
}

func prefixSum64Scalar(deltas []int64, first int64, out []int64) {
	acc := first
	for i, d := range deltas {
		if i == 0 {
			out[i] = first
			continue
		}
		acc += d
		out[i] = acc
	}
}

func dictGather32Scalar(dict []uint32, indices []uint32, out []uint32) {
	for i, idx := range indices {
		out[i] = dict[idx]
	}
}

func dictGather64Scalar(dict []uint64, indices []uint32, out []uint64) {
	for i, idx := range indices {
		out[i] = dict[idx]
	}
}

func boolPackScalar(in []bool, out []byte) {
	for i := range out {
		out[i] = 0
	}
	for i, b := range in {
		if b {
			out[i/8] |= 1 << uint(i%8)
		}
	}
}

func boolUnpackScalar(in []byte, n int, out []bool) {
	for i := 0; i < n; i++ {
		out[i] = in[i/8]&(1<<uint(i%8)) != 0
	}
}

func rleScan32Scalar(values []int32) (runStarts []int, runValues []int32) {
	if len(values) == 0 {
		return nil, nil
	}
	runStarts = append(runStarts, 0)
	runValues = append(runValues, values[0])
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1] {
			runStarts = append(runStarts, i)
			runValues = append(runValues, values[i])
		}
	}
	return runStarts, runValues
}

func crc32CScalar(data []byte) uint32 { return checksum.CRC32C(data) }

func memsetScalar(dst []byte, v byte) {
	for i := range dst {
		dst[i] = v
	}
}

func memcpyScalar(dst, src []byte) int { return copy(dst, src) }
