// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

// Int32s returns n pseudo-random int32 values, some of which are forced to
// the type's extremes so codecs are exercised at their numeric boundaries.
func Int32s(r *Rand, n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		switch i {
		case 0:
			out[i] = 0
		case 1:
			out[i] = 2147483647
		case 2:
			out[i] = -2147483648
		default:
			out[i] = int32(r.Uint32())
		}
	}
	return out
}

// Int64s returns n pseudo-random int64 values, with the first few forced to
// the type's extremes.
func Int64s(r *Rand, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		switch i {
		case 0:
			out[i] = 0
		case 1:
			out[i] = 9223372036854775807
		case 2:
			out[i] = -9223372036854775808
		default:
			out[i] = int64(r.Uint64())
		}
	}
	return out
}

// SortedByteArrays returns n lexicographically sorted random byte strings,
// each between minLen and maxLen bytes, suitable for exercising the
// prefix-sharing DELTA_BYTE_ARRAY codec (which benefits from, but does not
// require, sortedness).
func SortedByteArrays(r *Rand, n, minLen, maxLen int) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		l := minLen
		if maxLen > minLen {
			l += r.Intn(maxLen - minLen)
		}
		out[i] = r.Bytes(l)
	}
	// Simple insertion sort; n is always small in tests.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && lessBytes(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func lessBytes(a, b []byte) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
