// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitutil provides the L0 bit primitives shared by every codec in
// this module: leading/trailing zero counts, population count, and minimum
// bit-width.
package bitutil

import "math/bits"

// CLZ32 counts the leading zero bits of a 32-bit value. CLZ32(0) == 32.
func CLZ32(v uint32) uint { return uint(bits.LeadingZeros32(v)) }

// CLZ64 counts the leading zero bits of a 64-bit value. CLZ64(0) == 64.
func CLZ64(v uint64) uint { return uint(bits.LeadingZeros64(v)) }

// CTZ32 counts the trailing zero bits of a 32-bit value. CTZ32(0) == 32.
func CTZ32(v uint32) uint { return uint(bits.TrailingZeros32(v)) }

// CTZ64 counts the trailing zero bits of a 64-bit value. CTZ64(0) == 64.
func CTZ64(v uint64) uint { return uint(bits.TrailingZeros64(v)) }

// Popcount32 counts the set bits of a 32-bit value.
func Popcount32(v uint32) uint { return uint(bits.OnesCount32(v)) }

// Popcount64 counts the set bits of a 64-bit value.
func Popcount64(v uint64) uint { return uint(bits.OnesCount64(v)) }

// MinimumBitsFor returns the number of bits needed to represent v: 0 when
// v == 0, else floor(log2 v) + 1.
func MinimumBitsFor(v uint64) uint {
	if v == 0 {
		return 0
	}
	return 64 - CLZ64(v)
}

// MinimumBitsFor32 is the 32-bit convenience form of MinimumBitsFor.
func MinimumBitsFor32(v uint32) uint {
	if v == 0 {
		return 0
	}
	return 32 - CLZ32(v)
}
