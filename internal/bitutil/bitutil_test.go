// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitutil

import "testing"

func TestMinimumBitsFor(t *testing.T) {
	var vectors = []struct {
		in  uint64
		out uint
	}{
		{0, 0}, {1, 1}, {2, 2}, {3, 2}, {4, 3}, {255, 8}, {256, 9},
		{1 << 31, 32}, {1<<32 - 1, 32}, {1 << 63, 64}, {1<<64 - 1, 64},
	}
	for i, v := range vectors {
		if got := MinimumBitsFor(v.in); got != v.out {
			t.Errorf("test %d: MinimumBitsFor(%d) = %d, want %d", i, v.in, got, v.out)
		}
	}
}

func TestCLZCTZPopcount(t *testing.T) {
	if CLZ32(0) != 32 || CLZ32(1) != 31 || CLZ32(0x80000000) != 0 {
		t.Errorf("CLZ32 mismatch")
	}
	if CLZ64(0) != 64 || CLZ64(1) != 63 {
		t.Errorf("CLZ64 mismatch")
	}
	if CTZ32(0) != 32 || CTZ32(8) != 3 || CTZ32(1) != 0 {
		t.Errorf("CTZ32 mismatch")
	}
	if CTZ64(0) != 64 || CTZ64(8) != 3 || CTZ64(1) != 0 || CTZ64(1<<63) != 63 {
		t.Errorf("CTZ64 mismatch")
	}
	if Popcount32(0xFFFFFFFF) != 32 || Popcount32(0) != 0 || Popcount32(0x0F) != 4 {
		t.Errorf("Popcount32 mismatch")
	}
	if Popcount64(1<<64-1) != 64 {
		t.Errorf("Popcount64 mismatch")
	}
}

func TestZigZag(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 2, -2, 2147483647, -2147483648} {
		if got := UnZigZag32(ZigZag32(v)); got != v {
			t.Errorf("ZigZag32 round-trip failed for %d: got %d", v, got)
		}
	}
	for _, v := range []int64{0, 1, -1, 9223372036854775807, -9223372036854775808} {
		if got := UnZigZag64(ZigZag64(v)); got != v {
			t.Errorf("ZigZag64 round-trip failed for %d: got %d", v, got)
		}
	}
}

func TestVarintRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 127, 128, 300, 1 << 20, 0xFFFFFFFF} {
		buf := PutUvarint32(nil, v)
		got, n := Uvarint32(buf)
		if n != len(buf) || got != v {
			t.Errorf("Uvarint32 round-trip failed for %d: got %d, n=%d, want n=%d", v, got, n, len(buf))
		}
	}
	for _, v := range []uint64{0, 1, 127, 128, 1 << 40, 0xFFFFFFFFFFFFFFFF} {
		buf := PutUvarint64(nil, v)
		got, n := Uvarint64(buf)
		if n != len(buf) || got != v {
			t.Errorf("Uvarint64 round-trip failed for %d: got %d, n=%d, want n=%d", v, got, n, len(buf))
		}
	}
}

func TestVarintTruncated(t *testing.T) {
	buf := PutUvarint64(nil, 1<<40)
	if _, n := Uvarint64(buf[:len(buf)-1]); n != 0 {
		t.Errorf("expected truncated varint to fail, got n=%d", n)
	}
}
