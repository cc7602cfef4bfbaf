// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package simd

import (
	"testing"

	"github.com/Vitruves/carquet-sub002/internal/bitutil"
	"github.com/Vitruves/carquet-sub002/internal/testutil"
)

// Property 2: scalar and wide implementations must be bit-exact.

func TestBitUnpack8Exact(t *testing.T) {
	r := testutil.NewRand(21)
	for _, width := range []int{0, 1, 3, 5, 8, 9, 16, 24, 32} {
		n := 40
		var packed []byte
		vals := make([]uint32, n)
		for i := range vals {
			if width == 0 {
				vals[i] = 0
			} else if width >= 32 {
				vals[i] = uint32(r.Int())
			} else {
				vals[i] = uint32(r.Int()) & ((1 << uint(width)) - 1)
			}
		}
		// Pack in groups of 8 using the generic kernel, padding the tail.
		padded := make([]uint32, (n+7)/8*8)
		copy(padded, vals)
		for g := 0; g < len(padded); g += 8 {
			var group [8]uint32
			copy(group[:], padded[g:g+8])
			buf := make([]byte, width+1)
			bitutil.Pack8(&group, uint(width), buf)
			packed = append(packed, buf[:width]...)
		}

		scalarOut := make([]uint32, n)
		wideOut := make([]uint32, n)
		Scalar().BitUnpack8(packed, width, scalarOut)
		Wide().BitUnpack8(packed, width, wideOut)
		for i := range scalarOut {
			if scalarOut[i] != wideOut[i] {
				t.Fatalf("width %d index %d: scalar %d != wide %d", width, i, scalarOut[i], wideOut[i])
			}
		}
	}
}

func TestPrefixSumExact(t *testing.T) {
	r := testutil.NewRand(22)
	deltas := testutil.Int32s(r, 37)
	first := deltas[0]
	scalarOut := make([]int32, len(deltas))
	wideOut := make([]int32, len(deltas))
	Scalar().PrefixSum32(deltas, first, scalarOut)
	Wide().PrefixSum32(deltas, first, wideOut)
	for i := range scalarOut {
		if scalarOut[i] != wideOut[i] {
			t.Fatalf("index %d: scalar %d != wide %d", i, scalarOut[i], wideOut[i])
		}
	}
}

func TestDictGather32Exact(t *testing.T) {
	dict := []uint32{10, 20, 30, 40, 50}
	indices := []uint32{4, 0, 2, 1, 3, 4, 0, 2, 1}
	scalarOut := make([]uint32, len(indices))
	wideOut := make([]uint32, len(indices))
	Scalar().DictGather32(dict, indices, scalarOut)
	Wide().DictGather32(dict, indices, wideOut)
	for i := range scalarOut {
		if scalarOut[i] != wideOut[i] {
			t.Fatalf("index %d: scalar %d != wide %d", i, scalarOut[i], wideOut[i])
		}
	}
}

func TestBoolPackUnpackExact(t *testing.T) {
	in := []bool{true, false, true, true, false, false, true, false, true, true, false}
	scalarPacked := make([]byte, (len(in)+7)/8)
	widePacked := make([]byte, (len(in)+7)/8)
	Scalar().BoolPack(in, scalarPacked)
	Wide().BoolPack(in, widePacked)
	for i := range scalarPacked {
		if scalarPacked[i] != widePacked[i] {
			t.Fatalf("packed byte %d mismatch: scalar %x wide %x", i, scalarPacked[i], widePacked[i])
		}
	}

	scalarOut := make([]bool, len(in))
	wideOut := make([]bool, len(in))
	Scalar().BoolUnpack(scalarPacked, len(in), scalarOut)
	Wide().BoolUnpack(widePacked, len(in), wideOut)
	for i := range in {
		if scalarOut[i] != in[i] || wideOut[i] != in[i] {
			t.Fatalf("index %d: roundtrip mismatch", i)
		}
	}
}

func TestRLEScan32Exact(t *testing.T) {
	values := []int32{1, 1, 1, 2, 2, 3, 3, 3, 3, 1}
	sStarts, sVals := Scalar().RLEScan32(values)
	wStarts, wVals := Wide().RLEScan32(values)
	if len(sStarts) != len(wStarts) {
		t.Fatalf("run count mismatch: scalar %d wide %d", len(sStarts), len(wStarts))
	}
	for i := range sStarts {
		if sStarts[i] != wStarts[i] || sVals[i] != wVals[i] {
			t.Fatalf("run %d mismatch", i)
		}
	}
}

func TestCRC32CExact(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	if Scalar().CRC32C(data) != Wide().CRC32C(data) {
		t.Fatalf("CRC32C scalar/wide mismatch")
	}
}

func TestMemsetMemcpyExact(t *testing.T) {
	scalarDst := make([]byte, 23)
	wideDst := make([]byte, 23)
	Scalar().Memset(scalarDst, 0xAB)
	Wide().Memset(wideDst, 0xAB)
	for i := range scalarDst {
		if scalarDst[i] != wideDst[i] {
			t.Fatalf("memset byte %d mismatch", i)
		}
	}

	src := []byte("0123456789abcdef")
	scalarDst2 := make([]byte, len(src))
	wideDst2 := make([]byte, len(src))
	Scalar().Memcpy(scalarDst2, src)
	Wide().Memcpy(wideDst2, src)
	for i := range src {
		if scalarDst2[i] != wideDst2[i] {
			t.Fatalf("memcpy byte %d mismatch", i)
		}
	}
}

func TestGetReturnsConsistentTable(t *testing.T) {
	a := Get()
	b := Get()
	if a != b {
		t.Fatalf("Get() must return the same process-global table each call")
	}
}
