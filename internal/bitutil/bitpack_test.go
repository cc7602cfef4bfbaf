// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitutil

import (
	"math/rand"
	"testing"
)

func TestBitPackRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for width := uint(0); width <= 32; width++ {
		var in [8]uint32
		var max uint64 = 1<<width - 1
		if width == 32 {
			max = 0xFFFFFFFF
		}
		for trial := 0; trial < 20; trial++ {
			for i := range in {
				if width == 0 {
					in[i] = 0
				} else {
					in[i] = uint32(uint64(rng.Int63()) & max)
				}
			}
			buf := make([]byte, width)
			Pack8(&in, width, buf)
			var out [8]uint32
			Unpack8(buf, width, &out)
			if out != in {
				t.Fatalf("width %d: round-trip mismatch: in=%v out=%v", width, in, out)
			}
		}
	}
}

func TestBitPackSpecializedMatchesGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, width := range []uint{1, 2, 3, 4, 5, 6, 7, 8, 16} {
		var in [8]uint32
		max := uint64(1<<width) - 1
		for trial := 0; trial < 20; trial++ {
			for i := range in {
				in[i] = uint32(uint64(rng.Int63()) & max)
			}
			specialized := make([]byte, width)
			generic := make([]byte, width)
			Pack8(&in, width, specialized)
			pack8Generic(&in, width, generic)
			for i := range specialized {
				if specialized[i] != generic[i] {
					t.Fatalf("width %d: specialized output diverges from generic at byte %d: %x vs %x", width, i, specialized, generic)
				}
			}
			var outSpecialized, outGeneric [8]uint32
			Unpack8(specialized, width, &outSpecialized)
			unpack8Generic(generic, width, &outGeneric)
			if outSpecialized != outGeneric {
				t.Fatalf("width %d: decoded values diverge: %v vs %v", width, outSpecialized, outGeneric)
			}
		}
	}
}

func TestBitPackZeroWidth(t *testing.T) {
	in := [8]uint32{}
	var buf []byte
	Pack8(&in, 0, buf)
	var out [8]uint32
	out[0] = 99 // sentinel, must be cleared
	Unpack8(buf, 0, &out)
	if out != (in) {
		t.Errorf("width 0 must decode to all zeros, got %v", out)
	}
}
