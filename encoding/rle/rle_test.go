// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rle

import (
	"testing"

	"github.com/Vitruves/carquet-sub002/cerrors"
	"github.com/Vitruves/carquet-sub002/internal/testutil"
)

// Seed scenario B: 100 zeros at width 1 must encode to <= 10 bytes and
// decode back to 100 zeros.
func TestSeedScenarioB(t *testing.T) {
	values := make([]uint64, 100)
	enc, err := EncodeAll(values, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(enc) > 10 {
		t.Fatalf("encoded length %d exceeds 10 bytes", len(enc))
	}
	var d Decoder
	if err := d.Init(enc, 1); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		v, err := d.Next()
		if err != nil {
			t.Fatalf("value %d: %v", i, err)
		}
		if v != 0 {
			t.Fatalf("value %d: got %d, want 0", i, v)
		}
	}
}

// Seed scenario C: width=4, values [0..9] each repeated 10 times (100
// values total); after skipping 25 and reading 10 more, expect
// [2,2,2,2,2,3,3,3,3,3].
func TestSeedScenarioC(t *testing.T) {
	var values []uint64
	for v := uint64(0); v < 10; v++ {
		for i := 0; i < 10; i++ {
			values = append(values, v)
		}
	}
	enc, err := EncodeAll(values, 4)
	if err != nil {
		t.Fatal(err)
	}
	var d Decoder
	if err := d.Init(enc, 4); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 25; i++ {
		if _, err := d.Next(); err != nil {
			t.Fatalf("skip %d: %v", i, err)
		}
	}
	want := []uint64{2, 2, 2, 2, 2, 3, 3, 3, 3, 3}
	for i, w := range want {
		v, err := d.Next()
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if v != w {
			t.Fatalf("read %d: got %d, want %d", i, v, w)
		}
	}
}

func TestRoundTripMixed(t *testing.T) {
	var values []uint64
	for i := 0; i < 5; i++ {
		values = append(values, 7) // run shorter than 8, bit-packed
	}
	for i := 0; i < 3; i++ {
		values = append(values, uint64(i)) // short runs, bit-packed
	}
	for i := 0; i < 20; i++ {
		values = append(values, 9) // long run, will become RLE
	}
	enc, err := EncodeAll(values, 4)
	if err != nil {
		t.Fatal(err)
	}
	var d Decoder
	if err := d.Init(enc, 4); err != nil {
		t.Fatal(err)
	}
	for i, want := range values {
		got, err := d.Next()
		if err != nil {
			t.Fatalf("value %d: %v", i, err)
		}
		if got != want {
			t.Fatalf("value %d: got %d, want %d", i, got, want)
		}
	}
	if _, err := d.Next(); err == nil {
		t.Fatalf("expected EndOfData after exhausting stream")
	}
}

func TestBitWidthZero(t *testing.T) {
	values := make([]uint64, 50)
	enc, err := EncodeAll(values, 0)
	if err != nil {
		t.Fatal(err)
	}
	var d Decoder
	if err := d.Init(enc, 0); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		v, err := d.Next()
		if err != nil || v != 0 {
			t.Fatalf("value %d: got %d, err %v", i, v, err)
		}
	}
}

func TestBitWidthOutOfRangeRejected(t *testing.T) {
	if _, err := NewEncoder(33); err == nil {
		t.Fatalf("expected error for bit width > 32")
	}
}

// Property 3: random byte strings up to 4 KiB must never panic or hang; a
// decode failure must always surface as cerrors.Error.
func TestMalformedInputNeverPanics(t *testing.T) {
	r := testutil.NewRand(11)
	for i := 0; i < 200; i++ {
		size := r.Intn(4096)
		buf := r.Bytes(size)
		width := uint(r.Intn(33))

		func() {
			defer func() {
				if p := recover(); p != nil {
					t.Fatalf("panicked on random input (len=%d, width=%d): %v", size, width, p)
				}
			}()
			var d Decoder
			if err := d.Init(buf, width); err != nil {
				if _, ok := err.(cerrors.Error); !ok {
					t.Fatalf("Init error is not a cerrors.Error: %v (%T)", err, err)
				}
				return
			}
			for j := 0; j < 4096; j++ {
				if _, err := d.Next(); err != nil {
					if _, ok := err.(cerrors.Error); !ok {
						t.Fatalf("Next error is not a cerrors.Error: %v (%T)", err, err)
					}
					break
				}
			}
		}()
	}
}

func TestMalformedTruncatedHeader(t *testing.T) {
	var d Decoder
	if err := d.Init([]byte{0xFF}, 4); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Next(); err == nil {
		t.Fatalf("expected malformed-input error for truncated varint header")
	}
}
