// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

import (
	"math/rand"
	"testing"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	type entry struct {
		v  uint64
		nb uint
	}
	var entries []entry
	totalBits := uint(0)
	for i := 0; i < 500; i++ {
		nb := uint(rng.Intn(64) + 1)
		v := rng.Uint64() & (1<<nb - 1)
		if nb == 64 {
			v = rng.Uint64()
		}
		entries = append(entries, entry{v, nb})
		totalBits += nb
	}
	buf := make([]byte, totalBits/8+2)
	var w Writer
	w.Init(buf)
	for _, e := range entries {
		if err := w.WriteBits64(e.v, e.nb); err != nil {
			t.Fatalf("WriteBits64(%d,%d) failed: %v", e.v, e.nb, err)
		}
	}
	n, err := w.Flush()
	if err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	var r Reader
	r.Init(buf[:n])
	for i, e := range entries {
		got, err := r.ReadBits64(e.nb)
		if err != nil {
			t.Fatalf("entry %d: ReadBits64(%d) failed: %v", i, e.nb, err)
		}
		if got != e.v {
			t.Fatalf("entry %d: got %d, want %d (nb=%d)", i, got, e.v, e.nb)
		}
	}
}

func TestReaderEndOfData(t *testing.T) {
	var r Reader
	r.Init([]byte{0xFF})
	if _, err := r.ReadBits(8); err != nil {
		t.Fatalf("unexpected error on in-bounds read: %v", err)
	}
	if _, err := r.ReadBits(1); err == nil {
		t.Fatalf("expected EndOfData reading past buffer end")
	}
}

func TestWriterInsufficientSpace(t *testing.T) {
	var w Writer
	w.Init(make([]byte, 1))
	if err := w.WriteBits(0xFF, 8); err != nil {
		t.Fatalf("unexpected error on in-bounds write: %v", err)
	}
	if err := w.WriteBits(1, 8); err == nil {
		t.Fatalf("expected InsufficientOutputSpace writing past buffer capacity")
	}
}

func TestReadWriteBytes(t *testing.T) {
	buf := make([]byte, 16)
	var w Writer
	w.Init(buf)
	if err := w.WriteBits(0x5, 4); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteBits(0x5, 4); err != nil { // byte-align
		t.Fatal(err)
	}
	if err := w.WriteBytes([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("WriteBytes failed: %v", err)
	}
	n, _ := w.Flush()

	var r Reader
	r.Init(buf[:n])
	if _, err := r.ReadBits(8); err != nil {
		t.Fatal(err)
	}
	got, err := r.ReadBytes(4)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	want := []byte{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ReadBytes mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
