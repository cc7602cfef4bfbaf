// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package deltastring

import (
	"bytes"
	"testing"

	"github.com/Vitruves/carquet-sub002/cerrors"
	"github.com/Vitruves/carquet-sub002/internal/testutil"
)

func TestLengthByteArrayRoundTrip(t *testing.T) {
	values := [][]byte{[]byte("alpha"), []byte(""), []byte("beta"), []byte("gamma!")}
	enc := EncodeLengthByteArray(values)
	dec, err := DecodeLengthByteArray(enc, len(values))
	if err != nil {
		t.Fatal(err)
	}
	for i := range values {
		if !bytes.Equal(dec[i], values[i]) {
			t.Errorf("value %d: got %q, want %q", i, dec[i], values[i])
		}
	}
}

func TestByteArrayRoundTrip(t *testing.T) {
	r := testutil.NewRand(7)
	values := testutil.SortedByteArrays(r, 50, 0, 20)
	enc := EncodeByteArray(values)
	scratch := make([]byte, 0)
	total := 0
	for _, v := range values {
		total += len(v)
	}
	scratch = make([]byte, total)
	dec, err := DecodeByteArray(enc, len(values), scratch)
	if err != nil {
		t.Fatal(err)
	}
	for i := range values {
		if !bytes.Equal(dec[i], values[i]) {
			t.Fatalf("value %d: got %q, want %q", i, dec[i], values[i])
		}
	}
}

func TestByteArraySingleValue(t *testing.T) {
	values := [][]byte{[]byte("solo")}
	enc := EncodeByteArray(values)
	scratch := make([]byte, 4)
	dec, err := DecodeByteArray(enc, 1, scratch)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec[0], values[0]) {
		t.Fatalf("got %q, want %q", dec[0], values[0])
	}
}

// Property 3: random byte strings up to 4 KiB must never panic or hang on
// either entry point; a decode failure must always surface as cerrors.Error.
// This is the codec where a missing prefixLens[i] < 0 guard once let a
// corrupted stream decode a negative length instead of erroring.
func TestMalformedInputNeverPanics(t *testing.T) {
	r := testutil.NewRand(31)
	for i := 0; i < 200; i++ {
		size := r.Intn(4096)
		buf := r.Bytes(size)
		n := r.Intn(64)
		scratch := make([]byte, r.Intn(4096))

		func() {
			defer func() {
				if p := recover(); p != nil {
					t.Fatalf("DecodeLengthByteArray panicked (len=%d, n=%d): %v", size, n, p)
				}
			}()
			if _, err := DecodeLengthByteArray(buf, n); err != nil {
				if _, ok := err.(cerrors.Error); !ok {
					t.Fatalf("DecodeLengthByteArray error is not a cerrors.Error: %v (%T)", err, err)
				}
			}
		}()

		func() {
			defer func() {
				if p := recover(); p != nil {
					t.Fatalf("DecodeByteArray panicked (len=%d, n=%d): %v", size, n, p)
				}
			}()
			if _, err := DecodeByteArray(buf, n, scratch); err != nil {
				if _, ok := err.(cerrors.Error); !ok {
					t.Fatalf("DecodeByteArray error is not a cerrors.Error: %v (%T)", err, err)
				}
			}
		}()
	}
}

func TestByteArrayScratchTooSmall(t *testing.T) {
	values := [][]byte{[]byte("hello"), []byte("help")}
	enc := EncodeByteArray(values)
	scratch := make([]byte, 1)
	if _, err := DecodeByteArray(enc, len(values), scratch); err == nil {
		t.Fatalf("expected ResourceExhausted for undersized scratch buffer")
	}
}
