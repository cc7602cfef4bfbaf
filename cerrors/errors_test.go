// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package cerrors

import (
	"errors"
	"testing"
)

func TestKindString(t *testing.T) {
	vectors := []struct {
		k    Kind
		want string
	}{
		{InvalidArgument, "invalid argument"},
		{InsufficientOutputSpace, "insufficient output space"},
		{EndOfData, "end of data"},
		{MalformedInput, "malformed input"},
		{ResourceExhausted, "resource exhausted"},
		{Kind(99), "unknown"},
	}
	for _, v := range vectors {
		if got := v.k.String(); got != v.want {
			t.Errorf("Kind(%d).String() = %q, want %q", v.k, got, v.want)
		}
	}
}

func TestNewCarriesKind(t *testing.T) {
	err := New(MalformedInput, "truncated varint")
	ce, ok := err.(Error)
	if !ok {
		t.Fatalf("New() did not return a cerrors.Error, got %T", err)
	}
	if ce.Kind != MalformedInput {
		t.Errorf("Kind = %v, want MalformedInput", ce.Kind)
	}
	if ce.Error() == "" {
		t.Errorf("Error() must not be empty")
	}
}

func TestIsMatchesByKindOnly(t *testing.T) {
	a := New(MalformedInput, "reason A")
	b := New(MalformedInput, "reason B")
	c := New(InvalidArgument, "reason A")

	ae := a.(Error)
	if !ae.Is(b) {
		t.Errorf("two MalformedInput errors with different messages must match via Is")
	}
	if ae.Is(c) {
		t.Errorf("errors with different Kinds must not match via Is")
	}
	if ae.Is(errors.New("plain error")) {
		t.Errorf("a non-cerrors error must never match via Is")
	}
}

func TestSentinels(t *testing.T) {
	if ce, ok := ErrEndOfData.(Error); !ok || ce.Kind != EndOfData {
		t.Errorf("ErrEndOfData must carry Kind EndOfData")
	}
	if ce, ok := ErrCorrupt.(Error); !ok || ce.Kind != MalformedInput {
		t.Errorf("ErrCorrupt must carry Kind MalformedInput")
	}
}
