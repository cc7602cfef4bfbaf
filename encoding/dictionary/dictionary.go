// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package dictionary implements Parquet's RLE_DICTIONARY encoding: building
// a value<->index map during encode, emitting a PLAIN dictionary page plus
// a hybrid-RLE index stream, and gathering values back out by index on
// decode.
//
// The hash table is open-addressed with linear probing over a
// power-of-two-sized slot array, per the Design Notes' explicit steer away
// from the teacher's hand-rolled chaining (spec §9: "A well-known
// open-addressed map over fixed-size keys suits the primitive types;
// BYTE_ARRAY keys need ... pooled storage so the hash key is itself a
// reference"). Values are pooled append-only in insertion order, exactly as
// spec §3 describes, so BYTE_ARRAY keys are (offset,length) references into
// one contiguous buffer rather than separately heap-allocated byte slices.
package dictionary

import (
	"bytes"
	"hash/fnv"

	"github.com/Vitruves/carquet-sub002/cerrors"
	"github.com/Vitruves/carquet-sub002/encoding/plain"
	"github.com/Vitruves/carquet-sub002/encoding/rle"
	"github.com/Vitruves/carquet-sub002/internal/bitutil"
)

// Builder accumulates unique values in insertion order and assigns each a
// dense index. Width > 0 means fixed-width keys (INT32/INT64/INT96/FLOAT/
// DOUBLE/FIXED_LEN_BYTE_ARRAY, each `width` bytes); width == 0 means
// variable-length BYTE_ARRAY keys.
type Builder struct {
	width int

	pool    []byte
	offsets []int
	lens    []int

	slots []int32 // slot -> (index+1); 0 means empty
	mask  uint32
}

// NewBuilder returns an empty Builder for keys of the given fixed width, or
// width == 0 for variable-length BYTE_ARRAY keys.
func NewBuilder(width int) *Builder {
	b := &Builder{width: width}
	b.grow(16)
	return b
}

func fnv1a(value []byte) uint32 {
	h := fnv.New32a()
	h.Write(value)
	return h.Sum32()
}

func (b *Builder) grow(n int) {
	size := 1
	for size < n {
		size <<= 1
	}
	b.slots = make([]int32, size)
	b.mask = uint32(size - 1)
	for i := 0; i < b.Count(); i++ {
		b.insertSlot(b.entryBytes(i), int32(i+1))
	}
}

func (b *Builder) entryBytes(idx int) []byte {
	return b.pool[b.offsets[idx] : b.offsets[idx]+b.lens[idx]]
}

func (b *Builder) insertSlot(value []byte, slotVal int32) {
	slot := fnv1a(value) & b.mask
	for b.slots[slot] != 0 {
		slot = (slot + 1) & b.mask
	}
	b.slots[slot] = slotVal
}

// Count returns the number of unique values inserted so far.
func (b *Builder) Count() int { return len(b.offsets) }

// Index returns the dense index of value, inserting it if not already
// present. The returned index is stable for the lifetime of the Builder.
func (b *Builder) Index(value []byte) uint32 {
	if len(b.slots)*2 < (b.Count()+1)*3 { // keep load factor under 2/3
		b.grow(len(b.slots) * 2)
	}
	h := fnv1a(value)
	slot := h & b.mask
	for b.slots[slot] != 0 {
		idx := b.slots[slot] - 1
		if bytes.Equal(b.entryBytes(int(idx)), value) {
			return uint32(idx)
		}
		slot = (slot + 1) & b.mask
	}
	idx := int32(b.Count())
	b.offsets = append(b.offsets, len(b.pool))
	b.lens = append(b.lens, len(value))
	b.pool = append(b.pool, value...)
	b.slots[slot] = idx + 1
	return uint32(idx)
}

// Value returns the raw bytes of the value at idx, aliasing the Builder's
// internal pool.
func (b *Builder) Value(idx uint32) []byte { return b.entryBytes(int(idx)) }

// EmitPage returns the dictionary page: PLAIN-encoded unique values in
// insertion order. For BYTE_ARRAY keys (width == 0) this matches
// plain.EncodeByteArray's 4-byte-length-prefixed form; for fixed-width keys
// it is a bare concatenation, matching plain.EncodeFixedLenByteArray.
func (b *Builder) EmitPage() []byte {
	if b.width == 0 {
		values := make([][]byte, b.Count())
		for i := range values {
			values[i] = b.entryBytes(i)
		}
		return plain.EncodeByteArray(values)
	}
	out := make([]byte, 0, b.width*b.Count())
	for i := 0; i < b.Count(); i++ {
		out = append(out, b.entryBytes(i)...)
	}
	return out
}

// indexBitWidth returns the bit width needed to represent indices in
// [0, dictCount), clamped to at least 1 per spec §4.7's "Emit" step.
func indexBitWidth(dictCount int) uint {
	if dictCount <= 1 {
		return 1
	}
	w := bitutil.MinimumBitsFor(uint64(dictCount - 1))
	if w == 0 {
		w = 1
	}
	return w
}

// EncodeIndices returns the indices page for a column's per-row dictionary
// indices: one leading byte giving the bit width, followed by a hybrid-RLE
// stream of the indices at that width.
func EncodeIndices(indices []uint32, dictCount int) ([]byte, error) {
	w := indexBitWidth(dictCount)
	enc, err := rle.NewEncoder(w)
	if err != nil {
		return nil, err
	}
	for _, idx := range indices {
		if err := enc.Put(uint64(idx)); err != nil {
			return nil, err
		}
	}
	body, err := enc.Flush()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 1+len(body))
	out = append(out, byte(w))
	out = append(out, body...)
	return out, nil
}

// DecodeIndices parses the leading bit-width byte and decodes n indices
// from the hybrid-RLE stream that follows, validating that every index is
// within [0, dictCount).
func DecodeIndices(src []byte, n, dictCount int) ([]uint32, error) {
	if len(src) < 1 {
		return nil, cerrors.New(cerrors.MalformedInput, "dictionary: missing bit-width byte")
	}
	w := uint(src[0])
	if w > 32 {
		return nil, cerrors.New(cerrors.MalformedInput, "dictionary: index bit width exceeds 32")
	}
	var dec rle.Decoder
	if err := dec.Init(src[1:], w); err != nil {
		return nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		v, err := dec.Next()
		if err != nil {
			return nil, err
		}
		if int(v) >= dictCount {
			return nil, cerrors.New(cerrors.MalformedInput, "dictionary: index beyond dictionary size")
		}
		out[i] = uint32(v)
	}
	return out, nil
}

// Gather resolves a slice of dictionary indices into borrowed value slices
// via the Builder used to build the dictionary (encode-side convenience;
// the decode-side equivalent resolves against the decoded PLAIN dictionary
// page instead, see GatherFromPage).
func Gather(b *Builder, indices []uint32) ([][]byte, error) {
	out := make([][]byte, len(indices))
	for i, idx := range indices {
		if int(idx) >= b.Count() {
			return nil, cerrors.New(cerrors.MalformedInput, "dictionary: index beyond dictionary size")
		}
		out[i] = b.Value(idx)
	}
	return out, nil
}

// GatherFromPage resolves indices against a decoded dictionary page: either
// a slice of fixed-width values (dict[i] is page[i*width:(i+1)*width]) or,
// for BYTE_ARRAY dictionaries, a pre-split slice of borrowed values (obtain
// these via plain.DecodeByteArray on the dictionary page first).
func GatherFromPage(dict [][]byte, indices []uint32) ([][]byte, error) {
	out := make([][]byte, len(indices))
	for i, idx := range indices {
		if int(idx) >= len(dict) {
			return nil, cerrors.New(cerrors.MalformedInput, "dictionary: index beyond dictionary size")
		}
		out[i] = dict[idx]
	}
	return out, nil
}
