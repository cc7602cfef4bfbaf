// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package delta implements Parquet's DELTA_BINARY_PACKED encoding for
// signed integers: a blockwise scheme storing pairwise differences minus a
// per-block minimum, bit-packed per miniblock.
package delta

import (
	"github.com/Vitruves/carquet-sub002/cerrors"
	"github.com/Vitruves/carquet-sub002/internal/bitutil"
	"github.com/Vitruves/carquet-sub002/simd"
)

const (
	blockSize          = 128
	miniblocksPerBlock = 4
	miniblockSize      = blockSize / miniblocksPerBlock // 32

	// maxBlockSize and maxTotalValueCount bound the header fields that a
	// decoder trusts before allocating: both are parsed from a small varint
	// in untrusted input, so an adversarial stream must not be able to
	// request an arbitrarily large allocation through them.
	maxBlockSize       = 1 << 20
	maxTotalValueCount = 1 << 24
)

// Encoder builds a DELTA_BINARY_PACKED stream. Values are buffered 128 at a
// time (one block); a final partial block is flushed the same way.
type Encoder struct {
	header    []byte
	body      []byte
	buf       []int64
	haveFirst bool
	first     int64
	prev      int64
	count     int
}

// NewEncoder returns an Encoder ready to accept Put calls.
func NewEncoder() *Encoder { return &Encoder{} }

// Put appends one value to the stream being built.
func (e *Encoder) Put(v int64) {
	e.count++
	if !e.haveFirst {
		e.haveFirst = true
		e.first = v
		e.prev = v
		return
	}
	e.buf = append(e.buf, v-e.prev)
	e.prev = v
	if len(e.buf) == blockSize {
		e.flushBlock()
	}
}

// flushBlock writes whatever deltas are pending (a full or partial block)
// to the body, per spec §4.5.
func (e *Encoder) flushBlock() {
	if len(e.buf) == 0 {
		return
	}
	var minDelta int64 = e.buf[0]
	for _, d := range e.buf[1:] {
		if d < minDelta {
			minDelta = d
		}
	}
	e.body = bitutil.PutUvarint64(e.body, bitutil.ZigZag64(minDelta))

	widths := make([]uint, miniblocksPerBlock)
	adjusted := make([]uint64, len(e.buf))
	for i, d := range e.buf {
		adjusted[i] = uint64(d - minDelta)
	}
	for m := 0; m < miniblocksPerBlock; m++ {
		lo := m * miniblockSize
		if lo >= len(adjusted) {
			widths[m] = 0
			continue
		}
		hi := lo + miniblockSize
		if hi > len(adjusted) {
			hi = len(adjusted)
		}
		var max uint64
		for _, v := range adjusted[lo:hi] {
			if v > max {
				max = v
			}
		}
		widths[m] = bitutil.MinimumBitsFor(max)
	}
	for _, w := range widths {
		e.body = append(e.body, byte(w))
	}
	for m := 0; m < miniblocksPerBlock; m++ {
		w := widths[m]
		if w == 0 {
			continue
		}
		lo := m * miniblockSize
		if lo >= len(adjusted) {
			continue
		}
		hi := lo + miniblockSize
		if hi > len(adjusted) {
			hi = len(adjusted)
		}
		group := adjusted[lo:hi]
		buf := make([]byte, miniblockSize*int(w)/8)
		var vals [8]uint64
		for g := 0; g*8 < miniblockSize; g++ {
			for i := 0; i < 8; i++ {
				idx := g*8 + i
				if idx < len(group) {
					vals[i] = group[idx]
				} else {
					vals[i] = 0
				}
			}
			bitutil.Pack8x64(&vals, w, buf[g*int(w):(g+1)*int(w)])
		}
		e.body = append(e.body, buf...)
	}
	e.buf = e.buf[:0]
}

// Flush finalizes the stream (writing the header and any pending block)
// and returns the encoded bytes. The Encoder must not be reused afterward.
func (e *Encoder) Flush() []byte {
	e.flushBlock()
	var out []byte
	out = bitutil.PutUvarint64(out, blockSize)
	out = bitutil.PutUvarint64(out, miniblocksPerBlock)
	out = bitutil.PutUvarint64(out, uint64(e.count))
	var first int64
	if e.haveFirst {
		first = e.first
	}
	out = bitutil.PutUvarint64(out, bitutil.ZigZag64(first))
	out = append(out, e.body...)
	return out
}

// EncodeAll is a convenience wrapper that encodes a complete slice of
// values in one call.
func EncodeAll(values []int64) []byte {
	e := NewEncoder()
	for _, v := range values {
		e.Put(v)
	}
	return e.Flush()
}

// Decoder reads a DELTA_BINARY_PACKED stream, yielding one reconstructed
// value at a time.
type Decoder struct {
	src                []byte
	pos                int
	blockSize          int
	miniblocksPerBlock int
	miniblockSize      int
	totalCount         int

	emitted int
	last    int64

	pendingMini   []int64 // deltas decoded for the current miniblock, not yet emitted
	pendingMiniAt int
	minDelta      int64
	widths        []uint
	widthIdx      int
}

// Init parses the header of src and prepares the Decoder to emit the first
// value.
func (d *Decoder) Init(src []byte) error {
	d.src = src
	d.pos = 0

	bs, n := bitutil.Uvarint64(src[d.pos:])
	if n == 0 {
		return cerrors.New(cerrors.MalformedInput, "delta: truncated block-size header")
	}
	d.pos += n
	if bs == 0 || bs%128 != 0 || bs > maxBlockSize {
		return cerrors.New(cerrors.MalformedInput, "delta: block size must be a positive multiple of 128, bounded by maxBlockSize")
	}
	d.blockSize = int(bs)

	mpb, n := bitutil.Uvarint64(src[d.pos:])
	if n == 0 {
		return cerrors.New(cerrors.MalformedInput, "delta: truncated miniblocks-per-block header")
	}
	d.pos += n
	if mpb == 0 || mpb > uint64(d.blockSize) || d.blockSize%int(mpb) != 0 {
		return cerrors.New(cerrors.MalformedInput, "delta: miniblocks-per-block must divide block size")
	}
	d.miniblocksPerBlock = int(mpb)
	d.miniblockSize = d.blockSize / d.miniblocksPerBlock
	if d.miniblockSize%8 != 0 {
		return cerrors.New(cerrors.MalformedInput, "delta: miniblock size must be a multiple of 8")
	}

	tc, n := bitutil.Uvarint64(src[d.pos:])
	if n == 0 {
		return cerrors.New(cerrors.MalformedInput, "delta: truncated total-value-count header")
	}
	d.pos += n
	if tc > maxTotalValueCount {
		return cerrors.New(cerrors.MalformedInput, "delta: total value count exceeds maxTotalValueCount")
	}
	d.totalCount = int(tc)

	fv, n := bitutil.Uvarint64(src[d.pos:])
	if n == 0 {
		return cerrors.New(cerrors.MalformedInput, "delta: truncated first-value header")
	}
	d.pos += n
	d.last = bitutil.UnZigZag64(fv)
	d.emitted = 0
	return nil
}

// Next produces the next reconstructed value. It returns cerrors.ErrEndOfData
// once totalCount values have been produced.
func (d *Decoder) Next() (int64, error) {
	if d.emitted >= d.totalCount {
		return 0, cerrors.ErrEndOfData
	}
	if d.emitted == 0 {
		d.emitted++
		return d.last, nil
	}
	if d.pendingMiniAt >= len(d.pendingMini) {
		if err := d.refill(); err != nil {
			return 0, err
		}
	}
	v := d.pendingMini[d.pendingMiniAt]
	d.pendingMiniAt++
	d.last = v
	d.emitted++
	return d.last, nil
}

// refill decodes the next miniblock's worth of deltas, reading a new
// block's min-delta and widths header first if necessary.
func (d *Decoder) refill() error {
	if d.widthIdx >= len(d.widths) {
		md, n := bitutil.Uvarint64(d.src[d.pos:])
		if n == 0 {
			return cerrors.New(cerrors.MalformedInput, "delta: truncated min-delta")
		}
		d.pos += n
		d.minDelta = bitutil.UnZigZag64(md)

		if d.pos+d.miniblocksPerBlock > len(d.src) {
			return cerrors.New(cerrors.MalformedInput, "delta: truncated miniblock widths")
		}
		d.widths = make([]uint, d.miniblocksPerBlock)
		for i := range d.widths {
			d.widths[i] = uint(d.src[d.pos])
			if d.widths[i] > 64 {
				return cerrors.New(cerrors.MalformedInput, "delta: miniblock width exceeds 64")
			}
			d.pos++
		}
		d.widthIdx = 0
	}

	w := d.widths[d.widthIdx]
	d.widthIdx++
	nbytes := d.miniblockSize * int(w) / 8
	if d.pos+nbytes > len(d.src) {
		return cerrors.New(cerrors.MalformedInput, "delta: truncated miniblock payload")
	}
	raw := d.src[d.pos : d.pos+nbytes]
	d.pos += nbytes

	deltas := make([]int64, d.miniblockSize+1) // deltas[0] is a dummy slot the prefix-sum dispatch ignores
	var vals [8]uint64
	for g := 0; g*8 < d.miniblockSize; g++ {
		if w == 0 {
			for i := 0; i < 8; i++ {
				deltas[1+g*8+i] = d.minDelta
			}
			continue
		}
		bitutil.Unpack8x64(raw[g*int(w):(g+1)*int(w)], w, &vals)
		for i := 0; i < 8; i++ {
			deltas[1+g*8+i] = d.minDelta + int64(vals[i])
		}
	}
	// Reconstructed values are a running sum seeded by the last value emitted
	// before this miniblock; dispatched so vectorized builds produce
	// bit-identical output to the scalar reference (spec §4.11).
	recon := make([]int64, d.miniblockSize+1)
	simd.Get().PrefixSum64(deltas, d.last, recon)
	d.pendingMini = recon[1:]
	d.pendingMiniAt = 0
	if d.widthIdx >= len(d.widths) {
		d.widths = nil // force a fresh block header on next refill
	}
	return nil
}

// BytesConsumed returns the number of bytes of the source slice consumed so
// far, including any miniblock already decoded into the pending buffer but
// not yet fully emitted via Next. Callers that concatenate a delta stream
// with a following byte region (DELTA_LENGTH_BYTE_ARRAY, DELTA_BYTE_ARRAY)
// use this once the decoder has emitted totalCount values to find where the
// trailing region begins.
func (d *Decoder) BytesConsumed() int { return d.pos }

// DecodeAll decodes a complete DELTA_BINARY_PACKED stream into a slice.
func DecodeAll(src []byte) ([]int64, error) {
	var d Decoder
	if err := d.Init(src); err != nil {
		return nil, err
	}
	out := make([]int64, 0, d.totalCount)
	for {
		v, err := d.Next()
		if err != nil {
			if e, ok := err.(cerrors.Error); ok && e.Kind == cerrors.EndOfData {
				return out, nil
			}
			return nil, err
		}
		out = append(out, v)
	}
}
