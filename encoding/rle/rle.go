// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package rle implements Parquet's hybrid RLE / bit-packed encoding, used
// for definition/repetition levels and for RLE_DICTIONARY indices.
//
// A stream is a sequence of runs, each prefixed by a ULEB128 header H. If
// H&1==0 the run is an RLE run of length H>>1 followed by the repeated
// value in ceil(bitWidth/8) little-endian bytes. If H&1==1 the run is a
// bit-packed run of (H>>1)*8 values followed by (H>>1)*bitWidth bytes of
// 8-value bit-packed groups at the nominal width.
//
// The encoder/decoder split and the run/stage bookkeeping mirror the
// teacher's second-stage RLE in bzip2/mtf_rle2.go, adapted from byte-wise
// run lengths to Parquet's varint-headed run format.
package rle

import (
	"github.com/Vitruves/carquet-sub002/cerrors"
	"github.com/Vitruves/carquet-sub002/internal/bitutil"
)

const maxBitWidth = 32

// byteWidth returns ceil(bitWidth/8), the number of bytes an RLE run's
// repeated value occupies.
func byteWidth(bitWidth uint) int { return int((bitWidth + 7) / 8) }

// Encoder incrementally builds a hybrid RLE / bit-packed stream at a fixed
// bit width, per the canonical flush heuristic of spec §4.4: a run is
// emitted as RLE whenever it reaches length 8 (so it can only grow from
// there), otherwise its instances are pushed into an 8-value bit-packed
// stager that flushes whenever it fills.
type Encoder struct {
	bitWidth uint
	out      []byte

	havePrev bool
	prev     uint64
	run      int // length of the current run of `prev`

	stage    [8]uint32
	stageLen int
}

// NewEncoder returns an Encoder writing values at the given bit width
// (0 <= bitWidth <= 32).
func NewEncoder(bitWidth uint) (*Encoder, error) {
	if bitWidth > maxBitWidth {
		return nil, cerrors.New(cerrors.InvalidArgument, "rle: bit width above 32 is rejected")
	}
	return &Encoder{bitWidth: bitWidth}, nil
}

// Put appends one value to the stream being built.
func (e *Encoder) Put(v uint64) error {
	if e.bitWidth < 64 && v>>e.bitWidth != 0 {
		return cerrors.New(cerrors.InvalidArgument, "rle: value does not fit in bit width")
	}
	if e.havePrev && v == e.prev {
		e.run++
		return nil
	}
	if err := e.closeRun(); err != nil {
		return err
	}
	e.havePrev = true
	e.prev = v
	e.run = 1
	return nil
}

// closeRun finalizes whatever run is pending (the run of e.prev repeated
// e.run times), choosing RLE when the run has reached 8 or more, otherwise
// feeding the repeats into the bit-packed stager. Before an RLE run, a
// partially filled stager is first topped up with repeats taken from the
// run, so a bit-packed group is never zero-padded mid-stream.
func (e *Encoder) closeRun() error {
	if !e.havePrev {
		return nil
	}
	if e.run >= 8 {
		for e.stageLen > 0 {
			if err := e.pushStage(uint32(e.prev)); err != nil {
				return err
			}
			e.run--
		}
	}
	if e.run >= 8 {
		e.writeRLERun(e.prev, e.run)
	} else {
		for i := 0; i < e.run; i++ {
			if err := e.pushStage(uint32(e.prev)); err != nil {
				return err
			}
		}
	}
	e.havePrev = false
	e.run = 0
	return nil
}

func (e *Encoder) pushStage(v uint32) error {
	e.stage[e.stageLen] = v
	e.stageLen++
	if e.stageLen == 8 {
		return e.flushStage()
	}
	return nil
}

// flushStage emits one bit-packed group of (up to) 8 values. Any unfilled
// trailing slots are zero-padded, per §4.2's tail convention. Only Flush
// can emit a partial group (closeRun tops one up before an RLE run), so the
// padding always follows the last real value; a caller that reads the true
// value count from a Decoder never reaches it.
func (e *Encoder) flushStage() error {
	if e.stageLen == 0 {
		return nil
	}
	for i := e.stageLen; i < 8; i++ {
		e.stage[i] = 0
	}
	header := uint32(1)<<1 | 1 // one group of 8, bit-packed marker
	e.out = bitutil.PutUvarint32(e.out, header)
	buf := make([]byte, byteWidth32(e.bitWidth))
	bitutil.Pack8(&e.stage, e.bitWidth, buf)
	e.out = append(e.out, buf...)
	e.stageLen = 0
	return nil
}

func byteWidth32(bitWidth uint) int { return int(bitWidth) }

func (e *Encoder) writeRLERun(v uint64, count int) {
	header := uint32(count) << 1
	e.out = bitutil.PutUvarint32(e.out, header)
	bw := byteWidth(e.bitWidth)
	val := make([]byte, bw)
	for i := 0; i < bw; i++ {
		val[i] = byte(v >> (8 * uint(i)))
	}
	e.out = append(e.out, val...)
}

// Flush finalizes the stream (draining any pending run/stage) and returns
// the encoded bytes. The Encoder must not be reused afterward.
func (e *Encoder) Flush() ([]byte, error) {
	if err := e.closeRun(); err != nil {
		return nil, err
	}
	if err := e.flushStage(); err != nil {
		return nil, err
	}
	return e.out, nil
}

// EncodeAll is a convenience wrapper that encodes a complete slice of
// values in one call.
func EncodeAll(values []uint64, bitWidth uint) ([]byte, error) {
	enc, err := NewEncoder(bitWidth)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if err := enc.Put(v); err != nil {
			return nil, err
		}
	}
	return enc.Flush()
}
