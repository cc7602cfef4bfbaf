// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

import "github.com/Vitruves/carquet-sub002/cerrors"

// Writer writes bits LSB-first into a caller-supplied, fixed-capacity byte
// slice. It never grows the slice; writes beyond capacity fail with
// InsufficientOutputSpace rather than truncating silently.
type Writer struct {
	buf       []byte
	pos       int    // next byte to write in buf
	stageBits uint64 // staged bits occupy the low stageCount bits
	stageCount uint
}

// Init resets w to write into buf. len(buf) is the capacity; buf is never
// grown or resliced.
func (w *Writer) Init(buf []byte) {
	w.buf = buf
	w.pos = 0
	w.stageBits = 0
	w.stageCount = 0
}

// BytesWritten returns the number of whole bytes flushed to buf so far,
// not counting any partially staged byte.
func (w *Writer) BytesWritten() int { return w.pos }

// drain emits whole bytes from the staging buffer into buf, failing with
// InsufficientOutputSpace if buf's capacity is exhausted first.
func (w *Writer) drain() error {
	for w.stageCount >= 8 {
		if w.pos >= len(w.buf) {
			return cerrors.New(cerrors.InsufficientOutputSpace, "bit writer: output buffer full")
		}
		w.buf[w.pos] = byte(w.stageBits)
		w.pos++
		w.stageBits >>= 8
		w.stageCount -= 8
	}
	return nil
}

// WriteBit writes a single bit.
func (w *Writer) WriteBit(b uint) error { return w.WriteBits(b, 1) }

// WriteBits writes the low nb bits of v (0 <= nb <= 32), LSB-first.
func (w *Writer) WriteBits(v uint, nb uint) error {
	if nb > 32 {
		return cerrors.New(cerrors.InvalidArgument, "WriteBits: nb > 32")
	}
	if nb == 0 {
		return nil
	}
	mask := uint64(1)<<nb - 1
	w.stageBits |= (uint64(v) & mask) << w.stageCount
	w.stageCount += nb
	return w.drain()
}

// WriteBits64 writes the low nb bits of v (0 <= nb <= 64), LSB-first.
func (w *Writer) WriteBits64(v uint64, nb uint) error {
	if nb > 64 {
		return cerrors.New(cerrors.InvalidArgument, "WriteBits64: nb > 64")
	}
	if nb == 0 {
		return nil
	}
	if nb <= 32 {
		return w.WriteBits(uint(v), nb)
	}
	if err := w.WriteBits(uint(v), 32); err != nil {
		return err
	}
	return w.WriteBits(uint(v>>32), nb-32)
}

// WriteBytes writes whole bytes directly, requiring the writer to be
// byte-aligned (stageCount == 0).
func (w *Writer) WriteBytes(p []byte) error {
	if w.stageCount != 0 {
		return cerrors.New(cerrors.InvalidArgument, "WriteBytes: writer not byte-aligned")
	}
	if w.pos+len(p) > len(w.buf) {
		return cerrors.New(cerrors.InsufficientOutputSpace, "bit writer: output buffer full")
	}
	copy(w.buf[w.pos:], p)
	w.pos += len(p)
	return nil
}

// Flush emits any fractional byte, zero-padding its unused high bits, and
// returns the total number of bytes written. After Flush, the Writer's
// stage is empty.
func (w *Writer) Flush() (int, error) {
	if w.stageCount > 0 {
		if w.pos >= len(w.buf) {
			return w.pos, cerrors.New(cerrors.InsufficientOutputSpace, "bit writer: output buffer full")
		}
		w.buf[w.pos] = byte(w.stageBits)
		w.pos++
		w.stageBits = 0
		w.stageCount = 0
	}
	return w.pos, nil
}
