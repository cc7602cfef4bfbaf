// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitstream implements bit-granular reading and writing over an
// in-memory byte slice. It is the L1 substrate every encoding/* codec in
// this module is layered over, modeled on the teacher's flate.bitReader
// (flate/bit_reader.go) but reading from a fully-buffered []byte rather
// than an io.Reader, since Parquet pages are always decompressed into
// memory before a codec ever sees them.
package bitstream

import "github.com/Vitruves/carquet-sub002/cerrors"

// Reader reads bits LSB-first from an in-memory byte slice.
type Reader struct {
	buf     []byte
	pos     int    // next unread byte in buf
	bufBits uint64 // prefetch buffer; valid bits occupy the low bufCount bits
	bufCount uint   // number of valid bits currently in bufBits, in [0,64]
}

// Init resets r to read from buf.
func (r *Reader) Init(buf []byte) {
	r.buf = buf
	r.pos = 0
	r.bufBits = 0
	r.bufCount = 0
}

// RemainingBits returns the number of bits not yet consumed.
func (r *Reader) RemainingBits() int {
	return (len(r.buf)-r.pos)*8 + int(r.bufCount)
}

// HasMore reports whether at least one more bit can be read.
func (r *Reader) HasMore() bool { return r.RemainingBits() > 0 }

// refill tops up bufBits with bytes from buf until at least nb bits are
// present or the input is exhausted. It never fabricates bits: if the input
// runs out before nb bits are available, bufCount simply ends up < nb and
// the caller (ReadBits et al.) must detect that and raise MalformedInput /
// EndOfData as appropriate.
func (r *Reader) refill(nb uint) {
	for r.bufCount+8 <= 64 && r.pos < len(r.buf) {
		r.bufBits |= uint64(r.buf[r.pos]) << r.bufCount
		r.bufCount += 8
		r.pos++
		if r.bufCount >= nb {
			return
		}
	}
}

// ReadBit reads a single bit. Returns an EndOfData error if no bits remain.
func (r *Reader) ReadBit() (uint, error) {
	v, err := r.ReadBits(1)
	return v, err
}

// ReadBits reads nb bits (0 <= nb <= 32) LSB-first and returns them as the
// low nb bits of the result.
func (r *Reader) ReadBits(nb uint) (uint, error) {
	if nb > 32 {
		return 0, cerrors.New(cerrors.InvalidArgument, "ReadBits: nb > 32")
	}
	if nb == 0 {
		return 0, nil
	}
	if r.bufCount < nb {
		r.refill(nb)
		if r.bufCount < nb {
			return 0, cerrors.ErrEndOfData
		}
	}
	mask := uint64(1)<<nb - 1
	v := uint(r.bufBits & mask)
	r.bufBits >>= nb
	r.bufCount -= nb
	return v, nil
}

// ReadBits64 reads nb bits (0 <= nb <= 64) LSB-first.
func (r *Reader) ReadBits64(nb uint) (uint64, error) {
	if nb > 64 {
		return 0, cerrors.New(cerrors.InvalidArgument, "ReadBits64: nb > 64")
	}
	if nb == 0 {
		return 0, nil
	}
	if nb <= 32 {
		v, err := r.ReadBits(nb)
		return uint64(v), err
	}
	lo, err := r.ReadBits(32)
	if err != nil {
		return 0, err
	}
	hi, err := r.ReadBits(nb - 32)
	if err != nil {
		return 0, err
	}
	return uint64(lo) | uint64(hi)<<32, nil
}

// ReadBytes reads an exact number of whole bytes, requiring the reader to
// be byte-aligned (bufCount % 8 == 0 and pos tracking consistent). It is
// used by codecs that switch from bit-granular headers to a byte-aligned
// payload region (e.g. hybrid-RLE value bytes).
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if r.bufCount%8 != 0 {
		return nil, cerrors.New(cerrors.InvalidArgument, "ReadBytes: reader not byte-aligned")
	}
	out := make([]byte, 0, n)
	for r.bufCount > 0 && len(out) < n {
		out = append(out, byte(r.bufBits))
		r.bufBits >>= 8
		r.bufCount -= 8
	}
	remaining := n - len(out)
	if remaining > 0 {
		if r.pos+remaining > len(r.buf) {
			return nil, cerrors.ErrEndOfData
		}
		out = append(out, r.buf[r.pos:r.pos+remaining]...)
		r.pos += remaining
	}
	return out, nil
}

// Align discards the partial bits remaining before the next byte boundary.
func (r *Reader) Align() {
	drop := r.bufCount % 8
	r.bufBits >>= drop
	r.bufCount -= drop
}
