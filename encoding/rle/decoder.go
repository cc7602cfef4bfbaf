// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rle

import (
	"github.com/Vitruves/carquet-sub002/cerrors"
	"github.com/Vitruves/carquet-sub002/internal/bitutil"
)

// Decoder reads a hybrid RLE / bit-packed stream at a fixed bit width.
// It maintains a cursor in the input, a current-run descriptor, and an
// 8-lane bit-packed buffer, per spec §4.4.
type Decoder struct {
	bitWidth uint
	src      []byte
	pos      int

	isRLE     bool
	remaining int    // values left in the current run
	rleValue  uint64 // value repeated by the current RLE run

	packed    [8]uint32
	packedPos int // index of the next unread value in packed
	packedLen int // number of valid values currently staged in packed

	bitPackedStart  int // byte offset in src where the current bit-packed run's payload begins
	bitPackedGroups int // number of 8-value groups in the current bit-packed run
}

// Init resets d to read values from src at the given bit width. The stream
// carries no value count; Next reports EndOfData once src is exhausted.
func (d *Decoder) Init(src []byte, bitWidth uint) error {
	if bitWidth > maxBitWidth {
		return cerrors.New(cerrors.InvalidArgument, "rle: bit width above 32 is rejected")
	}
	d.bitWidth = bitWidth
	d.src = src
	d.pos = 0
	d.isRLE = false
	d.remaining = 0
	d.packedPos = 0
	d.packedLen = 0
	return nil
}

// readHeader reads the next run header, skipping any header that describes
// an empty run, and populates isRLE/remaining accordingly. It returns
// cerrors.ErrEndOfData when the input is exhausted.
func (d *Decoder) readHeader() error {
	for {
		if d.pos >= len(d.src) {
			return cerrors.ErrEndOfData
		}
		header, n := bitutil.Uvarint32(d.src[d.pos:])
		if n == 0 {
			return cerrors.New(cerrors.MalformedInput, "rle: truncated run header")
		}
		d.pos += n
		if header&1 == 0 {
			count := int(header >> 1)
			bw := byteWidth(d.bitWidth)
			if d.pos+bw > len(d.src) {
				return cerrors.New(cerrors.MalformedInput, "rle: RLE run value truncated")
			}
			var v uint64
			for i := 0; i < bw; i++ {
				v |= uint64(d.src[d.pos+i]) << (8 * uint(i))
			}
			d.pos += bw
			if count == 0 {
				continue // empty run, skip per spec
			}
			d.isRLE = true
			d.remaining = count
			d.rleValue = v
			return nil
		}

		numGroups := int(header >> 1)
		if numGroups == 0 {
			continue // empty run, skip per spec
		}
		byteLen := numGroups * int(d.bitWidth)
		if d.pos+byteLen > len(d.src) {
			return cerrors.New(cerrors.MalformedInput, "rle: bit-packed run truncated")
		}
		d.isRLE = false
		d.remaining = numGroups * 8
		d.packedPos = 0
		d.packedLen = 0
		d.bitPackedStart = d.pos
		d.bitPackedGroups = numGroups
		d.pos += byteLen
		return nil
	}
}

// Next produces one decoded value.
func (d *Decoder) Next() (uint64, error) {
	if d.isRLE {
		if d.remaining == 0 {
			if err := d.readHeader(); err != nil {
				return 0, err
			}
			return d.Next()
		}
		d.remaining--
		return d.rleValue, nil
	}

	if d.packedPos >= d.packedLen {
		if d.remaining == 0 {
			if err := d.readHeader(); err != nil {
				return 0, err
			}
			return d.Next()
		}
		if err := d.refillPacked(); err != nil {
			return 0, err
		}
	}
	v := d.packed[d.packedPos]
	d.packedPos++
	d.remaining--
	return uint64(v), nil
}

func (d *Decoder) refillPacked() error {
	groupIdx := (d.bitPackedGroups*8 - d.remaining) / 8
	off := d.bitPackedStart + groupIdx*int(d.bitWidth)
	bitutil.Unpack8(d.src[off:], d.bitWidth, &d.packed)
	d.packedPos = 0
	d.packedLen = 8
	return nil
}

// ReadBatch fills out with up to len(out) decoded values, returning the
// number actually produced. It returns cerrors.ErrEndOfData only when zero
// values could be produced because the stream is exhausted; a short but
// non-zero read is not an error.
func (d *Decoder) ReadBatch(out []uint64) (int, error) {
	for i := range out {
		v, err := d.Next()
		if err != nil {
			if i > 0 {
				return i, nil
			}
			return 0, err
		}
		out[i] = v
	}
	return len(out), nil
}
