// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bloom implements Parquet's split-block Bloom filter: a byte array
// partitioned into 32-byte blocks, each holding 8 lanes of 32 bits, probed
// with 8 fixed salts derived from an xxHash64 key.
package bloom

import (
	"math"

	"github.com/Vitruves/carquet-sub002/cerrors"
	"github.com/Vitruves/carquet-sub002/xxhash"
)

const blockSize = 32 // bytes per block: 8 lanes * 4 bytes

// salts are the eight fixed multipliers used to derive one probe bit per
// lane from the low 32 bits of the key hash.
var salts = [8]uint32{
	0x47B6137B, 0x44974D91, 0x8824AD5B, 0xA2B7289D,
	0x705495C7, 0x2DF1424B, 0x9EFC4947, 0x5C6BFB31,
}

// Filter is a split-block Bloom filter over an in-memory byte array. The
// zero value is not usable; construct with New, NewBySize, or Parse.
type Filter struct {
	bits      []byte
	numBlocks uint32
}

// New creates a filter sized for n expected distinct values at a target
// false-positive probability p, per m = ceil(-n*ln(p)/(ln2)^2), rounded up
// to a whole 256-bit block.
func New(n int, p float64) (*Filter, error) {
	if n <= 0 {
		return nil, cerrors.New(cerrors.InvalidArgument, "bloom: n must be positive")
	}
	if p <= 0 || p >= 1 {
		return nil, cerrors.New(cerrors.InvalidArgument, "bloom: p must be in (0,1)")
	}
	numerator := -float64(n) * math.Log(p)
	denominator := math.Ln2 * math.Ln2
	bits := uint64(math.Ceil(numerator / denominator))
	numBytes := (bits + 7) / 8
	return NewBySize(int(numBytes))
}

// NewBySize creates a zeroed filter of at least numBytes, rounded up to the
// nearest whole 32-byte block (minimum one block).
func NewBySize(numBytes int) (*Filter, error) {
	if numBytes < 0 {
		return nil, cerrors.New(cerrors.InvalidArgument, "bloom: size must be non-negative")
	}
	blocks := (numBytes + blockSize - 1) / blockSize
	if blocks < 1 {
		blocks = 1
	}
	return &Filter{
		bits:      make([]byte, blocks*blockSize),
		numBlocks: uint32(blocks),
	}, nil
}

// Parse validates and wraps an existing serialized filter body. The slice
// is retained, not copied; callers must not mutate it concurrently with use.
func Parse(data []byte) (*Filter, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, cerrors.New(cerrors.MalformedInput, "bloom: length must be a positive multiple of 32")
	}
	return &Filter{bits: data, numBlocks: uint32(len(data) / blockSize)}, nil
}

// Bytes returns the filter's wire form: the byte array itself.
func (f *Filter) Bytes() []byte { return f.bits }

// NumBlocks reports the number of 32-byte blocks in the filter.
func (f *Filter) NumBlocks() int { return int(f.numBlocks) }

func blockMasks(hash uint64) (blockIdx uint32, masks [8]uint32) {
	blockIdx = uint32(hash >> 32)
	lo := uint32(hash)
	for i, s := range salts {
		masks[i] = s * lo
	}
	return blockIdx, masks
}

// InsertHash sets the 8 probe bits for an already-computed 64-bit key hash.
func (f *Filter) InsertHash(hash uint64) {
	blockIdx, masks := blockMasks(hash)
	blockIdx %= f.numBlocks
	base := int(blockIdx) * blockSize
	for lane, m := range masks {
		bit := m >> 27
		byteOff := base + lane*4 + int(bit/8)
		f.bits[byteOff] |= 1 << (bit % 8)
	}
}

// CheckHash reports whether an already-computed 64-bit key hash may be a
// member. False positives are possible; false negatives are not.
func (f *Filter) CheckHash(hash uint64) bool {
	blockIdx, masks := blockMasks(hash)
	blockIdx %= f.numBlocks
	base := int(blockIdx) * blockSize
	for lane, m := range masks {
		bit := m >> 27
		byteOff := base + lane*4 + int(bit/8)
		if f.bits[byteOff]&(1<<(bit%8)) == 0 {
			return false
		}
	}
	return true
}

// Insert hashes key with xxHash64 seed 0 and sets its probe bits.
func (f *Filter) Insert(key []byte) { f.InsertHash(xxhash.Sum64(key, 0)) }

// Check hashes key with xxHash64 seed 0 and tests membership.
func (f *Filter) Check(key []byte) bool { return f.CheckHash(xxhash.Sum64(key, 0)) }

// Merge bitwise-ORs src into f. Both filters must have identical size.
func (f *Filter) Merge(src *Filter) error {
	if len(f.bits) != len(src.bits) {
		return cerrors.New(cerrors.InvalidArgument, "bloom: merge requires identically sized filters")
	}
	for i := range f.bits {
		f.bits[i] |= src.bits[i]
	}
	return nil
}
