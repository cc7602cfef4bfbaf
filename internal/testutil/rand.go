// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand implements a deterministic pseudo-random number generator used to
// build repeatable round-trip and fuzz-shaped inputs for the codec tests in
// this module. This differs from math/rand in that the exact output is
// consistent across Go versions, so recorded failures stay reproducible.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

// NewRand returns a Rand seeded deterministically from seed.
func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x |= int(r.blk[0]) << 0
	x |= int(r.blk[1]) << 8
	x |= int(r.blk[2]) << 16
	x |= int(r.blk[3]) << 24
	x |= int(r.blk[4]) << 32
	x |= int(r.blk[5]) << 40
	x |= int(r.blk[6]) << 48
	x |= int(r.blk[7]&0x3f) << 56
	return x
}

// Uint32 returns a pseudo-random uint32, useful for generating INT32/FLOAT
// column batches.
func (r *Rand) Uint32() uint32 { return uint32(r.Int()) }

// Uint64 returns a pseudo-random uint64, useful for generating INT64/DOUBLE
// column batches and xxHash64/Bloom-filter keys.
func (r *Rand) Uint64() uint64 {
	hi := uint64(uint32(r.Int()))
	lo := uint64(uint32(r.Int()))
	return hi<<32 | lo
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := r.Int() % n
	if v < 0 {
		v += n
	}
	return v
}

func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	bb := b
	for len(bb) > 0 {
		r.Encrypt(r.blk[:], r.blk[:])
		cnt := copy(bb, r.blk[:])
		bb = bb[cnt:]
	}
	return b
}

func (r *Rand) Perm(n int) []int {
	m := make([]int, n)
	for i := 0; i < n; i++ {
		j := r.Intn(i + 1)
		m[i] = m[j]
		m[j] = i
	}
	return m
}
