// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package simd provides a process-global dispatch table that selects, per
// operation, between a scalar reference implementation and a wider
// word-at-a-time implementation. Both must be bit-exact; the only
// difference is how many lanes are processed per loop iteration. This
// module has no hand-written assembly, so "wide" means plain Go operating
// 4 or 8 lanes at a time, not a vector intrinsic.
package simd

import (
	"sync"

	"github.com/klauspost/cpuid"
)

// Table holds one function value per dispatched operation. It is built
// once, lazily, by Get.
type Table struct {
	BitUnpack8   func(in []byte, width int, out []uint32)
	PrefixSum32  func(deltas []int32, first int32, out []int32)
	PrefixSum64  func(deltas []int64, first int64, out []int64)
	DictGather32 func(dict []uint32, indices []uint32, out []uint32)
	DictGather64 func(dict []uint64, indices []uint32, out []uint64)
	BoolPack     func(in []bool, out []byte)
	BoolUnpack   func(in []byte, n int, out []bool)
	RLEScan32    func(values []int32) (runStarts []int, runValues []int32)
	CRC32C       func(data []byte) uint32
	Memset       func(dst []byte, v byte)
	Memcpy       func(dst, src []byte) int

	wide bool
}

var (
	once     sync.Once
	instance *Table
)

// Get returns the process-global dispatch table, building it on first use.
func Get() *Table {
	once.Do(func() {
		instance = build(useWide())
	})
	return instance
}

// useWide reports whether the CPU's available feature set warrants routing
// to the wide implementations. On any architecture other than x86 this
// module has no feature probe (the teacher's klauspost/cpuid dependency
// only resolves x86 flags in the version pinned here), so it conservatively
// reports false and every operation runs scalar.
func useWide() bool {
	return cpuid.CPU.SSE42() || cpuid.CPU.AVX2()
}

// IsWide reports whether this table's operations were selected from the
// wide implementation set. Exposed for tests asserting bit-exactness
// between the two paths regardless of which one the host CPU selected.
func (t *Table) IsWide() bool { return t.wide }

func build(wide bool) *Table {
	t := &Table{wide: wide}
	if wide {
		t.BitUnpack8 = bitUnpack8Wide
		t.PrefixSum32 = prefixSum32Wide
		t.PrefixSum64 = prefixSum64Wide
		t.DictGather32 = dictGather32Wide
		t.DictGather64 = dictGather64Wide
		t.BoolPack = boolPackWide
		t.BoolUnpack = boolUnpackWide
		t.RLEScan32 = rleScan32Wide
		t.CRC32C = crc32CWide
		t.Memset = memsetWide
		t.Memcpy = memcpyWide
	} else {
		t.BitUnpack8 = bitUnpack8Scalar
		t.PrefixSum32 = prefixSum32Scalar
		t.PrefixSum64 = prefixSum64Scalar
		t.DictGather32 = dictGather32Scalar
		t.DictGather64 = dictGather64Scalar
		t.BoolPack = boolPackScalar
		t.BoolUnpack = boolUnpackScalar
		t.RLEScan32 = rleScan32Scalar
		t.CRC32C = crc32CScalar
		t.Memset = memsetScalar
		t.Memcpy = memcpyScalar
	}
	return t
}

// Scalar returns a table forced to the scalar implementation set,
// regardless of the host CPU. Used by tests that compare the two paths.
func Scalar() *Table { return build(false) }

// Wide returns a table forced to the wide implementation set, regardless
// of the host CPU.
func Wide() *Table { return build(true) }
