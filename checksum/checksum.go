// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package checksum implements the two CRC-32 variants Parquet pages use:
// CRC-32 (IEEE) for the page checksum field, and CRC-32C (Castagnoli) which
// the split-block Bloom filter header reserves for future use. Both are
// thin wrappers over the standard library's hash/crc32, which already
// implements the slicing-by-8 table algorithm; there is no corpus-grounded
// reason to hand-roll a replacement.
package checksum

import "hash/crc32"

var (
	ieeeTable = crc32.IEEETable
	castTable = crc32.MakeTable(crc32.Castagnoli)
)

// CRC32 computes the IEEE CRC-32 of data in one shot.
func CRC32(data []byte) uint32 {
	return UpdateCRC32(0, data)
}

// UpdateCRC32 extends an existing IEEE CRC-32 accumulator with data. Passing
// a zero-valued crc for the first call matches crc32.ChecksumIEEE's seed.
func UpdateCRC32(crc uint32, data []byte) uint32 {
	return crc32.Update(crc, ieeeTable, data)
}

// CRC32C computes the Castagnoli CRC-32C of data in one shot.
func CRC32C(data []byte) uint32 {
	return UpdateCRC32C(0, data)
}

// UpdateCRC32C extends an existing CRC-32C accumulator with data.
func UpdateCRC32C(crc uint32, data []byte) uint32 {
	return crc32.Update(crc, castTable, data)
}
