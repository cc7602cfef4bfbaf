// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package compression

type uncompressedCodec struct{}

func (uncompressedCodec) Compress(src []byte) ([]byte, error) {
	out := make([]byte, len(src))
	copy(out, src)
	return out, nil
}

func (uncompressedCodec) Decompress(dst, src []byte) ([]byte, error) {
	return append(dst, src...), nil
}
