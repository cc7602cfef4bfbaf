// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package compression

import (
	"github.com/klauspost/compress/zstd"

	"github.com/Vitruves/carquet-sub002/cerrors"
)

// zstdCodec wraps github.com/klauspost/compress/zstd, already a direct
// dependency of the teacher repo's own go.mod.
type zstdCodec struct{}

func (zstdCodec) Compress(src []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, cerrors.New(cerrors.MalformedInput, "zstd: "+err.Error())
	}
	defer enc.Close()
	return enc.EncodeAll(src, make([]byte, 0, len(src))), nil
}

func (zstdCodec) Decompress(dst, src []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, cerrors.New(cerrors.MalformedInput, "zstd: "+err.Error())
	}
	defer dec.Close()
	out, err := dec.DecodeAll(src, dst)
	if err != nil {
		return nil, cerrors.New(cerrors.MalformedInput, "zstd: "+err.Error())
	}
	return out, nil
}
