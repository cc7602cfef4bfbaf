// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package compression

import (
	"bytes"
	"compress/gzip"
	"io"

	"github.com/Vitruves/carquet-sub002/cerrors"
)

// gzipCodec wraps the standard library's compress/gzip: the conventional
// choice this corpus itself falls back to for a general-purpose codec with
// no dedicated third-party package pulled in.
type gzipCodec struct{}

func (gzipCodec) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		return nil, cerrors.New(cerrors.MalformedInput, "gzip: "+err.Error())
	}
	if err := w.Close(); err != nil {
		return nil, cerrors.New(cerrors.MalformedInput, "gzip: "+err.Error())
	}
	return buf.Bytes(), nil
}

func (gzipCodec) Decompress(dst, src []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, cerrors.New(cerrors.MalformedInput, "gzip: "+err.Error())
	}
	defer r.Close()
	out := bytes.NewBuffer(dst)
	if _, err := io.Copy(out, r); err != nil {
		return nil, cerrors.New(cerrors.MalformedInput, "gzip: "+err.Error())
	}
	return out.Bytes(), nil
}
