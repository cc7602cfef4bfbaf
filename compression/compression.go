// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package compression is the thin codec registry a page-writer sits on top
// of: each Parquet page carries a compression-codec enum value, and this
// package maps that value to a Compress/Decompress pair. It is deliberately
// minimal — no framing, no streaming — since pages are always whole byte
// buffers by the time they reach this layer.
package compression

import "github.com/Vitruves/carquet-sub002/cerrors"

// Codec is a one-shot, whole-buffer compressor/decompressor.
type Codec interface {
	// Compress returns the compressed form of src.
	Compress(src []byte) ([]byte, error)
	// Decompress appends the decompressed form of src to dst and returns
	// the result. dst may be nil.
	Decompress(dst, src []byte) ([]byte, error)
}

// Name enumerates the compression values a Parquet page's metadata may
// carry.
type Name int

const (
	Uncompressed Name = iota
	Snappy
	Gzip
	LZ4
	Zstd
	Brotli
	LZ4Raw
)

func (n Name) String() string {
	switch n {
	case Uncompressed:
		return "UNCOMPRESSED"
	case Snappy:
		return "SNAPPY"
	case Gzip:
		return "GZIP"
	case LZ4:
		return "LZ4"
	case Zstd:
		return "ZSTD"
	case Brotli:
		return "BROTLI"
	case LZ4Raw:
		return "LZ4_RAW"
	default:
		return "UNKNOWN"
	}
}

// ErrUnsupportedCodec is returned by codecs registered only as placeholders
// because no example-grounded Go package in the retrieved corpus
// implements the wire format.
var ErrUnsupportedCodec = cerrors.New(cerrors.InvalidArgument, "compression: codec has no available implementation")

// Registry maps a compression Name to its Codec.
type Registry struct {
	codecs map[Name]Codec
}

// NewRegistry builds a Registry with every Name enumerated above bound to a
// concrete Codec: UNCOMPRESSED, GZIP, and ZSTD are fully functional; SNAPPY,
// LZ4, LZ4_RAW, and BROTLI are registered as stubs returning
// ErrUnsupportedCodec (see DESIGN.md for why).
func NewRegistry() *Registry {
	r := &Registry{codecs: make(map[Name]Codec, 7)}
	r.codecs[Uncompressed] = uncompressedCodec{}
	r.codecs[Gzip] = gzipCodec{}
	r.codecs[Zstd] = zstdCodec{}
	r.codecs[Snappy] = unsupportedCodec{}
	r.codecs[LZ4] = unsupportedCodec{}
	r.codecs[LZ4Raw] = unsupportedCodec{}
	r.codecs[Brotli] = unsupportedCodec{}
	return r
}

// Get returns the Codec registered for name.
func (r *Registry) Get(name Name) (Codec, error) {
	c, ok := r.codecs[name]
	if !ok {
		return nil, cerrors.New(cerrors.InvalidArgument, "compression: unrecognized codec name")
	}
	return c, nil
}

type unsupportedCodec struct{}

func (unsupportedCodec) Compress(src []byte) ([]byte, error)         { return nil, ErrUnsupportedCodec }
func (unsupportedCodec) Decompress(dst, src []byte) ([]byte, error) { return nil, ErrUnsupportedCodec }
