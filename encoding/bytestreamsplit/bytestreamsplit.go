// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bytestreamsplit implements Parquet's BYTE_STREAM_SPLIT
// transposition for fixed-width types: it regroups the k-th byte of every
// value so that byte lanes of similar entropy live together, ahead of
// downstream general-purpose compression.
package bytestreamsplit

import "github.com/Vitruves/carquet-sub002/cerrors"

// Encode transposes a count*width byte matrix (count values of width bytes
// each) into width lanes of count bytes each: out[b*count+i] = in[i*width+b].
// len(in) must equal count*width.
func Encode(in []byte, width int) ([]byte, error) {
	if width <= 0 {
		return nil, cerrors.New(cerrors.InvalidArgument, "bytestreamsplit: width must be positive")
	}
	if len(in)%width != 0 {
		return nil, cerrors.New(cerrors.InvalidArgument, "bytestreamsplit: input length not a multiple of width")
	}
	count := len(in) / width
	out := make([]byte, len(in))
	for i := 0; i < count; i++ {
		for b := 0; b < width; b++ {
			out[b*count+i] = in[i*width+b]
		}
	}
	return out, nil
}

// Decode reverses Encode.
func Decode(in []byte, width int) ([]byte, error) {
	if width <= 0 {
		return nil, cerrors.New(cerrors.InvalidArgument, "bytestreamsplit: width must be positive")
	}
	if len(in)%width != 0 {
		return nil, cerrors.New(cerrors.InvalidArgument, "bytestreamsplit: input length not a multiple of width")
	}
	count := len(in) / width
	out := make([]byte, len(in))
	for i := 0; i < count; i++ {
		for b := 0; b < width; b++ {
			out[i*width+b] = in[b*count+i]
		}
	}
	return out, nil
}
