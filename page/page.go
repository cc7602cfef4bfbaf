// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package page is a thin orchestration façade binding a physical type and
// an encoding selection to the right encoding/* codec. It has no schema
// tree, no Thrift metadata, and no file framing — those belong to an
// external page-writer/reader this module only names as a collaborator.
// Its sole job is to give every codec in encoding/* one concrete,
// end-to-end call site.
package page

import (
	"github.com/Vitruves/carquet-sub002/cerrors"
	"github.com/Vitruves/carquet-sub002/encoding"
	"github.com/Vitruves/carquet-sub002/encoding/bytestreamsplit"
	"github.com/Vitruves/carquet-sub002/encoding/delta"
	"github.com/Vitruves/carquet-sub002/encoding/deltastring"
	"github.com/Vitruves/carquet-sub002/encoding/dictionary"
	"github.com/Vitruves/carquet-sub002/encoding/plain"
	"github.com/Vitruves/carquet-sub002/encoding/rle"
	"github.com/Vitruves/carquet-sub002/ptype"
)

// Batch carries the one value slice relevant to the physical type being
// encoded or decoded; callers populate (on encode) or read (after decode)
// the field matching their ptype.Type.
type Batch struct {
	Bools      []bool
	Int32s     []int32
	Int64s     []int64
	Int96s     []plain.Int96
	Floats     []float32
	Doubles    []float64
	ByteArrays [][]byte
}

// Options carries the small set of out-of-band parameters the thin
// orchestration layer needs but cannot derive from (Type, Encoding) alone.
type Options struct {
	// BitWidth is the RLE bit width for RLE-encoded definition/repetition
	// levels; ignored for other encodings.
	BitWidth uint
	// FixedLen is the configured width of a FIXED_LEN_BYTE_ARRAY column.
	FixedLen int
	// Dictionary is the shared builder used across a column chunk's pages
	// for RLE_DICTIONARY encode.
	Dictionary *dictionary.Builder
	// DictionaryPage holds the already-decoded unique values (in dictionary
	// order) used to resolve RLE_DICTIONARY indices on decode.
	DictionaryPage [][]byte
	// DictionaryFallbackThreshold is carried through unchanged: deciding
	// whether a column chunk falls back from dictionary to plain encoding
	// belongs to the external page-writer's metadata bookkeeping, which is
	// out of scope here; this field has no effect on Encode or Decode.
	DictionaryFallbackThreshold int
}

// Encode renders batch as the wire bytes for the given (Type, Encoding)
// pair.
func Encode(t ptype.Type, enc encoding.Encoding, batch Batch, opts Options) ([]byte, error) {
	switch enc {
	case encoding.Plain:
		return encodePlain(t, batch, opts)
	case encoding.RLE:
		return encodeRLE(t, batch, opts)
	case encoding.RLEDictionary:
		return encodeDictionary(batch, opts)
	case encoding.DeltaBinaryPacked:
		return encodeDeltaBinaryPacked(t, batch)
	case encoding.DeltaLengthByteArray:
		if t != ptype.ByteArray {
			return nil, cerrors.New(cerrors.InvalidArgument, "page: DELTA_LENGTH_BYTE_ARRAY requires BYTE_ARRAY")
		}
		return deltastring.EncodeLengthByteArray(batch.ByteArrays), nil
	case encoding.DeltaByteArray:
		if t != ptype.ByteArray {
			return nil, cerrors.New(cerrors.InvalidArgument, "page: DELTA_BYTE_ARRAY requires BYTE_ARRAY")
		}
		return deltastring.EncodeByteArray(batch.ByteArrays), nil
	case encoding.ByteStreamSplit:
		return encodeByteStreamSplit(t, batch, opts)
	default:
		return nil, cerrors.New(cerrors.InvalidArgument, "page: unrecognized encoding")
	}
}

// Decode parses data as numValues values of the given (Type, Encoding)
// pair.
func Decode(t ptype.Type, enc encoding.Encoding, data []byte, numValues int, opts Options) (Batch, error) {
	switch enc {
	case encoding.Plain:
		return decodePlain(t, data, numValues, opts)
	case encoding.RLE:
		return decodeRLE(t, data, numValues, opts)
	case encoding.RLEDictionary:
		return decodeDictionary(data, numValues, opts)
	case encoding.DeltaBinaryPacked:
		return decodeDeltaBinaryPacked(t, data, numValues)
	case encoding.DeltaLengthByteArray:
		if t != ptype.ByteArray {
			return Batch{}, cerrors.New(cerrors.InvalidArgument, "page: DELTA_LENGTH_BYTE_ARRAY requires BYTE_ARRAY")
		}
		values, err := deltastring.DecodeLengthByteArray(data, numValues)
		if err != nil {
			return Batch{}, err
		}
		return Batch{ByteArrays: values}, nil
	case encoding.DeltaByteArray:
		if t != ptype.ByteArray {
			return Batch{}, cerrors.New(cerrors.InvalidArgument, "page: DELTA_BYTE_ARRAY requires BYTE_ARRAY")
		}
		// A reconstructed value is never longer than all suffix bytes
		// together, so numValues*len(data) bounds the scratch a valid
		// stream needs; start at 2x the stream length and double on
		// ResourceExhausted until that bound is reached.
		size := len(data) * 2
		for {
			scratch := make([]byte, size)
			values, err := deltastring.DecodeByteArray(data, numValues, scratch)
			if e, ok := err.(cerrors.Error); ok && e.Kind == cerrors.ResourceExhausted && size < numValues*len(data) {
				size *= 2
				continue
			}
			if err != nil {
				return Batch{}, err
			}
			return Batch{ByteArrays: values}, nil
		}
	case encoding.ByteStreamSplit:
		return decodeByteStreamSplit(t, data, numValues, opts)
	default:
		return Batch{}, cerrors.New(cerrors.InvalidArgument, "page: unrecognized encoding")
	}
}

func encodePlain(t ptype.Type, batch Batch, opts Options) ([]byte, error) {
	switch t {
	case ptype.Boolean:
		return plain.EncodeBool(batch.Bools), nil
	case ptype.Int32:
		return plain.EncodeInt32(batch.Int32s), nil
	case ptype.Int64:
		return plain.EncodeInt64(batch.Int64s), nil
	case ptype.Int96:
		return plain.EncodeInt96(batch.Int96s), nil
	case ptype.Float:
		return plain.EncodeFloat(batch.Floats), nil
	case ptype.Double:
		return plain.EncodeDouble(batch.Doubles), nil
	case ptype.ByteArray:
		return plain.EncodeByteArray(batch.ByteArrays), nil
	case ptype.FixedLenByteArray:
		return plain.EncodeFixedLenByteArray(batch.ByteArrays, opts.FixedLen)
	default:
		return nil, cerrors.New(cerrors.InvalidArgument, "page: unrecognized physical type")
	}
}

func decodePlain(t ptype.Type, data []byte, n int, opts Options) (Batch, error) {
	switch t {
	case ptype.Boolean:
		v, err := plain.DecodeBool(data, n)
		return Batch{Bools: v}, err
	case ptype.Int32:
		v, err := plain.DecodeInt32(data, n)
		return Batch{Int32s: v}, err
	case ptype.Int64:
		v, err := plain.DecodeInt64(data, n)
		return Batch{Int64s: v}, err
	case ptype.Int96:
		v, err := plain.DecodeInt96(data, n)
		return Batch{Int96s: v}, err
	case ptype.Float:
		v, err := plain.DecodeFloat(data, n)
		return Batch{Floats: v}, err
	case ptype.Double:
		v, err := plain.DecodeDouble(data, n)
		return Batch{Doubles: v}, err
	case ptype.ByteArray:
		v, err := plain.DecodeByteArray(data, n)
		return Batch{ByteArrays: byteArrayValuesToBytes(v)}, err
	case ptype.FixedLenByteArray:
		v, err := plain.DecodeFixedLenByteArray(data, n, opts.FixedLen)
		return Batch{ByteArrays: byteArrayValuesToBytes(v)}, err
	default:
		return Batch{}, cerrors.New(cerrors.InvalidArgument, "page: unrecognized physical type")
	}
}

func byteArrayValuesToBytes(v []plain.ByteArrayValue) [][]byte {
	out := make([][]byte, len(v))
	for i := range v {
		out[i] = v[i]
	}
	return out
}

func encodeRLE(t ptype.Type, batch Batch, opts Options) ([]byte, error) {
	enc, err := rle.NewEncoder(opts.BitWidth)
	if err != nil {
		return nil, err
	}
	switch t {
	case ptype.Boolean:
		for _, b := range batch.Bools {
			v := uint64(0)
			if b {
				v = 1
			}
			if err := enc.Put(v); err != nil {
				return nil, err
			}
		}
	case ptype.Int32:
		for _, v := range batch.Int32s {
			if err := enc.Put(uint64(uint32(v))); err != nil {
				return nil, err
			}
		}
	default:
		return nil, cerrors.New(cerrors.InvalidArgument, "page: RLE is only wired for BOOLEAN and INT32 (levels)")
	}
	return enc.Flush()
}

func decodeRLE(t ptype.Type, data []byte, n int, opts Options) (Batch, error) {
	var dec rle.Decoder
	if err := dec.Init(data, opts.BitWidth); err != nil {
		return Batch{}, err
	}
	switch t {
	case ptype.Boolean:
		out := make([]bool, n)
		for i := range out {
			v, err := dec.Next()
			if err != nil {
				return Batch{}, err
			}
			out[i] = v != 0
		}
		return Batch{Bools: out}, nil
	case ptype.Int32:
		out := make([]int32, n)
		for i := range out {
			v, err := dec.Next()
			if err != nil {
				return Batch{}, err
			}
			out[i] = int32(uint32(v))
		}
		return Batch{Int32s: out}, nil
	default:
		return Batch{}, cerrors.New(cerrors.InvalidArgument, "page: RLE is only wired for BOOLEAN and INT32 (levels)")
	}
}

func encodeDictionary(batch Batch, opts Options) ([]byte, error) {
	if opts.Dictionary == nil {
		return nil, cerrors.New(cerrors.InvalidArgument, "page: RLE_DICTIONARY encode requires Options.Dictionary")
	}
	indices := make([]uint32, len(batch.ByteArrays))
	for i, v := range batch.ByteArrays {
		indices[i] = opts.Dictionary.Index(v)
	}
	return dictionary.EncodeIndices(indices, opts.Dictionary.Count())
}

func decodeDictionary(data []byte, n int, opts Options) (Batch, error) {
	if opts.DictionaryPage == nil {
		return Batch{}, cerrors.New(cerrors.InvalidArgument, "page: RLE_DICTIONARY decode requires Options.DictionaryPage")
	}
	indices, err := dictionary.DecodeIndices(data, n, len(opts.DictionaryPage))
	if err != nil {
		return Batch{}, err
	}
	values, err := dictionary.GatherFromPage(opts.DictionaryPage, indices)
	if err != nil {
		return Batch{}, err
	}
	return Batch{ByteArrays: values}, nil
}

func encodeDeltaBinaryPacked(t ptype.Type, batch Batch) ([]byte, error) {
	switch t {
	case ptype.Int32:
		widened := make([]int64, len(batch.Int32s))
		for i, v := range batch.Int32s {
			widened[i] = int64(v)
		}
		return delta.EncodeAll(widened), nil
	case ptype.Int64:
		return delta.EncodeAll(batch.Int64s), nil
	default:
		return nil, cerrors.New(cerrors.InvalidArgument, "page: DELTA_BINARY_PACKED requires INT32 or INT64")
	}
}

func decodeDeltaBinaryPacked(t ptype.Type, data []byte, n int) (Batch, error) {
	values, err := delta.DecodeAll(data)
	if err != nil {
		return Batch{}, err
	}
	if len(values) != n {
		return Batch{}, cerrors.New(cerrors.MalformedInput, "page: delta stream value count mismatch")
	}
	switch t {
	case ptype.Int32:
		out := make([]int32, n)
		for i, v := range values {
			out[i] = int32(v)
		}
		return Batch{Int32s: out}, nil
	case ptype.Int64:
		return Batch{Int64s: values}, nil
	default:
		return Batch{}, cerrors.New(cerrors.InvalidArgument, "page: DELTA_BINARY_PACKED requires INT32 or INT64")
	}
}

// byteStreamSplitWidth resolves the transposition stride for t: FLOAT and
// DOUBLE carry their width intrinsically, while FIXED_LEN_BYTE_ARRAY's width
// is a per-column configuration the caller supplies via opts.FixedLen (see
// spec §4.8: "defined for FLOAT (B=4), DOUBLE (B=8), and
// FIXED_LEN_BYTE_ARRAY of any positive B").
func byteStreamSplitWidth(t ptype.Type, opts Options) (int, error) {
	if t == ptype.FixedLenByteArray {
		if opts.FixedLen <= 0 {
			return 0, cerrors.New(cerrors.InvalidArgument, "page: BYTE_STREAM_SPLIT on FIXED_LEN_BYTE_ARRAY requires a positive Options.FixedLen")
		}
		return opts.FixedLen, nil
	}
	width, fixed := t.ByteWidth()
	if !fixed {
		return 0, cerrors.New(cerrors.InvalidArgument, "page: BYTE_STREAM_SPLIT requires a fixed-width type")
	}
	return width, nil
}

func encodeByteStreamSplit(t ptype.Type, batch Batch, opts Options) ([]byte, error) {
	plainBytes, err := encodePlain(t, batch, opts)
	if err != nil {
		return nil, err
	}
	width, err := byteStreamSplitWidth(t, opts)
	if err != nil {
		return nil, err
	}
	return bytestreamsplit.Encode(plainBytes, width)
}

func decodeByteStreamSplit(t ptype.Type, data []byte, n int, opts Options) (Batch, error) {
	width, err := byteStreamSplitWidth(t, opts)
	if err != nil {
		return Batch{}, err
	}
	plainBytes, err := bytestreamsplit.Decode(data, width)
	if err != nil {
		return Batch{}, err
	}
	return decodePlain(t, plainBytes, n, opts)
}
