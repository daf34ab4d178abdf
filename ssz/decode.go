// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package ssz

import (
	"fmt"

	"github.com/ethsynth/beaconsynth/sszutils"
	"github.com/holiman/uint256"
	"github.com/prysmaticlabs/go-bitfield"
)

// Decode is the inverse of Encode. It returns the canonical value form for
// the schema (see the package comment) and an *DecodingError on truncated
// input, malformed offset tables, or bound violations.
func Decode(t *Type, data []byte) (any, error) {
	return decodeValue(t, data, "")
}

func decodeValue(t *Type, data []byte, path string) (any, error) {
	fail := func(err error) (any, error) {
		return nil, &DecodingError{Path: path, Err: err}
	}

	switch t.Kind {
	case KindBool:
		if len(data) != 1 {
			return fail(sszutils.ErrUnexpectedEOF)
		}
		if data[0] > 1 {
			return fail(fmt.Errorf("%w: invalid boolean byte 0x%02x", sszutils.ErrValueType, data[0]))
		}
		return sszutils.UnmarshalBool(data), nil

	case KindUint:
		if uint64(len(data)) != t.FixedSize() {
			return fail(sszutils.ErrUnexpectedEOF)
		}
		switch t.Bits {
		case 8:
			return sszutils.UnmarshalUint8(data), nil
		case 16:
			return sszutils.UnmarshalUint16(data), nil
		case 32:
			return sszutils.UnmarshalUint32(data), nil
		case 64:
			return sszutils.UnmarshalUint64(data), nil
		default:
			n := new(uint256.Int)
			for limb := 0; limb < 4; limb++ {
				n[limb] = sszutils.UnmarshalUint64(data[limb*8:])
			}
			return n, nil
		}

	case KindByteVector:
		if uint64(len(data)) != t.Length {
			return fail(sszutils.ErrBytesLength)
		}
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil

	case KindBitvector:
		byteLen := (t.Length + 7) / 8
		if uint64(len(data)) != byteLen {
			return fail(sszutils.ErrBitCount)
		}
		if excess := t.Length % 8; excess != 0 && data[byteLen-1]>>excess != 0 {
			return fail(fmt.Errorf("%w: bits beyond bitvector%d are set", sszutils.ErrBitCount, t.Length))
		}
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil

	case KindBitlist:
		if len(data) == 0 || data[len(data)-1] == 0 {
			return fail(fmt.Errorf("%w: bitlist missing length sentinel", sszutils.ErrBitCount))
		}
		bl := bitfield.Bitlist(make([]byte, len(data)))
		copy(bl, data)
		if bl.Len() > t.Limit {
			return fail(fmt.Errorf("%w: bitlist holds %d bits, max %d", sszutils.ErrListTooBig, bl.Len(), t.Limit))
		}
		return bl, nil

	case KindVector:
		return decodeVector(t, data, path)

	case KindList:
		return decodeList(t, data, path)

	case KindContainer:
		return decodeContainer(t, data, path)

	default:
		return fail(sszutils.ErrValueType)
	}
}

func decodeVector(t *Type, data []byte, path string) (any, error) {
	if t.Elem.IsVariable() {
		elems, err := decodeOffsetElements(t.Elem, data, t.Length, path)
		if err != nil {
			return nil, err
		}
		if uint64(len(elems)) != t.Length {
			return nil, &DecodingError{Path: path, Err: sszutils.ErrVectorLength}
		}
		return packDecoded(t, elems), nil
	}

	elemSize := t.Elem.FixedSize()
	if uint64(len(data)) != t.Length*elemSize {
		return nil, &DecodingError{Path: path, Err: sszutils.ErrUnexpectedEOF}
	}
	return decodeFixedElements(t, data, t.Length, path)
}

func decodeList(t *Type, data []byte, path string) (any, error) {
	if t.Elem.IsVariable() {
		elems, err := decodeOffsetElements(t.Elem, data, t.Limit, path)
		if err != nil {
			return nil, err
		}
		return packDecoded(t, elems), nil
	}

	elemSize := t.Elem.FixedSize()
	if uint64(len(data))%elemSize != 0 {
		return nil, &DecodingError{Path: path, Err: sszutils.ErrUnexpectedEOF}
	}
	count := uint64(len(data)) / elemSize
	if count > t.Limit {
		return nil, &DecodingError{Path: path, Err: sszutils.ErrListTooBig}
	}
	return decodeFixedElements(t, data, count, path)
}

// decodeFixedElements reads count fixed-size elements back to back, producing
// the canonical typed representation for the element kind.
func decodeFixedElements(t *Type, data []byte, count uint64, path string) (any, error) {
	elemSize := t.Elem.FixedSize()

	switch {
	case t.Elem.Kind == KindUint && t.Elem.Bits == 8:
		out := make([]byte, count)
		copy(out, data)
		return out, nil
	case t.Elem.Kind == KindUint && t.Elem.Bits == 64:
		out := make([]uint64, count)
		for i := range out {
			out[i] = sszutils.UnmarshalUint64(data[uint64(i)*8:])
		}
		return out, nil
	case t.Elem.Kind == KindByteVector:
		out := make([][]byte, count)
		for i := range out {
			b := make([]byte, elemSize)
			copy(b, data[uint64(i)*elemSize:])
			out[i] = b
		}
		return out, nil
	default:
		out := make([]any, count)
		for i := range out {
			v, err := decodeValue(t.Elem, data[uint64(i)*elemSize:(uint64(i)+1)*elemSize], indexPath(path, i))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
}

// decodeOffsetElements reads a variable-size element sequence behind an
// offset table, validating that offsets are monotonic and in range.
func decodeOffsetElements(elem *Type, data []byte, maxCount uint64, path string) ([]any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) < BytesPerLengthOffset {
		return nil, &DecodingError{Path: path, Err: sszutils.ErrUnexpectedEOF}
	}

	first := sszutils.ReadOffset(data)
	if first%BytesPerLengthOffset != 0 || uint64(first) > uint64(len(data)) {
		return nil, &DecodingError{Path: path, Err: sszutils.ErrOffset}
	}
	count := uint64(first) / BytesPerLengthOffset
	// a non-empty payload must carry at least one offset; a zero first offset
	// would leave the trailing bytes unaccounted for
	if count == 0 {
		return nil, &DecodingError{Path: path, Err: sszutils.ErrOffset}
	}
	if count > maxCount {
		return nil, &DecodingError{Path: path, Err: sszutils.ErrListTooBig}
	}

	offsets := make([]uint32, count+1)
	for i := uint64(0); i < count; i++ {
		offsets[i] = sszutils.ReadOffset(data[i*BytesPerLengthOffset:])
	}
	offsets[count] = uint32(len(data))

	out := make([]any, count)
	for i := uint64(0); i < count; i++ {
		start, end := offsets[i], offsets[i+1]
		if start > end || uint64(end) > uint64(len(data)) {
			return nil, &DecodingError{Path: path, Err: sszutils.ErrOffset}
		}
		v, err := decodeValue(elem, data[start:end], indexPath(path, int(i)))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// packDecoded normalizes a []any element slice into the canonical collection
// form for the element kind.
func packDecoded(t *Type, elems []any) any {
	switch t.Elem.Kind {
	case KindByteVector:
		out := make([][]byte, len(elems))
		for i, e := range elems {
			out[i] = e.([]byte)
		}
		return out
	default:
		if elems == nil {
			return []any{}
		}
		return elems
	}
}

func decodeContainer(t *Type, data []byte, path string) (any, error) {
	fixedSize := containerFixedSize(t)
	if uint64(len(data)) < fixedSize {
		return nil, &DecodingError{Path: path, Err: sszutils.ErrUnexpectedEOF}
	}

	type varField struct {
		index  int
		offset uint32
	}
	values := make([]any, len(t.Fields))
	varFields := make([]varField, 0, len(t.Fields))

	pos := uint64(0)
	for i, f := range t.Fields {
		if f.Type.IsVariable() {
			off := sszutils.ReadOffset(data[pos:])
			varFields = append(varFields, varField{index: i, offset: off})
			pos += BytesPerLengthOffset
			continue
		}
		size := f.Type.FixedSize()
		v, err := decodeValue(f.Type, data[pos:pos+size], joinPath(path, f.Name))
		if err != nil {
			return nil, err
		}
		values[i] = v
		pos += size
	}

	if len(varFields) == 0 {
		if uint64(len(data)) != fixedSize {
			return nil, &DecodingError{Path: path, Err: sszutils.ErrUnexpectedEOF}
		}
		return values, nil
	}

	// the first offset must point at the end of the fixed region, and the
	// remaining offsets must be monotonically non-decreasing and in range
	if uint64(varFields[0].offset) != fixedSize {
		return nil, &DecodingError{Path: path, Err: sszutils.ErrOffset}
	}
	for vi, vf := range varFields {
		start := uint64(vf.offset)
		end := uint64(len(data))
		if vi+1 < len(varFields) {
			end = uint64(varFields[vi+1].offset)
		}
		if start > end || end > uint64(len(data)) {
			return nil, &DecodingError{Path: path, Err: sszutils.ErrOffset}
		}
		f := t.Fields[vf.index]
		v, err := decodeValue(f.Type, data[start:end], joinPath(path, f.Name))
		if err != nil {
			return nil, err
		}
		values[vf.index] = v
	}
	return values, nil
}

func containerFixedSize(t *Type) uint64 {
	var size uint64
	for _, f := range t.Fields {
		size += f.Type.FixedSize()
	}
	return size
}
