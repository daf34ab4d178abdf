// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package ssz

import (
	"github.com/ethsynth/beaconsynth/sszutils"
)

// Encode serializes a value per its schema: fixed-size fields at fixed
// offsets in schema order, variable-size fields as a 4-byte offset table
// followed by their concatenated payloads. It returns an *EncodingError when
// a value violates its type's size or shape bounds.
func Encode(t *Type, v any) ([]byte, error) {
	buf, err := encodeValue(t, v, nil, "")
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func encodeValue(t *Type, v any, buf []byte, path string) ([]byte, error) {
	switch t.Kind {
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, &EncodingError{Path: path, Err: sszutils.ErrValueType}
		}
		return sszutils.MarshalBool(buf, b), nil

	case KindUint:
		if t.Bits == 256 {
			n, err := asUint256(v)
			if err != nil {
				return nil, &EncodingError{Path: path, Err: err}
			}
			for limb := 0; limb < 4; limb++ {
				buf = sszutils.MarshalUint64(buf, n[limb])
			}
			return buf, nil
		}
		x, err := asUint(t, v)
		if err != nil {
			return nil, &EncodingError{Path: path, Err: err}
		}
		switch t.Bits {
		case 8:
			return sszutils.MarshalUint8(buf, uint8(x)), nil
		case 16:
			return sszutils.MarshalUint16(buf, uint16(x)), nil
		case 32:
			return sszutils.MarshalUint32(buf, uint32(x)), nil
		default:
			return sszutils.MarshalUint64(buf, x), nil
		}

	case KindByteVector:
		b, err := asBytes(t, v)
		if err != nil {
			return nil, &EncodingError{Path: path, Err: err}
		}
		return append(buf, b...), nil

	case KindBitvector:
		b, err := asBitvector(t, v)
		if err != nil {
			return nil, &EncodingError{Path: path, Err: err}
		}
		return append(buf, b...), nil

	case KindBitlist:
		bl, err := asBitlist(t, v)
		if err != nil {
			return nil, &EncodingError{Path: path, Err: err}
		}
		return append(buf, bl...), nil

	case KindVector:
		c, err := asCollection(t, v)
		if err == nil {
			err = checkVectorLen(t, c)
		}
		if err != nil {
			return nil, &EncodingError{Path: path, Err: err}
		}
		return encodeElements(t, c, buf, path)

	case KindList:
		c, err := asCollection(t, v)
		if err == nil {
			err = checkListLen(t, c)
		}
		if err != nil {
			return nil, &EncodingError{Path: path, Err: err}
		}
		return encodeElements(t, c, buf, path)

	case KindContainer:
		fields, err := asContainer(t, v)
		if err != nil {
			return nil, &EncodingError{Path: path, Err: err}
		}
		return encodeContainer(t, fields, buf, path)

	default:
		return nil, &EncodingError{Path: path, Err: sszutils.ErrValueType}
	}
}

// encodeElements serializes vector or list elements. Fixed-size elements are
// written back to back; variable-size elements get a leading offset table.
func encodeElements(t *Type, c collection, buf []byte, path string) ([]byte, error) {
	if !t.Elem.IsVariable() {
		var err error
		for i := 0; i < c.length; i++ {
			buf, err = encodeValue(t.Elem, c.at(i), buf, indexPath(path, i))
			if err != nil {
				return nil, err
			}
		}
		return buf, nil
	}

	base := len(buf)
	for i := 0; i < c.length; i++ {
		buf = sszutils.MarshalOffset(buf, 0)
	}
	var err error
	for i := 0; i < c.length; i++ {
		sszutils.UpdateOffset(buf[base+i*BytesPerLengthOffset:], len(buf)-base)
		buf, err = encodeValue(t.Elem, c.at(i), buf, indexPath(path, i))
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func encodeContainer(t *Type, fields []any, buf []byte, path string) ([]byte, error) {
	base := len(buf)
	patchPos := make([]int, len(t.Fields))

	var err error
	for i, f := range t.Fields {
		if f.Type.IsVariable() {
			patchPos[i] = len(buf)
			buf = sszutils.MarshalOffset(buf, 0)
			continue
		}
		patchPos[i] = -1
		buf, err = encodeValue(f.Type, fields[i], buf, joinPath(path, f.Name))
		if err != nil {
			return nil, err
		}
	}

	for i, f := range t.Fields {
		if patchPos[i] < 0 {
			continue
		}
		sszutils.UpdateOffset(buf[patchPos[i]:], len(buf)-base)
		buf, err = encodeValue(f.Type, fields[i], buf, joinPath(path, f.Name))
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}
