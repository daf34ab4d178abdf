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

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

// asUint coerces a value to uint64 for a KindUint descriptor of up to 64 bits.
// Exact-width unsigned types are accepted, as is uint64 for narrower widths
// when the value fits.
func asUint(t *Type, v any) (uint64, error) {
	var x uint64
	switch n := v.(type) {
	case uint8:
		x = uint64(n)
	case uint16:
		x = uint64(n)
	case uint32:
		x = uint64(n)
	case uint64:
		x = n
	default:
		return 0, fmt.Errorf("%w: got %T for uint%d", sszutils.ErrValueType, v, t.Bits)
	}
	if t.Bits < 64 && x > (uint64(1)<<t.Bits)-1 {
		return 0, fmt.Errorf("%w: %d does not fit uint%d", sszutils.ErrUintOverflow, x, t.Bits)
	}
	return x, nil
}

func asUint256(v any) (*uint256.Int, error) {
	n, ok := v.(*uint256.Int)
	if !ok {
		return nil, fmt.Errorf("%w: got %T for uint256", sszutils.ErrValueType, v)
	}
	if n == nil {
		n = uint256.NewInt(0)
	}
	return n, nil
}

func asBytes(t *Type, v any) ([]byte, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: got %T for byte vector", sszutils.ErrValueType, v)
	}
	if uint64(len(b)) != t.Length {
		return nil, fmt.Errorf("%w: got %d bytes, schema wants %d", sszutils.ErrBytesLength, len(b), t.Length)
	}
	return b, nil
}

func asBitvector(t *Type, v any) ([]byte, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: got %T for bitvector", sszutils.ErrValueType, v)
	}
	byteLen := (t.Length + 7) / 8
	if uint64(len(b)) != byteLen {
		return nil, fmt.Errorf("%w: got %d bytes, bitvector%d wants %d", sszutils.ErrBitCount, len(b), t.Length, byteLen)
	}
	if excess := t.Length % 8; excess != 0 && b[byteLen-1]>>excess != 0 {
		return nil, fmt.Errorf("%w: bits beyond bitvector%d are set", sszutils.ErrBitCount, t.Length)
	}
	return b, nil
}

func asBitlist(t *Type, v any) (bitfield.Bitlist, error) {
	bl, ok := v.(bitfield.Bitlist)
	if !ok {
		return nil, fmt.Errorf("%w: got %T for bitlist", sszutils.ErrValueType, v)
	}
	if len(bl) == 0 || bl[len(bl)-1] == 0 {
		return nil, fmt.Errorf("%w: bitlist missing length sentinel", sszutils.ErrBitCount)
	}
	if bl.Len() > t.Limit {
		return nil, fmt.Errorf("%w: bitlist holds %d bits, max %d", sszutils.ErrListTooBig, bl.Len(), t.Limit)
	}
	return bl, nil
}

func asContainer(t *Type, v any) ([]any, error) {
	fields, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T for container", sszutils.ErrValueType, v)
	}
	if len(fields) != len(t.Fields) {
		return nil, fmt.Errorf("%w: got %d values for %d fields", sszutils.ErrValueType, len(fields), len(t.Fields))
	}
	return fields, nil
}

// collection adapts the typed fast-path representations of vectors and lists
// ([]byte, []uint64, [][]byte) and the generic []any form to a common
// accessor.
type collection struct {
	length int
	at     func(i int) any
}

func asCollection(t *Type, v any) (collection, error) {
	switch s := v.(type) {
	case []byte:
		if t.Elem.Kind == KindUint && t.Elem.Bits == 8 {
			return collection{len(s), func(i int) any { return s[i] }}, nil
		}
	case []uint64:
		if t.Elem.Kind == KindUint && t.Elem.Bits == 64 {
			return collection{len(s), func(i int) any { return s[i] }}, nil
		}
	case [][]byte:
		if t.Elem.Kind == KindByteVector {
			return collection{len(s), func(i int) any { return s[i] }}, nil
		}
	case []any:
		return collection{len(s), func(i int) any { return s[i] }}, nil
	}
	return collection{}, fmt.Errorf("%w: got %T for collection of %v elements", sszutils.ErrValueType, v, t.Elem.Kind)
}

func checkVectorLen(t *Type, c collection) error {
	if uint64(c.length) != t.Length {
		return fmt.Errorf("%w: got %d elements, vector wants %d", sszutils.ErrVectorLength, c.length, t.Length)
	}
	return nil
}

func checkListLen(t *Type, c collection) error {
	if uint64(c.length) > t.Limit {
		return fmt.Errorf("%w: list holds %d elements, max %d", sszutils.ErrListTooBig, c.length, t.Limit)
	}
	return nil
}
