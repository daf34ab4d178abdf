// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package ssz

import (
	"github.com/ethsynth/beaconsynth/hasher"
	"github.com/ethsynth/beaconsynth/sszutils"
)

// HashTreeRoot computes the recursive SSZ merkle root of a value per its
// schema. Basic values pad to one chunk; collections of basic values pack
// tightly before chunking; composite collections merkleize element roots;
// lists and bitlists mix their element count into the data root; containers
// merkleize their per-field roots over next-power-of-two leaves.
func HashTreeRoot(t *Type, v any) ([32]byte, error) {
	return hashValue(t, v, "")
}

// FieldRoots computes the hash-tree-root of every top-level field of a
// container value, in schema order. These are exactly the leaves of the
// container's hash tree.
func FieldRoots(t *Type, v any) ([][32]byte, error) {
	if t.Kind != KindContainer {
		return nil, &EncodingError{Err: sszutils.ErrValueType}
	}
	fields, err := asContainer(t, v)
	if err != nil {
		return nil, &EncodingError{Err: err}
	}
	roots := make([][32]byte, len(fields))
	for i, f := range t.Fields {
		roots[i], err = hashValue(f.Type, fields[i], f.Name)
		if err != nil {
			return nil, err
		}
	}
	return roots, nil
}

func hashValue(t *Type, v any, path string) ([32]byte, error) {
	var root [32]byte

	switch t.Kind {
	case KindBool, KindUint, KindByteVector, KindBitvector:
		buf, err := encodeValue(t, v, nil, path)
		if err != nil {
			return root, err
		}
		limit := uint64(0)
		if t.Kind == KindByteVector {
			limit = (t.Length + 31) / 32
		} else if t.Kind == KindBitvector {
			limit = (t.Length + 255) / 256
		}
		return hasher.Merkleize(bytesToChunks(buf), limit), nil

	case KindBitlist:
		bl, err := asBitlist(t, v)
		if err != nil {
			return root, &EncodingError{Path: path, Err: err}
		}
		contents, bitLen := stripBitlistSentinel(bl)
		dataRoot := hasher.Merkleize(bytesToChunks(contents), (t.Limit+255)/256)
		return hasher.MixInLength(dataRoot, bitLen), nil

	case KindVector:
		c, err := asCollection(t, v)
		if err == nil {
			err = checkVectorLen(t, c)
		}
		if err != nil {
			return root, &EncodingError{Path: path, Err: err}
		}
		return hashElements(t, c, 0, path)

	case KindList:
		c, err := asCollection(t, v)
		if err == nil {
			err = checkListLen(t, c)
		}
		if err != nil {
			return root, &EncodingError{Path: path, Err: err}
		}
		dataRoot, err := hashElements(t, c, t.Limit, path)
		if err != nil {
			return root, err
		}
		return hasher.MixInLength(dataRoot, uint64(c.length)), nil

	case KindContainer:
		fields, err := asContainer(t, v)
		if err != nil {
			return root, &EncodingError{Path: path, Err: err}
		}
		leaves := make([][32]byte, len(fields))
		for i, f := range t.Fields {
			leaves[i], err = hashValue(f.Type, fields[i], joinPath(path, f.Name))
			if err != nil {
				return root, err
			}
		}
		return hasher.Merkleize(leaves, uint64(len(leaves))), nil

	default:
		return root, &EncodingError{Path: path, Err: sszutils.ErrValueType}
	}
}

// hashElements merkleizes vector or list elements. listLimit is 0 for
// vectors; for lists it is the declared element maximum, which bounds the
// virtual tree so that the capacity is committed into the root.
func hashElements(t *Type, c collection, listLimit uint64, path string) ([32]byte, error) {
	var root [32]byte

	if isBasic(t.Elem) {
		elemSize := t.Elem.FixedSize()
		buf := make([]byte, 0, uint64(c.length)*elemSize)
		var err error
		for i := 0; i < c.length; i++ {
			buf, err = encodeValue(t.Elem, c.at(i), buf, indexPath(path, i))
			if err != nil {
				return root, err
			}
		}
		limit := (t.Length*elemSize + 31) / 32
		if listLimit != 0 {
			limit = sszutils.CalculateLimit(listLimit, uint64(c.length), elemSize)
		}
		return hasher.Merkleize(bytesToChunks(buf), limit), nil
	}

	leaves := make([][32]byte, c.length)
	var err error
	for i := 0; i < c.length; i++ {
		leaves[i], err = hashValue(t.Elem, c.at(i), indexPath(path, i))
		if err != nil {
			return root, err
		}
	}
	limit := t.Length
	if listLimit != 0 {
		limit = listLimit
	}
	return hasher.Merkleize(leaves, limit), nil
}

// isBasic reports whether elements of this type pack tightly into chunks
// rather than contributing their own subtree root per element.
func isBasic(t *Type) bool {
	return t.Kind == KindBool || t.Kind == KindUint
}

// bytesToChunks splits a byte string into 32-byte chunks, zero-padding the
// final partial chunk. The input must be owned by the caller; padding appends
// in place.
func bytesToChunks(b []byte) [][32]byte {
	if rem := len(b) % 32; rem != 0 {
		b = sszutils.AppendZeroPadding(b, 32-rem)
	}
	chunks := make([][32]byte, len(b)/32)
	for i := range chunks {
		copy(chunks[i][:], b[i*32:])
	}
	return chunks
}

// stripBitlistSentinel returns a bitlist's contents without the length
// sentinel bit, along with the number of data bits.
func stripBitlistSentinel(bl []byte) ([]byte, uint64) {
	if len(bl) == 0 {
		return nil, 0
	}
	contents := make([]byte, len(bl))
	copy(contents, bl)

	last := contents[len(contents)-1]
	msb := uint8(0)
	for bit := uint8(0); bit < 8; bit++ {
		if last&(1<<bit) != 0 {
			msb = bit
		}
	}
	bitLen := uint64(8*(len(contents)-1)) + uint64(msb)
	contents[len(contents)-1] &^= 1 << msb

	for len(contents) > 0 && contents[len(contents)-1] == 0 {
		contents = contents[:len(contents)-1]
	}
	return contents, bitLen
}
