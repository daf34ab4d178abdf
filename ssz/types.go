// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

// Package ssz implements a schema-driven SSZ codec: explicit static type
// descriptors paired with generic encode, decode and hash-tree-root routines.
//
// A schema is built once per entity type from the exported constructors and
// then drives everything: byte layout, offset tables, chunking and
// merkleization. Field order is fixed at schema construction time and
// determines both serialization order and chunk order, so permuting fields
// changes the hash-tree-root.
//
// Values are plain Go data bound to a descriptor by convention:
//
//	Bool                 bool
//	Uint8/16/32/64       uint8/uint16/uint32/uint64 (uint64 accepted for
//	                     narrower widths when it fits)
//	Uint256              *uint256.Int
//	ByteVector(n)        []byte of length n
//	Vector/List          []byte (Uint8 elements), []uint64 (Uint64 elements),
//	                     [][]byte (ByteVector elements), []any otherwise
//	Bitvector(n)         []byte of length ceil(n/8)
//	Bitlist(max)         bitfield.Bitlist
//	Container            []any, one entry per field in schema order
package ssz

// Kind discriminates the variants of the Type sum.
type Kind uint8

const (
	KindBool Kind = iota + 1
	KindUint
	KindByteVector
	KindVector
	KindList
	KindBitvector
	KindBitlist
	KindContainer
)

// BytesPerLengthOffset is the size of an offset entry in the fixed region of
// a variable-size composite.
const BytesPerLengthOffset = 4

// Type is a static SSZ type descriptor. Exactly one variant of the sum is
// populated, selected by Kind.
type Type struct {
	Kind   Kind
	Bits   uint32  // KindUint: bit width (8, 16, 32, 64 or 256)
	Length uint64  // KindByteVector: bytes; KindVector: elements; KindBitvector: bits
	Limit  uint64  // KindList: max elements; KindBitlist: max bits
	Elem   *Type   // KindVector / KindList element type
	Fields []Field // KindContainer fields, in schema order
}

// Field is one (name, type) entry of a container schema.
type Field struct {
	Name string
	Type *Type
}

var (
	boolType    = &Type{Kind: KindBool}
	uint8Type   = &Type{Kind: KindUint, Bits: 8}
	uint16Type  = &Type{Kind: KindUint, Bits: 16}
	uint32Type  = &Type{Kind: KindUint, Bits: 32}
	uint64Type  = &Type{Kind: KindUint, Bits: 64}
	uint256Type = &Type{Kind: KindUint, Bits: 256}
)

func Bool() *Type    { return boolType }
func Uint8() *Type   { return uint8Type }
func Uint16() *Type  { return uint16Type }
func Uint32() *Type  { return uint32Type }
func Uint64() *Type  { return uint64Type }
func Uint256() *Type { return uint256Type }

// Bytes returns a fixed-size byte vector descriptor of n bytes.
func Bytes(n uint64) *Type {
	return &Type{Kind: KindByteVector, Length: n}
}

// VectorOf returns a fixed-length vector descriptor of n elements.
func VectorOf(elem *Type, n uint64) *Type {
	return &Type{Kind: KindVector, Elem: elem, Length: n}
}

// ListOf returns a length-bounded list descriptor with the given element
// maximum.
func ListOf(elem *Type, max uint64) *Type {
	return &Type{Kind: KindList, Elem: elem, Limit: max}
}

// BitvectorOf returns a fixed bit count bitvector descriptor.
func BitvectorOf(bits uint64) *Type {
	return &Type{Kind: KindBitvector, Length: bits}
}

// BitlistOf returns a bounded bitlist descriptor with the given maximum bit
// count.
func BitlistOf(maxBits uint64) *Type {
	return &Type{Kind: KindBitlist, Limit: maxBits}
}

// ContainerOf returns a container descriptor over the given ordered fields.
func ContainerOf(fields ...Field) *Type {
	return &Type{Kind: KindContainer, Fields: fields}
}

// IsVariable reports whether values of this type have a variable-size
// serialization.
func (t *Type) IsVariable() bool {
	switch t.Kind {
	case KindList, KindBitlist:
		return true
	case KindVector:
		return t.Elem.IsVariable()
	case KindContainer:
		for _, f := range t.Fields {
			if f.Type.IsVariable() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// FixedSize returns the serialized size in bytes for fixed-size types, or the
// size the type occupies in the fixed region of its parent (one offset entry)
// for variable-size types.
func (t *Type) FixedSize() uint64 {
	if t.IsVariable() {
		return BytesPerLengthOffset
	}
	switch t.Kind {
	case KindBool:
		return 1
	case KindUint:
		return uint64(t.Bits / 8)
	case KindByteVector:
		return t.Length
	case KindVector:
		return t.Length * t.Elem.FixedSize()
	case KindBitvector:
		return (t.Length + 7) / 8
	case KindContainer:
		var size uint64
		for _, f := range t.Fields {
			size += f.Type.FixedSize()
		}
		return size
	default:
		return 0
	}
}

// FieldIndex returns the position of a named field in a container schema.
func (t *Type) FieldIndex(name string) (int, bool) {
	if t.Kind != KindContainer {
		return 0, false
	}
	for i, f := range t.Fields {
		if f.Name == name {
			return i, true
		}
	}
	return 0, false
}
