// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package sszutils

import "encoding/binary"

// ---- Unmarshal functions ----

// UnmarshalUint64 unmarshals a little endian uint64 from the src input
func UnmarshalUint64(src []byte) uint64 {
	return binary.LittleEndian.Uint64(src[:8])
}

// UnmarshalUint32 unmarshals a little endian uint32 from the src input
func UnmarshalUint32(src []byte) uint32 {
	return binary.LittleEndian.Uint32(src[:4])
}

// UnmarshalUint16 unmarshals a little endian uint16 from the src input
func UnmarshalUint16(src []byte) uint16 {
	return binary.LittleEndian.Uint16(src[:2])
}

// UnmarshalUint8 unmarshals a uint8 from the src input
func UnmarshalUint8(src []byte) uint8 {
	return src[0]
}

// UnmarshalBool unmarshals a boolean from the src input
func UnmarshalBool(src []byte) bool {
	return src[0] == 1
}

// ReadOffset reads a 4-byte variable field offset from src
func ReadOffset(src []byte) uint32 {
	return binary.LittleEndian.Uint32(src[:4])
}
