// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package sszutils

import "math/bits"

// NextPowerOfTwo returns the next power of two >= v. NextPowerOfTwo(0) == 1.
func NextPowerOfTwo(v uint64) uint64 {
	if v <= 1 {
		return 1
	}
	return 1 << (64 - bits.LeadingZeros64(v-1))
}

// Depth returns the number of tree layers needed to merkleize limit chunks,
// i.e. log2 of the next power of two.
func Depth(limit uint64) uint8 {
	if limit <= 1 {
		return 0
	}
	return uint8(bits.Len64(NextPowerOfTwo(limit) - 1))
}

// CalculateLimit returns the chunk limit for a list of numItems elements of
// the given byte size, bounded by maxCapacity elements.
func CalculateLimit(maxCapacity, numItems, size uint64) uint64 {
	limit := (maxCapacity*size + 31) / 32
	if limit != 0 {
		return limit
	}
	if numItems == 0 {
		return 1
	}
	return numItems
}
