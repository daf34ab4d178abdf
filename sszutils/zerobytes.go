// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package sszutils

var zeroBytes = make([]byte, 1024)

// ZeroBytes returns a shared slice of zero bytes. Callers must not write to it.
func ZeroBytes() []byte {
	return zeroBytes
}

// AppendZeroPadding appends the specified number of zero bytes to buf
func AppendZeroPadding(buf []byte, count int) []byte {
	for count > 0 {
		toCopy := count
		if toCopy > len(zeroBytes) {
			toCopy = len(zeroBytes)
		}
		buf = append(buf, zeroBytes[:toCopy]...)
		count -= toCopy
	}
	return buf
}
