// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

// Package hasher implements the hashing side of SSZ merkleization: pairwise
// SHA-256 chunk hashing, precomputed zero-subtree hashes, and reduction of a
// chunk sequence to a single hash-tree-root with an optional chunk limit and
// length mixin.
package hasher

import (
	"crypto/sha256"
	"sync"

	"github.com/ethsynth/beaconsynth/sszutils"
)

const maxZeroHashDepth = 64

var hasherInitOnce sync.Once
var zeroHashes [maxZeroHashDepth + 1][32]byte
var zeroHashLevels map[string]int

func initHasher() {
	zeroHashLevels = make(map[string]int)
	zeroHashLevels[string(zeroHashes[0][:])] = 0

	tmp := [64]byte{}
	for i := 0; i < maxZeroHashDepth; i++ {
		copy(tmp[:32], zeroHashes[i][:])
		copy(tmp[32:], zeroHashes[i][:])
		zeroHashes[i+1] = sha256.Sum256(tmp[:])
		zeroHashLevels[string(zeroHashes[i+1][:])] = i + 1
	}
}

// GetZeroHash returns the hash of an all-zero subtree of the given depth.
// Depth 0 is the zero chunk itself.
func GetZeroHash(level int) [32]byte {
	hasherInitOnce.Do(initHasher)
	return zeroHashes[level]
}

// GetZeroHashLevel returns the zero-subtree depth for a 32-byte hash, if the
// hash is one of the precomputed zero-subtree hashes.
func GetZeroHashLevel(h []byte) (int, bool) {
	hasherInitOnce.Do(initHasher)
	level, ok := zeroHashLevels[string(h)]
	return level, ok
}

// Hash2 hashes the concatenation of two 32-byte chunks.
func Hash2(a, b [32]byte) [32]byte {
	var tmp [64]byte
	copy(tmp[:32], a[:])
	copy(tmp[32:], b[:])
	return sha256.Sum256(tmp[:])
}

// HashLayer reduces one tree layer to its parent layer. The input layer is
// padded with the zero-subtree hash of the given level when its length is odd.
func HashLayer(layer [][32]byte, level int) [][32]byte {
	n := len(layer)
	if n%2 == 1 {
		padded := make([][32]byte, n+1)
		copy(padded, layer)
		padded[n] = GetZeroHash(level)
		layer = padded
		n++
	}
	out := make([][32]byte, n/2)
	for i := 0; i < n; i += 2 {
		out[i/2] = Hash2(layer[i], layer[i+1])
	}
	return out
}

// Merkleize reduces a sequence of chunks to a single root over a virtual tree
// of limit leaves (rounded up to the next power of two), zero-padding unused
// leaves. A limit of 0 means the tree is sized to the chunk count.
func Merkleize(chunks [][32]byte, limit uint64) [32]byte {
	hasherInitOnce.Do(initHasher)

	count := uint64(len(chunks))
	if limit == 0 {
		limit = count
	}
	if count > limit {
		// callers validate bounds before merkleizing
		panic("merkleize: chunk count exceeds limit")
	}

	if limit <= 1 {
		if count == 1 {
			return chunks[0]
		}
		return zeroHashes[0]
	}

	depth := sszutils.Depth(limit)
	if count == 0 {
		return zeroHashes[depth]
	}

	layer := chunks
	for level := 0; level < int(depth); level++ {
		layer = HashLayer(layer, level)
	}
	return layer[0]
}

// MixInLength binds a collection's element count into its data root with one
// more hash, per the SSZ list merkleization rule.
func MixInLength(root [32]byte, length uint64) [32]byte {
	var lengthChunk [32]byte
	sszutils.MarshalUint64(lengthChunk[:0], length)
	return Hash2(root, lengthChunk)
}
