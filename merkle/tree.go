// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

// Package merkle provides retained-layer Merkle trees over SSZ container
// fields and inclusion proofs for top-level fields.
//
// Unlike a bare hash-tree-root computation, a Tree keeps every layer from the
// leaves up to the root. The retained layers are what proof construction
// walks: at each layer the sibling of the current index is appended to the
// proof and the index moves to its parent.
package merkle

import (
	"github.com/ethsynth/beaconsynth/hasher"
	"github.com/ethsynth/beaconsynth/sszutils"
)

// Tree is a complete binary Merkle tree with all layers retained. Layer 0
// holds the leaves padded to a power of two; the last layer holds the single
// root.
type Tree struct {
	layers [][][32]byte
}

// NewTree builds a tree over the given leaves, zero-padding them up to the
// next power of two.
func NewTree(leaves [][32]byte) *Tree {
	width := int(sszutils.NextPowerOfTwo(uint64(len(leaves))))
	base := make([][32]byte, width)
	copy(base, leaves)

	layers := [][][32]byte{base}
	for level := 0; len(base) > 1; level++ {
		base = hasher.HashLayer(base, level)
		layers = append(layers, base)
	}
	return &Tree{layers: layers}
}

// Root returns the tree's root hash.
func (t *Tree) Root() [32]byte {
	return t.layers[len(t.layers)-1][0]
}

// Depth returns the number of layers below the root.
func (t *Tree) Depth() int {
	return len(t.layers) - 1
}

// Width returns the padded leaf count.
func (t *Tree) Width() int {
	return len(t.layers[0])
}

// Leaf returns the leaf hash at the given index, including zero padding
// leaves.
func (t *Tree) Leaf(index int) [32]byte {
	return t.layers[0][index]
}

// Node returns the hash at the given layer and index. Layer 0 is the leaf
// layer.
func (t *Tree) Node(layer, index int) [32]byte {
	return t.layers[layer][index]
}
