// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package merkle

import (
	"fmt"

	"github.com/ethsynth/beaconsynth/hasher"
	"github.com/ethsynth/beaconsynth/ssz"
	"github.com/ethsynth/beaconsynth/sszutils"
)

// FieldTree binds a container schema to one container value's retained hash
// tree. Its leaves are the hash-tree-roots of the container's top-level
// fields, in schema order. The tree is derived once from the value and never
// mutated; a new value needs a new FieldTree.
type FieldTree struct {
	schema *ssz.Type
	tree   *Tree
}

// NewFieldTree computes the per-field hash-tree-roots of a container value
// and builds the retained tree over them. The resulting Root equals the
// container's own hash-tree-root.
func NewFieldTree(schema *ssz.Type, value any) (*FieldTree, error) {
	if schema.Kind != ssz.KindContainer {
		return nil, fmt.Errorf("field tree: %w: not a container schema", sszutils.ErrValueType)
	}
	leaves, err := ssz.FieldRoots(schema, value)
	if err != nil {
		return nil, err
	}
	return &FieldTree{schema: schema, tree: NewTree(leaves)}, nil
}

// Root returns the container's hash-tree-root.
func (ft *FieldTree) Root() [32]byte {
	return ft.tree.Root()
}

// Depth returns the proof length for this container: the number of tree
// layers below the root.
func (ft *FieldTree) Depth() int {
	return ft.tree.Depth()
}

// Fields returns the container's declared field names in leaf order.
func (ft *FieldTree) Fields() []string {
	names := make([]string, len(ft.schema.Fields))
	for i, f := range ft.schema.Fields {
		names[i] = f.Name
	}
	return names
}

// FieldIndex resolves a declared field name to its leaf position.
func (ft *FieldTree) FieldIndex(name string) (int, error) {
	idx, ok := ft.schema.FieldIndex(name)
	if !ok {
		return 0, &UnknownFieldError{Field: name}
	}
	return idx, nil
}

// FieldRoot returns the retained leaf hash for a declared field.
func (ft *FieldTree) FieldRoot(name string) ([32]byte, error) {
	idx, err := ft.FieldIndex(name)
	if err != nil {
		return [32]byte{}, err
	}
	return ft.tree.Leaf(idx), nil
}

// ConstructInclusionProof builds the sibling path for a top-level field,
// ordered leaf to root. fieldHash must equal the leaf the tree actually
// holds for that field; a mismatch is a ProofPreconditionError, since the
// caller is asserting a value the tree does not contain.
func (ft *FieldTree) ConstructInclusionProof(fieldName string, fieldHash [32]byte) ([][32]byte, error) {
	index, err := ft.FieldIndex(fieldName)
	if err != nil {
		return nil, err
	}
	if leaf := ft.tree.Leaf(index); leaf != fieldHash {
		return nil, &ProofPreconditionError{Field: fieldName, Expected: leaf, Got: fieldHash}
	}

	proof := make([][32]byte, 0, ft.tree.Depth())
	for layer := 0; layer < ft.tree.Depth(); layer++ {
		sibling := index + 1
		if index%2 == 1 {
			sibling = index - 1
		}
		proof = append(proof, ft.tree.Node(layer, sibling))
		index /= 2
	}
	return proof, nil
}

// VerifyInclusionProof replays a proof from the field's leaf position up to
// the root and compares against the tree's committed root. A proof of the
// wrong length, or one that recomputes to a different root, yields false;
// only an unknown field name is an error. Verification intentionally uses
// nothing but the leaf index, the proof, and the committed root, so proofs
// from untrusted sources can fail without faulting the program.
func (ft *FieldTree) VerifyInclusionProof(fieldName string, fieldHash [32]byte, proof [][32]byte) (bool, error) {
	index, err := ft.FieldIndex(fieldName)
	if err != nil {
		return false, err
	}
	return VerifyInclusionProof(ft.Root(), index, ft.Depth(), fieldHash, proof), nil
}

// VerifyInclusionProof checks a sibling path against a committed root without
// access to the full tree: the conventional Merkle proof contract. depth is
// the expected proof length.
func VerifyInclusionProof(root [32]byte, index, depth int, leaf [32]byte, proof [][32]byte) bool {
	if len(proof) != depth {
		return false
	}
	current := leaf
	for _, sibling := range proof {
		if index%2 == 0 {
			current = hasher.Hash2(current, sibling)
		} else {
			current = hasher.Hash2(sibling, current)
		}
		index /= 2
	}
	return current == root
}

// CheckProofPath cross-checks a proof's recomputation path against the
// retained tree layer by layer. This is the self-consistency check the
// verifier can run when it holds the full tree; it is deliberately separate
// from VerifyInclusionProof, which needs only the committed root.
func (ft *FieldTree) CheckProofPath(fieldName string, fieldHash [32]byte, proof [][32]byte) error {
	index, err := ft.FieldIndex(fieldName)
	if err != nil {
		return err
	}
	if len(proof) != ft.tree.Depth() {
		return fmt.Errorf("proof length %d does not match tree depth %d", len(proof), ft.tree.Depth())
	}

	current := fieldHash
	for layer, sibling := range proof {
		if node := ft.tree.Node(layer, index); node != current {
			return fmt.Errorf("layer %d index %d: tree holds %x, proof path carries %x",
				layer, index, node, current)
		}
		if index%2 == 0 {
			current = hasher.Hash2(current, sibling)
		} else {
			current = hasher.Hash2(sibling, current)
		}
		index /= 2
	}
	if current != ft.Root() {
		return fmt.Errorf("recomputed root %x does not match tree root %x", current, ft.Root())
	}
	return nil
}
