// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package synth

import (
	"github.com/ethsynth/beaconsynth/consensus"
	"github.com/ethsynth/beaconsynth/merkle"
)

// TreeSummary records a container's hash-tree-root together with the
// per-field roots that make up its leaf layer, keyed by schema field name.
type TreeSummary struct {
	Hash  string            `json:"hash"`
	Parts map[string]string `json:"parts"`
}

// Manifesto is the sidecar written next to each fixture. It lets consumers
// check the fixture's commitments, and cross-check any field-level inclusion
// proof, without re-hashing the SSZ blobs themselves.
type Manifesto struct {
	Report            Report      `json:"report"`
	BeaconBlockHeader TreeSummary `json:"beacon_block_header"`
	BeaconState       TreeSummary `json:"beacon_state"`
}

func summarize(ft *merkle.FieldTree) (TreeSummary, error) {
	root := ft.Root()
	s := TreeSummary{
		Hash:  consensus.Root(root).String(),
		Parts: make(map[string]string, len(ft.Fields())),
	}
	for _, name := range ft.Fields() {
		leaf, err := ft.FieldRoot(name)
		if err != nil {
			return TreeSummary{}, err
		}
		s.Parts[name] = consensus.Root(leaf).String()
	}
	return s, nil
}

// BuildManifesto assembles the report and the field trees of both the header
// and the state into one manifesto.
func (c *Creator) BuildManifesto(st *consensus.BeaconState, header *consensus.BeaconBlockHeader) (*Manifesto, error) {
	stateTree, err := c.schemas.StateTree(st)
	if err != nil {
		return nil, err
	}
	headerTree, err := c.schemas.HeaderTree(header)
	if err != nil {
		return nil, err
	}

	stateSummary, err := summarize(stateTree)
	if err != nil {
		return nil, err
	}
	headerSummary, err := summarize(headerTree)
	if err != nil {
		return nil, err
	}

	report := c.BuildReport(st, consensus.Root(headerTree.Root()), consensus.Root(stateTree.Root()))
	return &Manifesto{
		Report:            report,
		BeaconBlockHeader: headerSummary,
		BeaconState:       stateSummary,
	}, nil
}
