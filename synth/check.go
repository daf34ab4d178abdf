// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package synth

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ethsynth/beaconsynth/consensus"
)

// checkedFields are the state fields whose inclusion proofs the accounting
// pipeline consumes; CheckArtifacts exercises exactly these.
var checkedFields = []string{"validators", "balances"}

// CheckArtifacts re-reads a written fixture set and verifies it end to end:
// the SSZ blobs decode, the recomputed roots match the manifesto, the header
// commits to the state, and the per-field inclusion proofs verify against
// the state root.
func (c *Creator) CheckArtifacts(paths ArtifactPaths) error {
	st, err := c.ReadState(paths.State)
	if err != nil {
		return err
	}
	header, err := c.ReadHeader(paths.Header)
	if err != nil {
		return err
	}
	manifesto, err := ReadManifesto(paths.Manifesto)
	if err != nil {
		return err
	}

	stateTree, err := c.schemas.StateTree(st)
	if err != nil {
		return fmt.Errorf("rebuild state tree: %w", err)
	}
	stateRoot := consensus.Root(stateTree.Root())
	if got := manifesto.Report.BeaconStateHash; got != stateRoot.String() {
		return fmt.Errorf("state root mismatch: manifesto has %s, state hashes to %s", got, stateRoot)
	}
	if header.StateRoot != stateRoot {
		return fmt.Errorf("header state_root %s does not commit to the state root %s", header.StateRoot, stateRoot)
	}
	headerRoot, err := c.schemas.HeaderRoot(header)
	if err != nil {
		return fmt.Errorf("rehash header: %w", err)
	}
	if got := manifesto.Report.BeaconBlockHash; got != consensus.Root(headerRoot).String() {
		return fmt.Errorf("header root mismatch: manifesto has %s, header hashes to %s", got, consensus.Root(headerRoot))
	}

	for name, want := range manifesto.BeaconState.Parts {
		leaf, err := stateTree.FieldRoot(name)
		if err != nil {
			return fmt.Errorf("manifesto part %q: %w", name, err)
		}
		if consensus.Root(leaf).String() != want {
			return fmt.Errorf("manifesto part %q: recorded %s, state holds %s", name, want, consensus.Root(leaf))
		}
	}

	for _, name := range checkedFields {
		leaf, err := stateTree.FieldRoot(name)
		if err != nil {
			return err
		}
		proof, err := stateTree.ConstructInclusionProof(name, leaf)
		if err != nil {
			return fmt.Errorf("construct %s proof: %w", name, err)
		}
		ok, err := stateTree.VerifyInclusionProof(name, leaf, proof)
		if err != nil {
			return fmt.Errorf("verify %s proof: %w", name, err)
		}
		if !ok {
			return fmt.Errorf("inclusion proof for %s does not verify against the state root", name)
		}
		if err := stateTree.CheckProofPath(name, leaf, proof); err != nil {
			return fmt.Errorf("proof path for %s diverges from the retained tree: %w", name, err)
		}
	}

	c.log.WithFields(logrus.Fields{
		"state_root":  stateRoot.String(),
		"header_root": consensus.Root(headerRoot).String(),
		"validators":  len(st.Validators),
	}).Info("fixture check passed")
	return nil
}
