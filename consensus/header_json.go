// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package consensus

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// HeaderMessage is the beacon-API JSON shape of a block header: uints are
// decimal strings, roots are 0x-prefixed hex.
type HeaderMessage struct {
	Slot          string `json:"slot"`
	ProposerIndex string `json:"proposer_index"`
	ParentRoot    string `json:"parent_root"`
	StateRoot     string `json:"state_root"`
	BodyRoot      string `json:"body_root"`
}

// Message returns the API JSON representation of the header.
func (h *BeaconBlockHeader) Message() HeaderMessage {
	return HeaderMessage{
		Slot:          strconv.FormatUint(uint64(h.Slot), 10),
		ProposerIndex: strconv.FormatUint(uint64(h.ProposerIndex), 10),
		ParentRoot:    h.ParentRoot.String(),
		StateRoot:     h.StateRoot.String(),
		BodyRoot:      h.BodyRoot.String(),
	}
}

// HeaderFromMessage parses an API header message into a header.
func HeaderFromMessage(m HeaderMessage) (*BeaconBlockHeader, error) {
	slot, err := strconv.ParseUint(m.Slot, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse header slot: %w", err)
	}
	proposer, err := strconv.ParseUint(m.ProposerIndex, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse header proposer_index: %w", err)
	}
	parentRoot, err := RootFromHex(m.ParentRoot)
	if err != nil {
		return nil, fmt.Errorf("parse header parent_root: %w", err)
	}
	stateRoot, err := RootFromHex(m.StateRoot)
	if err != nil {
		return nil, fmt.Errorf("parse header state_root: %w", err)
	}
	bodyRoot, err := RootFromHex(m.BodyRoot)
	if err != nil {
		return nil, fmt.Errorf("parse header body_root: %w", err)
	}
	return &BeaconBlockHeader{
		Slot:          Slot(slot),
		ProposerIndex: ValidatorIndex(proposer),
		ParentRoot:    parentRoot,
		StateRoot:     stateRoot,
		BodyRoot:      bodyRoot,
	}, nil
}

// HeaderFromJSON parses a JSON-encoded header message.
func HeaderFromJSON(data []byte) (*BeaconBlockHeader, error) {
	var m HeaderMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse header json: %w", err)
	}
	return HeaderFromMessage(m)
}
