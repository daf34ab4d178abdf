// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package consensus

import (
	"github.com/ethsynth/beaconsynth/merkle"
	"github.com/ethsynth/beaconsynth/ssz"
)

// MarshalState serializes a beacon state with this schema set.
func (s *SchemaSet) MarshalState(st *BeaconState) ([]byte, error) {
	return ssz.Encode(s.BeaconState, st.sszValue())
}

// UnmarshalState decodes a beacon state serialized with this schema set.
func (s *SchemaSet) UnmarshalState(data []byte) (*BeaconState, error) {
	raw, err := ssz.Decode(s.BeaconState, data)
	if err != nil {
		return nil, err
	}
	st := &BeaconState{}
	st.setSSZ(raw)
	return st, nil
}

// StateRoot computes the hash-tree-root of a beacon state.
func (s *SchemaSet) StateRoot(st *BeaconState) ([32]byte, error) {
	return ssz.HashTreeRoot(s.BeaconState, st.sszValue())
}

// StateTree builds the retained field tree of a beacon state, for inclusion
// proofs and the manifesto parts map.
func (s *SchemaSet) StateTree(st *BeaconState) (*merkle.FieldTree, error) {
	return merkle.NewFieldTree(s.BeaconState, st.sszValue())
}

// MarshalHeader serializes a beacon block header.
func (s *SchemaSet) MarshalHeader(h *BeaconBlockHeader) ([]byte, error) {
	return ssz.Encode(s.BeaconBlockHeader, h.sszValue())
}

// UnmarshalHeader decodes a beacon block header.
func (s *SchemaSet) UnmarshalHeader(data []byte) (*BeaconBlockHeader, error) {
	raw, err := ssz.Decode(s.BeaconBlockHeader, data)
	if err != nil {
		return nil, err
	}
	h := &BeaconBlockHeader{}
	h.setSSZ(raw)
	return h, nil
}

// HeaderRoot computes the hash-tree-root of a beacon block header.
func (s *SchemaSet) HeaderRoot(h *BeaconBlockHeader) ([32]byte, error) {
	return ssz.HashTreeRoot(s.BeaconBlockHeader, h.sszValue())
}

// HeaderTree builds the retained field tree of a beacon block header.
func (s *SchemaSet) HeaderTree(h *BeaconBlockHeader) (*merkle.FieldTree, error) {
	return merkle.NewFieldTree(s.BeaconBlockHeader, h.sszValue())
}

// Mainnet-preset convenience codecs. Containers whose schema depends on the
// preset only through list bounds share the same byte layout across presets;
// these helpers serve tests and tools that work with mainnet shapes.

func (f *Fork) MarshalSSZ() ([]byte, error) {
	return ssz.Encode(defaultSchemas.Fork, f.sszValue())
}

func (f *Fork) UnmarshalSSZ(data []byte) error {
	raw, err := ssz.Decode(defaultSchemas.Fork, data)
	if err != nil {
		return err
	}
	f.setSSZ(raw)
	return nil
}

func (f *Fork) HashTreeRoot() ([32]byte, error) {
	return ssz.HashTreeRoot(defaultSchemas.Fork, f.sszValue())
}

func (c *Checkpoint) MarshalSSZ() ([]byte, error) {
	return ssz.Encode(defaultSchemas.Checkpoint, c.sszValue())
}

func (c *Checkpoint) UnmarshalSSZ(data []byte) error {
	raw, err := ssz.Decode(defaultSchemas.Checkpoint, data)
	if err != nil {
		return err
	}
	c.setSSZ(raw)
	return nil
}

func (c *Checkpoint) HashTreeRoot() ([32]byte, error) {
	return ssz.HashTreeRoot(defaultSchemas.Checkpoint, c.sszValue())
}

func (h *BeaconBlockHeader) MarshalSSZ() ([]byte, error) {
	return ssz.Encode(defaultSchemas.BeaconBlockHeader, h.sszValue())
}

func (h *BeaconBlockHeader) UnmarshalSSZ(data []byte) error {
	raw, err := ssz.Decode(defaultSchemas.BeaconBlockHeader, data)
	if err != nil {
		return err
	}
	h.setSSZ(raw)
	return nil
}

func (h *BeaconBlockHeader) HashTreeRoot() ([32]byte, error) {
	return ssz.HashTreeRoot(defaultSchemas.BeaconBlockHeader, h.sszValue())
}

func (e *Eth1Data) MarshalSSZ() ([]byte, error) {
	return ssz.Encode(defaultSchemas.Eth1Data, e.sszValue())
}

func (e *Eth1Data) UnmarshalSSZ(data []byte) error {
	raw, err := ssz.Decode(defaultSchemas.Eth1Data, data)
	if err != nil {
		return err
	}
	e.setSSZ(raw)
	return nil
}

func (e *Eth1Data) HashTreeRoot() ([32]byte, error) {
	return ssz.HashTreeRoot(defaultSchemas.Eth1Data, e.sszValue())
}

func (val *Validator) MarshalSSZ() ([]byte, error) {
	return ssz.Encode(defaultSchemas.Validator, val.sszValue())
}

func (val *Validator) UnmarshalSSZ(data []byte) error {
	raw, err := ssz.Decode(defaultSchemas.Validator, data)
	if err != nil {
		return err
	}
	val.setSSZ(raw)
	return nil
}

func (val *Validator) HashTreeRoot() ([32]byte, error) {
	return ssz.HashTreeRoot(defaultSchemas.Validator, val.sszValue())
}

func (a *AttestationData) MarshalSSZ() ([]byte, error) {
	return ssz.Encode(defaultSchemas.AttestationData, a.sszValue())
}

func (a *AttestationData) UnmarshalSSZ(data []byte) error {
	raw, err := ssz.Decode(defaultSchemas.AttestationData, data)
	if err != nil {
		return err
	}
	a.setSSZ(raw)
	return nil
}

func (a *AttestationData) HashTreeRoot() ([32]byte, error) {
	return ssz.HashTreeRoot(defaultSchemas.AttestationData, a.sszValue())
}

func (p *PendingAttestation) MarshalSSZ() ([]byte, error) {
	return ssz.Encode(defaultSchemas.PendingAttestation, p.sszValue())
}

func (p *PendingAttestation) UnmarshalSSZ(data []byte) error {
	raw, err := ssz.Decode(defaultSchemas.PendingAttestation, data)
	if err != nil {
		return err
	}
	p.setSSZ(raw)
	return nil
}

func (p *PendingAttestation) HashTreeRoot() ([32]byte, error) {
	return ssz.HashTreeRoot(defaultSchemas.PendingAttestation, p.sszValue())
}

func (sc *SyncCommittee) MarshalSSZ() ([]byte, error) {
	return ssz.Encode(defaultSchemas.SyncCommittee, sc.sszValue())
}

func (sc *SyncCommittee) UnmarshalSSZ(data []byte) error {
	raw, err := ssz.Decode(defaultSchemas.SyncCommittee, data)
	if err != nil {
		return err
	}
	sc.setSSZ(raw)
	return nil
}

func (sc *SyncCommittee) HashTreeRoot() ([32]byte, error) {
	return ssz.HashTreeRoot(defaultSchemas.SyncCommittee, sc.sszValue())
}

func (eh *ExecutionPayloadHeader) MarshalSSZ() ([]byte, error) {
	return ssz.Encode(defaultSchemas.ExecutionPayloadHeader, eh.sszValue())
}

func (eh *ExecutionPayloadHeader) UnmarshalSSZ(data []byte) error {
	raw, err := ssz.Decode(defaultSchemas.ExecutionPayloadHeader, data)
	if err != nil {
		return err
	}
	eh.setSSZ(raw)
	return nil
}

func (eh *ExecutionPayloadHeader) HashTreeRoot() ([32]byte, error) {
	return ssz.HashTreeRoot(defaultSchemas.ExecutionPayloadHeader, eh.sszValue())
}

func (hs *HistoricalSummary) MarshalSSZ() ([]byte, error) {
	return ssz.Encode(defaultSchemas.HistoricalSummary, hs.sszValue())
}

func (hs *HistoricalSummary) UnmarshalSSZ(data []byte) error {
	raw, err := ssz.Decode(defaultSchemas.HistoricalSummary, data)
	if err != nil {
		return err
	}
	hs.setSSZ(raw)
	return nil
}

func (hs *HistoricalSummary) HashTreeRoot() ([32]byte, error) {
	return ssz.HashTreeRoot(defaultSchemas.HistoricalSummary, hs.sszValue())
}

func (st *BeaconState) MarshalSSZ() ([]byte, error) {
	return defaultSchemas.MarshalState(st)
}

func (st *BeaconState) UnmarshalSSZ(data []byte) error {
	decoded, err := defaultSchemas.UnmarshalState(data)
	if err != nil {
		return err
	}
	*st = *decoded
	return nil
}

func (st *BeaconState) HashTreeRoot() ([32]byte, error) {
	return defaultSchemas.StateRoot(st)
}
