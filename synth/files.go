// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package synth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ethsynth/beaconsynth/consensus"
)

// ArtifactPaths derives the sibling file names from the state fixture path.
// Given dir/name.ssz the artifacts are dir/name.ssz, dir/name_header.ssz,
// dir/name_header.json and dir/name_manifesto.json.
type ArtifactPaths struct {
	State      string
	Header     string
	HeaderJSON string
	Manifesto  string
}

func NewArtifactPaths(statePath string) ArtifactPaths {
	base := strings.TrimSuffix(statePath, ".ssz")
	return ArtifactPaths{
		State:      base + ".ssz",
		Header:     base + "_header.ssz",
		HeaderJSON: base + "_header.json",
		Manifesto:  base + "_manifesto.json",
	}
}

// WriteArtifacts persists the fixture set: the SSZ state, the SSZ header and
// the JSON manifesto. withHeaderJSON additionally writes the header in the
// beacon API JSON shape for consumers that do not speak SSZ.
func (c *Creator) WriteArtifacts(paths ArtifactPaths, st *consensus.BeaconState, header *consensus.BeaconBlockHeader, manifesto *Manifesto, withHeaderJSON bool) error {
	if dir := filepath.Dir(paths.State); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	stateSSZ, err := c.schemas.MarshalState(st)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(paths.State, stateSSZ, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	c.log.WithFields(logrus.Fields{"path": paths.State, "bytes": len(stateSSZ)}).Info("wrote beacon state")

	headerSSZ, err := c.schemas.MarshalHeader(header)
	if err != nil {
		return fmt.Errorf("encode header: %w", err)
	}
	if err := os.WriteFile(paths.Header, headerSSZ, 0o644); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	c.log.WithField("path", paths.Header).Info("wrote block header")

	if withHeaderJSON {
		data, err := json.MarshalIndent(header.Message(), "", "  ")
		if err != nil {
			return fmt.Errorf("encode header json: %w", err)
		}
		if err := os.WriteFile(paths.HeaderJSON, data, 0o644); err != nil {
			return fmt.Errorf("write header json: %w", err)
		}
		c.log.WithField("path", paths.HeaderJSON).Info("wrote block header json")
	}

	data, err := json.MarshalIndent(manifesto, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifesto: %w", err)
	}
	if err := os.WriteFile(paths.Manifesto, data, 0o644); err != nil {
		return fmt.Errorf("write manifesto: %w", err)
	}
	c.log.WithField("path", paths.Manifesto).Info("wrote manifesto")
	return nil
}

// ReadState loads and decodes a previously written state fixture.
func (c *Creator) ReadState(path string) (*consensus.BeaconState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	st, err := c.schemas.UnmarshalState(data)
	if err != nil {
		return nil, fmt.Errorf("decode state file %s: %w", path, err)
	}
	return st, nil
}

// ReadHeader loads a header fixture, accepting either the SSZ or the beacon
// API JSON encoding based on the file extension.
func (c *Creator) ReadHeader(path string) (*consensus.BeaconBlockHeader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read header file: %w", err)
	}
	if filepath.Ext(path) == ".json" {
		h, err := consensus.HeaderFromJSON(data)
		if err != nil {
			return nil, fmt.Errorf("decode header file %s: %w", path, err)
		}
		return h, nil
	}
	h, err := c.schemas.UnmarshalHeader(data)
	if err != nil {
		return nil, fmt.Errorf("decode header file %s: %w", path, err)
	}
	return h, nil
}

// ReadManifesto loads a manifesto sidecar.
func ReadManifesto(path string) (*Manifesto, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifesto file: %w", err)
	}
	m := new(Manifesto)
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("decode manifesto file %s: %w", path, err)
	}
	return m, nil
}
