// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package synth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewArtifactPaths(t *testing.T) {
	paths := NewArtifactPaths("temp/beacon_block_state.ssz")
	require.Equal(t, "temp/beacon_block_state.ssz", paths.State)
	require.Equal(t, "temp/beacon_block_state_header.ssz", paths.Header)
	require.Equal(t, "temp/beacon_block_state_header.json", paths.HeaderJSON)
	require.Equal(t, "temp/beacon_block_state_manifesto.json", paths.Manifesto)

	// a path without the extension still derives sibling names
	paths = NewArtifactPaths("fixture")
	require.Equal(t, "fixture.ssz", paths.State)
	require.Equal(t, "fixture_manifesto.json", paths.Manifesto)
}

func writeFixture(t *testing.T, creator *Creator, opts Options) ArtifactPaths {
	t.Helper()
	st, err := creator.CreateState(opts)
	require.NoError(t, err)
	header, err := creator.BlockHeader(st)
	require.NoError(t, err)
	manifesto, err := creator.BuildManifesto(st, header)
	require.NoError(t, err)

	paths := NewArtifactPaths(filepath.Join(t.TempDir(), "fixtures", "state.ssz"))
	require.NoError(t, creator.WriteArtifacts(paths, st, header, manifesto, true))
	return paths
}

func TestWriteAndReadArtifacts(t *testing.T) {
	creator := testCreator(t)
	opts := defaultOptions()
	opts.TotalValidators = 64
	opts.LidoValidators = 16
	paths := writeFixture(t, creator, opts)

	for _, path := range []string{paths.State, paths.Header, paths.HeaderJSON, paths.Manifesto} {
		_, err := os.Stat(path)
		require.NoError(t, err, "missing artifact %s", path)
	}

	st, err := creator.ReadState(paths.State)
	require.NoError(t, err)
	require.Len(t, st.Validators, 64)

	header, err := creator.ReadHeader(paths.Header)
	require.NoError(t, err)
	jsonHeader, err := creator.ReadHeader(paths.HeaderJSON)
	require.NoError(t, err)
	require.Equal(t, header, jsonHeader, "the SSZ and JSON headers must agree")

	stateRoot, err := creator.schemas.StateRoot(st)
	require.NoError(t, err)
	require.EqualValues(t, stateRoot, header.StateRoot)

	manifesto, err := ReadManifesto(paths.Manifesto)
	require.NoError(t, err)
	require.Equal(t, uint64(64), manifesto.Report.TotalValidators)
}

func TestCheckArtifacts(t *testing.T) {
	creator := testCreator(t)
	opts := defaultOptions()
	opts.TotalValidators = 64
	opts.LidoValidators = 16
	paths := writeFixture(t, creator, opts)

	require.NoError(t, creator.CheckArtifacts(paths))

	t.Run("tampered state", func(t *testing.T) {
		data, err := os.ReadFile(paths.State)
		require.NoError(t, err)
		data[len(data)-1] ^= 0x01
		require.NoError(t, os.WriteFile(paths.State, data, 0o644))
		require.Error(t, creator.CheckArtifacts(paths), "a bit flip in the state must fail the check")
		data[len(data)-1] ^= 0x01
		require.NoError(t, os.WriteFile(paths.State, data, 0o644))
	})

	t.Run("tampered manifesto part", func(t *testing.T) {
		m, err := ReadManifesto(paths.Manifesto)
		require.NoError(t, err)
		m.BeaconState.Parts["balances"] = m.BeaconState.Parts["slot"]
		data, err := json.Marshal(m)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(paths.Manifesto, data, 0o644))
		require.Error(t, creator.CheckArtifacts(paths))
	})
}

func TestReadStateErrors(t *testing.T) {
	creator := testCreator(t)

	_, err := creator.ReadState(filepath.Join(t.TempDir(), "missing.ssz"))
	require.Error(t, err)

	garbled := filepath.Join(t.TempDir(), "garbled.ssz")
	require.NoError(t, os.WriteFile(garbled, []byte{1, 2, 3}, 0o644))
	_, err = creator.ReadState(garbled)
	require.Error(t, err)
}
