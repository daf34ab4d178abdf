// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package consensus

import (
	"encoding/hex"
	"testing"

	"github.com/holiman/uint256"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/stretchr/testify/require"

	"github.com/ethsynth/beaconsynth/preset"
)

func hexRoot(t *testing.T, s string) [32]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, 32)
	var r [32]byte
	copy(r[:], b)
	return r
}

func filledRoot(b byte) Root {
	var r Root
	for i := range r {
		r[i] = b
	}
	return r
}

func TestCheckpointCodec(t *testing.T) {
	cp := &Checkpoint{Epoch: 5}
	buf, err := cp.MarshalSSZ()
	require.NoError(t, err)
	require.Len(t, buf, 40)

	root, err := cp.HashTreeRoot()
	require.NoError(t, err)
	require.Equal(t, hexRoot(t, "c8b9e6acb00f5b32f776f5466510630a94829c965d35074e9d1620162e8b51df"), root)

	decoded := &Checkpoint{}
	require.NoError(t, decoded.UnmarshalSSZ(buf))
	require.Equal(t, cp, decoded)
}

func TestHeaderCodec(t *testing.T) {
	h := &BeaconBlockHeader{
		Slot:          3,
		ProposerIndex: 4,
		ParentRoot:    filledRoot(0xaa),
		StateRoot:     filledRoot(0xbb),
		BodyRoot:      filledRoot(0xcc),
	}

	root, err := h.HashTreeRoot()
	require.NoError(t, err)
	require.Equal(t, hexRoot(t, "c20940a7921d2e026d14eb9ae3a3f01537319a03e29247d62b1ede25e5670ef8"), root)

	buf, err := h.MarshalSSZ()
	require.NoError(t, err)
	require.Len(t, buf, 112)

	decoded := &BeaconBlockHeader{}
	require.NoError(t, decoded.UnmarshalSSZ(buf))
	require.Equal(t, h, decoded)
}

func TestHeaderJSON(t *testing.T) {
	h := &BeaconBlockHeader{
		Slot:          123456,
		ProposerIndex: 42,
		ParentRoot:    filledRoot(0x01),
		StateRoot:     filledRoot(0x02),
		BodyRoot:      filledRoot(0x03),
	}

	m := h.Message()
	require.Equal(t, "123456", m.Slot)
	require.Equal(t, "42", m.ProposerIndex)
	require.Equal(t, h.StateRoot.String(), m.StateRoot)

	back, err := HeaderFromMessage(m)
	require.NoError(t, err)
	require.Equal(t, h, back)

	_, err = HeaderFromMessage(HeaderMessage{Slot: "not a number"})
	require.Error(t, err)
	_, err = HeaderFromMessage(HeaderMessage{Slot: "1", ProposerIndex: "2", ParentRoot: "0xdead"})
	require.Error(t, err)

	fromJSON, err := HeaderFromJSON([]byte(`{
		"slot": "123456",
		"proposer_index": "42",
		"parent_root": "` + h.ParentRoot.String() + `",
		"state_root": "` + h.StateRoot.String() + `",
		"body_root": "` + h.BodyRoot.String() + `"
	}`))
	require.NoError(t, err)
	require.Equal(t, h, fromJSON)
}

func TestValidatorCodec(t *testing.T) {
	v := &Validator{
		Pubkey:                     BLSPubkey{0x99},
		WithdrawalCredentials:      filledRoot(0x01),
		EffectiveBalance:           32 * GweiPerEth,
		Slashed:                    true,
		ActivationEligibilityEpoch: 1,
		ActivationEpoch:            2,
		ExitEpoch:                  FarFutureEpoch,
		WithdrawableEpoch:          FarFutureEpoch,
	}
	buf, err := v.MarshalSSZ()
	require.NoError(t, err)
	require.Len(t, buf, 121)

	decoded := &Validator{}
	require.NoError(t, decoded.UnmarshalSSZ(buf))
	require.Equal(t, v, decoded)
}

// testState builds a schema-complete state with a handful of validators.
func testState(t *testing.T, p *preset.Preset) *BeaconState {
	t.Helper()
	st := &BeaconState{
		GenesisTime:           1606824023,
		GenesisValidatorsRoot: filledRoot(0x10),
		Slot:                  123456,
		Fork: Fork{
			PreviousVersion: Version{3},
			CurrentVersion:  Version{4},
			Epoch:           3858,
		},
		LatestBlockHeader:           BeaconBlockHeader{Slot: 123456, ParentRoot: filledRoot(0x20)},
		BlockRoots:                  make([]Root, p.SlotsPerHistoricalRoot),
		StateRoots:                  make([]Root, p.SlotsPerHistoricalRoot),
		HistoricalRoots:             []Root{},
		Eth1Data:                    Eth1Data{DepositCount: 4, BlockHash: filledRoot(0x30)},
		Eth1DataVotes:               []Eth1Data{{DepositCount: 1}},
		Eth1DepositIndex:            4,
		RandaoMixes:                 make([]Root, p.EpochsPerHistoricalVector),
		Slashings:                   make([]Gwei, p.EpochsPerSlashingsVector),
		JustificationBits:           bitfield.Bitvector4{0x05},
		PreviousJustifiedCheckpoint: Checkpoint{Epoch: 3856, Root: filledRoot(0x40)},
		CurrentJustifiedCheckpoint:  Checkpoint{Epoch: 3857, Root: filledRoot(0x41)},
		FinalizedCheckpoint:         Checkpoint{Epoch: 3856, Root: filledRoot(0x42)},
		CurrentSyncCommittee: SyncCommittee{
			Pubkeys:         make([]BLSPubkey, p.SyncCommitteeSize),
			AggregatePubkey: BLSPubkey{0x01},
		},
		NextSyncCommittee: SyncCommittee{
			Pubkeys: make([]BLSPubkey, p.SyncCommitteeSize),
		},
		LatestExecutionPayloadHeader: ExecutionPayloadHeader{
			LogsBloom:     make([]byte, p.BytesPerLogsBloom),
			BlockNumber:   18000000,
			Timestamp:     1700000000,
			ExtraData:     []byte("synthetic"),
			BaseFeePerGas: uint256.NewInt(7),
		},
		NextWithdrawalIndex:          5,
		NextWithdrawalValidatorIndex: 2,
		HistoricalSummaries:          []HistoricalSummary{{BlockSummaryRoot: filledRoot(0x50)}},
	}
	for i := 0; i < 4; i++ {
		st.Validators = append(st.Validators, Validator{
			Pubkey:                filledPubkey(byte(i + 1)),
			WithdrawalCredentials: filledRoot(0x01),
			EffectiveBalance:      32 * GweiPerEth,
			ExitEpoch:             FarFutureEpoch,
			WithdrawableEpoch:     FarFutureEpoch,
		})
		st.Balances = append(st.Balances, Gwei(32)*GweiPerEth)
		st.PreviousEpochParticipation = append(st.PreviousEpochParticipation, 0)
		st.CurrentEpochParticipation = append(st.CurrentEpochParticipation, 0)
		st.InactivityScores = append(st.InactivityScores, 0)
	}
	return st
}

func filledPubkey(b byte) BLSPubkey {
	var pk BLSPubkey
	for i := range pk {
		pk[i] = b
	}
	return pk
}

func TestStateRoundTrip(t *testing.T) {
	schemas := DefaultSchemas()
	st := testState(t, schemas.Preset())

	buf, err := schemas.MarshalState(st)
	require.NoError(t, err)

	decoded, err := schemas.UnmarshalState(buf)
	require.NoError(t, err)

	require.Equal(t, st.Slot, decoded.Slot)
	require.Equal(t, st.Fork, decoded.Fork)
	require.Equal(t, st.LatestBlockHeader, decoded.LatestBlockHeader)
	require.Equal(t, st.Validators, decoded.Validators)
	require.Equal(t, st.Balances, decoded.Balances)
	require.Equal(t, st.JustificationBits, decoded.JustificationBits)
	require.Equal(t, st.LatestExecutionPayloadHeader, decoded.LatestExecutionPayloadHeader)
	require.Equal(t, st.HistoricalSummaries, decoded.HistoricalSummaries)

	buf2, err := schemas.MarshalState(decoded)
	require.NoError(t, err)
	require.Equal(t, buf, buf2)

	r1, err := schemas.StateRoot(st)
	require.NoError(t, err)
	r2, err := schemas.StateRoot(decoded)
	require.NoError(t, err)
	require.Equal(t, r1, r2)
}

func TestStateRootBindsRegistry(t *testing.T) {
	schemas := DefaultSchemas()
	st := testState(t, schemas.Preset())

	before, err := schemas.StateRoot(st)
	require.NoError(t, err)

	st.Balances[0]++
	after, err := schemas.StateRoot(st)
	require.NoError(t, err)
	require.NotEqual(t, before, after, "changing one balance must change the state root")
}

func TestStateTreeParts(t *testing.T) {
	schemas := DefaultSchemas()
	st := testState(t, schemas.Preset())

	tree, err := schemas.StateTree(st)
	require.NoError(t, err)

	root, err := schemas.StateRoot(st)
	require.NoError(t, err)
	require.Equal(t, root, tree.Root())

	// 28 fields pad to 32 leaves
	require.Equal(t, 5, tree.Depth())
	require.Len(t, tree.Fields(), 28)

	leaf, err := tree.FieldRoot("validators")
	require.NoError(t, err)
	proof, err := tree.ConstructInclusionProof("validators", leaf)
	require.NoError(t, err)
	ok, err := tree.VerifyInclusionProof("validators", leaf, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSchemaSetRespectsPreset(t *testing.T) {
	small := *preset.Mainnet()
	small.SlotsPerHistoricalRoot = 8
	small.EpochsPerHistoricalVector = 8
	small.EpochsPerSlashingsVector = 8
	small.SyncCommitteeSize = 4
	schemas, err := NewSchemaSet(&small)
	require.NoError(t, err)

	st := testState(t, &small)
	buf, err := schemas.MarshalState(st)
	require.NoError(t, err)

	decoded, err := schemas.UnmarshalState(buf)
	require.NoError(t, err)
	require.Len(t, decoded.BlockRoots, 8)
	require.Len(t, decoded.CurrentSyncCommittee.Pubkeys, 4)

	// the mainnet-shaped state does not fit the small schema
	_, err = schemas.MarshalState(testState(t, preset.Mainnet()))
	require.Error(t, err)
}
