// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package consensus

import (
	"github.com/holiman/uint256"
	"github.com/prysmaticlabs/go-bitfield"
)

// Fork identifies the active and previous fork versions.
type Fork struct {
	PreviousVersion Version
	CurrentVersion  Version
	Epoch           Epoch
}

// Checkpoint identifies an epoch boundary block.
type Checkpoint struct {
	Epoch Epoch
	Root  Root
}

// BeaconBlockHeader is the fixed-size block summary committed into the state.
type BeaconBlockHeader struct {
	Slot          Slot
	ProposerIndex ValidatorIndex
	ParentRoot    Root
	StateRoot     Root
	BodyRoot      Root
}

// Eth1Data is the execution-chain deposit snapshot voted into the state.
type Eth1Data struct {
	DepositRoot  Root
	DepositCount uint64
	BlockHash    Root
}

// Validator is one validator registry entry. The status epochs drive the
// pending / active / exited classification.
type Validator struct {
	Pubkey                     BLSPubkey
	WithdrawalCredentials      Root
	EffectiveBalance           Gwei
	Slashed                    bool
	ActivationEligibilityEpoch Epoch
	ActivationEpoch            Epoch
	ExitEpoch                  Epoch
	WithdrawableEpoch          Epoch
}

// AttestationData describes the chain view a committee attested to.
type AttestationData struct {
	Slot            Slot
	Index           CommitteeIndex
	BeaconBlockRoot Root
	Source          Checkpoint
	Target          Checkpoint
}

// PendingAttestation is an attestation awaiting epoch processing.
type PendingAttestation struct {
	AggregationBits bitfield.Bitlist
	Data            AttestationData
	InclusionDelay  Slot
	ProposerIndex   ValidatorIndex
}

// SyncCommittee holds the current sync committee member keys.
type SyncCommittee struct {
	Pubkeys         []BLSPubkey
	AggregatePubkey BLSPubkey
}

// ExecutionPayloadHeader is the execution block header summary (Deneb shape).
type ExecutionPayloadHeader struct {
	ParentHash       Root
	FeeRecipient     Address
	StateRoot        Root
	ReceiptsRoot     Root
	LogsBloom        []byte
	PrevRandao       Root
	BlockNumber      uint64
	GasLimit         uint64
	GasUsed          uint64
	Timestamp        uint64
	ExtraData        []byte
	BaseFeePerGas    *uint256.Int
	BlockHash        Root
	TransactionsRoot Root
	WithdrawalsRoot  Root
	BlobGasUsed      uint64
	ExcessBlobGas    uint64
}

// HistoricalSummary matches the components of the phase0 HistoricalBatch,
// keeping the two hash_tree_root compatible.
type HistoricalSummary struct {
	BlockSummaryRoot Root
	StateSummaryRoot Root
}

// BeaconState is the top-level consensus state aggregate (Capella layout
// with the Deneb execution header).
type BeaconState struct {
	// Versioning
	GenesisTime           uint64
	GenesisValidatorsRoot Root
	Slot                  Slot
	Fork                  Fork
	// History
	LatestBlockHeader BeaconBlockHeader
	BlockRoots        []Root
	StateRoots        []Root
	HistoricalRoots   []Root
	// Eth1
	Eth1Data         Eth1Data
	Eth1DataVotes    []Eth1Data
	Eth1DepositIndex uint64
	// Registry
	Validators []Validator
	Balances   []Gwei
	// Randomness
	RandaoMixes []Root
	// Slashings
	Slashings []Gwei
	// Participation
	PreviousEpochParticipation []byte
	CurrentEpochParticipation  []byte
	// Finality
	JustificationBits           bitfield.Bitvector4
	PreviousJustifiedCheckpoint Checkpoint
	CurrentJustifiedCheckpoint  Checkpoint
	FinalizedCheckpoint         Checkpoint
	// Inactivity
	InactivityScores []uint64
	// Sync
	CurrentSyncCommittee SyncCommittee
	NextSyncCommittee    SyncCommittee
	// Execution
	LatestExecutionPayloadHeader ExecutionPayloadHeader
	// Withdrawals
	NextWithdrawalIndex          WithdrawalIndex
	NextWithdrawalValidatorIndex ValidatorIndex
	// Deep history, Capella onwards
	HistoricalSummaries []HistoricalSummary
}
