// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package consensus

import (
	"fmt"

	"github.com/ethsynth/beaconsynth/preset"
	"github.com/ethsynth/beaconsynth/ssz"
)

// SchemaSet holds the static SSZ schemas for every consensus container,
// built once from a chain preset. Field order matches the upstream spec and
// must never change: it fixes both serialization order and chunk order.
type SchemaSet struct {
	preset *preset.Preset

	Fork                   *ssz.Type
	Checkpoint             *ssz.Type
	BeaconBlockHeader      *ssz.Type
	Eth1Data               *ssz.Type
	Validator              *ssz.Type
	AttestationData        *ssz.Type
	PendingAttestation     *ssz.Type
	SyncCommittee          *ssz.Type
	ExecutionPayloadHeader *ssz.Type
	HistoricalSummary      *ssz.Type
	BeaconState            *ssz.Type
}

// NewSchemaSet derives the container schemas from a preset.
func NewSchemaSet(p *preset.Preset) (*SchemaSet, error) {
	eth1VotesLimit, err := p.Eth1DataVotesLimit()
	if err != nil {
		return nil, fmt.Errorf("derive eth1_data_votes limit: %w", err)
	}

	s := &SchemaSet{preset: p}

	s.Fork = ssz.ContainerOf(
		ssz.Field{Name: "previous_version", Type: ssz.Bytes(4)},
		ssz.Field{Name: "current_version", Type: ssz.Bytes(4)},
		ssz.Field{Name: "epoch", Type: ssz.Uint64()},
	)

	s.Checkpoint = ssz.ContainerOf(
		ssz.Field{Name: "epoch", Type: ssz.Uint64()},
		ssz.Field{Name: "root", Type: ssz.Bytes(32)},
	)

	s.BeaconBlockHeader = ssz.ContainerOf(
		ssz.Field{Name: "slot", Type: ssz.Uint64()},
		ssz.Field{Name: "proposer_index", Type: ssz.Uint64()},
		ssz.Field{Name: "parent_root", Type: ssz.Bytes(32)},
		ssz.Field{Name: "state_root", Type: ssz.Bytes(32)},
		ssz.Field{Name: "body_root", Type: ssz.Bytes(32)},
	)

	s.Eth1Data = ssz.ContainerOf(
		ssz.Field{Name: "deposit_root", Type: ssz.Bytes(32)},
		ssz.Field{Name: "deposit_count", Type: ssz.Uint64()},
		ssz.Field{Name: "block_hash", Type: ssz.Bytes(32)},
	)

	s.Validator = ssz.ContainerOf(
		ssz.Field{Name: "pubkey", Type: ssz.Bytes(48)},
		ssz.Field{Name: "withdrawal_credentials", Type: ssz.Bytes(32)},
		ssz.Field{Name: "effective_balance", Type: ssz.Uint64()},
		ssz.Field{Name: "slashed", Type: ssz.Bool()},
		ssz.Field{Name: "activation_eligibility_epoch", Type: ssz.Uint64()},
		ssz.Field{Name: "activation_epoch", Type: ssz.Uint64()},
		ssz.Field{Name: "exit_epoch", Type: ssz.Uint64()},
		ssz.Field{Name: "withdrawable_epoch", Type: ssz.Uint64()},
	)

	s.AttestationData = ssz.ContainerOf(
		ssz.Field{Name: "slot", Type: ssz.Uint64()},
		ssz.Field{Name: "index", Type: ssz.Uint64()},
		ssz.Field{Name: "beacon_block_root", Type: ssz.Bytes(32)},
		ssz.Field{Name: "source", Type: s.Checkpoint},
		ssz.Field{Name: "target", Type: s.Checkpoint},
	)

	s.PendingAttestation = ssz.ContainerOf(
		ssz.Field{Name: "aggregation_bits", Type: ssz.BitlistOf(p.MaxValidatorsPerCommittee)},
		ssz.Field{Name: "data", Type: s.AttestationData},
		ssz.Field{Name: "inclusion_delay", Type: ssz.Uint64()},
		ssz.Field{Name: "proposer_index", Type: ssz.Uint64()},
	)

	s.SyncCommittee = ssz.ContainerOf(
		ssz.Field{Name: "pubkeys", Type: ssz.VectorOf(ssz.Bytes(48), p.SyncCommitteeSize)},
		ssz.Field{Name: "aggregate_pubkey", Type: ssz.Bytes(48)},
	)

	s.ExecutionPayloadHeader = ssz.ContainerOf(
		ssz.Field{Name: "parent_hash", Type: ssz.Bytes(32)},
		ssz.Field{Name: "fee_recipient", Type: ssz.Bytes(20)},
		ssz.Field{Name: "state_root", Type: ssz.Bytes(32)},
		ssz.Field{Name: "receipts_root", Type: ssz.Bytes(32)},
		ssz.Field{Name: "logs_bloom", Type: ssz.Bytes(p.BytesPerLogsBloom)},
		ssz.Field{Name: "prev_randao", Type: ssz.Bytes(32)},
		ssz.Field{Name: "block_number", Type: ssz.Uint64()},
		ssz.Field{Name: "gas_limit", Type: ssz.Uint64()},
		ssz.Field{Name: "gas_used", Type: ssz.Uint64()},
		ssz.Field{Name: "timestamp", Type: ssz.Uint64()},
		ssz.Field{Name: "extra_data", Type: ssz.ListOf(ssz.Uint8(), p.MaxExtraDataBytes)},
		ssz.Field{Name: "base_fee_per_gas", Type: ssz.Uint256()},
		ssz.Field{Name: "block_hash", Type: ssz.Bytes(32)},
		ssz.Field{Name: "transactions_root", Type: ssz.Bytes(32)},
		ssz.Field{Name: "withdrawals_root", Type: ssz.Bytes(32)},
		ssz.Field{Name: "blob_gas_used", Type: ssz.Uint64()},
		ssz.Field{Name: "excess_blob_gas", Type: ssz.Uint64()},
	)

	s.HistoricalSummary = ssz.ContainerOf(
		ssz.Field{Name: "block_summary_root", Type: ssz.Bytes(32)},
		ssz.Field{Name: "state_summary_root", Type: ssz.Bytes(32)},
	)

	s.BeaconState = ssz.ContainerOf(
		ssz.Field{Name: "genesis_time", Type: ssz.Uint64()},
		ssz.Field{Name: "genesis_validators_root", Type: ssz.Bytes(32)},
		ssz.Field{Name: "slot", Type: ssz.Uint64()},
		ssz.Field{Name: "fork", Type: s.Fork},
		ssz.Field{Name: "latest_block_header", Type: s.BeaconBlockHeader},
		ssz.Field{Name: "block_roots", Type: ssz.VectorOf(ssz.Bytes(32), p.SlotsPerHistoricalRoot)},
		ssz.Field{Name: "state_roots", Type: ssz.VectorOf(ssz.Bytes(32), p.SlotsPerHistoricalRoot)},
		ssz.Field{Name: "historical_roots", Type: ssz.ListOf(ssz.Bytes(32), p.HistoricalRootsLimit)},
		ssz.Field{Name: "eth1_data", Type: s.Eth1Data},
		ssz.Field{Name: "eth1_data_votes", Type: ssz.ListOf(s.Eth1Data, eth1VotesLimit)},
		ssz.Field{Name: "eth1_deposit_index", Type: ssz.Uint64()},
		ssz.Field{Name: "validators", Type: ssz.ListOf(s.Validator, p.ValidatorRegistryLimit)},
		ssz.Field{Name: "balances", Type: ssz.ListOf(ssz.Uint64(), p.ValidatorRegistryLimit)},
		ssz.Field{Name: "randao_mixes", Type: ssz.VectorOf(ssz.Bytes(32), p.EpochsPerHistoricalVector)},
		ssz.Field{Name: "slashings", Type: ssz.VectorOf(ssz.Uint64(), p.EpochsPerSlashingsVector)},
		ssz.Field{Name: "previous_epoch_participation", Type: ssz.ListOf(ssz.Uint8(), p.ValidatorRegistryLimit)},
		ssz.Field{Name: "current_epoch_participation", Type: ssz.ListOf(ssz.Uint8(), p.ValidatorRegistryLimit)},
		ssz.Field{Name: "justification_bits", Type: ssz.BitvectorOf(p.JustificationBitsLength)},
		ssz.Field{Name: "previous_justified_checkpoint", Type: s.Checkpoint},
		ssz.Field{Name: "current_justified_checkpoint", Type: s.Checkpoint},
		ssz.Field{Name: "finalized_checkpoint", Type: s.Checkpoint},
		ssz.Field{Name: "inactivity_scores", Type: ssz.ListOf(ssz.Uint64(), p.ValidatorRegistryLimit)},
		ssz.Field{Name: "current_sync_committee", Type: s.SyncCommittee},
		ssz.Field{Name: "next_sync_committee", Type: s.SyncCommittee},
		ssz.Field{Name: "latest_execution_payload_header", Type: s.ExecutionPayloadHeader},
		ssz.Field{Name: "next_withdrawal_index", Type: ssz.Uint64()},
		ssz.Field{Name: "next_withdrawal_validator_index", Type: ssz.Uint64()},
		ssz.Field{Name: "historical_summaries", Type: ssz.ListOf(s.HistoricalSummary, p.HistoricalRootsLimit)},
	)

	return s, nil
}

// Preset returns the preset the schemas were derived from.
func (s *SchemaSet) Preset() *preset.Preset {
	return s.preset
}

var defaultSchemas = func() *SchemaSet {
	s, err := NewSchemaSet(preset.Mainnet())
	if err != nil {
		panic(err)
	}
	return s
}()

// DefaultSchemas returns the schema set for the mainnet preset.
func DefaultSchemas() *SchemaSet {
	return defaultSchemas
}
