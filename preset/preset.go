// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

// Package preset holds the chain preset values that parameterize the
// consensus schemas: vector lengths, list limits and epoch geometry. The
// mainnet preset is built in; individual values can be overridden from a
// YAML file using the upstream consensus-spec names.
package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset carries the subset of the consensus spec preset that the beacon
// state schema depends on. YAML keys follow the upstream spec names.
type Preset struct {
	SlotsPerEpoch             uint64 `yaml:"SLOTS_PER_EPOCH"`
	SlotsPerHistoricalRoot    uint64 `yaml:"SLOTS_PER_HISTORICAL_ROOT"`
	HistoricalRootsLimit      uint64 `yaml:"HISTORICAL_ROOTS_LIMIT"`
	ValidatorRegistryLimit    uint64 `yaml:"VALIDATOR_REGISTRY_LIMIT"`
	EpochsPerHistoricalVector uint64 `yaml:"EPOCHS_PER_HISTORICAL_VECTOR"`
	EpochsPerSlashingsVector  uint64 `yaml:"EPOCHS_PER_SLASHINGS_VECTOR"`
	EpochsPerEth1VotingPeriod uint64 `yaml:"EPOCHS_PER_ETH1_VOTING_PERIOD"`
	SyncCommitteeSize         uint64 `yaml:"SYNC_COMMITTEE_SIZE"`
	BytesPerLogsBloom         uint64 `yaml:"BYTES_PER_LOGS_BLOOM"`
	MaxExtraDataBytes         uint64 `yaml:"MAX_EXTRA_DATA_BYTES"`
	MaxValidatorsPerCommittee uint64 `yaml:"MAX_VALIDATORS_PER_COMMITTEE"`
	JustificationBitsLength   uint64 `yaml:"JUSTIFICATION_BITS_LENGTH"`
}

// Mainnet returns the mainnet preset.
func Mainnet() *Preset {
	return &Preset{
		SlotsPerEpoch:             32,
		SlotsPerHistoricalRoot:    8192,
		HistoricalRootsLimit:      1 << 24,
		ValidatorRegistryLimit:    1 << 40,
		EpochsPerHistoricalVector: 1 << 16,
		EpochsPerSlashingsVector:  1 << 13,
		EpochsPerEth1VotingPeriod: 64,
		SyncCommitteeSize:         512,
		BytesPerLogsBloom:         256,
		MaxExtraDataBytes:         32,
		MaxValidatorsPerCommittee: 2048,
		JustificationBitsLength:   4,
	}
}

// LoadFile returns the mainnet preset with any values present in the YAML
// file applied on top.
func LoadFile(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset file: %w", err)
	}
	p := Mainnet()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse preset file %s: %w", path, err)
	}
	return p, nil
}

// Values returns the preset as an expression parameter map, keyed by the
// upstream spec names.
func (p *Preset) Values() map[string]interface{} {
	return map[string]interface{}{
		"SLOTS_PER_EPOCH":               float64(p.SlotsPerEpoch),
		"SLOTS_PER_HISTORICAL_ROOT":     float64(p.SlotsPerHistoricalRoot),
		"HISTORICAL_ROOTS_LIMIT":        float64(p.HistoricalRootsLimit),
		"VALIDATOR_REGISTRY_LIMIT":      float64(p.ValidatorRegistryLimit),
		"EPOCHS_PER_HISTORICAL_VECTOR":  float64(p.EpochsPerHistoricalVector),
		"EPOCHS_PER_SLASHINGS_VECTOR":   float64(p.EpochsPerSlashingsVector),
		"EPOCHS_PER_ETH1_VOTING_PERIOD": float64(p.EpochsPerEth1VotingPeriod),
		"SYNC_COMMITTEE_SIZE":           float64(p.SyncCommitteeSize),
		"BYTES_PER_LOGS_BLOOM":          float64(p.BytesPerLogsBloom),
		"MAX_EXTRA_DATA_BYTES":          float64(p.MaxExtraDataBytes),
		"MAX_VALIDATORS_PER_COMMITTEE":  float64(p.MaxValidatorsPerCommittee),
		"JUSTIFICATION_BITS_LENGTH":     float64(p.JustificationBitsLength),
	}
}

// Epoch returns the epoch a slot belongs to.
func (p *Preset) Epoch(slot uint64) uint64 {
	return slot / p.SlotsPerEpoch
}
