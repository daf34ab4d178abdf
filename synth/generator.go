// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package synth

import (
	"fmt"
	"math/rand"

	"github.com/prysmaticlabs/go-bitfield"
	"github.com/sirupsen/logrus"

	"github.com/ethsynth/beaconsynth/consensus"
)

// mainnet genesis values used for the fabricated chain context.
const genesisTime = 1606824023

var genesisBlockRoot = mustRootHex("0x4d611d5b93fdab69013a7f0a2f961caca0c853f87cfe9595fe50038163079360")

func mustRootHex(s string) consensus.Root {
	r, err := consensus.RootFromHex(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Options controls one synthesis run.
type Options struct {
	Slot              consensus.Slot
	TotalValidators   uint64
	LidoValidators    uint64
	PendingValidators uint64 // Lido validators awaiting their deposit
	ExitedValidators  uint64 // Lido validators already exited
	Balances          BalanceMode
	Shuffle           bool
	Seed              int64
}

func (o Options) validate() error {
	if o.LidoValidators > o.TotalValidators {
		return fmt.Errorf("lido validators (%d) exceed total validators (%d)", o.LidoValidators, o.TotalValidators)
	}
	if o.PendingValidators+o.ExitedValidators > o.LidoValidators {
		return fmt.Errorf("pending (%d) and exited (%d) validators exceed the lido segment (%d)",
			o.PendingValidators, o.ExitedValidators, o.LidoValidators)
	}
	return nil
}

// Creator builds synthetic beacon states against one schema set.
type Creator struct {
	schemas *consensus.SchemaSet
	log     logrus.FieldLogger
}

func NewCreator(schemas *consensus.SchemaSet, log logrus.FieldLogger) *Creator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Creator{schemas: schemas, log: log}
}

// CreateState fabricates a full beacon state at opts.Slot with the requested
// validator population. All history vectors are zero filled; only the
// registry, balances and per-validator lists carry synthesized data.
func (c *Creator) CreateState(opts Options) (*consensus.BeaconState, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	rnd := rand.New(rand.NewSource(opts.Seed))
	epoch := consensus.Epoch(c.schemas.Preset().Epoch(uint64(opts.Slot)))

	pop, err := buildPopulation(opts, epoch, rnd, 0)
	if err != nil {
		return nil, err
	}
	st := c.baseState(opts.Slot)
	c.attach(st, pop)

	c.log.WithFields(logrus.Fields{
		"slot":       opts.Slot,
		"epoch":      epoch,
		"validators": len(st.Validators),
		"lido":       opts.LidoValidators,
	}).Info("created synthetic beacon state")
	return st, nil
}

// ExtendState appends a freshly synthesized population onto an existing state
// and moves it to opts.Slot. The existing registry is left untouched, so
// earlier fixtures remain prefixes of later ones.
func (c *Creator) ExtendState(st *consensus.BeaconState, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if opts.Slot < st.Slot {
		return fmt.Errorf("target slot %d is behind the base state slot %d", opts.Slot, st.Slot)
	}
	rnd := rand.New(rand.NewSource(opts.Seed))
	epoch := consensus.Epoch(c.schemas.Preset().Epoch(uint64(opts.Slot)))

	pop, err := buildPopulation(opts, epoch, rnd, uint64(len(st.Validators)))
	if err != nil {
		return err
	}
	st.Slot = opts.Slot
	st.LatestBlockHeader.Slot = opts.Slot
	st.Validators = append(st.Validators, pop.validators...)
	st.Balances = append(st.Balances, pop.balances...)
	for range pop.validators {
		st.PreviousEpochParticipation = append(st.PreviousEpochParticipation, 0)
		st.CurrentEpochParticipation = append(st.CurrentEpochParticipation, 0)
		st.InactivityScores = append(st.InactivityScores, 0)
	}
	st.Eth1DepositIndex = uint64(len(st.Validators))
	st.Eth1Data.DepositCount = uint64(len(st.Validators))

	c.log.WithFields(logrus.Fields{
		"slot":       opts.Slot,
		"appended":   len(pop.validators),
		"validators": len(st.Validators),
	}).Info("extended synthetic beacon state")
	return nil
}

// BlockHeader builds the block header that commits to the state: the header
// carries the state's hash_tree_root in state_root.
func (c *Creator) BlockHeader(st *consensus.BeaconState) (*consensus.BeaconBlockHeader, error) {
	stateRoot, err := c.schemas.StateRoot(st)
	if err != nil {
		return nil, err
	}
	return &consensus.BeaconBlockHeader{
		Slot:          st.Slot,
		ProposerIndex: 0,
		ParentRoot:    genesisBlockRoot,
		StateRoot:     stateRoot,
		BodyRoot:      consensus.Root{},
	}, nil
}

// baseState returns a state at the given slot with every vector present at
// its schema-mandated length and zero content.
func (c *Creator) baseState(slot consensus.Slot) *consensus.BeaconState {
	p := c.schemas.Preset()
	return &consensus.BeaconState{
		GenesisTime: genesisTime,
		Slot:        slot,
		Fork: consensus.Fork{
			Epoch: consensus.Epoch(p.Epoch(uint64(slot))),
		},
		LatestBlockHeader: consensus.BeaconBlockHeader{
			Slot:       slot,
			ParentRoot: genesisBlockRoot,
		},
		BlockRoots:        make([]consensus.Root, p.SlotsPerHistoricalRoot),
		StateRoots:        make([]consensus.Root, p.SlotsPerHistoricalRoot),
		RandaoMixes:       make([]consensus.Root, p.EpochsPerHistoricalVector),
		Slashings:         make([]consensus.Gwei, p.EpochsPerSlashingsVector),
		JustificationBits: bitfield.NewBitvector4(),
		LatestExecutionPayloadHeader: consensus.ExecutionPayloadHeader{
			LogsBloom: make([]byte, p.BytesPerLogsBloom),
		},
		CurrentSyncCommittee: consensus.SyncCommittee{
			Pubkeys: make([]consensus.BLSPubkey, p.SyncCommitteeSize),
		},
		NextSyncCommittee: consensus.SyncCommittee{
			Pubkeys: make([]consensus.BLSPubkey, p.SyncCommitteeSize),
		},
	}
}

func (c *Creator) attach(st *consensus.BeaconState, pop *population) {
	st.Validators = pop.validators
	st.Balances = pop.balances
	st.PreviousEpochParticipation = make([]byte, len(pop.validators))
	st.CurrentEpochParticipation = make([]byte, len(pop.validators))
	st.InactivityScores = make([]uint64, len(pop.validators))
	st.Eth1DepositIndex = uint64(len(pop.validators))
	st.Eth1Data.DepositCount = uint64(len(pop.validators))
}
