// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package synth

import (
	"encoding/binary"
	"math/rand"

	"github.com/ethsynth/beaconsynth/consensus"
)

// LidoWithdrawalCredentials is the 0x01 withdrawal credential pointing at the
// Lido withdrawal vault. Validators carrying it are counted towards the Lido
// totals in the report.
var LidoWithdrawalCredentials = consensus.Root{
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xb9, 0xd7, 0x93, 0x48,
	0x78, 0xb5, 0xfb, 0x96, 0x10, 0xb3, 0xfe, 0x8a,
	0x5e, 0x44, 0x1e, 0x8f, 0xad, 0x7e, 0x29, 0x3f,
}

// OtherWithdrawalCredentials marks non-Lido validators.
var OtherWithdrawalCredentials = consensus.Root{
	0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
	0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
	0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
	0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
}

// validatorStatus describes which lifecycle segment a synthetic validator
// belongs to, relative to the state's epoch.
type validatorStatus int

const (
	statusActive validatorStatus = iota
	statusFutureDeposit
	statusExited
)

// makeValidator builds one validator with epochs chosen so that, at the given
// epoch, it reads as active, not-yet-deposited, or exited.
func makeValidator(index consensus.ValidatorIndex, creds consensus.Root, status validatorStatus, epoch consensus.Epoch, balance consensus.Gwei) consensus.Validator {
	var pubkey consensus.BLSPubkey
	binary.LittleEndian.PutUint64(pubkey[:8], uint64(index))
	pubkey[47] = 0x01

	eff := balance - balance%consensus.EffectiveBalanceIncrement
	if eff > consensus.MaxEffectiveBalance {
		eff = consensus.MaxEffectiveBalance
	}

	v := consensus.Validator{
		Pubkey:                     pubkey,
		WithdrawalCredentials:      creds,
		EffectiveBalance:           eff,
		ActivationEligibilityEpoch: 0,
		ActivationEpoch:            0,
		ExitEpoch:                  consensus.FarFutureEpoch,
		WithdrawableEpoch:          consensus.FarFutureEpoch,
	}
	switch status {
	case statusFutureDeposit:
		v.ActivationEligibilityEpoch = epoch + 10
		v.ActivationEpoch = consensus.FarFutureEpoch
	case statusExited:
		exit := consensus.Epoch(1)
		if epoch > 1 {
			exit = epoch - 1
		}
		v.ExitEpoch = exit
		v.WithdrawableEpoch = exit
	}
	return v
}

// population is the paired validator registry and balance list. The two
// slices move together through shuffling and state assembly.
type population struct {
	validators []consensus.Validator
	balances   []consensus.Gwei
}

// buildPopulation fabricates the full registry for the given options. Lido
// validators come first (active, then future-deposit, then exited), followed
// by the non-Lido remainder, unless Shuffle interleaves them.
func buildPopulation(opts Options, epoch consensus.Epoch, rnd *rand.Rand, startIndex uint64) (*population, error) {
	balance, err := opts.Balances.source(rnd)
	if err != nil {
		return nil, err
	}

	p := &population{
		validators: make([]consensus.Validator, 0, opts.TotalValidators),
		balances:   make([]consensus.Gwei, 0, opts.TotalValidators),
	}
	add := func(creds consensus.Root, status validatorStatus) {
		idx := consensus.ValidatorIndex(startIndex + uint64(len(p.validators)))
		b := balance()
		if status == statusFutureDeposit {
			b = 0
		}
		p.validators = append(p.validators, makeValidator(idx, creds, status, epoch, b))
		p.balances = append(p.balances, b)
	}

	lidoActive := opts.LidoValidators - opts.PendingValidators - opts.ExitedValidators
	for i := uint64(0); i < lidoActive; i++ {
		add(LidoWithdrawalCredentials, statusActive)
	}
	for i := uint64(0); i < opts.PendingValidators; i++ {
		add(LidoWithdrawalCredentials, statusFutureDeposit)
	}
	for i := uint64(0); i < opts.ExitedValidators; i++ {
		add(LidoWithdrawalCredentials, statusExited)
	}
	for i := uint64(opts.LidoValidators); i < opts.TotalValidators; i++ {
		add(OtherWithdrawalCredentials, statusActive)
	}

	if opts.Shuffle {
		rnd.Shuffle(len(p.validators), func(i, j int) {
			p.validators[i], p.validators[j] = p.validators[j], p.validators[i]
			p.balances[i], p.balances[j] = p.balances[j], p.balances[i]
		})
	}
	return p, nil
}
