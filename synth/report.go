// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package synth

import (
	"encoding/json"
	"io"

	"github.com/ethsynth/beaconsynth/consensus"
)

// Report summarizes a synthesized state the way the accounting pipeline
// expects: chain position, commitment roots and the balance / validator
// totals split into the Lido and overall populations.
type Report struct {
	Slot            uint64 `json:"slot"`
	Epoch           uint64 `json:"epoch"`
	BeaconBlockHash string `json:"beacon_block_hash"`
	BeaconStateHash string `json:"beacon_state_hash"`

	TotalValidators uint64 `json:"total_validators"`
	TotalBalance    uint64 `json:"total_balance"`

	LidoWithdrawalCredentials   string `json:"lido_withdrawal_credentials"`
	LidoTotalValidators         uint64 `json:"lido_total_validators"`
	LidoDepositedValidators     uint64 `json:"lido_deposited_validators"`
	LidoFutureDepositValidators uint64 `json:"lido_future_deposit_validators"`
	LidoExitedValidators        uint64 `json:"lido_exited_validators"`
	LidoClBalance               uint64 `json:"lido_cl_balance"`
}

// BuildReport classifies every validator against the state's epoch and
// aggregates the balance totals. A validator is deposited once the state
// epoch reached its activation eligibility epoch, and exited once the state
// epoch reached its exit epoch.
func (c *Creator) BuildReport(st *consensus.BeaconState, headerRoot, stateRoot consensus.Root) Report {
	epoch := consensus.Epoch(c.schemas.Preset().Epoch(uint64(st.Slot)))

	r := Report{
		Slot:                      uint64(st.Slot),
		Epoch:                     uint64(epoch),
		BeaconBlockHash:           headerRoot.String(),
		BeaconStateHash:           stateRoot.String(),
		TotalValidators:           uint64(len(st.Validators)),
		LidoWithdrawalCredentials: LidoWithdrawalCredentials.String(),
	}
	for i := range st.Validators {
		v := &st.Validators[i]
		balance := uint64(st.Balances[i])
		r.TotalBalance += balance
		if v.WithdrawalCredentials != LidoWithdrawalCredentials {
			continue
		}
		r.LidoTotalValidators++
		r.LidoClBalance += balance
		if epoch >= v.ActivationEligibilityEpoch {
			r.LidoDepositedValidators++
		} else {
			r.LidoFutureDepositValidators++
		}
		if epoch >= v.ExitEpoch {
			r.LidoExitedValidators++
		}
	}
	return r
}

// InspectState derives the block header an arbitrary state would be committed
// under and builds its report.
func (c *Creator) InspectState(st *consensus.BeaconState) (Report, error) {
	header, err := c.BlockHeader(st)
	if err != nil {
		return Report{}, err
	}
	headerRoot, err := c.schemas.HeaderRoot(header)
	if err != nil {
		return Report{}, err
	}
	return c.BuildReport(st, consensus.Root(headerRoot), header.StateRoot), nil
}

// Print writes the report as indented JSON.
func (r Report) Print(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
