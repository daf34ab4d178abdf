// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package consensus

import (
	"github.com/holiman/uint256"
	"github.com/prysmaticlabs/go-bitfield"
)

// The codec works on canonical value forms (see the ssz package comment);
// the functions here map the typed structs to and from those forms. The
// conversions are mechanical and schema-shaped: after a successful decode
// the value shape is fixed by the schema, so reads assert directly.

func rootsToBytes(rs []Root) [][]byte {
	out := make([][]byte, len(rs))
	for i := range rs {
		out[i] = rs[i][:]
	}
	return out
}

func bytesToRoots(bs [][]byte) []Root {
	out := make([]Root, len(bs))
	for i := range bs {
		copy(out[i][:], bs[i])
	}
	return out
}

func gweiToUint64(gs []Gwei) []uint64 {
	out := make([]uint64, len(gs))
	for i := range gs {
		out[i] = uint64(gs[i])
	}
	return out
}

func uint64ToGwei(us []uint64) []Gwei {
	out := make([]Gwei, len(us))
	for i := range us {
		out[i] = Gwei(us[i])
	}
	return out
}

func pubkeysToBytes(ps []BLSPubkey) [][]byte {
	out := make([][]byte, len(ps))
	for i := range ps {
		out[i] = ps[i][:]
	}
	return out
}

func (f *Fork) sszValue() []any {
	return []any{f.PreviousVersion[:], f.CurrentVersion[:], uint64(f.Epoch)}
}

func (f *Fork) setSSZ(raw any) {
	v := raw.([]any)
	copy(f.PreviousVersion[:], v[0].([]byte))
	copy(f.CurrentVersion[:], v[1].([]byte))
	f.Epoch = Epoch(v[2].(uint64))
}

func (c *Checkpoint) sszValue() []any {
	return []any{uint64(c.Epoch), c.Root[:]}
}

func (c *Checkpoint) setSSZ(raw any) {
	v := raw.([]any)
	c.Epoch = Epoch(v[0].(uint64))
	copy(c.Root[:], v[1].([]byte))
}

func (h *BeaconBlockHeader) sszValue() []any {
	return []any{
		uint64(h.Slot), uint64(h.ProposerIndex),
		h.ParentRoot[:], h.StateRoot[:], h.BodyRoot[:],
	}
}

func (h *BeaconBlockHeader) setSSZ(raw any) {
	v := raw.([]any)
	h.Slot = Slot(v[0].(uint64))
	h.ProposerIndex = ValidatorIndex(v[1].(uint64))
	copy(h.ParentRoot[:], v[2].([]byte))
	copy(h.StateRoot[:], v[3].([]byte))
	copy(h.BodyRoot[:], v[4].([]byte))
}

func (e *Eth1Data) sszValue() []any {
	return []any{e.DepositRoot[:], e.DepositCount, e.BlockHash[:]}
}

func (e *Eth1Data) setSSZ(raw any) {
	v := raw.([]any)
	copy(e.DepositRoot[:], v[0].([]byte))
	e.DepositCount = v[1].(uint64)
	copy(e.BlockHash[:], v[2].([]byte))
}

func (val *Validator) sszValue() []any {
	return []any{
		val.Pubkey[:], val.WithdrawalCredentials[:],
		uint64(val.EffectiveBalance), val.Slashed,
		uint64(val.ActivationEligibilityEpoch), uint64(val.ActivationEpoch),
		uint64(val.ExitEpoch), uint64(val.WithdrawableEpoch),
	}
}

func (val *Validator) setSSZ(raw any) {
	v := raw.([]any)
	copy(val.Pubkey[:], v[0].([]byte))
	copy(val.WithdrawalCredentials[:], v[1].([]byte))
	val.EffectiveBalance = Gwei(v[2].(uint64))
	val.Slashed = v[3].(bool)
	val.ActivationEligibilityEpoch = Epoch(v[4].(uint64))
	val.ActivationEpoch = Epoch(v[5].(uint64))
	val.ExitEpoch = Epoch(v[6].(uint64))
	val.WithdrawableEpoch = Epoch(v[7].(uint64))
}

func (a *AttestationData) sszValue() []any {
	return []any{
		uint64(a.Slot), uint64(a.Index), a.BeaconBlockRoot[:],
		a.Source.sszValue(), a.Target.sszValue(),
	}
}

func (a *AttestationData) setSSZ(raw any) {
	v := raw.([]any)
	a.Slot = Slot(v[0].(uint64))
	a.Index = CommitteeIndex(v[1].(uint64))
	copy(a.BeaconBlockRoot[:], v[2].([]byte))
	a.Source.setSSZ(v[3])
	a.Target.setSSZ(v[4])
}

func (p *PendingAttestation) sszValue() []any {
	return []any{
		p.AggregationBits, p.Data.sszValue(),
		uint64(p.InclusionDelay), uint64(p.ProposerIndex),
	}
}

func (p *PendingAttestation) setSSZ(raw any) {
	v := raw.([]any)
	p.AggregationBits = v[0].(bitfield.Bitlist)
	p.Data.setSSZ(v[1])
	p.InclusionDelay = Slot(v[2].(uint64))
	p.ProposerIndex = ValidatorIndex(v[3].(uint64))
}

func (sc *SyncCommittee) sszValue() []any {
	return []any{pubkeysToBytes(sc.Pubkeys), sc.AggregatePubkey[:]}
}

func (sc *SyncCommittee) setSSZ(raw any) {
	v := raw.([]any)
	keys := v[0].([][]byte)
	sc.Pubkeys = make([]BLSPubkey, len(keys))
	for i := range keys {
		copy(sc.Pubkeys[i][:], keys[i])
	}
	copy(sc.AggregatePubkey[:], v[1].([]byte))
}

func (eh *ExecutionPayloadHeader) sszValue() []any {
	fee := eh.BaseFeePerGas
	if fee == nil {
		fee = uint256.NewInt(0)
	}
	return []any{
		eh.ParentHash[:], eh.FeeRecipient[:], eh.StateRoot[:], eh.ReceiptsRoot[:],
		eh.LogsBloom, eh.PrevRandao[:],
		eh.BlockNumber, eh.GasLimit, eh.GasUsed, eh.Timestamp,
		eh.ExtraData, fee,
		eh.BlockHash[:], eh.TransactionsRoot[:], eh.WithdrawalsRoot[:],
		eh.BlobGasUsed, eh.ExcessBlobGas,
	}
}

func (eh *ExecutionPayloadHeader) setSSZ(raw any) {
	v := raw.([]any)
	copy(eh.ParentHash[:], v[0].([]byte))
	copy(eh.FeeRecipient[:], v[1].([]byte))
	copy(eh.StateRoot[:], v[2].([]byte))
	copy(eh.ReceiptsRoot[:], v[3].([]byte))
	eh.LogsBloom = v[4].([]byte)
	copy(eh.PrevRandao[:], v[5].([]byte))
	eh.BlockNumber = v[6].(uint64)
	eh.GasLimit = v[7].(uint64)
	eh.GasUsed = v[8].(uint64)
	eh.Timestamp = v[9].(uint64)
	eh.ExtraData = v[10].([]byte)
	eh.BaseFeePerGas = v[11].(*uint256.Int)
	copy(eh.BlockHash[:], v[12].([]byte))
	copy(eh.TransactionsRoot[:], v[13].([]byte))
	copy(eh.WithdrawalsRoot[:], v[14].([]byte))
	eh.BlobGasUsed = v[15].(uint64)
	eh.ExcessBlobGas = v[16].(uint64)
}

func (hs *HistoricalSummary) sszValue() []any {
	return []any{hs.BlockSummaryRoot[:], hs.StateSummaryRoot[:]}
}

func (hs *HistoricalSummary) setSSZ(raw any) {
	v := raw.([]any)
	copy(hs.BlockSummaryRoot[:], v[0].([]byte))
	copy(hs.StateSummaryRoot[:], v[1].([]byte))
}

func (st *BeaconState) sszValue() []any {
	validators := make([]any, len(st.Validators))
	for i := range st.Validators {
		validators[i] = st.Validators[i].sszValue()
	}
	votes := make([]any, len(st.Eth1DataVotes))
	for i := range st.Eth1DataVotes {
		votes[i] = st.Eth1DataVotes[i].sszValue()
	}
	summaries := make([]any, len(st.HistoricalSummaries))
	for i := range st.HistoricalSummaries {
		summaries[i] = st.HistoricalSummaries[i].sszValue()
	}

	return []any{
		st.GenesisTime,
		st.GenesisValidatorsRoot[:],
		uint64(st.Slot),
		st.Fork.sszValue(),
		st.LatestBlockHeader.sszValue(),
		rootsToBytes(st.BlockRoots),
		rootsToBytes(st.StateRoots),
		rootsToBytes(st.HistoricalRoots),
		st.Eth1Data.sszValue(),
		votes,
		st.Eth1DepositIndex,
		validators,
		gweiToUint64(st.Balances),
		rootsToBytes(st.RandaoMixes),
		gweiToUint64(st.Slashings),
		st.PreviousEpochParticipation,
		st.CurrentEpochParticipation,
		[]byte(st.JustificationBits),
		st.PreviousJustifiedCheckpoint.sszValue(),
		st.CurrentJustifiedCheckpoint.sszValue(),
		st.FinalizedCheckpoint.sszValue(),
		st.InactivityScores,
		st.CurrentSyncCommittee.sszValue(),
		st.NextSyncCommittee.sszValue(),
		st.LatestExecutionPayloadHeader.sszValue(),
		uint64(st.NextWithdrawalIndex),
		uint64(st.NextWithdrawalValidatorIndex),
		summaries,
	}
}

func (st *BeaconState) setSSZ(raw any) {
	v := raw.([]any)
	st.GenesisTime = v[0].(uint64)
	copy(st.GenesisValidatorsRoot[:], v[1].([]byte))
	st.Slot = Slot(v[2].(uint64))
	st.Fork.setSSZ(v[3])
	st.LatestBlockHeader.setSSZ(v[4])
	st.BlockRoots = bytesToRoots(v[5].([][]byte))
	st.StateRoots = bytesToRoots(v[6].([][]byte))
	st.HistoricalRoots = bytesToRoots(v[7].([][]byte))
	st.Eth1Data.setSSZ(v[8])

	votes := v[9].([]any)
	st.Eth1DataVotes = make([]Eth1Data, len(votes))
	for i := range votes {
		st.Eth1DataVotes[i].setSSZ(votes[i])
	}

	st.Eth1DepositIndex = v[10].(uint64)

	validators := v[11].([]any)
	st.Validators = make([]Validator, len(validators))
	for i := range validators {
		st.Validators[i].setSSZ(validators[i])
	}

	st.Balances = uint64ToGwei(v[12].([]uint64))
	st.RandaoMixes = bytesToRoots(v[13].([][]byte))
	st.Slashings = uint64ToGwei(v[14].([]uint64))
	st.PreviousEpochParticipation = v[15].([]byte)
	st.CurrentEpochParticipation = v[16].([]byte)
	st.JustificationBits = bitfield.Bitvector4(v[17].([]byte))
	st.PreviousJustifiedCheckpoint.setSSZ(v[18])
	st.CurrentJustifiedCheckpoint.setSSZ(v[19])
	st.FinalizedCheckpoint.setSSZ(v[20])
	st.InactivityScores = v[21].([]uint64)
	st.CurrentSyncCommittee.setSSZ(v[22])
	st.NextSyncCommittee.setSSZ(v[23])
	st.LatestExecutionPayloadHeader.setSSZ(v[24])
	st.NextWithdrawalIndex = WithdrawalIndex(v[25].(uint64))
	st.NextWithdrawalValidatorIndex = ValidatorIndex(v[26].(uint64))

	summaries := v[27].([]any)
	st.HistoricalSummaries = make([]HistoricalSummary, len(summaries))
	for i := range summaries {
		st.HistoricalSummaries[i].setSSZ(summaries[i])
	}
}
