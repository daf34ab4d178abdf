// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package synth

import (
	"sort"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/ethsynth/beaconsynth/consensus"
)

func testCreator(t *testing.T) *Creator {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return NewCreator(consensus.DefaultSchemas(), log)
}

func defaultOptions() Options {
	return Options{
		Slot:            123456,
		TotalValidators: 128,
		LidoValidators:  32,
		Balances:        BalanceModeSequential,
		Seed:            1,
	}
}

func TestParseBalanceMode(t *testing.T) {
	for _, s := range []string{"fixed", "sequential", "random"} {
		mode, err := ParseBalanceMode(s)
		require.NoError(t, err)
		require.Equal(t, BalanceMode(s), mode)
	}
	_, err := ParseBalanceMode("gaussian")
	require.Error(t, err)
}

func TestOptionsValidation(t *testing.T) {
	creator := testCreator(t)

	opts := defaultOptions()
	opts.LidoValidators = opts.TotalValidators + 1
	_, err := creator.CreateState(opts)
	require.Error(t, err)

	opts = defaultOptions()
	opts.PendingValidators = 20
	opts.ExitedValidators = 20
	_, err = creator.CreateState(opts)
	require.Error(t, err)
}

func TestCreateStatePopulation(t *testing.T) {
	creator := testCreator(t)
	opts := defaultOptions()
	opts.PendingValidators = 4
	opts.ExitedValidators = 2

	st, err := creator.CreateState(opts)
	require.NoError(t, err)

	p := creator.schemas.Preset()
	require.Equal(t, consensus.Slot(123456), st.Slot)
	require.Len(t, st.Validators, 128)
	require.Len(t, st.Balances, 128)
	require.Len(t, st.PreviousEpochParticipation, 128)
	require.Len(t, st.InactivityScores, 128)
	require.Len(t, st.BlockRoots, int(p.SlotsPerHistoricalRoot))
	require.Len(t, st.RandaoMixes, int(p.EpochsPerHistoricalVector))
	require.Len(t, st.CurrentSyncCommittee.Pubkeys, int(p.SyncCommitteeSize))
	require.Equal(t, uint64(128), st.Eth1DepositIndex)

	// ungrouped layout: the Lido segment comes first
	for i := 0; i < 32; i++ {
		require.Equal(t, LidoWithdrawalCredentials, st.Validators[i].WithdrawalCredentials, "validator %d", i)
	}
	for i := 32; i < 128; i++ {
		require.Equal(t, OtherWithdrawalCredentials, st.Validators[i].WithdrawalCredentials, "validator %d", i)
	}

	// sequential balances start at 1 ETH and step by one milli-ETH
	require.Equal(t, SequentialStart, st.Balances[0])
	require.Equal(t, SequentialStart+MilliEth, st.Balances[1])

	// pending validators sit after the active Lido segment with no balance
	epoch := consensus.Epoch(p.Epoch(uint64(opts.Slot)))
	for i := 26; i < 30; i++ {
		v := st.Validators[i]
		require.Greater(t, v.ActivationEligibilityEpoch, epoch, "validator %d should await its deposit", i)
		require.Equal(t, consensus.Gwei(0), st.Balances[i])
	}
	for i := 30; i < 32; i++ {
		require.LessOrEqual(t, st.Validators[i].ExitEpoch, epoch, "validator %d should be exited", i)
	}
}

func TestBalanceModes(t *testing.T) {
	creator := testCreator(t)

	t.Run("fixed", func(t *testing.T) {
		opts := defaultOptions()
		opts.Balances = BalanceModeFixed
		st, err := creator.CreateState(opts)
		require.NoError(t, err)
		for _, b := range st.Balances {
			require.Equal(t, FixedBalance, b)
		}
	})

	t.Run("random is bounded and seeded", func(t *testing.T) {
		opts := defaultOptions()
		opts.Balances = BalanceModeRandom
		st1, err := creator.CreateState(opts)
		require.NoError(t, err)
		for _, b := range st1.Balances {
			require.GreaterOrEqual(t, b, 1*consensus.GweiPerEth)
			require.LessOrEqual(t, b, 100*consensus.GweiPerEth)
			require.Zero(t, b%consensus.GweiPerEth, "balances are whole ETH")
		}

		st2, err := creator.CreateState(opts)
		require.NoError(t, err)
		require.Equal(t, st1.Balances, st2.Balances, "same seed must reproduce the population")

		opts.Seed = 2
		st3, err := creator.CreateState(opts)
		require.NoError(t, err)
		require.NotEqual(t, st1.Balances, st3.Balances)
	})
}

func TestShufflePreservesTotals(t *testing.T) {
	creator := testCreator(t)

	grouped, err := creator.CreateState(defaultOptions())
	require.NoError(t, err)

	opts := defaultOptions()
	opts.Shuffle = true
	shuffled, err := creator.CreateState(opts)
	require.NoError(t, err)

	r1 := creator.BuildReport(grouped, consensus.Root{}, consensus.Root{})
	r2 := creator.BuildReport(shuffled, consensus.Root{}, consensus.Root{})
	require.Equal(t, r1.TotalBalance, r2.TotalBalance)
	require.Equal(t, r1.LidoTotalValidators, r2.LidoTotalValidators)
	require.Equal(t, r1.LidoClBalance, r2.LidoClBalance)

	b1 := append([]consensus.Gwei(nil), grouped.Balances...)
	b2 := append([]consensus.Gwei(nil), shuffled.Balances...)
	sort.Slice(b1, func(i, j int) bool { return b1[i] < b1[j] })
	sort.Slice(b2, func(i, j int) bool { return b2[i] < b2[j] })
	require.Equal(t, b1, b2, "shuffling must not change the balance multiset")
	require.NotEqual(t, grouped.Validators, shuffled.Validators)
}

func TestBuildReport(t *testing.T) {
	creator := testCreator(t)
	opts := defaultOptions()
	opts.PendingValidators = 4
	opts.ExitedValidators = 2

	st, err := creator.CreateState(opts)
	require.NoError(t, err)
	r := creator.BuildReport(st, consensus.Root{}, consensus.Root{})

	require.Equal(t, uint64(123456), r.Slot)
	require.Equal(t, uint64(3858), r.Epoch)
	require.Equal(t, uint64(128), r.TotalValidators)
	require.Equal(t, uint64(32), r.LidoTotalValidators)
	require.Equal(t, uint64(28), r.LidoDepositedValidators)
	require.Equal(t, uint64(4), r.LidoFutureDepositValidators)
	require.Equal(t, uint64(2), r.LidoExitedValidators)
	require.Equal(t, LidoWithdrawalCredentials.String(), r.LidoWithdrawalCredentials)

	var total, lido consensus.Gwei
	for i := range st.Validators {
		total += st.Balances[i]
		if st.Validators[i].WithdrawalCredentials == LidoWithdrawalCredentials {
			lido += st.Balances[i]
		}
	}
	require.Equal(t, uint64(total), r.TotalBalance)
	require.Equal(t, uint64(lido), r.LidoClBalance)
}

func TestBlockHeaderCommitsToState(t *testing.T) {
	creator := testCreator(t)
	st, err := creator.CreateState(defaultOptions())
	require.NoError(t, err)

	header, err := creator.BlockHeader(st)
	require.NoError(t, err)
	require.Equal(t, st.Slot, header.Slot)

	stateRoot, err := creator.schemas.StateRoot(st)
	require.NoError(t, err)
	require.Equal(t, consensus.Root(stateRoot), header.StateRoot)
}

func TestExtendState(t *testing.T) {
	creator := testCreator(t)

	base, err := creator.CreateState(defaultOptions())
	require.NoError(t, err)
	baseValidators := append([]consensus.Validator(nil), base.Validators...)
	baseRoot, err := creator.schemas.StateRoot(base)
	require.NoError(t, err)

	ext := Options{
		Slot:            200000,
		TotalValidators: 64,
		LidoValidators:  16,
		Balances:        BalanceModeFixed,
		Seed:            7,
	}
	require.NoError(t, creator.ExtendState(base, ext))

	require.Equal(t, consensus.Slot(200000), base.Slot)
	require.Len(t, base.Validators, 192)
	require.Len(t, base.Balances, 192)
	require.Len(t, base.InactivityScores, 192)
	require.Equal(t, uint64(192), base.Eth1DepositIndex)
	require.Equal(t, baseValidators, base.Validators[:128], "extension must keep the existing registry as a prefix")
	for i := 128; i < 192; i++ {
		require.Equal(t, FixedBalance, base.Balances[i])
	}

	// the extended state commits to a fresh root, distinct from both the
	// base alone and the appended batch alone
	extendedRoot, err := creator.schemas.StateRoot(base)
	require.NoError(t, err)
	sole, err := creator.CreateState(ext)
	require.NoError(t, err)
	soleRoot, err := creator.schemas.StateRoot(sole)
	require.NoError(t, err)
	require.NotEqual(t, baseRoot, extendedRoot)
	require.NotEqual(t, soleRoot, extendedRoot)
	require.NotEqual(t, baseRoot, soleRoot)

	// extending backwards is refused
	ext.Slot = 100
	require.Error(t, creator.ExtendState(base, ext))
}

func TestManifesto(t *testing.T) {
	creator := testCreator(t)
	st, err := creator.CreateState(defaultOptions())
	require.NoError(t, err)
	header, err := creator.BlockHeader(st)
	require.NoError(t, err)

	m, err := creator.BuildManifesto(st, header)
	require.NoError(t, err)

	stateRoot, err := creator.schemas.StateRoot(st)
	require.NoError(t, err)
	require.Equal(t, consensus.Root(stateRoot).String(), m.BeaconState.Hash)
	require.Equal(t, m.BeaconState.Hash, m.Report.BeaconStateHash)
	require.Len(t, m.BeaconState.Parts, 28)
	require.Contains(t, m.BeaconState.Parts, "validators")
	require.Contains(t, m.BeaconState.Parts, "balances")
	require.Len(t, m.BeaconBlockHeader.Parts, 5)
	// a 32-byte field is its own chunk, so its part equals the root itself
	require.Equal(t, header.StateRoot.String(), m.BeaconBlockHeader.Parts["state_root"])
}
