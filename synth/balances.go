// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

// Package synth fabricates synthetic beacon states: validator populations
// with controllable balance distributions and status segments, the companion
// block header, and the report / manifesto artifacts downstream services
// consume as test fixtures.
package synth

import (
	"fmt"
	"math/rand"

	"github.com/ethsynth/beaconsynth/consensus"
)

// BalanceMode selects how validator balances are generated.
type BalanceMode string

const (
	BalanceModeFixed      BalanceMode = "fixed"
	BalanceModeSequential BalanceMode = "sequential"
	BalanceModeRandom     BalanceMode = "random"
)

const (
	// MilliEth is one thousandth of an ETH, in gwei.
	MilliEth = consensus.Gwei(1_000_000)
	// FixedBalance is the balance every validator gets in fixed mode.
	FixedBalance = 16 * consensus.GweiPerEth
	// SequentialStart is the first balance in sequential mode; subsequent
	// validators step by MilliEth.
	SequentialStart = 1 * consensus.GweiPerEth
)

// ParseBalanceMode validates a mode name from the CLI.
func ParseBalanceMode(s string) (BalanceMode, error) {
	switch BalanceMode(s) {
	case BalanceModeFixed, BalanceModeSequential, BalanceModeRandom:
		return BalanceMode(s), nil
	}
	return "", fmt.Errorf("unknown balance mode %q (want fixed, sequential or random)", s)
}

// source returns a generator yielding one balance per call.
func (m BalanceMode) source(rnd *rand.Rand) (func() consensus.Gwei, error) {
	switch m {
	case BalanceModeFixed:
		return func() consensus.Gwei { return FixedBalance }, nil
	case BalanceModeSequential:
		next := SequentialStart
		return func() consensus.Gwei {
			b := next
			next += MilliEth
			return b
		}, nil
	case BalanceModeRandom:
		return func() consensus.Gwei {
			return consensus.Gwei(1+rnd.Int63n(100)) * consensus.GweiPerEth
		}, nil
	}
	return nil, fmt.Errorf("unknown balance mode %q", m)
}
