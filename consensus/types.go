// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

// Package consensus models the Ethereum consensus-layer containers this
// generator emits: the validator registry entities and the Capella/Deneb
// beacon state aggregate. Each container pairs a plain Go struct with a
// preset-parameterized schema; serialization, hash-tree-roots and field
// trees all go through the schema-driven codec.
package consensus

import (
	"encoding/hex"
	"fmt"
	"math"
)

type Slot uint64
type Epoch uint64
type Gwei uint64
type ValidatorIndex uint64
type CommitteeIndex uint64
type WithdrawalIndex uint64

// FarFutureEpoch marks epochs that have not been scheduled.
const FarFutureEpoch = Epoch(math.MaxUint64)

const (
	GweiPerEth                = Gwei(1_000_000_000)
	MaxEffectiveBalance       = 32 * GweiPerEth
	EffectiveBalanceIncrement = GweiPerEth
)

type Root [32]byte
type Version [4]byte
type BLSPubkey [48]byte
type Address [20]byte

func (r Root) String() string {
	return "0x" + hex.EncodeToString(r[:])
}

// RootFromHex parses a 32-byte root from a hex string with or without the 0x
// prefix.
func RootFromHex(s string) (Root, error) {
	var r Root
	if len(s) >= 2 && s[0:2] == "0x" {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return r, fmt.Errorf("parse root: %w", err)
	}
	if len(b) != len(r) {
		return r, fmt.Errorf("parse root: got %d bytes, want %d", len(b), len(r))
	}
	copy(r[:], b)
	return r, nil
}
