// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package preset

import (
	"fmt"

	"github.com/casbin/govaluate"
)

// Resolve evaluates an expression over the preset's named values and returns
// the result as a uint64, rounding up on fractional results. Derived schema
// limits reference preset names, e.g.
// "EPOCHS_PER_ETH1_VOTING_PERIOD * SLOTS_PER_EPOCH".
func (p *Preset) Resolve(expr string) (uint64, error) {
	expression, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return 0, fmt.Errorf("parse preset expression %q: %w", expr, err)
	}

	result, err := expression.Evaluate(p.Values())
	if err != nil {
		return 0, fmt.Errorf("evaluate preset expression %q: %w", expr, err)
	}
	value, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("preset expression %q is not numeric", expr)
	}

	resolved := uint64(value)
	if float64(resolved) < value {
		// round up, partial units cannot be serialized
		resolved++
	}
	return resolved, nil
}

// Eth1DataVotesLimit returns the bound of the eth1_data_votes list.
func (p *Preset) Eth1DataVotesLimit() (uint64, error) {
	return p.Resolve("EPOCHS_PER_ETH1_VOTING_PERIOD * SLOTS_PER_EPOCH")
}
