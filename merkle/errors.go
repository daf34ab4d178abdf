// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package merkle

import "fmt"

// UnknownFieldError reports a proof request for a field name the container
// schema does not declare.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown container field %q", e.Field)
}

// ProofPreconditionError reports a caller-supplied field hash that does not
// match the value the retained tree actually holds for that field. It signals
// caller misuse, not a recoverable verification failure.
type ProofPreconditionError struct {
	Field    string
	Expected [32]byte
	Got      [32]byte
}

func (e *ProofPreconditionError) Error() string {
	return fmt.Sprintf("field %q hash mismatch: tree holds %x, caller supplied %x",
		e.Field, e.Expected, e.Got)
}
