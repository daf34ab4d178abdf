// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package ssz

import "fmt"

// EncodingError reports a value that violates its schema's size or shape
// bounds during serialization. It wraps one of the sszutils sentinel errors.
type EncodingError struct {
	Path string // dotted field path where the violation occurred, "" for the root value
	Err  error
}

func (e *EncodingError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("ssz encode: %v", e.Err)
	}
	return fmt.Sprintf("ssz encode %s: %v", e.Path, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// DecodingError reports malformed or truncated input, an inconsistent offset
// table, or a bound violation encountered while reading.
type DecodingError struct {
	Path string
	Err  error
}

func (e *DecodingError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("ssz decode: %v", e.Err)
	}
	return fmt.Sprintf("ssz decode %s: %v", e.Path, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }
