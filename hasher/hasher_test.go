// Copyright (c) 2026 the beaconsynth authors
// SPDX-License-Identifier: Apache-2.0
// This file is part of the beaconsynth library.

package hasher

import (
	"encoding/hex"
	"testing"
)

func hexRoot(t *testing.T, s string) [32]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 32 {
		t.Fatalf("bad test vector %q", s)
	}
	var r [32]byte
	copy(r[:], b)
	return r
}

func chunkOf(b byte) [32]byte {
	var c [32]byte
	for i := range c {
		c[i] = b
	}
	return c
}

func TestZeroHashes(t *testing.T) {
	if got := GetZeroHash(0); got != ([32]byte{}) {
		t.Errorf("zero hash at depth 0 should be the zero chunk, got %x", got)
	}
	want1 := hexRoot(t, "f5a5fd42d16a20302798ef6ed309979b43003d2320d9f0e8ea9831a92759fb4b")
	if got := GetZeroHash(1); got != want1 {
		t.Errorf("zero hash depth 1 = %x, want %x", got, want1)
	}
	want2 := hexRoot(t, "db56114e00fdd4c1f85c892bf35ac9a89289aaecb1ebd0a96cde606a748b5d71")
	if got := GetZeroHash(2); got != want2 {
		t.Errorf("zero hash depth 2 = %x, want %x", got, want2)
	}

	for level := 0; level <= 8; level++ {
		h := GetZeroHash(level)
		got, ok := GetZeroHashLevel(h[:])
		if !ok || got != level {
			t.Errorf("GetZeroHashLevel(zeroHash[%d]) = %d, %v", level, got, ok)
		}
	}
	nonZero := chunkOf(0x11)
	if _, ok := GetZeroHashLevel(nonZero[:]); ok {
		t.Error("non-zero hash misidentified as a zero subtree")
	}
}

func TestHash2(t *testing.T) {
	want := hexRoot(t, "5189c77d29fe5d546a045ec46986852785fea5c13ac7da9c115ff5fb6edf817c")
	if got := Hash2(chunkOf(0x11), chunkOf(0x22)); got != want {
		t.Errorf("Hash2 = %x, want %x", got, want)
	}
}

func TestHashLayerDoesNotMutateInput(t *testing.T) {
	// An odd layer backed by a larger array must not have the zero pad
	// written into the caller's storage.
	backing := make([][32]byte, 4)
	backing[0], backing[1], backing[2] = chunkOf(1), chunkOf(2), chunkOf(3)
	backing[3] = chunkOf(0xff)

	HashLayer(backing[:3], 0)
	if backing[3] != chunkOf(0xff) {
		t.Errorf("HashLayer padded into the caller's backing array: %x", backing[3])
	}
}

func TestMerkleize(t *testing.T) {
	a, b, c, d := chunkOf(0x11), chunkOf(0x22), chunkOf(0x33), chunkOf(0x44)

	tests := []struct {
		name   string
		chunks [][32]byte
		limit  uint64
		want   string
	}{
		{
			name:   "four full leaves",
			chunks: [][32]byte{a, b, c, d},
			limit:  4,
			want:   "68f40db0ec4c7a3dc1bbe1338ff980b93c9632869b216361bdc034cd5d520db5",
		},
		{
			name:   "three leaves zero padded",
			chunks: [][32]byte{a, b, c},
			limit:  4,
			want:   "8c737b85522a3cf473e681efdaff9abf9f04cff8544691c9770c6e149caa06fc",
		},
		{
			name:   "no limit sizes to count",
			chunks: [][32]byte{a, b, c},
			limit:  0,
			want:   "8c737b85522a3cf473e681efdaff9abf9f04cff8544691c9770c6e149caa06fc",
		},
		{
			name:   "single chunk is its own root",
			chunks: [][32]byte{a},
			limit:  1,
			want:   "1111111111111111111111111111111111111111111111111111111111111111",
		},
		{
			name:   "empty bounded tree is the zero subtree",
			chunks: nil,
			limit:  4,
			want:   "db56114e00fdd4c1f85c892bf35ac9a89289aaecb1ebd0a96cde606a748b5d71",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := hexRoot(t, tt.want)
			if got := Merkleize(tt.chunks, tt.limit); got != want {
				t.Errorf("Merkleize = %x, want %x", got, want)
			}
		})
	}
}

func TestMerkleizeOverLimitPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when chunk count exceeds the limit")
		}
	}()
	Merkleize([][32]byte{{}, {}, {}}, 2)
}

func TestMixInLength(t *testing.T) {
	root := hexRoot(t, "8c737b85522a3cf473e681efdaff9abf9f04cff8544691c9770c6e149caa06fc")
	want := hexRoot(t, "6bad58ba1dda6e25c40bf6cdae8fac18e9f55f8600d8e8c7fab574b4130add9f")
	if got := MixInLength(root, 3); got != want {
		t.Errorf("MixInLength = %x, want %x", got, want)
	}
}
