// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package merkle implements the binary merkle tree used by Substrate to
// commit to BEEFY authority sets. Leaves are hashed before being merkelized,
// inner nodes are the hash of the concatenation of their two children and a
// node without sibling is promoted to the upper layer unchanged.
package merkle

import (
	"github.com/ChainSafe/beefy-stakes/lib/common"
)

// Hasher hashes arbitrary data into a 32 bytes hash.
type Hasher func(data []byte) common.Hash

// Keccak256 is the hasher used by BEEFY keyset commitments.
var Keccak256 Hasher = common.Keccak256

// Root returns the merkle root of the leaves using keccak256.
func Root(leaves [][]byte) common.Hash {
	return RootWithHasher(leaves, Keccak256)
}

// RootWithHasher returns the merkle root of the leaves using the given hasher.
// The root of no leaves is the empty hash.
func RootWithHasher(leaves [][]byte, hasher Hasher) common.Hash {
	if len(leaves) == 0 {
		return common.EmptyHash
	}

	layer := make([]common.Hash, len(leaves))
	for i, leaf := range leaves {
		layer[i] = hasher(leaf)
	}

	for len(layer) > 1 {
		layer = nextLayer(layer, hasher)
	}
	return layer[0]
}

func nextLayer(layer []common.Hash, hasher Hasher) (next []common.Hash) {
	next = make([]common.Hash, 0, (len(layer)+1)/2)
	combined := make([]byte, 2*common.HashLength)
	for i := 0; i < len(layer); i += 2 {
		if i+1 == len(layer) {
			next = append(next, layer[i])
			continue
		}
		copy(combined[:common.HashLength], layer[i][:])
		copy(combined[common.HashLength:], layer[i+1][:])
		next = append(next, hasher(combined))
	}
	return next
}
