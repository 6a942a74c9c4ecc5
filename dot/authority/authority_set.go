// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package authority

import (
	"encoding/binary"

	"github.com/ChainSafe/beefy-stakes/lib/beefy"
	"github.com/ChainSafe/beefy-stakes/lib/merkle"
)

// MerkleLeaf returns the merkle leaf of an authority id, its 33 byte
// compressed public key.
func MerkleLeaf(id beefy.AuthorityID) []byte {
	leaf := make([]byte, len(id), len(id)+8)
	copy(leaf, id[:])
	return leaf
}

// StakeLeaf returns the merkle leaf of a stake entry: the authority
// merkle leaf followed by the little endian stake.
func StakeLeaf(entry beefy.StakeEntry) []byte {
	leaf := MerkleLeaf(entry.ID)
	return binary.LittleEndian.AppendUint64(leaf, uint64(entry.Stake))
}

// ComputeAuthoritySet returns the authority set for the generation id and
// stakes. The keyset commitment is the keccak binary merkle root of the
// stake leaves, in the order of the stakes.
func ComputeAuthoritySet(id beefy.ValidatorSetID, stakes beefy.Stakes) beefy.AuthoritySet {
	leaves := make([][]byte, len(stakes))
	for i, entry := range stakes {
		leaves[i] = StakeLeaf(entry)
	}

	return beefy.AuthoritySet{
		ID:               id,
		Len:              uint32(len(stakes)),
		KeysetCommitment: merkle.Root(leaves),
	}
}
