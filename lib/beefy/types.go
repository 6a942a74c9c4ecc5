// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package beefy

import (
	"fmt"

	"github.com/ChainSafe/beefy-stakes/lib/common"
	"github.com/ChainSafe/beefy-stakes/lib/crypto/secp256k1"
	"github.com/ChainSafe/beefy-stakes/pkg/scale"
)

// AuthorityID is the ECDSA public key of a BEEFY authority.
type AuthorityID = secp256k1.PublicKey

// ValidatorSetID is the generation id of an authority set.
type ValidatorSetID = uint64

// Stake is the weight of an authority. It is 1 for authorities backed by
// the committee and 0 otherwise.
type Stake uint64

// StakeEntry pairs an authority with its stake.
type StakeEntry struct {
	ID    AuthorityID
	Stake Stake
}

func (s StakeEntry) String() string {
	return fmt.Sprintf("%s=%d", s.ID, s.Stake)
}

// Stakes is the ordered list of authorities with their stake.
// Its order is the order of the validator set it was computed from.
type Stakes []StakeEntry

// IDs returns the authority ids in order.
func (s Stakes) IDs() (ids []AuthorityID) {
	ids = make([]AuthorityID, len(s))
	for i, entry := range s {
		ids[i] = entry.ID
	}
	return ids
}

// Total returns the sum of all the stakes.
func (s Stakes) Total() (total uint64) {
	for _, entry := range s {
		total += uint64(entry.Stake)
	}
	return total
}

// Decode decodes a SCALE encoded vector of (authority, stake) tuples.
func (s *Stakes) Decode(decoder scale.Decoder) (err error) {
	*s, err = scale.DecodeSlice[StakeEntry](decoder)
	return err
}

// AuthoritySet describes an authority set: its generation id,
// its length and the merkle root of its (authority, stake) leaves.
type AuthoritySet struct {
	ID               ValidatorSetID
	Len              uint32
	KeysetCommitment common.Hash
}

// IsUninitialised returns true if the keyset commitment is the zero hash,
// which is how an authority set that was never computed is stored.
func (a AuthoritySet) IsUninitialised() bool {
	return a.KeysetCommitment.IsEmpty()
}

func (a AuthoritySet) String() string {
	return fmt.Sprintf("id=%d len=%d commitment=%s", a.ID, a.Len, a.KeysetCommitment)
}

// ValidatorSet is a list of BEEFY authorities with the generation id.
type ValidatorSet struct {
	Validators []AuthorityID
	ID         ValidatorSetID
}
