// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package committee

import (
	"fmt"

	"github.com/ChainSafe/beefy-stakes/lib/beefy"
	"github.com/ChainSafe/beefy-stakes/lib/common"
	"github.com/ChainSafe/beefy-stakes/lib/crypto/secp256k1"
)

// CrossChainPublic is the ECDSA key a committee member is registered with.
type CrossChainPublic [secp256k1.PublicKeyLength]byte

// AuthorityID converts the cross chain key to the BEEFY authority id
// representation. Both are compressed secp256k1 keys.
func (c CrossChainPublic) AuthorityID() beefy.AuthorityID {
	return beefy.AuthorityID(c)
}

func (c CrossChainPublic) String() string {
	return common.BytesToHex(c[:])
}

// Member is a committee member, either Permissioned or Registered.
type Member interface {
	ID() CrossChainPublic
	isMember()
}

// Permissioned is a committee member assigned by the chain governance.
type Permissioned struct {
	Key CrossChainPublic
}

// ID returns the cross chain key of the member.
func (p Permissioned) ID() CrossChainPublic { return p.Key }

func (Permissioned) isMember() {}

func (p Permissioned) String() string {
	return fmt.Sprintf("permissioned(%s)", p.Key)
}

// Registered is a committee member elected with its stake pool delegation.
type Registered struct {
	Key             CrossChainPublic
	StakePoolKey    [32]byte
	StakeDelegation uint64
}

// ID returns the cross chain key of the member.
func (r Registered) ID() CrossChainPublic { return r.Key }

func (Registered) isMember() {}

func (r Registered) String() string {
	return fmt.Sprintf("registered(%s, delegation=%d)", r.Key, r.StakeDelegation)
}

// Info is the committee of an epoch.
type Info struct {
	Epoch   uint64
	Members []Member
}
