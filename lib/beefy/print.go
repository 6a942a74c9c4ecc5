// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package beefy

import (
	"github.com/qdm12/gotree"
)

func (s StakesInfo) String() string {
	return s.StringNode().String()
}

// StringNode returns a gotree compatible node for String methods.
func (s StakesInfo) StringNode() (stringNode *gotree.Node) {
	stringNode = gotree.New("Stakes info")
	stringNode.AppendNode(authoritySetNode("Current", s.CurrentAuthoritySet, s.CurrentStakes))
	if s.Next == nil {
		stringNode.Appendf("Next authority set: none")
		return stringNode
	}
	stringNode.AppendNode(authoritySetNode("Next", s.Next.AuthoritySet, s.Next.Stakes))
	return stringNode
}

func authoritySetNode(name string, set AuthoritySet, stakes Stakes) (node *gotree.Node) {
	node = gotree.New("%s authority set", name)
	node.Appendf("ID: %d", set.ID)
	node.Appendf("Length: %d", set.Len)
	node.Appendf("Keyset commitment: %s", set.KeysetCommitment)

	stakesNode := node.Appendf("Stakes: total %d", stakes.Total())
	for i, entry := range stakes {
		stakesNode.Appendf("%d: %s stake %d", i, entry.ID, entry.Stake)
	}
	return node
}
