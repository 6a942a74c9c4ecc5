// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package relay

import (
	"context"
	"encoding/json"

	"github.com/ChainSafe/beefy-stakes/lib/beefy"
	"github.com/ChainSafe/beefy-stakes/lib/common"
)

// JustificationSubscription yields the raw JSON results of the
// justification notifications streamed by a node.
type JustificationSubscription interface {
	Next(ctx context.Context) (notification json.RawMessage, err error)
	Unsubscribe()
}

// Client is the node API used by the relayer.
type Client interface {
	SubscribeJustifications(ctx context.Context) (JustificationSubscription, error)
	// BestBlockNumber returns the number of the best block of the node.
	BestBlockNumber(ctx context.Context) (number uint32, err error)
	// BlockHash returns the hash of the block with the given number,
	// or nil if the node does not know it.
	BlockHash(ctx context.Context, number uint32) (hash *common.Hash, err error)
	GenerateProof(ctx context.Context, blockNumbers []uint32, bestKnownBlockNumber *uint32,
		atBlockHash *common.Hash) (proof beefy.LeavesProof, err error)
}
