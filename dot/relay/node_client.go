// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ChainSafe/beefy-stakes/lib/beefy"
	"github.com/ChainSafe/beefy-stakes/lib/common"
	gethrpc "github.com/centrifuge/go-substrate-rpc-client/v4/gethrpc"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	ErrJSONDecode        = errors.New("cannot decode json")
	ErrSubscriptionEnded = errors.New("justification subscription ended")
)

const (
	beefyNamespace                   = "beefy"
	subscribeJustificationsSuffix    = "subscribeJustifications"
	unsubscribeJustificationsSuffix  = "unsubscribeJustifications"
	justificationsNotificationSuffix = "justifications"

	subscribeJustificationsMethod   = beefyNamespace + "_" + subscribeJustificationsSuffix
	unsubscribeJustificationsMethod = beefyNamespace + "_" + unsubscribeJustificationsSuffix
	getHeaderMethod                 = "chain_getHeader"
	getBlockHashMethod              = "chain_getBlockHash"
	generateProofMethod             = "mmr_generateProof"
)

const notificationsBufferSize = 16

// NodeClient implements Client over the JSON-RPC API of a node.
type NodeClient struct {
	rpc *gethrpc.Client
}

var _ Client = (*NodeClient)(nil)

// Dial connects to the RPC endpoint of a node, eg. ws://127.0.0.1:9944.
// Subscriptions need a websocket endpoint.
func Dial(ctx context.Context, endpoint string) (*NodeClient, error) {
	forwardRPCLogs()

	client, err := gethrpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", endpoint, err)
	}
	return NewNodeClient(client), nil
}

// NewNodeClient returns a node client using the given RPC client.
func NewNodeClient(client *gethrpc.Client) *NodeClient {
	return &NodeClient{rpc: client}
}

// Close closes the connection to the node, ending its subscriptions.
func (n *NodeClient) Close() {
	n.rpc.Close()
}

// SubscribeJustifications subscribes to the BEEFY justifications of the node.
func (n *NodeClient) SubscribeJustifications(ctx context.Context) (JustificationSubscription, error) {
	notifications := make(chan json.RawMessage, notificationsBufferSize)
	subscription, err := n.rpc.Subscribe(ctx, beefyNamespace, subscribeJustificationsSuffix,
		unsubscribeJustificationsSuffix, justificationsNotificationSuffix, notifications)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", subscribeJustificationsMethod, err)
	}

	return &justificationSubscription{
		subscription:  subscription,
		notifications: notifications,
	}, nil
}

type justificationSubscription struct {
	subscription  *gethrpc.ClientSubscription
	notifications <-chan json.RawMessage
}

// Next returns the result of the next notification as received, leaving
// its decoding to the caller.
func (j *justificationSubscription) Next(ctx context.Context) (notification json.RawMessage, err error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case notification = <-j.notifications:
		return notification, nil
	case err, ok := <-j.subscription.Err():
		if !ok || err == nil {
			return nil, ErrSubscriptionEnded
		}
		return nil, fmt.Errorf("%w: %w", ErrSubscriptionEnded, err)
	}
}

func (j *justificationSubscription) Unsubscribe() {
	j.subscription.Unsubscribe()
}

type headerNumber struct {
	Number hexutil.Uint64 `json:"number"`
}

// BestBlockNumber returns the number of the best block header.
func (n *NodeClient) BestBlockNumber(ctx context.Context) (number uint32, err error) {
	var header headerNumber
	err = n.call(ctx, &header, getHeaderMethod)
	if err != nil {
		return 0, err
	}

	if uint64(header.Number) > uint64(^uint32(0)) {
		return 0, fmt.Errorf("best block number %d overflows uint32", header.Number)
	}
	return uint32(header.Number), nil
}

// BlockHash returns the hash of the block with the given number,
// or nil if the node has no such block.
func (n *NodeClient) BlockHash(ctx context.Context, number uint32) (hash *common.Hash, err error) {
	err = n.call(ctx, &hash, getBlockHashMethod, number)
	if err != nil {
		return nil, err
	}
	return hash, nil
}

// GenerateProof requests the MMR proof of the leaves of the given block numbers.
// Nil parameters are sent as null.
func (n *NodeClient) GenerateProof(ctx context.Context, blockNumbers []uint32,
	bestKnownBlockNumber *uint32, atBlockHash *common.Hash) (proof beefy.LeavesProof, err error) {
	err = n.call(ctx, &proof, generateProofMethod, blockNumbers, bestKnownBlockNumber, atBlockHash)
	if err != nil {
		return proof, err
	}
	return proof, nil
}

// call runs the RPC call and decodes its result, reporting a
// malformed result as ErrJSONDecode.
func (n *NodeClient) call(ctx context.Context, result interface{},
	method string, params ...interface{}) (err error) {
	var raw json.RawMessage
	err = n.rpc.CallContext(ctx, &raw, method, params...)
	if err != nil {
		return fmt.Errorf("calling %s: %w", method, err)
	}

	err = json.Unmarshal(raw, result)
	if err != nil {
		return fmt.Errorf("%w: %s result %s: %s", ErrJSONDecode, method, raw, err)
	}
	return nil
}
