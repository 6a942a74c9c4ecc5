// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package beefy

import (
	"github.com/ChainSafe/beefy-stakes/lib/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// LeavesProof is the MMR proof returned by the mmr_generateProof RPC method.
// Leaves and Proof are left SCALE encoded.
type LeavesProof struct {
	BlockHash common.Hash   `json:"blockHash"`
	Leaves    hexutil.Bytes `json:"leaves"`
	Proof     hexutil.Bytes `json:"proof"`
}
