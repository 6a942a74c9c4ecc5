// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package beefy

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/beefy-stakes/dot/types"
	"github.com/ChainSafe/beefy-stakes/lib/common"
	"github.com/ChainSafe/beefy-stakes/pkg/scale"
)

var ErrUnknownConsensusLog = errors.New("unknown consensus log")

// ConsensusLogValue is one of AuthoritiesChange, OnDisabled or MMRRoot.
type ConsensusLogValue interface {
	Index() byte
}

// AuthoritiesChange signals the authority set changes.
type AuthoritiesChange ValidatorSet

// Index returns the variant index of the log
func (AuthoritiesChange) Index() byte { return 1 }

// OnDisabled signals an authority was disabled.
type OnDisabled uint32

// Index returns the variant index of the log
func (OnDisabled) Index() byte { return 2 }

// MMRRoot carries the MMR root of the block.
type MMRRoot common.Hash

// Index returns the variant index of the log
func (MMRRoot) Index() byte { return 3 }

// ConsensusLog is a BEEFY message carried in a consensus digest of a header.
type ConsensusLog struct {
	Value ConsensusLogValue
}

// Encode SCALE encodes the log as an enum.
func (l ConsensusLog) Encode(encoder scale.Encoder) (err error) {
	if l.Value == nil {
		return fmt.Errorf("%w: nil value", ErrUnknownConsensusLog)
	}

	err = encoder.PushByte(l.Value.Index())
	if err != nil {
		return err
	}
	return encoder.Encode(l.Value)
}

// Decode decodes a SCALE encoded log.
func (l *ConsensusLog) Decode(decoder scale.Decoder) (err error) {
	index, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	switch index {
	case AuthoritiesChange{}.Index():
		var value AuthoritiesChange
		err = decoder.Decode(&value)
		l.Value = value
	case OnDisabled(0).Index():
		var value OnDisabled
		err = decoder.Decode(&value)
		l.Value = value
	case MMRRoot{}.Index():
		var value MMRRoot
		err = decoder.Decode(&value)
		l.Value = value
	default:
		return fmt.Errorf("%w: index %d", ErrUnknownConsensusLog, index)
	}
	return err
}

// NewMMRRootDigest returns the consensus digest carrying the given MMR root.
func NewMMRRootDigest(root common.Hash) *types.ConsensusDigest {
	return &types.ConsensusDigest{
		ConsensusEngineID: types.BeefyEngineID,
		Data:              scale.MustMarshal(ConsensusLog{Value: MMRRoot(root)}),
	}
}

// FindMMRRootDigest returns the MMR root of the first BEEFY consensus
// digest of the header carrying one. Digests that do not decode are skipped.
func FindMMRRootDigest(header *types.Header) (root common.Hash, ok bool) {
	for _, message := range header.Digest.ConsensusMessages(types.BeefyEngineID) {
		var log ConsensusLog
		err := scale.Unmarshal(message, &log)
		if err != nil {
			continue
		}

		mmrRoot, isRoot := log.Value.(MMRRoot)
		if isRoot {
			return common.Hash(mmrRoot), true
		}
	}
	return root, false
}
