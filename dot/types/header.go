// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"
	"math/big"

	"github.com/ChainSafe/beefy-stakes/lib/common"
	"github.com/ChainSafe/beefy-stakes/pkg/scale"
)

// BlockNumber is the number of a block.
type BlockNumber = uint32

// Header is a state block header
type Header struct {
	ParentHash     common.Hash `json:"parentHash"`
	Number         BlockNumber `json:"number"`
	StateRoot      common.Hash `json:"stateRoot"`
	ExtrinsicsRoot common.Hash `json:"extrinsicsRoot"`
	Digest         Digest      `json:"digest"`
}

// NewHeader creates a new block header
func NewHeader(parentHash, stateRoot, extrinsicsRoot common.Hash,
	number BlockNumber, digest Digest) *Header {
	return &Header{
		ParentHash:     parentHash,
		Number:         number,
		StateRoot:      stateRoot,
		ExtrinsicsRoot: extrinsicsRoot,
		Digest:         digest,
	}
}

// NewEmptyHeader returns a new header with all zero values
func NewEmptyHeader() *Header {
	return &Header{
		Digest: Digest{},
	}
}

// Encode SCALE encodes the header. The block number is compact encoded.
func (bh Header) Encode(encoder scale.Encoder) (err error) {
	err = encoder.Encode(bh.ParentHash)
	if err != nil {
		return fmt.Errorf("encoding parent hash: %w", err)
	}

	err = encoder.EncodeUintCompact(*new(big.Int).SetUint64(uint64(bh.Number)))
	if err != nil {
		return fmt.Errorf("encoding number: %w", err)
	}

	err = encoder.Encode(bh.StateRoot)
	if err != nil {
		return fmt.Errorf("encoding state root: %w", err)
	}

	err = encoder.Encode(bh.ExtrinsicsRoot)
	if err != nil {
		return fmt.Errorf("encoding extrinsics root: %w", err)
	}

	err = bh.Digest.Encode(encoder)
	if err != nil {
		return fmt.Errorf("encoding digest: %w", err)
	}
	return nil
}

// Decode decodes a SCALE encoded header into the header.
func (bh *Header) Decode(decoder scale.Decoder) (err error) {
	err = decoder.Decode(&bh.ParentHash)
	if err != nil {
		return fmt.Errorf("decoding parent hash: %w", err)
	}

	number, err := scale.DecodeLength(decoder)
	if err != nil {
		return fmt.Errorf("decoding number: %w", err)
	}
	if number > uint64(^BlockNumber(0)) {
		return fmt.Errorf("decoding number: %d overflows block number", number)
	}
	bh.Number = BlockNumber(number)

	err = decoder.Decode(&bh.StateRoot)
	if err != nil {
		return fmt.Errorf("decoding state root: %w", err)
	}

	err = decoder.Decode(&bh.ExtrinsicsRoot)
	if err != nil {
		return fmt.Errorf("decoding extrinsics root: %w", err)
	}

	err = bh.Digest.Decode(decoder)
	if err != nil {
		return fmt.Errorf("decoding digest: %w", err)
	}
	return nil
}

// Hash returns the blake2b hash of the SCALE encoded header.
// If hashing the header errors, this will panic.
func (bh *Header) Hash() common.Hash {
	return common.MustBlake2bHash(scale.MustMarshal(bh))
}

// String returns the formatted header as a string
func (bh *Header) String() string {
	return fmt.Sprintf("ParentHash=%s Number=%d StateRoot=%s ExtrinsicsRoot=%s Digest=%v",
		bh.ParentHash, bh.Number, bh.StateRoot, bh.ExtrinsicsRoot, bh.Digest)
}
