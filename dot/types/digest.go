// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/beefy-stakes/pkg/scale"
)

// ErrUnknownDigestItemType is returned when decoding a digest item with an unknown type byte.
var ErrUnknownDigestItemType = errors.New("unknown digest item type")

// ConsensusEngineID is a 4-character identifier of the consensus engine that produced the digest.
type ConsensusEngineID [4]byte

// NewConsensusEngineID casts a byte array to ConsensusEngineID
// if the input is longer than 4 bytes, it takes the first 4 bytes
func NewConsensusEngineID(in []byte) (res ConsensusEngineID) {
	copy(res[:], in)
	return res
}

// ToBytes turns ConsensusEngineID to a byte array
func (h ConsensusEngineID) ToBytes() []byte {
	b := [4]byte(h)
	return b[:]
}

func (h ConsensusEngineID) String() string {
	return string(h[:])
}

// BabeEngineID is the hard-coded babe ID
var BabeEngineID = ConsensusEngineID{'B', 'A', 'B', 'E'}

// GrandpaEngineID is the hard-coded grandpa ID
var GrandpaEngineID = ConsensusEngineID{'F', 'R', 'N', 'K'}

// BeefyEngineID is the hard-coded beefy ID
var BeefyEngineID = ConsensusEngineID{'B', 'E', 'E', 'F'}

const (
	// OtherDigestType is the byte representation of OtherDigest
	OtherDigestType = byte(0)
	// ConsensusDigestType is the byte representation of ConsensusDigest
	ConsensusDigestType = byte(4)
	// SealDigestType is the byte representation of SealDigest
	SealDigestType = byte(5)
	// PreRuntimeDigestType is the byte representation of PreRuntimeDigest
	PreRuntimeDigestType = byte(6)
	// RuntimeEnvironmentUpdatedType is the byte representation of RuntimeEnvironmentUpdated
	RuntimeEnvironmentUpdatedType = byte(8)
)

// DigestItem can be of one of the digest item types found in a Substrate header.
// see https://github.com/paritytech/substrate/blob/polkadot-v0.9.43/primitives/runtime/src/generic/digest.rs
type DigestItem interface {
	String() string
	Type() byte
}

// Digest represents the block digest. It consists of digest items.
type Digest []DigestItem

// NewDigest returns a new Digest from the given DigestItems
func NewDigest(items ...DigestItem) Digest {
	return items
}

// Encode SCALE encodes the digest, each item being prefixed with its type byte.
func (d Digest) Encode(encoder scale.Encoder) (err error) {
	err = scale.EncodeLength(encoder, len(d))
	if err != nil {
		return fmt.Errorf("encoding digest length: %w", err)
	}

	for i, item := range d {
		err = encoder.PushByte(item.Type())
		if err != nil {
			return fmt.Errorf("encoding type of digest item %d: %w", i, err)
		}

		switch item := item.(type) {
		case *OtherDigest:
			err = encoder.Encode(item.Data)
		case *RuntimeEnvironmentUpdated:
		default:
			err = encodeEngineItem(encoder, item)
		}
		if err != nil {
			return fmt.Errorf("encoding digest item %d: %w", i, err)
		}
	}
	return nil
}

func encodeEngineItem(encoder scale.Encoder, item DigestItem) (err error) {
	var engineID ConsensusEngineID
	var data []byte
	switch item := item.(type) {
	case *PreRuntimeDigest:
		engineID, data = item.ConsensusEngineID, item.Data
	case *ConsensusDigest:
		engineID, data = item.ConsensusEngineID, item.Data
	case *SealDigest:
		engineID, data = item.ConsensusEngineID, item.Data
	default:
		return fmt.Errorf("%w: %T", ErrUnknownDigestItemType, item)
	}

	err = encoder.Write(engineID[:])
	if err != nil {
		return err
	}
	return encoder.Encode(data)
}

// Decode decodes a SCALE encoded digest into the digest.
func (d *Digest) Decode(decoder scale.Decoder) (err error) {
	length, err := scale.DecodeLength(decoder)
	if err != nil {
		return fmt.Errorf("decoding digest length: %w", err)
	}

	digest := Digest{}
	for i := uint64(0); i < length; i++ {
		item, err := decodeDigestItem(decoder)
		if err != nil {
			return fmt.Errorf("decoding digest item %d: %w", i, err)
		}
		digest = append(digest, item)
	}

	*d = digest
	return nil
}

func decodeDigestItem(decoder scale.Decoder) (item DigestItem, err error) {
	typ, err := decoder.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch typ {
	case OtherDigestType:
		other := new(OtherDigest)
		other.Data, err = scale.DecodeBytes(decoder)
		return other, err
	case RuntimeEnvironmentUpdatedType:
		return new(RuntimeEnvironmentUpdated), nil
	case PreRuntimeDigestType, ConsensusDigestType, SealDigestType:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownDigestItemType, typ)
	}

	var engineID ConsensusEngineID
	err = decoder.Read(engineID[:])
	if err != nil {
		return nil, fmt.Errorf("reading consensus engine id: %w", err)
	}

	data, err := scale.DecodeBytes(decoder)
	if err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}

	switch typ {
	case PreRuntimeDigestType:
		return &PreRuntimeDigest{ConsensusEngineID: engineID, Data: data}, nil
	case ConsensusDigestType:
		return &ConsensusDigest{ConsensusEngineID: engineID, Data: data}, nil
	default:
		return &SealDigest{ConsensusEngineID: engineID, Data: data}, nil
	}
}

// ConsensusMessages returns the data of all the consensus digests
// emitted for the given engine, in digest order.
func (d Digest) ConsensusMessages(engineID ConsensusEngineID) (messages [][]byte) {
	for _, item := range d {
		consensus, ok := item.(*ConsensusDigest)
		if !ok || consensus.ConsensusEngineID != engineID {
			continue
		}
		messages = append(messages, consensus.Data)
	}
	return messages
}

// PreRuntimeDigest contains messages from the consensus engine to the runtime.
type PreRuntimeDigest struct {
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

// NewBABEPreRuntimeDigest returns a PreRuntimeDigest with the BABE consensus ID
func NewBABEPreRuntimeDigest(data []byte) *PreRuntimeDigest {
	return &PreRuntimeDigest{
		ConsensusEngineID: BabeEngineID,
		Data:              data,
	}
}

// String returns the digest as a string
func (d *PreRuntimeDigest) String() string {
	return fmt.Sprintf("PreRuntimeDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID, d.Data)
}

// Type will return PreRuntimeDigestType
func (d *PreRuntimeDigest) Type() byte {
	return PreRuntimeDigestType
}

// ConsensusDigest contains messages from the runtime to the consensus engine.
type ConsensusDigest struct {
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

// String returns the digest as a string
func (d *ConsensusDigest) String() string {
	return fmt.Sprintf("ConsensusDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID, d.Data)
}

// Type returns the ConsensusDigest type
func (d *ConsensusDigest) Type() byte {
	return ConsensusDigestType
}

// SealDigest contains the seal or signature. This is only used by native code.
type SealDigest struct {
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

// String returns the digest as a string
func (d *SealDigest) String() string {
	return fmt.Sprintf("SealDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID, d.Data)
}

// Type will return SealDigest type
func (d *SealDigest) Type() byte {
	return SealDigestType
}

// OtherDigest is an opaque digest item.
type OtherDigest struct {
	Data []byte
}

func (d *OtherDigest) String() string {
	return fmt.Sprintf("OtherDigest Data=0x%x", d.Data)
}

// Type returns the OtherDigest type
func (d *OtherDigest) Type() byte {
	return OtherDigestType
}

// RuntimeEnvironmentUpdated signals the runtime code or heap pages changed.
type RuntimeEnvironmentUpdated struct{}

func (RuntimeEnvironmentUpdated) String() string {
	return "RuntimeEnvironmentUpdated"
}

// Type returns the RuntimeEnvironmentUpdated type
func (RuntimeEnvironmentUpdated) Type() byte {
	return RuntimeEnvironmentUpdatedType
}
