// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package beefy

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/beefy-stakes/lib/crypto/secp256k1"
	"github.com/ChainSafe/beefy-stakes/pkg/scale"
)

var (
	ErrUnknownProofVersion  = errors.New("unknown finality proof version")
	ErrSignaturesMismatch   = errors.New("signatures do not match the validator set")
	ErrInvalidSignatureBits = errors.New("invalid signatures bitfield")
)

// Commitment is what BEEFY authorities sign: a payload for a block
// number, signed by the given validator set.
type Commitment struct {
	Payload        Payload
	BlockNumber    uint32
	ValidatorSetID ValidatorSetID
}

// SignedCommitment is a commitment with the signatures of the authorities.
// A nil signature means the authority at that index did not sign.
type SignedCommitment struct {
	Commitment Commitment
	Signatures []*secp256k1.Signature
}

// NoOfSignatures returns the number of authorities that signed.
func (s SignedCommitment) NoOfSignatures() (count int) {
	for _, signature := range s.Signatures {
		if signature != nil {
			count++
		}
	}
	return count
}

type compactSignedCommitment struct {
	Commitment        Commitment
	SignaturesFrom    []byte
	ValidatorSetLen   uint32
	SignaturesCompact []secp256k1.Signature
}

// Encode SCALE encodes the signed commitment in its compact form, where
// the present signatures are flagged in a most significant bit first bitfield.
func (s SignedCommitment) Encode(encoder scale.Encoder) error {
	compact := compactSignedCommitment{
		Commitment:        s.Commitment,
		SignaturesFrom:    make([]byte, (len(s.Signatures)+7)/8),
		ValidatorSetLen:   uint32(len(s.Signatures)),
		SignaturesCompact: []secp256k1.Signature{},
	}

	for i, signature := range s.Signatures {
		if signature == nil {
			continue
		}
		compact.SignaturesFrom[i/8] |= 1 << (7 - uint(i%8))
		compact.SignaturesCompact = append(compact.SignaturesCompact, *signature)
	}

	return encoder.Encode(compact)
}

// Decode decodes a SCALE encoded compact signed commitment. The number of
// validators is bounded by the bitfield length and the number of signatures
// by the number of validators.
func (s *SignedCommitment) Decode(decoder scale.Decoder) (err error) {
	var compact compactSignedCommitment
	err = decoder.Decode(&compact.Commitment)
	if err != nil {
		return fmt.Errorf("decoding commitment: %w", err)
	}

	compact.SignaturesFrom, err = scale.DecodeBytes(decoder)
	if err != nil {
		return fmt.Errorf("decoding signatures bitfield: %w", err)
	}

	err = decoder.Decode(&compact.ValidatorSetLen)
	if err != nil {
		return fmt.Errorf("decoding validator set length: %w", err)
	}

	length := int(compact.ValidatorSetLen)
	if len(compact.SignaturesFrom)*8 < length {
		return fmt.Errorf("%w: %d bytes for %d validators",
			ErrInvalidSignatureBits, len(compact.SignaturesFrom), length)
	}

	count, err := scale.DecodeLength(decoder)
	if err != nil {
		return fmt.Errorf("decoding signatures count: %w", err)
	} else if count > uint64(compact.ValidatorSetLen) {
		return fmt.Errorf("%w: %d signatures for %d validators",
			ErrSignaturesMismatch, count, compact.ValidatorSetLen)
	}

	for i := uint64(0); i < count; i++ {
		var signature secp256k1.Signature
		err = decoder.Read(signature[:])
		if err != nil {
			return fmt.Errorf("reading signature %d of %d: %w", i, count, err)
		}
		compact.SignaturesCompact = append(compact.SignaturesCompact, signature)
	}

	signatures := make([]*secp256k1.Signature, length)
	remaining := compact.SignaturesCompact
	for i := 0; i < length; i++ {
		if compact.SignaturesFrom[i/8]&(1<<(7-uint(i%8))) == 0 {
			continue
		}
		if len(remaining) == 0 {
			return fmt.Errorf("%w: bitfield flags more signatures than the %d given",
				ErrSignaturesMismatch, len(compact.SignaturesCompact))
		}
		signature := remaining[0]
		signatures[i] = &signature
		remaining = remaining[1:]
	}

	if len(remaining) > 0 {
		return fmt.Errorf("%w: %d signatures not flagged in bitfield",
			ErrSignaturesMismatch, len(remaining))
	}

	s.Commitment = compact.Commitment
	s.Signatures = signatures
	return nil
}

// VersionedFinalityProof is the finality proof broadcast by BEEFY.
// Only the first version, a signed commitment, exists.
type VersionedFinalityProof struct {
	V1 SignedCommitment
}

const finalityProofV1 = byte(1)

// Encode SCALE encodes the proof as an enum.
func (v VersionedFinalityProof) Encode(encoder scale.Encoder) error {
	err := encoder.PushByte(finalityProofV1)
	if err != nil {
		return err
	}
	return encoder.Encode(v.V1)
}

// Decode decodes a SCALE encoded versioned finality proof.
func (v *VersionedFinalityProof) Decode(decoder scale.Decoder) error {
	version, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	if version != finalityProofV1 {
		return fmt.Errorf("%w: %d", ErrUnknownProofVersion, version)
	}
	return decoder.Decode(&v.V1)
}

// DecodeVersionedFinalityProof decodes the bytes of a justification
// notification into its signed commitment.
func DecodeVersionedFinalityProof(data []byte) (signed SignedCommitment, err error) {
	var proof VersionedFinalityProof
	err = scale.Unmarshal(data, &proof)
	if err != nil {
		return signed, err
	}
	return proof.V1, nil
}
