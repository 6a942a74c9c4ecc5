// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package secp256k1

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/ChainSafe/beefy-stakes/lib/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	// PublicKeyLength is the length of a compressed secp256k1 public key
	PublicKeyLength = 33
	// SignatureLength is the length of a recoverable secp256k1 signature
	SignatureLength = 65
)

var (
	ErrInvalidPublicKeyLength = errors.New("invalid public key length")
	ErrInvalidPublicKey       = errors.New("invalid public key")
)

// PublicKey is a compressed secp256k1 public key, as used by BEEFY
// ECDSA authorities and by cross-chain committee keys.
type PublicKey [PublicKeyLength]byte

// Signature is a 65 bytes recoverable secp256k1 signature.
type Signature [SignatureLength]byte

// NewPublicKey checks that the given bytes are a valid compressed public key
// and returns it.
func NewPublicKey(in []byte) (pub PublicKey, err error) {
	if len(in) != PublicKeyLength {
		return pub, fmt.Errorf("%w: expected %d bytes but got %d",
			ErrInvalidPublicKeyLength, PublicKeyLength, len(in))
	}

	_, err = crypto.DecompressPubkey(in)
	if err != nil {
		return pub, fmt.Errorf("%w: %s", ErrInvalidPublicKey, err)
	}

	copy(pub[:], in)
	return pub, nil
}

// PublicKeyFromHex parses a 0x prefixed compressed public key.
func PublicKeyFromHex(in string) (pub PublicKey, err error) {
	b, err := common.HexToBytes(in)
	if err != nil {
		return pub, err
	}
	return NewPublicKey(b)
}

// MustPublicKeyFromHex parses a 0x prefixed compressed public key and
// panics on error.
func MustPublicKeyFromHex(in string) PublicKey {
	pub, err := PublicKeyFromHex(in)
	if err != nil {
		panic(err)
	}
	return pub
}

// Encode returns the compressed encoding of the public key.
func (k PublicKey) Encode() []byte {
	b := k
	return b[:]
}

// Hex returns the 0x prefixed hex of the compressed public key.
func (k PublicKey) Hex() string {
	return common.BytesToHex(k[:])
}

func (k PublicKey) String() string {
	return k.Hex()
}

// UnmarshalText decodes a 0x prefixed hex public key.
func (k *PublicKey) UnmarshalText(text []byte) (err error) {
	*k, err = PublicKeyFromHex(string(text))
	return err
}

// MarshalText encodes the public key as 0x prefixed hex.
func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.Hex()), nil
}

// Keypair holds a secp256k1 private key and its compressed public key.
type Keypair struct {
	public  PublicKey
	private *ecdsa.PrivateKey
}

// NewKeypair returns a keypair for the given private key.
func NewKeypair(private *ecdsa.PrivateKey) *Keypair {
	kp := &Keypair{private: private}
	copy(kp.public[:], crypto.CompressPubkey(&private.PublicKey))
	return kp
}

// GenerateKeypair generates a random keypair.
func GenerateKeypair() (*Keypair, error) {
	private, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	return NewKeypair(private), nil
}

// Public returns the compressed public key.
func (kp *Keypair) Public() PublicKey {
	return kp.public
}

// Sign hashes the message with keccak256 and signs the hash.
func (kp *Keypair) Sign(msg []byte) (sig Signature, err error) {
	hash := common.Keccak256(msg)
	signature, err := crypto.Sign(hash[:], kp.private)
	if err != nil {
		return sig, err
	}
	copy(sig[:], signature)
	return sig, nil
}
