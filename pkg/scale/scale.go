// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package scale implements the SCALE codec used on the wire by Substrate
// based chains. It wraps the reflection based encoder and decoder of
// go-substrate-rpc-client, so types can customise their encoding by
// implementing Encode(Encoder) error and Decode(Decoder) error.
package scale

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	cscale "github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Encoder is the SCALE encoder handed to custom Encode methods.
type Encoder = cscale.Encoder

// Decoder is the SCALE decoder handed to custom Decode methods.
type Decoder = cscale.Decoder

var (
	// ErrTrailingBytes is returned by Unmarshal when the input is not fully consumed.
	ErrTrailingBytes = errors.New("trailing bytes after decoding")
	// ErrUnsupportedDestination is returned when the decode destination is not a non-nil pointer.
	ErrUnsupportedDestination = errors.New("unsupported destination")
)

// Marshal takes in an interface{} and attempts to marshal into []byte
func Marshal(v interface{}) (b []byte, err error) {
	buffer := bytes.NewBuffer(nil)
	err = cscale.NewEncoder(buffer).Encode(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %T: %w", v, err)
	}
	return buffer.Bytes(), nil
}

// MustMarshal runs Marshal and panics on error.
func MustMarshal(v interface{}) (b []byte) {
	b, err := Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

// Unmarshal takes data and a destination pointer to unmarshal the data to.
// All of the data has to be consumed by the decoding.
func Unmarshal(data []byte, dst interface{}) (err error) {
	if dst == nil {
		return fmt.Errorf("%w: nil", ErrUnsupportedDestination)
	}

	reader := bytes.NewReader(data)
	err = cscale.NewDecoder(reader).Decode(dst)
	if err != nil {
		return fmt.Errorf("decoding %T: %w", dst, err)
	}

	if reader.Len() > 0 {
		return fmt.Errorf("%w: %d bytes left decoding %T", ErrTrailingBytes, reader.Len(), dst)
	}
	return nil
}

// EncodeLength writes the compact encoded length to the encoder.
func EncodeLength(encoder Encoder, length int) error {
	return encoder.EncodeUintCompact(*big.NewInt(int64(length)))
}

// DecodeLength reads a compact encoded length from the decoder.
func DecodeLength(decoder Decoder) (length uint64, err error) {
	value, err := decoder.DecodeUintCompact()
	if err != nil {
		return 0, err
	}
	if !value.IsUint64() {
		return 0, fmt.Errorf("compact length overflows uint64: %s", value)
	}
	return value.Uint64(), nil
}

// readChunkSize bounds the memory allocated ahead of reading input bytes.
const readChunkSize = 4096

// DecodeBytes decodes a length prefixed byte vector. The vector only grows
// as bytes are read, so a forged length fails with an error instead of
// allocating it upfront.
func DecodeBytes(decoder Decoder) (b []byte, err error) {
	length, err := DecodeLength(decoder)
	if err != nil {
		return nil, fmt.Errorf("decoding bytes length: %w", err)
	}

	chunk := make([]byte, readChunkSize)
	for remaining := length; remaining > 0; {
		size := uint64(readChunkSize)
		if remaining < size {
			size = remaining
		}

		err = decoder.Read(chunk[:size])
		if err != nil {
			return nil, fmt.Errorf("reading %d bytes: %w", length, err)
		}
		b = append(b, chunk[:size]...)
		remaining -= size
	}

	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// DecodeSlice decodes a length prefixed vector of T. Elements are appended
// as they are decoded, so a forged length fails with an error instead of
// allocating it upfront.
func DecodeSlice[T any](decoder Decoder) (slice []T, err error) {
	length, err := DecodeLength(decoder)
	if err != nil {
		return nil, fmt.Errorf("decoding vector length: %w", err)
	}

	slice = []T{}
	for i := uint64(0); i < length; i++ {
		var element T
		err = decoder.Decode(&element)
		if err != nil {
			return nil, fmt.Errorf("decoding element %d of %d: %w", i, length, err)
		}
		slice = append(slice, element)
	}
	return slice, nil
}

// NewEncoder returns an encoder writing to the given buffer.
var NewEncoder = cscale.NewEncoder

// NewDecoder returns a decoder reading from the given reader.
var NewDecoder = cscale.NewDecoder
