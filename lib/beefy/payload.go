// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package beefy

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/ChainSafe/beefy-stakes/pkg/scale"
)

var (
	ErrDuplicatePayloadID = errors.New("duplicate payload id")
	ErrDecodePayloadEntry = errors.New("cannot decode payload entry")
)

// PayloadID is the 2 bytes identifier of a payload entry.
type PayloadID [2]byte

func (id PayloadID) String() string {
	return string(id[:])
}

var (
	// MMRRootID identifies the MMR root entry.
	MMRRootID = PayloadID{'m', 'h'}
	// CurrentBeefyStakesID identifies the current authorities stakes entry.
	CurrentBeefyStakesID = PayloadID{'c', 's'}
	// CurrentBeefyAuthoritySetID identifies the current authority set entry.
	CurrentBeefyAuthoritySetID = PayloadID{'c', 'b'}
	// NextBeefyStakesID identifies the next authorities stakes entry.
	NextBeefyStakesID = PayloadID{'n', 's'}
	// NextBeefyAuthoritySetID identifies the next authority set entry.
	NextBeefyAuthoritySetID = PayloadID{'n', 'b'}
)

// PayloadEntry is a single entry of a payload.
type PayloadEntry struct {
	ID   PayloadID
	Data []byte
}

// Payload is the data signed by BEEFY authorities in a commitment.
// Entries are kept sorted by id and ids are unique.
type Payload struct {
	entries []PayloadEntry
}

// NewPayload returns a payload with a single entry.
func NewPayload(id PayloadID, data []byte) *Payload {
	return &Payload{
		entries: []PayloadEntry{{ID: id, Data: data}},
	}
}

func (p *Payload) search(id PayloadID) (index int, found bool) {
	index = sort.Search(len(p.entries), func(i int) bool {
		return bytes.Compare(p.entries[i].ID[:], id[:]) >= 0
	})
	found = index < len(p.entries) && p.entries[index].ID == id
	return index, found
}

// Push inserts an entry keeping the entries sorted.
// It returns an error if an entry with the same id already exists.
func (p *Payload) Push(id PayloadID, data []byte) error {
	index, found := p.search(id)
	if found {
		return fmt.Errorf("%w: %s", ErrDuplicatePayloadID, id)
	}

	p.entries = append(p.entries, PayloadEntry{})
	copy(p.entries[index+1:], p.entries[index:])
	p.entries[index] = PayloadEntry{ID: id, Data: data}
	return nil
}

// PushEncoded SCALE encodes the value and pushes it with the given id.
func (p *Payload) PushEncoded(id PayloadID, value interface{}) error {
	data, err := scale.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding payload entry %s: %w", id, err)
	}
	return p.Push(id, data)
}

// Get returns the raw data of the entry with the given id.
func (p *Payload) Get(id PayloadID) (data []byte, ok bool) {
	index, found := p.search(id)
	if !found {
		return nil, false
	}
	return p.entries[index].Data, true
}

// GetDecoded SCALE decodes the entry with the given id into dst.
// It returns false if the entry does not exist.
func (p *Payload) GetDecoded(id PayloadID, dst interface{}) (ok bool, err error) {
	data, ok := p.Get(id)
	if !ok {
		return false, nil
	}

	err = scale.Unmarshal(data, dst)
	if err != nil {
		return true, fmt.Errorf("%w: %s: %s", ErrDecodePayloadEntry, id, err)
	}
	return true, nil
}

// IDs returns the ids of the entries in order.
func (p *Payload) IDs() (ids []PayloadID) {
	ids = make([]PayloadID, len(p.entries))
	for i, entry := range p.entries {
		ids[i] = entry.ID
	}
	return ids
}

// Entries returns a copy of the entries.
func (p *Payload) Entries() []PayloadEntry {
	entries := make([]PayloadEntry, len(p.entries))
	copy(entries, p.entries)
	return entries
}

// Len returns the number of entries.
func (p *Payload) Len() int {
	return len(p.entries)
}

// Encode SCALE encodes the payload as a vector of (id, bytes) tuples.
func (p Payload) Encode(encoder scale.Encoder) (err error) {
	err = scale.EncodeLength(encoder, len(p.entries))
	if err != nil {
		return err
	}
	for _, entry := range p.entries {
		err = encoder.Encode(entry)
		if err != nil {
			return fmt.Errorf("encoding payload entry %s: %w", entry.ID, err)
		}
	}
	return nil
}

// Decode decodes a SCALE encoded payload. Entries with duplicate ids are rejected.
func (p *Payload) Decode(decoder scale.Decoder) (err error) {
	length, err := scale.DecodeLength(decoder)
	if err != nil {
		return err
	}

	var decoded Payload
	for i := uint64(0); i < length; i++ {
		var entry PayloadEntry
		err = entry.Decode(decoder)
		if err != nil {
			return fmt.Errorf("decoding payload entry %d: %w", i, err)
		}

		err = decoded.Push(entry.ID, entry.Data)
		if err != nil {
			return err
		}
	}

	*p = decoded
	return nil
}

// Decode decodes a SCALE encoded (id, bytes) tuple.
func (e *PayloadEntry) Decode(decoder scale.Decoder) (err error) {
	err = decoder.Read(e.ID[:])
	if err != nil {
		return fmt.Errorf("reading id: %w", err)
	}

	e.Data, err = scale.DecodeBytes(decoder)
	if err != nil {
		return fmt.Errorf("entry %s: %w", e.ID, err)
	}
	return nil
}

// Bytes returns the SCALE encoding of the payload.
func (p *Payload) Bytes() []byte {
	return scale.MustMarshal(p)
}

// DecodePayload decodes a SCALE encoded payload.
func DecodePayload(data []byte) (*Payload, error) {
	payload := new(Payload)
	err := scale.Unmarshal(data, payload)
	if err != nil {
		return nil, err
	}
	return payload, nil
}
