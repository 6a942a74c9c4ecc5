// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package authority

import (
	"sync"

	"github.com/ChainSafe/beefy-stakes/lib/beefy"
)

// Store holds the current and next BEEFY authority sets.
type Store interface {
	Current() beefy.AuthoritySet
	Next() beefy.AuthoritySet
	SetCurrent(set beefy.AuthoritySet)
	SetNext(set beefy.AuthoritySet)
	// SetNextIfUninitialised sets the next authority set only if the stored
	// one has an all zero keyset commitment, and returns true if it did.
	SetNextIfUninitialised(set beefy.AuthoritySet) (updated bool)
}

// InMemoryStore is a Store kept in memory, safe for concurrent use.
type InMemoryStore struct {
	mutex   sync.RWMutex
	current beefy.AuthoritySet
	next    beefy.AuthoritySet
}

// NewInMemoryStore returns a store initialised with the given sets.
func NewInMemoryStore(current, next beefy.AuthoritySet) *InMemoryStore {
	return &InMemoryStore{
		current: current,
		next:    next,
	}
}

// Current returns the current authority set.
func (s *InMemoryStore) Current() beefy.AuthoritySet {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.current
}

// Next returns the next authority set.
func (s *InMemoryStore) Next() beefy.AuthoritySet {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.next
}

// SetCurrent sets the current authority set.
func (s *InMemoryStore) SetCurrent(set beefy.AuthoritySet) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.current = set
}

// SetNext sets the next authority set.
func (s *InMemoryStore) SetNext(set beefy.AuthoritySet) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.next = set
}

// SetNextIfUninitialised sets the next authority set if the stored one
// was never initialised.
func (s *InMemoryStore) SetNextIfUninitialised(set beefy.AuthoritySet) (updated bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if !s.next.IsUninitialised() {
		return false
	}
	s.next = set
	return true
}
