// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package beefy

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCurrentBeefyStakes  = errors.New("missing current beefy stakes")
	ErrMissingCurrentAuthoritySet = errors.New("missing current authority set")
	ErrMissingNextBeefyStakes     = errors.New("missing next beefy stakes")
	ErrMissingNextAuthoritySet    = errors.New("missing next authority set")
)

// NextStakesInfo holds the stakes and authority set of the next generation.
type NextStakesInfo struct {
	Stakes       Stakes
	AuthoritySet AuthoritySet
}

// StakesInfo is the stakes and authority sets carried by a payload.
// Next is nil when the payload carries no next generation entries.
type StakesInfo struct {
	CurrentStakes       Stakes
	CurrentAuthoritySet AuthoritySet
	Next                *NextStakesInfo
}

// RequireNext returns an error naming the next entries if they are absent.
func (s StakesInfo) RequireNext() error {
	if s.Next == nil {
		return fmt.Errorf("%w and %w", ErrMissingNextBeefyStakes, ErrMissingNextAuthoritySet)
	}
	return nil
}

// ExtractStakesInfo decodes the stakes and authority sets of the payload.
// The current entries are required. The next entries are either both
// present or both absent.
func ExtractStakesInfo(payload *Payload) (info StakesInfo, err error) {
	found, err := payload.GetDecoded(CurrentBeefyStakesID, &info.CurrentStakes)
	if err != nil {
		return info, err
	} else if !found {
		return info, ErrMissingCurrentBeefyStakes
	}

	found, err = payload.GetDecoded(CurrentBeefyAuthoritySetID, &info.CurrentAuthoritySet)
	if err != nil {
		return info, err
	} else if !found {
		return info, ErrMissingCurrentAuthoritySet
	}

	var next NextStakesInfo
	stakesFound, err := payload.GetDecoded(NextBeefyStakesID, &next.Stakes)
	if err != nil {
		return info, err
	}

	setFound, err := payload.GetDecoded(NextBeefyAuthoritySetID, &next.AuthoritySet)
	if err != nil {
		return info, err
	}

	switch {
	case stakesFound && setFound:
		info.Next = &next
	case stakesFound:
		return info, ErrMissingNextAuthoritySet
	case setFound:
		return info, ErrMissingNextBeefyStakes
	}
	return info, nil
}
