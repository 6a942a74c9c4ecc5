// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package authority

import (
	"fmt"

	"github.com/ChainSafe/beefy-stakes/dot/committee"
	"github.com/ChainSafe/beefy-stakes/internal/log"
	"github.com/ChainSafe/beefy-stakes/lib/beefy"
	"github.com/ChainSafe/beefy-stakes/lib/common"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "authority"))

// CommitteeGetter returns the committees at a given block.
type CommitteeGetter interface {
	CurrentCommittee(blockHash common.Hash) (committee.Info, error)
	// NextCommittee returns nil if no next committee is elected yet.
	NextCommittee(blockHash common.Hash) (*committee.Info, error)
}

// Handler updates the stored authority sets on validator set changes.
type Handler struct {
	committees CommitteeGetter
	store      Store
}

// NewHandler creates a new handler.
func NewHandler(committees CommitteeGetter, store Store) *Handler {
	return &Handler{
		committees: committees,
		store:      store,
	}
}

// OnNewValidatorSet computes the authority sets of the new current and next
// validator sets and stores them. The next authority set is left untouched
// if there is no next committee.
func (h *Handler) OnNewValidatorSet(blockHash common.Hash, current, next beefy.ValidatorSet) error {
	logger.Info("updating beefy authorities...")

	currentCommittee, err := h.committees.CurrentCommittee(blockHash)
	if err != nil {
		return fmt.Errorf("getting current committee: %w", err)
	}

	currentStakes := committee.ComputeStakes(current.Validators, currentCommittee)
	currentSet := ComputeAuthoritySet(current.ID, currentStakes)
	logger.Infof("new current authority set: %s", currentSet)

	nextCommittee, err := h.committees.NextCommittee(blockHash)
	if err != nil {
		return fmt.Errorf("getting next committee: %w", err)
	}

	if nextCommittee == nil {
		logger.Info("no next committee found, next authority set not updated")
	} else {
		nextStakes := committee.ComputeStakes(next.Validators, *nextCommittee)
		nextSet := ComputeAuthoritySet(next.ID, nextStakes)
		logger.Infof("new next authority set: %s", nextSet)
		h.store.SetNext(nextSet)
	}

	h.store.SetCurrent(currentSet)
	return nil
}
