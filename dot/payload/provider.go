// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package payload

import (
	"github.com/ChainSafe/beefy-stakes/dot/authority"
	"github.com/ChainSafe/beefy-stakes/dot/committee"
	"github.com/ChainSafe/beefy-stakes/dot/types"
	"github.com/ChainSafe/beefy-stakes/internal/log"
	"github.com/ChainSafe/beefy-stakes/lib/beefy"
	"github.com/ChainSafe/beefy-stakes/lib/common"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "payload"))

// Provider builds the BEEFY payload of a block: the MMR root with the
// stakes and authority sets of the current and, if elected, next committee.
type Provider struct {
	state ChainState
	store authority.Store
}

// NewProvider creates a new payload provider.
func NewProvider(state ChainState, store authority.Store) *Provider {
	return &Provider{
		state: state,
		store: store,
	}
}

type payloadEntry struct {
	id    beefy.PayloadID
	value interface{}
}

// Payload returns the payload for the header. It returns false if the
// MMR root or the current stakes cannot be obtained.
func (p *Provider) Payload(header *types.Header) (payload *beefy.Payload, ok bool) {
	blockHash := header.Hash()

	mmrRoot, ok := p.mmrRoot(header, blockHash)
	if !ok {
		return nil, false
	}

	validators, currentStakes, ok := p.currentStakes(blockHash)
	if !ok {
		return nil, false
	}
	logger.Tracef("current beefy stakes: %v", currentStakes)

	currentSet := authority.ComputeAuthoritySet(p.store.Current().ID, currentStakes)
	logger.Tracef("current beefy authority set: %s", currentSet)

	entries := []payloadEntry{
		{id: beefy.CurrentBeefyStakesID, value: currentStakes},
		{id: beefy.CurrentBeefyAuthoritySetID, value: currentSet},
	}

	nextStakes, hasNext := p.nextStakes(blockHash, validators.ID)
	if hasNext {
		logger.Tracef("next beefy stakes: %v", nextStakes)
		nextSet := authority.ComputeAuthoritySet(p.store.Next().ID, nextStakes)
		logger.Tracef("next beefy authority set: %s", nextSet)
		entries = append(entries,
			payloadEntry{id: beefy.NextBeefyStakesID, value: nextStakes},
			payloadEntry{id: beefy.NextBeefyAuthoritySetID, value: nextSet},
		)
	}

	payload = beefy.NewPayload(beefy.MMRRootID, mmrRoot.ToBytes())
	for _, entry := range entries {
		err := payload.PushEncoded(entry.id, entry.value)
		if err != nil {
			logger.Errorf("cannot build payload for block %s: %s", blockHash, err)
			return nil, false
		}
	}

	return payload, true
}

func (p *Provider) mmrRoot(header *types.Header, blockHash common.Hash) (root common.Hash, ok bool) {
	root, ok = beefy.FindMMRRootDigest(header)
	if ok {
		return root, true
	}

	root, err := p.state.MMRRoot(blockHash)
	if err != nil {
		logger.Debugf("no mmr root for block %s: %s", blockHash, err)
		return root, false
	}
	return root, true
}

func (p *Provider) currentStakes(blockHash common.Hash) (
	validators beefy.ValidatorSet, stakes beefy.Stakes, ok bool) {
	validators, err := p.state.Validators(blockHash)
	if err != nil {
		logger.Debugf("cannot get validators at block %s: %s", blockHash, err)
		return validators, nil, false
	}

	currentCommittee, err := p.state.CurrentCommittee(blockHash)
	if err != nil {
		logger.Debugf("cannot get current committee at block %s: %s", blockHash, err)
		return validators, nil, false
	}

	return validators, committee.ComputeStakes(validators.Validators, currentCommittee), true
}

// nextStakes returns the stakes of the next committee, if one is elected.
// The first time next stakes exist, the stored next authority set is
// initialised with the generation following the current validator set.
func (p *Provider) nextStakes(blockHash common.Hash, currentSetID beefy.ValidatorSetID) (
	stakes beefy.Stakes, ok bool) {
	nextCommittee, err := p.state.NextCommittee(blockHash)
	if err != nil {
		logger.Debugf("cannot get next committee at block %s: %s", blockHash, err)
		return nil, false
	} else if nextCommittee == nil {
		return nil, false
	}

	nextValidators, err := p.state.NextValidators(blockHash)
	if err != nil {
		logger.Debugf("cannot get next validators at block %s: %s", blockHash, err)
		return nil, false
	}

	stakes = committee.ComputeStakes(nextValidators.Validators, *nextCommittee)

	if p.store.Next().IsUninitialised() {
		bootstrap := authority.ComputeAuthoritySet(currentSetID+1, stakes)
		if p.store.SetNextIfUninitialised(bootstrap) {
			logger.Debugf("out of session update of the next authority set: %s", bootstrap)
		}
	}

	return stakes, true
}

// SetLogLevel sets the log level of the package logger.
func SetLogLevel(level log.Level) {
	logger.PatchLevel(level)
}
