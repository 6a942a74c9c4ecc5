// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChainSafe/beefy-stakes/dot/authority"
	"github.com/ChainSafe/beefy-stakes/dot/committee"
	"github.com/ChainSafe/beefy-stakes/internal/log"
	"github.com/ChainSafe/beefy-stakes/lib/beefy"
	"github.com/ChainSafe/beefy-stakes/lib/common"
	"github.com/ChainSafe/beefy-stakes/lib/crypto/secp256k1"
	"github.com/naoina/toml"
)

var logger = log.NewFromGlobal(
	log.AddContext("pkg", "state"),
)

var (
	ErrNoMMRRoot          = errors.New("no mmr root in state")
	ErrUnknownMemberType  = errors.New("unknown committee member type")
	ErrInvalidStakePool   = errors.New("invalid stake pool key")
	ErrNoCurrentCommittee = errors.New("no current committee in state")
)

const (
	memberTypePermissioned = "permissioned"
	memberTypeRegistered   = "registered"
)

type tomlSnapshot struct {
	MMRRoot        string            `toml:"mmr-root,omitempty"`
	Validators     tomlValidatorSet  `toml:"validators"`
	NextValidators tomlValidatorSet  `toml:"next-validators"`
	Committee      *tomlCommittee    `toml:"committee,omitempty"`
	NextCommittee  *tomlCommittee    `toml:"next-committee,omitempty"`
	AuthoritySets  tomlAuthoritySets `toml:"authority-sets"`
}

type tomlValidatorSet struct {
	ID   uint64   `toml:"id"`
	Keys []string `toml:"keys"`
}

type tomlCommittee struct {
	Epoch   uint64       `toml:"epoch"`
	Members []tomlMember `toml:"members"`
}

type tomlMember struct {
	Type            string `toml:"type"`
	Key             string `toml:"key"`
	StakePool       string `toml:"stake-pool,omitempty"`
	StakeDelegation uint64 `toml:"stake-delegation,omitempty"`
}

type tomlAuthoritySets struct {
	Current tomlAuthoritySet `toml:"current"`
	Next    tomlAuthoritySet `toml:"next"`
}

type tomlAuthoritySet struct {
	ID               uint64 `toml:"id"`
	Len              uint32 `toml:"len"`
	KeysetCommitment string `toml:"keyset-commitment,omitempty"`
}

// Snapshot is the BEEFY related chain state at the head of the chain,
// loaded from a TOML file. It answers queries for any block hash.
type Snapshot struct {
	mmrRoot        *common.Hash
	validators     beefy.ValidatorSet
	nextValidators beefy.ValidatorSet
	committee      *committee.Info
	nextCommittee  *committee.Info
	currentSet     beefy.AuthoritySet
	nextSet        beefy.AuthoritySet
}

// LoadSnapshot reads and parses the TOML snapshot file at path.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}

	snapshot, err := ParseSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot file %s: %w", path, err)
	}

	logger.Debugf("loaded state snapshot from %s", path)
	return snapshot, nil
}

// ParseSnapshot parses TOML encoded snapshot data.
func ParseSnapshot(data []byte) (snapshot *Snapshot, err error) {
	var raw tomlSnapshot
	err = toml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("decoding toml: %w", err)
	}

	snapshot = new(Snapshot)

	if raw.MMRRoot != "" {
		root, err := common.HexToHash(raw.MMRRoot)
		if err != nil {
			return nil, fmt.Errorf("parsing mmr root: %w", err)
		}
		snapshot.mmrRoot = &root
	}

	snapshot.validators, err = parseValidatorSet(raw.Validators)
	if err != nil {
		return nil, fmt.Errorf("parsing validators: %w", err)
	}

	snapshot.nextValidators, err = parseValidatorSet(raw.NextValidators)
	if err != nil {
		return nil, fmt.Errorf("parsing next validators: %w", err)
	}

	snapshot.committee, err = parseCommittee(raw.Committee)
	if err != nil {
		return nil, fmt.Errorf("parsing committee: %w", err)
	}

	snapshot.nextCommittee, err = parseCommittee(raw.NextCommittee)
	if err != nil {
		return nil, fmt.Errorf("parsing next committee: %w", err)
	}

	snapshot.currentSet, err = parseAuthoritySet(raw.AuthoritySets.Current)
	if err != nil {
		return nil, fmt.Errorf("parsing current authority set: %w", err)
	}

	snapshot.nextSet, err = parseAuthoritySet(raw.AuthoritySets.Next)
	if err != nil {
		return nil, fmt.Errorf("parsing next authority set: %w", err)
	}

	return snapshot, nil
}

func parseValidatorSet(raw tomlValidatorSet) (set beefy.ValidatorSet, err error) {
	set.ID = raw.ID
	set.Validators = make([]beefy.AuthorityID, len(raw.Keys))
	for i, key := range raw.Keys {
		set.Validators[i], err = secp256k1.PublicKeyFromHex(key)
		if err != nil {
			return set, fmt.Errorf("validator %d: %w", i, err)
		}
	}
	return set, nil
}

func parseCommittee(raw *tomlCommittee) (info *committee.Info, err error) {
	if raw == nil {
		return nil, nil //nolint:nilnil
	}

	info = &committee.Info{
		Epoch:   raw.Epoch,
		Members: make([]committee.Member, len(raw.Members)),
	}

	for i, member := range raw.Members {
		info.Members[i], err = parseMember(member)
		if err != nil {
			return nil, fmt.Errorf("member %d: %w", i, err)
		}
	}
	return info, nil
}

func parseMember(raw tomlMember) (member committee.Member, err error) {
	key, err := secp256k1.PublicKeyFromHex(raw.Key)
	if err != nil {
		return nil, err
	}

	switch raw.Type {
	case memberTypePermissioned:
		return committee.Permissioned{Key: committee.CrossChainPublic(key)}, nil
	case memberTypeRegistered:
		registered := committee.Registered{
			Key:             committee.CrossChainPublic(key),
			StakeDelegation: raw.StakeDelegation,
		}
		if raw.StakePool != "" {
			stakePool, err := common.HexToBytes(raw.StakePool)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrInvalidStakePool, err)
			} else if len(stakePool) != len(registered.StakePoolKey) {
				return nil, fmt.Errorf("%w: expected %d bytes but got %d",
					ErrInvalidStakePool, len(registered.StakePoolKey), len(stakePool))
			}
			copy(registered.StakePoolKey[:], stakePool)
		}
		return registered, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMemberType, raw.Type)
	}
}

func parseAuthoritySet(raw tomlAuthoritySet) (set beefy.AuthoritySet, err error) {
	set.ID = raw.ID
	set.Len = raw.Len
	if raw.KeysetCommitment == "" {
		return set, nil
	}

	set.KeysetCommitment, err = common.HexToHash(raw.KeysetCommitment)
	if err != nil {
		return set, fmt.Errorf("parsing keyset commitment: %w", err)
	}
	return set, nil
}

// MMRRoot returns the MMR root of the snapshot.
func (s *Snapshot) MMRRoot(common.Hash) (common.Hash, error) {
	if s.mmrRoot == nil {
		return common.Hash{}, ErrNoMMRRoot
	}
	return *s.mmrRoot, nil
}

// Validators returns the current BEEFY validator set.
func (s *Snapshot) Validators(common.Hash) (beefy.ValidatorSet, error) {
	return s.validators, nil
}

// NextValidators returns the next BEEFY validator set.
func (s *Snapshot) NextValidators(common.Hash) (beefy.ValidatorSet, error) {
	return s.nextValidators, nil
}

// CurrentCommittee returns the committee of the current epoch.
func (s *Snapshot) CurrentCommittee(common.Hash) (committee.Info, error) {
	if s.committee == nil {
		return committee.Info{}, ErrNoCurrentCommittee
	}
	return *s.committee, nil
}

// NextCommittee returns the committee of the next epoch, or nil if
// the snapshot has none.
func (s *Snapshot) NextCommittee(common.Hash) (*committee.Info, error) {
	if s.nextCommittee == nil {
		return nil, nil //nolint:nilnil
	}
	next := *s.nextCommittee
	return &next, nil
}

// AuthorityStore returns an in memory authority set store initialised
// with the authority sets of the snapshot.
func (s *Snapshot) AuthorityStore() *authority.InMemoryStore {
	return authority.NewInMemoryStore(s.currentSet, s.nextSet)
}
