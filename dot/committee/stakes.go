// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package committee

import (
	"github.com/ChainSafe/beefy-stakes/internal/log"
	"github.com/ChainSafe/beefy-stakes/lib/beefy"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "committee"))

// ComputeStakes returns the stakes of the validators, in the order of the
// validators. A validator matching a committee member gets a stake of 1,
// otherwise 0. Each member matches at most one validator, the first one
// in validator order whose id equals the member id.
func ComputeStakes(validators []beefy.AuthorityID, committee Info) beefy.Stakes {
	stakes := make(beefy.Stakes, len(validators))
	matched := make([]bool, len(committee.Members))

	for i, validator := range validators {
		stakes[i] = beefy.StakeEntry{ID: validator}

		memberIndex := firstUnmatched(validator, committee.Members, matched)
		if memberIndex < 0 {
			logger.Warnf("no committee member found for validator %s in epoch %d, setting stake to 0",
				validator, committee.Epoch)
			continue
		}

		matched[memberIndex] = true
		stakes[i].Stake = 1
	}

	return stakes
}

func firstUnmatched(validator beefy.AuthorityID, members []Member, matched []bool) (index int) {
	for i, member := range members {
		if matched[i] {
			continue
		}
		if member.ID().AuthorityID() == validator {
			return i
		}
	}
	return -1
}
