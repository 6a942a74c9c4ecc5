// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package payload

import (
	"github.com/ChainSafe/beefy-stakes/dot/authority"
	"github.com/ChainSafe/beefy-stakes/lib/beefy"
	"github.com/ChainSafe/beefy-stakes/lib/common"
)

// ChainState is the chain state queried at a given block.
type ChainState interface {
	authority.CommitteeGetter
	MMRRoot(blockHash common.Hash) (common.Hash, error)
	Validators(blockHash common.Hash) (beefy.ValidatorSet, error)
	NextValidators(blockHash common.Hash) (beefy.ValidatorSet, error)
}
