// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package relay

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ChainSafe/beefy-stakes/lib/beefy"
	"github.com/ChainSafe/beefy-stakes/lib/common"
	"github.com/ChainSafe/beefy-stakes/lib/crypto/secp256k1"
	"github.com/ChainSafe/beefy-stakes/pkg/scale"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test error")

// stakesPayload carries the stakes and authority sets of a
// four authorities validator set, with a next set.
const stakesPayload = "0x146362b000000000000000000400000086fd5cd50b8bb99aa5c8befc197dd8273d17a4530b44e7aca182a4af271bd6a86373950210020a1091341fe5664bfa1782d5e04779689068c916b04cb365ec3153755684d9a101000000000000000390084fdbf27d2b79d26a4f13f0ccd982cb755a661969143c37cbc49ef5b91f2701000000000000000389411795514af1627765eceffcbd002719f031604fadd7d188e2dc585b4e1afb000000000000000003bc9d0ca094bd5b8b3225d7651eac5d18c1c04bf8ae8f8b263eebca4e1410ed0c00000000000000006d6880850783e47991669df4fa44075cd0fa5d8532d2a99fce644fcc33c7395522c8526e62b001000000000000000400000086fd5cd50b8bb99aa5c8befc197dd8273d17a4530b44e7aca182a4af271bd6a86e73950210020a1091341fe5664bfa1782d5e04779689068c916b04cb365ec3153755684d9a101000000000000000390084fdbf27d2b79d26a4f13f0ccd982cb755a661969143c37cbc49ef5b91f2701000000000000000389411795514af1627765eceffcbd002719f031604fadd7d188e2dc585b4e1afb000000000000000003bc9d0ca094bd5b8b3225d7651eac5d18c1c04bf8ae8f8b263eebca4e1410ed0c0000000000000000"

func newStakesPayload(t *testing.T) *beefy.Payload {
	t.Helper()
	payload, err := beefy.DecodePayload(common.MustHexToBytes(stakesPayload))
	require.NoError(t, err)
	return payload
}

// makeJustification returns the notification result carrying the versioned
// finality proof of the payload for the block number, with its version
// byte replaced by version.
func makeJustification(t *testing.T, version byte, blockNumber uint32,
	payload *beefy.Payload) json.RawMessage {
	t.Helper()

	signature := secp256k1.Signature{1}
	proof := beefy.VersionedFinalityProof{
		V1: beefy.SignedCommitment{
			Commitment: beefy.Commitment{
				Payload:        *payload,
				BlockNumber:    blockNumber,
				ValidatorSetID: 0,
			},
			Signatures: []*secp256k1.Signature{&signature, nil, &signature, nil},
		},
	}

	encoded, err := scale.Marshal(proof)
	require.NoError(t, err)
	encoded[0] = version

	notification, err := json.Marshal(common.BytesToHex(encoded))
	require.NoError(t, err)
	return notification
}

func ptrTo[T any](value T) *T {
	return &value
}
