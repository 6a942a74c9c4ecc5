// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ChainSafe/beefy-stakes/lib/beefy"
	"github.com/ChainSafe/beefy-stakes/lib/common"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nodeRequest struct {
	ID     uint64            `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// newNodeClient returns a node client connected to a fake node
// answering each request with the raw JSON result returned by answer.
// Subscription requests are answered with the subscription id "sub"
// followed by one notification per element of notifications.
func newNodeClient(t *testing.T, answer func(request nodeRequest) (result string),
	notifications ...string) *NodeClient {
	t.Helper()

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			var request nodeRequest
			err := conn.ReadJSON(&request)
			if err != nil {
				return
			}

			result := `"sub"`
			if request.Method != subscribeJustificationsMethod {
				result = answer(request)
			}
			response := `{"jsonrpc":"2.0","id":` + jsonNumber(request.ID) + `,"result":` + result + `}`
			err = conn.WriteMessage(websocket.TextMessage, []byte(response))
			if err != nil {
				return
			}

			if request.Method != subscribeJustificationsMethod {
				continue
			}
			for _, notification := range notifications {
				message := `{"jsonrpc":"2.0","method":"beefy_justifications",` +
					`"params":{"subscription":"sub","result":` + notification + `}}`
				err = conn.WriteMessage(websocket.TextMessage, []byte(message))
				if err != nil {
					return
				}
			}
		}
	}))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := Dial(ctx, "ws://"+strings.TrimPrefix(server.URL, "http://"))
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return client
}

func jsonNumber(n uint64) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func Test_NodeClient_SubscribeJustifications(t *testing.T) {
	t.Parallel()

	unsubscribed := make(chan struct{})
	client := newNodeClient(t, func(request nodeRequest) string {
		assert.Equal(t, unsubscribeJustificationsMethod, request.Method)
		close(unsubscribed)
		return "true"
	}, `"0x0102"`, `"not hex"`, `{"unexpected":1}`)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	subscription, err := client.SubscribeJustifications(ctx)
	require.NoError(t, err)

	for _, expected := range []string{`"0x0102"`, `"not hex"`, `{"unexpected":1}`} {
		notification, err := subscription.Next(ctx)
		require.NoError(t, err)
		assert.JSONEq(t, expected, string(notification))
	}

	subscription.Unsubscribe()
	select {
	case <-unsubscribed:
	case <-ctx.Done():
		t.Fatal("no unsubscribe request received")
	}

	_, err = subscription.Next(ctx)
	assert.ErrorIs(t, err, ErrSubscriptionEnded)
}

func Test_NodeClient_SubscribeJustifications_clientClosed(t *testing.T) {
	t.Parallel()

	client := newNodeClient(t, func(request nodeRequest) string {
		return "true"
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	subscription, err := client.SubscribeJustifications(ctx)
	require.NoError(t, err)

	client.Close()

	_, err = subscription.Next(ctx)
	assert.ErrorIs(t, err, ErrSubscriptionEnded)
}

func Test_NodeClient_SubscribeJustifications_canceled(t *testing.T) {
	t.Parallel()

	client := newNodeClient(t, func(request nodeRequest) string {
		return "true"
	})

	subscription, err := client.SubscribeJustifications(context.Background())
	require.NoError(t, err)
	defer subscription.Unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = subscription.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_Dial_unsupportedScheme(t *testing.T) {
	t.Parallel()

	_, err := Dial(context.Background(), "ftp://127.0.0.1:9944")
	assert.ErrorContains(t, err, "dialing ftp://127.0.0.1:9944")
}

func Test_NodeClient_BestBlockNumber(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		result     string
		number     uint32
		errWrapped error
	}{
		"header": {
			result: `{"parentHash":"0x00","number":"0x1a","digest":{"logs":[]}}`,
			number: 26,
		},
		"malformed number": {
			result:     `{"number":26}`,
			errWrapped: ErrJSONDecode,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client := newNodeClient(t, func(request nodeRequest) string {
				assert.Equal(t, getHeaderMethod, request.Method)
				return testCase.result
			})

			number, err := client.BestBlockNumber(context.Background())

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.number, number)
		})
	}
}

func Test_NodeClient_BlockHash(t *testing.T) {
	t.Parallel()

	hash := common.Hash{0xaa, 0xbb}
	client := newNodeClient(t, func(request nodeRequest) string {
		if string(request.Params[0]) == "5" {
			return `"` + hash.String() + `"`
		}
		return "null"
	})

	ctx := context.Background()

	blockHash, err := client.BlockHash(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, blockHash)
	assert.Equal(t, hash, *blockHash)

	blockHash, err = client.BlockHash(ctx, 6)
	require.NoError(t, err)
	assert.Nil(t, blockHash)
}

func Test_NodeClient_GenerateProof(t *testing.T) {
	t.Parallel()

	hash := common.Hash{0x11}

	testCases := map[string]struct {
		bestKnown  *uint32
		at         *common.Hash
		params     string
		result     string
		proof      beefy.LeavesProof
		errWrapped error
	}{
		"best block anchor": {
			bestKnown: ptrTo(uint32(12)),
			params:    `[[10],12,null]`,
			result:    `{"blockHash":"` + hash.String() + `","leaves":"0x0102","proof":"0x03"}`,
			proof: beefy.LeavesProof{
				BlockHash: hash,
				Leaves:    []byte{1, 2},
				Proof:     []byte{3},
			},
		},
		"block hash anchor": {
			at:     &hash,
			params: `[[10],null,"` + hash.String() + `"]`,
			result: `{"blockHash":"` + hash.String() + `","leaves":"0x","proof":"0x"}`,
			proof: beefy.LeavesProof{
				BlockHash: hash,
				Leaves:    []byte{},
				Proof:     []byte{},
			},
		},
		"malformed proof": {
			params:     `[[10],null,null]`,
			result:     `{"blockHash":"0x11","leaves":12}`,
			errWrapped: ErrJSONDecode,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client := newNodeClient(t, func(request nodeRequest) string {
				assert.Equal(t, generateProofMethod, request.Method)
				params, err := json.Marshal(request.Params)
				assert.NoError(t, err)
				assert.JSONEq(t, testCase.params, string(params))
				return testCase.result
			})

			proof, err := client.GenerateProof(context.Background(), []uint32{10},
				testCase.bestKnown, testCase.at)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped == nil {
				assert.Equal(t, testCase.proof, proof)
			}
		})
	}
}
