// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ChainSafe/beefy-stakes/internal/log"
	"github.com/ChainSafe/beefy-stakes/lib/beefy"
	"github.com/ChainSafe/beefy-stakes/lib/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/prometheus/client_golang/prometheus"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "relay"))

var (
	ErrNoClient            = errors.New("no client given")
	ErrDecodeJustification = errors.New("cannot decode justification")
	ErrExtractStakesInfo   = errors.New("cannot extract stakes info")
	ErrFetchProof          = errors.New("cannot fetch mmr proof")
)

// ErrorHandler decides, given the error processing a justification,
// whether the relayer keeps on relaying.
type ErrorHandler func(err error) (continueRelaying bool)

// AbortOnError stops relaying on the first justification error.
func AbortOnError(error) bool { return false }

// ContinueOnError logs the justification error and keeps on relaying.
func ContinueOnError(err error) bool {
	logger.Errorf("skipping justification: %s", err)
	return true
}

// Config is the relayer configuration.
type Config struct {
	Client Client
	// FetchProofs enables fetching the MMR proof of each commitment block.
	FetchProofs bool
	// ErrorHandler defaults to AbortOnError.
	ErrorHandler ErrorHandler
	// Registerer defaults to prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
}

// Relayer follows the BEEFY justifications of a node and extracts the
// stakes and authority sets they commit to.
type Relayer struct {
	client       Client
	fetchProofs  bool
	errorHandler ErrorHandler
	metrics      *metrics
}

// NewRelayer creates a relayer from the configuration.
func NewRelayer(cfg Config) (*Relayer, error) {
	if cfg.Client == nil {
		return nil, ErrNoClient
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = AbortOnError
	}

	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.DefaultRegisterer
	}

	metrics, err := newMetrics(cfg.Registerer)
	if err != nil {
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &Relayer{
		client:       cfg.Client,
		fetchProofs:  cfg.FetchProofs,
		errorHandler: cfg.ErrorHandler,
		metrics:      metrics,
	}, nil
}

// Run subscribes to justifications and processes them in order until
// the context is canceled, the subscription fails or the error handler
// aborts. It returns nil when the context is canceled.
func (r *Relayer) Run(ctx context.Context) (err error) {
	subscription, err := r.client.SubscribeJustifications(ctx)
	if err != nil {
		return fmt.Errorf("subscribing to justifications: %w", err)
	}
	logger.Info("subscribed to justifications")

	defer subscription.Unsubscribe()

	for {
		notification, err := subscription.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logger.Infof("stopping relay: %s", ctx.Err())
				return nil
			}
			return fmt.Errorf("receiving justification: %w", err)
		}

		r.metrics.received.Inc()
		err = r.handleJustification(ctx, notification)
		if err == nil {
			continue
		}

		r.metrics.failed.Inc()
		if !r.errorHandler(err) {
			return err
		}
	}
}

// handleJustification processes the result of a justification notification,
// the hex encoded SCALE bytes of a versioned finality proof.
func (r *Relayer) handleJustification(ctx context.Context, notification json.RawMessage) (err error) {
	var justification hexutil.Bytes
	err = json.Unmarshal(notification, &justification)
	if err != nil {
		return fmt.Errorf("%w: %w: notification %s: %s", ErrDecodeJustification, ErrJSONDecode, notification, err)
	}

	signed, err := beefy.DecodeVersionedFinalityProof(justification)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeJustification, err)
	}

	commitment := signed.Commitment
	logger.Debugf("payload of block %d: 0x%x", commitment.BlockNumber, commitment.Payload.Bytes())

	info, err := beefy.ExtractStakesInfo(&commitment.Payload)
	if err != nil {
		return fmt.Errorf("%w: block %d: %w", ErrExtractStakesInfo, commitment.BlockNumber, err)
	}

	r.metrics.lastCommitmentBlock.Set(float64(commitment.BlockNumber))
	logger.Infof("justification of block %d signed by %d/%d authorities of validator set %d",
		commitment.BlockNumber, signed.NoOfSignatures(), len(signed.Signatures), commitment.ValidatorSetID)
	logStakesInfo(info)

	if !r.fetchProofs {
		return nil
	}

	params := r.chooseParams(ctx, commitment.BlockNumber)
	proof, err := r.fetchProof(ctx, commitment.BlockNumber, params)
	if err != nil {
		return fmt.Errorf("%w: block %d: %w", ErrFetchProof, commitment.BlockNumber, err)
	}
	r.metrics.proofsFetched.Inc()
	logger.Debugf("mmr proof of block %d at block hash %s: leaves 0x%x proof 0x%x",
		commitment.BlockNumber, proof.BlockHash, []byte(proof.Leaves), []byte(proof.Proof))
	return nil
}

func logStakesInfo(info beefy.StakesInfo) {
	logger.Debugf("current authority set %s", info.CurrentAuthoritySet)
	for _, entry := range info.CurrentStakes {
		logger.Tracef("current stake %s", entry)
	}

	if info.Next == nil {
		logger.Debug("no next authority set")
		return
	}

	logger.Debugf("next authority set %s", info.Next.AuthoritySet)
	for _, entry := range info.Next.Stakes {
		logger.Tracef("next stake %s", entry)
	}
}

// proofParams are the anchors of an MMR proof request. At most one
// of them is set.
type proofParams struct {
	bestKnownBlockNumber *uint32
	atBlockHash          *common.Hash
}

// chooseParams anchors the proof request on the best block number and,
// if it is unavailable, on the hash of the commitment block.
// Lookup failures leave the corresponding anchor unset.
func (r *Relayer) chooseParams(ctx context.Context, commitmentBlock uint32) (params proofParams) {
	bestBlock, ok := r.bestBlockNumber(ctx)
	if ok {
		logger.Debugf("querying from the best block number %d", bestBlock)
		params.bestKnownBlockNumber = &bestBlock
		return params
	}

	logger.Debugf("cannot retrieve best block, using the hash of commitment block %d", commitmentBlock)
	hash, ok := r.blockHash(ctx, commitmentBlock)
	if ok {
		params.atBlockHash = &hash
	}
	return params
}

func (r *Relayer) bestBlockNumber(ctx context.Context) (number uint32, ok bool) {
	number, err := r.client.BestBlockNumber(ctx)
	if err != nil {
		logger.Warnf("failed to get best block number: %s", err)
		return 0, false
	}
	return number, true
}

func (r *Relayer) blockHash(ctx context.Context, number uint32) (hash common.Hash, ok bool) {
	blockHash, err := r.client.BlockHash(ctx, number)
	if err != nil {
		logger.Warnf("failed to get block hash for block %d: %s", number, err)
		return hash, false
	} else if blockHash == nil {
		logger.Warnf("no block hash for block %d", number)
		return hash, false
	}
	return *blockHash, true
}

func (r *Relayer) fetchProof(ctx context.Context, blockNumber uint32,
	params proofParams) (proof beefy.LeavesProof, err error) {
	return r.client.GenerateProof(ctx, []uint32{blockNumber},
		params.bestKnownBlockNumber, params.atBlockHash)
}

// SetLogLevel sets the log level of the package logger.
func SetLogLevel(level log.Level) {
	logger.PatchLevel(level)
}
