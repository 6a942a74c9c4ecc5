// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/beefy-stakes/dot/authority"
	"github.com/ChainSafe/beefy-stakes/dot/payload"
	"github.com/ChainSafe/beefy-stakes/dot/state"
	"github.com/ChainSafe/beefy-stakes/dot/types"
	"github.com/ChainSafe/beefy-stakes/lib/beefy"
	"github.com/ChainSafe/beefy-stakes/lib/common"
	"github.com/qdm12/gotree"
	"github.com/urfave/cli"
)

var (
	ErrNoPayloadArgument = errors.New("no payload given")
	ErrNoStateFile       = errors.New("no state snapshot file given")
	ErrNoPayloadBuilt    = errors.New("no payload could be built")
)

func decodePayloadAction(ctx *cli.Context) (err error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	err = setupLogger(cfg)
	if err != nil {
		return err
	}

	encoded := ctx.Args().First()
	if encoded == "" {
		return ErrNoPayloadArgument
	}

	tree, err := decodePayload(encoded)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.App.Writer, tree.String())
	return err
}

func decodePayload(encoded string) (tree *gotree.Node, err error) {
	data, err := common.HexToBytes(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding hex payload: %w", err)
	}

	decoded, err := beefy.DecodePayload(data)
	if err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}

	info, err := beefy.ExtractStakesInfo(decoded)
	if err != nil {
		return nil, fmt.Errorf("extracting stakes info: %w", err)
	}

	tree = gotree.New("Payload")
	tree.Appendf("IDs: %v", decoded.IDs())

	var mmrRoot common.Hash
	found, err := decoded.GetDecoded(beefy.MMRRootID, &mmrRoot)
	switch {
	case err != nil:
		return nil, err
	case found:
		tree.Appendf("MMR root: %s", mmrRoot)
	default:
		tree.Appendf("MMR root: none")
	}

	tree.AppendNode(info.StringNode())
	return tree, nil
}

func buildPayloadAction(ctx *cli.Context) (err error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	err = setupLogger(cfg)
	if err != nil {
		return err
	}

	statePath := ctx.String(StateFlag.Name)
	if statePath == "" {
		return ErrNoStateFile
	}

	var digestRoot *common.Hash
	if ctx.IsSet(DigestRootFlag.Name) {
		root, err := common.HexToHash(ctx.String(DigestRootFlag.Name))
		if err != nil {
			return fmt.Errorf("parsing digest root: %w", err)
		}
		digestRoot = &root
	}

	encoded, err := buildPayload(statePath, digestRoot,
		types.BlockNumber(ctx.Uint(NumberFlag.Name)), ctx.Bool(SessionChangeFlag.Name))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.App.Writer, common.BytesToHex(encoded))
	return err
}

// buildPayload builds the payload of a header with the given number, whose
// digest carries the MMR root given if any, on the chain state snapshot.
// If sessionChange is true, the header is treated as the first block of a
// new session and the stored authority sets are recomputed from the
// snapshot validator sets before building.
func buildPayload(statePath string, digestRoot *common.Hash,
	number types.BlockNumber, sessionChange bool) (encoded []byte, err error) {
	snapshot, err := state.LoadSnapshot(statePath)
	if err != nil {
		return nil, err
	}

	digest := types.NewDigest()
	if digestRoot != nil {
		digest = append(digest, beefy.NewMMRRootDigest(*digestRoot))
	}
	header := types.NewHeader(common.Hash{}, common.Hash{}, common.Hash{}, number, digest)

	store := snapshot.AuthorityStore()
	if sessionChange {
		err = onSessionChange(snapshot, store, header.Hash())
		if err != nil {
			return nil, fmt.Errorf("handling session change: %w", err)
		}
	}

	provider := payload.NewProvider(snapshot, store)
	built, ok := provider.Payload(header)
	if !ok {
		return nil, fmt.Errorf("%w: for header %s", ErrNoPayloadBuilt, header)
	}

	logger.Infof("built payload with ids %v for block %d", built.IDs(), number)
	return built.Bytes(), nil
}

func onSessionChange(snapshot *state.Snapshot, store authority.Store, blockHash common.Hash) error {
	current, err := snapshot.Validators(blockHash)
	if err != nil {
		return fmt.Errorf("getting validators: %w", err)
	}

	next, err := snapshot.NextValidators(blockHash)
	if err != nil {
		return fmt.Errorf("getting next validators: %w", err)
	}

	return authority.NewHandler(snapshot, store).OnNewValidatorSet(blockHash, current, next)
}
