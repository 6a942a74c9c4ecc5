// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

const logLevelsUsage = "Supports levels crit (silent), eror, warn, info, dbug and trce (trace)"

// Global flags
var (
	// ConfigFlag TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// LogFlag cli service settings
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. " + logLevelsUsage,
	}
	LogRelayLevelFlag = cli.StringFlag{
		Name:  "log-relay",
		Usage: "Relay package log level. " + logLevelsUsage,
	}
	LogPayloadLevelFlag = cli.StringFlag{
		Name:  "log-payload",
		Usage: "Payload package log level. " + logLevelsUsage,
	}
	LogRPCLevelFlag = cli.StringFlag{
		Name:  "log-rpc",
		Usage: "RPC transport log level. " + logLevelsUsage,
	}
)

// Relay flags
var (
	// EndpointFlag is the websocket RPC endpoint of the node to follow
	EndpointFlag = cli.StringFlag{
		Name:  "endpoint",
		Usage: "Websocket RPC endpoint of the node, eg. ws://127.0.0.1:9944",
	}
	FetchProofsFlag = cli.BoolFlag{
		Name:  "fetch-proofs",
		Usage: "Fetch the MMR proof of the block of each commitment",
	}
	ContinueOnErrorFlag = cli.BoolFlag{
		Name:  "continue-on-error",
		Usage: "Log justifications which cannot be processed and keep on relaying",
	}
	// MetricsAddressFlag enables the metrics server on the given address
	MetricsAddressFlag = cli.StringFlag{
		Name:  "metrics-address",
		Usage: "Serve prometheus metrics on the given address, eg. localhost:9616",
	}
)

// Payload flags
var (
	StateFlag = cli.StringFlag{
		Name:  "state",
		Usage: "TOML chain state snapshot file",
	}
	DigestRootFlag = cli.StringFlag{
		Name:  "digest-root",
		Usage: "MMR root to place in the BEEFY digest of the header, as 0x prefixed hex",
	}
	NumberFlag = cli.UintFlag{
		Name:  "number",
		Usage: "Number of the header to build the payload for",
	}
	SessionChangeFlag = cli.BoolFlag{
		Name:  "session-change",
		Usage: "Recompute the authority sets from the validator sets as on a new session",
	}
)

var (
	// GlobalFlags are flags valid for all commands
	GlobalFlags = []cli.Flag{
		ConfigFlag,
		LogFlag,
		LogRelayLevelFlag,
		LogPayloadLevelFlag,
		LogRPCLevelFlag,
	}

	// RelayFlags are flags of the relay command
	RelayFlags = []cli.Flag{
		EndpointFlag,
		FetchProofsFlag,
		ContinueOnErrorFlag,
		MetricsAddressFlag,
	}

	// BuildPayloadFlags are flags of the build-payload command
	BuildPayloadFlags = []cli.Flag{
		StateFlag,
		DigestRootFlag,
		NumberFlag,
		SessionChangeFlag,
	}
)
