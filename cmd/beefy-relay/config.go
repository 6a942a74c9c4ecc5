// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"os"

	ctoml "github.com/ChainSafe/beefy-stakes/dot/config/toml"
	"github.com/ChainSafe/beefy-stakes/dot/payload"
	"github.com/ChainSafe/beefy-stakes/dot/relay"
	"github.com/ChainSafe/beefy-stakes/internal/log"
	"github.com/urfave/cli"
)

// flagsStore gives access to the global and command flags.
type flagsStore interface {
	GlobalIsSet(name string) bool
	GlobalString(name string) string
	IsSet(name string) bool
	String(name string) string
	Bool(name string) bool
}

var _ flagsStore = (*cli.Context)(nil)

// loadConfig loads the toml configuration file if --config is specified,
// or the default configuration otherwise, and overrides it with the flags set.
func loadConfig(flags flagsStore) (cfg ctoml.Config, err error) {
	cfg = ctoml.Default()

	cfgPath := flags.GlobalString(ConfigFlag.Name)
	if cfgPath != "" {
		logger.Info("loading toml configuration from " + cfgPath + "...")
		cfg, err = ctoml.LoadFile(cfgPath)
		if err != nil {
			return cfg, fmt.Errorf("loading configuration: %w", err)
		}
	}

	setGlobalConfigFromFlags(flags, &cfg)
	setRelayConfigFromFlags(flags, &cfg)

	err = cfg.Validate()
	if err != nil {
		return cfg, fmt.Errorf("validating configuration: %w", err)
	}
	return cfg, nil
}

func setGlobalConfigFromFlags(flags flagsStore, cfg *ctoml.Config) {
	stringSettings := []struct {
		flagName string
		value    *string
	}{
		{flagName: LogFlag.Name, value: &cfg.Global.LogLvl},
		{flagName: LogRelayLevelFlag.Name, value: &cfg.Log.RelayLvl},
		{flagName: LogPayloadLevelFlag.Name, value: &cfg.Log.PayloadLvl},
		{flagName: LogRPCLevelFlag.Name, value: &cfg.Log.RPCLvl},
	}

	for _, setting := range stringSettings {
		if flags.GlobalIsSet(setting.flagName) {
			*setting.value = flags.GlobalString(setting.flagName)
		}
	}
}

func setRelayConfigFromFlags(flags flagsStore, cfg *ctoml.Config) {
	if flags.IsSet(EndpointFlag.Name) {
		cfg.Relay.Endpoint = flags.String(EndpointFlag.Name)
	}

	if flags.IsSet(FetchProofsFlag.Name) {
		cfg.Relay.FetchProofs = flags.Bool(FetchProofsFlag.Name)
	}

	if flags.IsSet(ContinueOnErrorFlag.Name) {
		cfg.Relay.ContinueOnError = flags.Bool(ContinueOnErrorFlag.Name)
	}

	if flags.IsSet(MetricsAddressFlag.Name) {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Address = flags.String(MetricsAddressFlag.Name)
	}
}

// setupLogger sets the global log level and the log levels of each
// package, defaulting to the global log level.
func setupLogger(cfg ctoml.Config) (err error) {
	globalLevel, err := ctoml.ParseLogLevel(cfg.Global.LogLvl)
	if err != nil {
		return fmt.Errorf("cannot get global log level: %w", err)
	}

	log.Patch(
		log.SetWriter(os.Stderr),
		log.SetFormat(log.FormatConsole),
		log.SetLevel(globalLevel),
	)

	levelsData := []struct {
		name     string
		value    string
		setLevel func(level log.Level)
	}{
		{name: "relay", value: cfg.Log.RelayLvl, setLevel: relay.SetLogLevel},
		{name: "payload", value: cfg.Log.PayloadLvl, setLevel: payload.SetLogLevel},
		{name: "RPC", value: cfg.Log.RPCLvl, setLevel: relay.SetRPCLogLevel},
	}

	for _, levelData := range levelsData {
		if levelData.value == "" {
			continue
		}

		level, err := ctoml.ParseLogLevel(levelData.value)
		if err != nil {
			return fmt.Errorf("cannot get %s log level: %w", levelData.name, err)
		}
		levelData.setLevel(level)
	}

	logger.Debugf("set log configuration: global %s", globalLevel)
	return nil
}
