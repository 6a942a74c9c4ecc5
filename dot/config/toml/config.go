// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ChainSafe/beefy-stakes/internal/log"
	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
)

// Config is a collection of configurations throughout the system
type Config struct {
	Global  GlobalConfig  `toml:"global,omitempty"`
	Log     LogConfig     `toml:"log,omitempty"`
	Relay   RelayConfig   `toml:"relay,omitempty"`
	Metrics MetricsConfig `toml:"metrics,omitempty"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	LogLvl string `toml:"log,omitempty" validate:"loglevel"`
}

// LogConfig represents the log levels for individual packages.
// An empty level defaults to the global log level.
type LogConfig struct {
	RelayLvl   string `toml:"relay,omitempty" validate:"omitempty,loglevel"`
	PayloadLvl string `toml:"payload,omitempty" validate:"omitempty,loglevel"`
	RPCLvl     string `toml:"rpc,omitempty" validate:"omitempty,loglevel"`
}

// RelayConfig is to marshal/unmarshal toml relay config vars
type RelayConfig struct {
	Endpoint        string `toml:"endpoint,omitempty" validate:"required,url"`
	FetchProofs     bool   `toml:"fetch-proofs"`
	ContinueOnError bool   `toml:"continue-on-error"`
}

// MetricsConfig is to marshal/unmarshal toml metrics config vars
type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Address string `toml:"address,omitempty" validate:"hostname_port"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Global: GlobalConfig{
			LogLvl: log.Info.String(),
		},
		Relay: RelayConfig{
			Endpoint: "ws://127.0.0.1:9944",
		},
		Metrics: MetricsConfig{
			Address: "localhost:9616",
		},
	}
}

// LoadFile decodes the toml file at the given path on top of the
// default configuration.
func LoadFile(path string) (cfg Config, err error) {
	cfg = Default()

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return cfg, err
	}

	err = toml.NewDecoder(file).Decode(&cfg)
	if err != nil {
		_ = file.Close()
		return cfg, fmt.Errorf("decoding toml file %s: %w", path, err)
	}

	err = file.Close()
	if err != nil {
		return cfg, fmt.Errorf("closing toml file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every configuration value is valid.
func (c Config) Validate() error {
	validate := validator.New()
	err := validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := ParseLogLevel(fl.Field().String())
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("registering log level validation: %w", err)
	}

	return validate.Struct(c)
}

var ErrLogLevelIntegerOutOfRange = errors.New("log level integer can only be between 0 and 5 included")

// ParseLogLevel parses a log level given either as an integer
// between 0 and 5 or as a level name.
func ParseLogLevel(logLevelString string) (logLevel log.Level, err error) {
	levelInt, err := strconv.Atoi(logLevelString)
	if err == nil { // level given as an integer
		if levelInt < 0 || levelInt > 5 {
			return 0, fmt.Errorf("%w: log level given: %d", ErrLogLevelIntegerOutOfRange, levelInt)
		}
		logLevel = log.Level(levelInt)
		return logLevel, nil
	}

	logLevel, err = log.ParseLevel(logLevelString)
	if err != nil {
		return 0, fmt.Errorf("cannot parse log level string: %w", err)
	}

	return logLevel, nil
}
