// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChainSafe/beefy-stakes/dot/relay"
	"github.com/ChainSafe/beefy-stakes/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli"
)

func relayAction(ctx *cli.Context) (err error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	err = setupLogger(cfg)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Enabled {
		server := metrics.NewServer(cfg.Metrics.Address, prometheus.DefaultGatherer)
		err = server.Start()
		if err != nil {
			return fmt.Errorf("starting metrics server: %w", err)
		}
		defer func() {
			stopErr := server.Stop()
			if stopErr != nil {
				logger.Errorf("stopping metrics server: %s", stopErr)
			}
		}()
	}

	logger.Info("connecting to " + cfg.Relay.Endpoint)
	client, err := relay.Dial(runCtx, cfg.Relay.Endpoint)
	if err != nil {
		return err
	}
	defer client.Close()

	errorHandler := relay.AbortOnError
	if cfg.Relay.ContinueOnError {
		errorHandler = relay.ContinueOnError
	}

	relayer, err := relay.NewRelayer(relay.Config{
		Client:       client,
		FetchProofs:  cfg.Relay.FetchProofs,
		ErrorHandler: errorHandler,
	})
	if err != nil {
		return fmt.Errorf("creating relayer: %w", err)
	}

	return relayer.Run(runCtx)
}
