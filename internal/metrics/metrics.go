// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ChainSafe/beefy-stakes/internal/httpserver"
	"github.com/ChainSafe/beefy-stakes/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

var ErrServerExited = errors.New("metrics server exited unexpectedly")

const (
	stopTimeout   = 30 * time.Second
	scrapeTimeout = 5 * time.Second
)

// Server is a metrics http server
type Server struct {
	cancel context.CancelFunc
	server *httpserver.Server
	done   chan error
}

// NewServer is a constructor for a metrics server serving the
// metrics of the gatherer on /metrics.
func NewServer(address string, gatherer prometheus.Gatherer) (s *Server) {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return &Server{
		server: httpserver.New("metrics", address, m, logger,
			httpserver.WriteTimeout(scrapeTimeout)),
	}
}

// Start will start the metrics server and returns once it listens.
func (s *Server) Start() (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})
	s.done = make(chan error, 1)

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		logger.Infof("serving metrics at http://%s/metrics", s.server.GetAddress())
		return nil
	case err := <-s.done:
		cancel()
		if err != nil {
			return err
		}
		return ErrServerExited
	}
}

// Address returns the address the server listens on.
func (s *Server) Address() string {
	return s.server.GetAddress()
}

// Stop will stop the metrics server
func (s *Server) Stop() (err error) {
	s.cancel()

	timer := time.NewTimer(stopTimeout)
	defer timer.Stop()

	select {
	case err := <-s.done:
		return err
	case <-timer.C:
		return fmt.Errorf("metrics server exit timeout after %s", stopTimeout)
	}
}
