// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"time"
)

// Option sets an optional setting of the HTTP server.
type Option func(s *optionalSettings)

type optionalSettings struct {
	readTimeout       time.Duration
	readHeaderTimeout time.Duration
	writeTimeout      time.Duration
	shutdownTimeout   time.Duration
}

func newOptionalSettings(options []Option) (settings optionalSettings) {
	settings = optionalSettings{
		readTimeout:       10 * time.Second,
		readHeaderTimeout: time.Second,
		writeTimeout:      10 * time.Second,
		shutdownTimeout:   3 * time.Second,
	}
	for _, option := range options {
		option(&settings)
	}
	return settings
}

// ReadTimeout overrides the default 10s timeout to read a request.
func ReadTimeout(timeout time.Duration) Option {
	return func(s *optionalSettings) { s.readTimeout = timeout }
}

// ReadHeaderTimeout overrides the default 1s timeout to read request headers.
func ReadHeaderTimeout(timeout time.Duration) Option {
	return func(s *optionalSettings) { s.readHeaderTimeout = timeout }
}

// WriteTimeout overrides the default 10s timeout to write a response.
func WriteTimeout(timeout time.Duration) Option {
	return func(s *optionalSettings) { s.writeTimeout = timeout }
}

// ShutdownTimeout overrides the default 3s graceful shutdown timeout.
func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *optionalSettings) { s.shutdownTimeout = timeout }
}
