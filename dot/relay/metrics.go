// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package relay

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "beefy_relay"

type metrics struct {
	received            prometheus.Counter
	failed              prometheus.Counter
	proofsFetched       prometheus.Counter
	lastCommitmentBlock prometheus.Gauge
}

func newMetrics(registerer prometheus.Registerer) (m *metrics, err error) {
	m = &metrics{
		received: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "justifications_received_total",
			Help:      "total number of justifications received",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "justifications_failed_total",
			Help:      "total number of justifications which could not be processed",
		}),
		proofsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "mmr_proofs_fetched_total",
			Help:      "total number of MMR proofs fetched",
		}),
		lastCommitmentBlock: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "last_commitment_block",
			Help:      "block number of the last commitment processed",
		}),
	}

	m.received, err = register(registerer, "justifications received counter", m.received)
	if err != nil {
		return nil, err
	}

	m.failed, err = register(registerer, "justifications failed counter", m.failed)
	if err != nil {
		return nil, err
	}

	m.proofsFetched, err = register(registerer, "proofs fetched counter", m.proofsFetched)
	if err != nil {
		return nil, err
	}

	m.lastCommitmentBlock, err = register(registerer, "last commitment block gauge", m.lastCommitmentBlock)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// register registers the collector, returning the collector
// already registered under the same description if any.
func register[T prometheus.Collector](registerer prometheus.Registerer,
	name string, collector T) (registered T, err error) {
	err = registerer.Register(collector)
	if err == nil {
		return collector, nil
	}

	var alreadyRegistered prometheus.AlreadyRegisteredError
	if errors.As(err, &alreadyRegistered) {
		existing, ok := alreadyRegistered.ExistingCollector.(T)
		if ok {
			return existing, nil
		}
	}
	return registered, fmt.Errorf("cannot register %s: %w", name, err)
}
