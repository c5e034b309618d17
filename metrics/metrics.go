// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 Lyra Authors

// Package metrics exposes instrumentation for signing activity. Counters
// register on the default Prometheus registry and are labeled by key type.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SignOperations counts signatures produced through a signer.
	SignOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lyra_crypto_sign_operations_total",
		Help: "Number of signatures produced, by key type.",
	}, []string{"key_type"})

	// VerifyOperations counts signature verifications performed through a
	// signer.
	VerifyOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lyra_crypto_verify_operations_total",
		Help: "Number of signature verifications performed, by key type.",
	}, []string{"key_type"})

	// VerifyFailures counts verifications that did not validate.
	VerifyFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lyra_crypto_verify_failures_total",
		Help: "Number of signature verifications that failed, by key type.",
	}, []string{"key_type"})
)
