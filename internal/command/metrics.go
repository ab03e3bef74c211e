// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

package command

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Status constants for parse metrics.
const (
	StatusSuccess  = "success"
	StatusFallback = "fallback"
	StatusUnknown  = "unknown"
	StatusEmpty    = "empty"
)

// Parses is the counter for single-command parses.
// Use RegisterMetrics to register this with a Prometheus registry.
var Parses = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "keyline_parses_total",
		Help: "Total number of single-command parses by status",
	},
	[]string{"status"},
)

// CompoundSplits is the counter for input lines split on the chaining
// delimiter. Use RegisterMetrics to register this with a Prometheus
// registry.
var CompoundSplits = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "keyline_compound_splits_total",
		Help: "Total number of input lines split into chained commands",
	},
)

// AliasExpansions is the counter for alias expansions.
// Use RegisterMetrics to register this with a Prometheus registry.
var AliasExpansions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "keyline_alias_expansions_total",
		Help: "Total number of alias expansions",
	},
	[]string{"alias"},
)

// RegisterMetrics registers command package metrics with the given
// Prometheus registry. This must be called at startup to make metrics
// available on /metrics. Panics if registration fails (following
// prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(Parses)
	reg.MustRegister(CompoundSplits)
	reg.MustRegister(AliasExpansions)
}

// RecordParse increments the parse counter for the given status (use
// Status* constants).
func RecordParse(status string) {
	Parses.WithLabelValues(status).Inc()
}

// RecordCompoundSplit increments the compound split counter.
func RecordCompoundSplit() {
	CompoundSplits.Inc()
}

// RecordAliasExpansion increments the alias expansion counter.
func RecordAliasExpansion(alias string) {
	AliasExpansions.WithLabelValues(alias).Inc()
}
