// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Quotes
	QuotesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_quotes_total",
			Help: "Quotes computed, by pair and availability.",
		},
		[]string{"pair", "available"},
	)

	// Lifecycle
	TransactionsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transactions_created_total",
			Help: "Transactions created, by pair.",
		},
		[]string{"pair"},
	)
	TransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transaction_transitions_total",
			Help: "Status transitions attempted, by target status and outcome.",
		},
		[]string{"to", "result"}, // ok|invalid|missing_proof|not_authorized|conflict|error
	)

	// Rate configuration cache
	RateCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_config_cache_lookups_total",
			Help: "Rate configuration cache lookups, by result.",
		},
		[]string{"result"}, // hit|miss|error
	)

	registerOnce sync.Once
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

// Init registers every collector with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestLatency,
			QuotesTotal,
			TransactionsCreated,
			TransitionsTotal,
			RateCacheLookups,
		)
	})
}
