// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CatalogRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sweaty_catalog_requests_total",
			Help: "Catalog API requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	TokenExchanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sweaty_catalog_token_exchanges_total",
			Help: "Client-credentials exchanges by outcome",
		},
		[]string{"outcome"},
	)

	CatalogBatchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sweaty_catalog_batch_failures_total",
			Help: "Batched id lookups that failed and were skipped",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sweaty_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	GroundingFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sweaty_recommend_grounding_fallbacks_total",
			Help: "Recommendations that fell back to the ungrounded prompt",
		},
	)

	RecommendationParseFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sweaty_recommend_parse_failures_total",
			Help: "Model replies that were not valid JSON",
		},
	)

	TitleResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sweaty_recommend_title_resolutions_total",
			Help: "Suggested titles by resolution source (grounding, search, miss)",
		},
		[]string{"source"},
	)

	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sweaty_rate_limited_requests_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"action"},
	)
)
