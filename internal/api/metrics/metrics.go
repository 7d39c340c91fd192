// Package metrics defines and registers all custom Prometheus metrics for
// the labelview service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at import time; the router
// exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "labelview"

// LookupsTotal counts label resolutions.
// Labels:
//   - shape: "identifier", "batch", or "kit"
//   - outcome: "ok", "error", "invalid", or "superseded"
var LookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookups_total",
		Help:      "Total number of label lookups, by lookup shape and outcome.",
	},
	[]string{"shape", "outcome"},
)

// LookupDuration measures end-to-end resolution time for successful lookups.
var LookupDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "lookup_duration_seconds",
		Help:      "Duration of successful label lookups, including upstream round-trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"shape"},
)

// UpstreamRequestsTotal counts requests issued to the upstream API.
// Labels:
//   - host: the base URL the request was sent to
//   - outcome: "ok" or "error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of upstream API requests, by host and outcome.",
	},
	[]string{"host", "outcome"},
)

// UpstreamFailoversTotal counts cross-host retries after a failed request.
var UpstreamFailoversTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_failovers_total",
		Help:      "Total number of requests retried against an alternate upstream host.",
	},
)

// HealthProbesTotal counts base-URL resolution probes.
// Label:
//   - result: "ok" or "fail"
var HealthProbesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "health_probes_total",
		Help:      "Total number of upstream health probes, by result.",
	},
	[]string{"result"},
)

// SpeechEventsTotal counts read-aloud state machine events.
// Label:
//   - event: "start", "stop", "ended", "error", or "busy"
var SpeechEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "speech_events_total",
		Help:      "Total number of read-aloud events processed by the speaker.",
	},
	[]string{"event"},
)
