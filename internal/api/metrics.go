package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Metrics ────────────────────────────────────────────────────────────────

var (
	mutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agencyflow_mutations_total",
		Help: "Planner mutations by operation and outcome.",
	}, []string{"op", "outcome"})

	captionRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agencyflow_caption_requests_total",
		Help: "Caption generation requests by outcome.",
	}, []string{"outcome"})
)

// recordMutation tracks one planner mutation attempt.
func recordMutation(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	mutationsTotal.WithLabelValues(op, outcome).Inc()
}
