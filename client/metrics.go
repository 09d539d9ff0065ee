package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wanderplan_client",
			Name:      "requests_total",
			Help:      "Itinerary service calls, labelled by operation and outcome.",
		},
		[]string{"op", "outcome"},
	)
)

const (
	outcomeOK        = "ok"
	outcomeRejected  = "rejected"
	outcomeServer    = "server_error"
	outcomeMalformed = "malformed"
	outcomeNetwork   = "network_error"
)

// observe records one finished call on the requests counter.
func observe(op string, err error) {
	switch {
	case err == nil:
		requestsTotal.WithLabelValues(op, outcomeOK).Inc()
	case IsValidation(err):
		requestsTotal.WithLabelValues(op, outcomeRejected).Inc()
	case IsMalformedResponse(err):
		requestsTotal.WithLabelValues(op, outcomeMalformed).Inc()
	case IsNetworkError(err):
		requestsTotal.WithLabelValues(op, outcomeNetwork).Inc()
	default:
		requestsTotal.WithLabelValues(op, outcomeServer).Inc()
	}
}
