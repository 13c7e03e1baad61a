package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the public server.
type Metrics struct {
	Requests      *prometheus.CounterVec
	Latency       *prometheus.HistogramVec
	PeopleCreated prometheus.Counter
	Rejected      *prometheus.CounterVec
}

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "commdir_http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		Latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "commdir_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		PeopleCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "commdir_people_created_total",
			Help: "People stored through the API",
		}),
		Rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "commdir_people_rejected_total",
			Help: "Create requests rejected, by reason (malformed, missing_fields, invalid)",
		}, []string{"reason"}),
	}
}
