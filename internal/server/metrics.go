package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hairhue",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests, by route and status.",
	}, []string{"route", "status"})

	httpRequestDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hairhue",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds, by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	validationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hairhue",
		Name:      "validation_failures_total",
		Help:      "Colour choices rejected by the validator, by reason.",
	}, []string{"reason"})

	transformsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hairhue",
		Name:      "transforms_total",
		Help:      "Image transformations, by provider and outcome.",
	}, []string{"provider", "outcome"})
)
