package storage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StorageRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_gateway_retries_total",
			Help: "Total number of storage gateway retry attempts",
		},
		[]string{"method", "status"},
	)

	StorageRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storage_gateway_request_duration_seconds",
			Help:    "Duration of storage gateway requests including retries",
			Buckets: []float64{.025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "status"},
	)
)
