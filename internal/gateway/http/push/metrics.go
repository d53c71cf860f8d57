package push

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PushSendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "push_gateway_sends_total",
			Help: "Total number of push provider send attempts",
		},
		[]string{"status"},
	)

	PushSendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "push_gateway_send_duration_seconds",
			Help:    "Duration of push provider requests",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"status"},
	)
)
