package live

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	activeConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "seidr",
		Subsystem: "live",
		Name:      "connections",
		Help:      "Number of currently connected live clients",
	})

	updatesSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "seidr",
		Subsystem: "live",
		Name:      "updates_sent_total",
		Help:      "Total number of update frames written to live clients",
	})
)
