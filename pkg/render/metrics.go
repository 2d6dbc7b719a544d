package render

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	renderPasses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "seidr",
		Subsystem: "render",
		Name:      "passes_total",
		Help:      "Total number of completed server render passes",
	})

	capturedRoots = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "seidr",
		Subsystem: "render",
		Name:      "captured_roots_total",
		Help:      "Total number of root observable values captured into hydration payloads",
	})
)
