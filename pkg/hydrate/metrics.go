package hydrate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bindingsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "seidr",
		Subsystem: "hydrate",
		Name:      "bindings_applied_total",
		Help:      "Total number of bindings reapplied during hydration",
	})

	bindingSkips = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "seidr",
		Subsystem: "hydrate",
		Name:      "binding_skips_total",
		Help:      "Total number of bindings skipped due to missing elements or observables",
	})
)
