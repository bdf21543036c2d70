package sortedset

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sortedset_operations_total",
		Help: "The total number of mutating operations applied to a sorted set",
	}, []string{"set", "op"})

	elementsAdded = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sortedset_elements_added_total",
		Help: "The total number of elements inserted into a sorted set",
	}, []string{"set"})

	elementsRemoved = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sortedset_elements_removed_total",
		Help: "The total number of elements removed from a sorted set",
	}, []string{"set"})

	setSize = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "sortedset_size",
		Help: "The number of elements currently held by a sorted set",
	}, []string{"set"})
)
