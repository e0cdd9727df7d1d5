// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReadingsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "envmon_readings_generated_total",
		Help: "Synthetic readings produced across all generation cycles.",
	})
	AlertsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "envmon_alerts_emitted_total",
		Help: "Alerts raised for warning or critical readings.",
	})
	PersistenceFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "envmon_persistence_failures_total",
		Help: "Reading writes dropped or failed against the history backend.",
	})
	Broadcasts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "envmon_broadcasts_total",
		Help: "Completed broadcast cycles delivered to observers.",
	})
	ConnectedObservers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "envmon_connected_observers",
		Help: "Currently registered observers.",
	})
)
