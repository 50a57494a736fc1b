// Package metrics holds the Prometheus collectors of the service.
// Collectors register on the default registry, which /metrics exposes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drone_delivery_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "drone_delivery_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "path", "status"},
	)

	orderOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drone_delivery_order_operations_total",
			Help: "Total number of order and drone operations by outcome",
		},
		[]string{"operation", "status"},
	)

	activeSimulations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "drone_delivery_active_simulations",
			Help: "Number of delivery simulations currently running",
		},
	)

	trackingSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "drone_delivery_tracking_subscribers",
			Help: "Number of live tracking subscribers",
		},
	)

	orphanedDronesReleased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "drone_delivery_orphaned_drones_released_total",
			Help: "Busy drones released because no delivering order referenced them",
		},
	)
)

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, path, status string, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

// RecordOrderOperation counts an operation such as "assign_drone" as success or error.
func RecordOrderOperation(operation string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	orderOperations.WithLabelValues(operation, status).Inc()
}

// SimulationStarted and SimulationStopped track running delivery simulations.
func SimulationStarted() { activeSimulations.Inc() }

func SimulationStopped() { activeSimulations.Dec() }

// SubscriberAdded and SubscriberRemoved track live tracking subscribers.
func SubscriberAdded() { trackingSubscribers.Inc() }

func SubscriberRemoved() { trackingSubscribers.Dec() }

// OrphanedDronesReleased counts drones returned to service by the reconciler.
func OrphanedDronesReleased(n int) {
	if n > 0 {
		orphanedDronesReleased.Add(float64(n))
	}
}
