package core

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder captures the outcome of address book operations.
type MetricsRecorder interface {
	Observe(operation string, success bool, duration time.Duration)
	SetPatientCount(n int)
}

type noopMetrics struct{}

func (noopMetrics) Observe(string, bool, time.Duration) {}
func (noopMetrics) SetPatientCount(int)                 {}

// PrometheusRecorder records book operations on its own registry so the metrics
// can be exported to a textfile without a listening endpoint.
type PrometheusRecorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
	patients   prometheus.Gauge
}

// NewPrometheusRecorder registers the casetrack collectors on a fresh registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &PrometheusRecorder{
		registry: reg,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "casetrack_book_operations_total",
			Help: "Total address book operations by outcome",
		}, []string{"operation", "result"}),
		durations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "casetrack_book_operation_duration_seconds",
			Help:    "Duration of address book operations",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"operation"}),
		patients: factory.NewGauge(prometheus.GaugeOpts{
			Name: "casetrack_patients",
			Help: "Number of patients currently in the address book",
		}),
	}
}

// Observe records an operation outcome.
func (r *PrometheusRecorder) Observe(operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	result := "error"
	if success {
		result = "success"
	}
	r.operations.WithLabelValues(operation, result).Inc()
	r.durations.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetPatientCount updates the patient gauge.
func (r *PrometheusRecorder) SetPatientCount(n int) {
	r.patients.Set(float64(n))
}

// Registry exposes the underlying registry for gathering.
func (r *PrometheusRecorder) Registry() *prometheus.Registry { return r.registry }

// WriteTextfile writes the current metrics in the node-exporter textfile format.
func (r *PrometheusRecorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
