package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

const _Namespace = "timeslots"

// Metrics counts assignment outcomes of one process run.
type Metrics struct {
	registry *prometheus.Registry

	assignments *prometheus.CounterVec
	shiftTotal  prometheus.Counter
	shiftDelay  prometheus.Histogram
}

func NewMetrics() *Metrics {
	result := Metrics{
		registry: prometheus.NewRegistry(),

		assignments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: _Namespace,
				Name:      "assignments_total",
				Help:      "Assignments processed, by outcome.",
			},
			[]string{"outcome"},
		),
		shiftTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: _Namespace,
				Name:      "shifted_assignments_total",
				Help:      "Assignments placed later than requested.",
			},
		),
		shiftDelay: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: _Namespace,
				Name:      "shift_delay_seconds",
				Help:      "Distance between requested and placed start of shifted assignments.",
				Buckets:   prometheus.ExponentialBuckets(60, 4, 8),
			},
		),
	}

	result.registry.MustRegister(
		result.assignments,
		result.shiftTotal,
		result.shiftDelay,
	)

	return &result
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveAssign records a plain insert outcome.
func (m *Metrics) ObserveAssign(added bool) {
	m.assignments.WithLabelValues(
		outcome(added, "added", "conflict"),
	).Inc()
}

// ObserveFailure records an assignment rejected for invalid input.
func (m *Metrics) ObserveFailure() {
	m.assignments.WithLabelValues("failed").Inc()
}

// ObserveShift records a placed assignment, in seconds on the time axis.
func (m *Metrics) ObserveShift(requestedStart, placedStart int64) {
	m.assignments.WithLabelValues("added").Inc()

	if placedStart == requestedStart {
		return
	}

	m.shiftTotal.Inc()
	m.shiftDelay.Observe(float64(placedStart - requestedStart))
}

// WriteTextfile dumps the metrics in the node exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func outcome(condition bool, whenTrue, whenFalse string) string {
	if condition {
		return whenTrue
	}

	return whenFalse
}
