package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/PedroPCardonaA/Parallel-puzzle-generator-and-solver/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	solveStarts    prometheus.Counter
	solveDuration  *prometheus.HistogramVec
	activeWorkers  prometheus.Gauge
	scannedTotal   prometheus.Counter
	workerOutcomes *prometheus.CounterVec
	workerDuration prometheus.Histogram
	racesLost      prometheus.Counter
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "solver" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "solver"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.solveStarts = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "solve",
			Name:      "runs_total",
			Help:      "Total solve runs started.",
		})

		p.solveDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "solve",
			Name:      "duration_seconds",
			Help:      "Wall time of completed solve runs in seconds by outcome.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2.5, 12), // 1ms .. ~4m
		}, []string{"outcome"})

		p.activeWorkers = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "solve",
			Name:      "active_workers",
			Help:      "Number of workers spawned by the most recent solve run.",
		})

		p.scannedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "solve",
			Name:      "candidates_scanned_total",
			Help:      "Total candidates evaluated across all solve runs.",
		})

		p.workerOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "worker",
			Name:      "outcomes_total",
			Help:      "Total worker terminal states by state.",
		}, []string{"state"})

		p.workerDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "worker",
			Name:      "scan_duration_seconds",
			Help:      "Time workers spent scanning their range in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2.5, 12),
		})

		p.racesLost = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "worker",
			Name:      "races_lost_total",
			Help:      "Workers that found a valid candidate after another worker won.",
		})

		collectors := []prometheus.Collector{
			p.solveStarts,
			p.solveDuration,
			p.activeWorkers,
			p.scannedTotal,
			p.workerOutcomes,
			p.workerDuration,
			p.racesLost,
		}
		for _, c := range collectors {
			// AlreadyRegisteredError is tolerated so two collectors with the
			// same namespace can share a registry.
			if err := p.reg.Register(c); err != nil {
				if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
					panic(err)
				}
			}
		}
	})
}

// RecordSolveStarted records the start of a solve run.
func (p *PrometheusCollector) RecordSolveStarted(workers int, _ /* bound */ uint64) {
	p.ensureRegistered()
	p.solveStarts.Inc()
	p.activeWorkers.Set(float64(workers))
}

// RecordSolveDuration records the wall time of a completed solve run.
func (p *PrometheusCollector) RecordSolveDuration(duration float64, found bool) {
	p.ensureRegistered()
	outcome := "not_found"
	if found {
		outcome = "found"
	}
	p.solveDuration.WithLabelValues(outcome).Observe(duration)
	p.activeWorkers.Set(0)
}

// RecordCandidatesScanned adds to the running total of evaluated candidates.
func (p *PrometheusCollector) RecordCandidatesScanned(count uint64) {
	p.ensureRegistered()
	p.scannedTotal.Add(float64(count))
}

// RecordWorkerOutcome records a worker reaching a terminal state.
func (p *PrometheusCollector) RecordWorkerOutcome(state types.State, duration float64) {
	p.ensureRegistered()
	p.workerOutcomes.WithLabelValues(state.String()).Inc()
	p.workerDuration.Observe(duration)
}

// RecordRaceLost records a worker losing the publication race.
func (p *PrometheusCollector) RecordRaceLost() {
	p.ensureRegistered()
	p.racesLost.Inc()
}
