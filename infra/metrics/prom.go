package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/transitops/omloop/core/metrics"
)

// PromSink records solve results in Prometheus metrics.
type PromSink struct {
	partitions *prometheus.CounterVec
	rotations  *prometheus.CounterVec
	idle       *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewPromSink registers solver metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	labels := []string{"algorithm", "vehicle_type"}
	partitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "omloop_partitions_total",
		Help: "Total number of partitions solved",
	}, labels)
	rotations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "omloop_rotations_total",
		Help: "Total number of rotations produced",
	}, labels)
	idle := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "omloop_idle_minutes_total",
		Help: "Total idle minutes across produced rotations",
	}, labels)
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "omloop_partition_solve_seconds",
		Help:    "Time spent solving a single partition",
		Buckets: prometheus.DefBuckets,
	}, labels)

	for _, c := range []prometheus.Collector{partitions, rotations, idle, duration} {
		if err := reg.Register(c); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			switch existing := are.ExistingCollector.(type) {
			case *prometheus.CounterVec:
				switch c {
				case partitions:
					partitions = existing
				case rotations:
					rotations = existing
				case idle:
					idle = existing
				}
			case *prometheus.HistogramVec:
				duration = existing
			}
		}
	}

	return &PromSink{partitions: partitions, rotations: rotations, idle: idle, duration: duration}, nil
}

// RecordSolveResult updates the counters and histograms for each partition.
func (s *PromSink) RecordSolveResult(results []metrics.SolveResult) error {
	for _, r := range results {
		s.partitions.WithLabelValues(r.Algorithm, r.VehicleType).Inc()
		s.rotations.WithLabelValues(r.Algorithm, r.VehicleType).Add(float64(r.Rotations))
		s.idle.WithLabelValues(r.Algorithm, r.VehicleType).Add(float64(r.IdleMinutes))
		s.duration.WithLabelValues(r.Algorithm, r.VehicleType).Observe(r.Duration.Seconds())
	}
	return nil
}
