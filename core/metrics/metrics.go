// Package metrics defines the observability contract of the rotation engine.
// Implementations live under infra/metrics.
package metrics

import "time"

// SolveResult describes the outcome of optimizing one partition.
type SolveResult struct {
	RunID       string
	Algorithm   string
	Date        string
	VehicleType string
	Service     string
	Trips       int
	Rotations   int
	IdleMinutes int
	Duration    time.Duration
}

// Sink records solve results for observability purposes.
type Sink interface {
	RecordSolveResult(results []SolveResult) error
}

// NopSink discards all records.
type NopSink struct{}

func (NopSink) RecordSolveResult([]SolveResult) error { return nil }

// MultiSink fans solve results out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSolveResult forwards the records to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordSolveResult(results []SolveResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordSolveResult(results); err != nil {
			return err
		}
	}
	return nil
}
