// Package app wires the configuration, boundary I/O and the rotation engine
// into the operations exposed by the CLI.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/transitops/omloop/config"
	coremetrics "github.com/transitops/omloop/core/metrics"
	"github.com/transitops/omloop/core/model"
	"github.com/transitops/omloop/core/reserve"
	"github.com/transitops/omloop/core/rotation"
	"github.com/transitops/omloop/core/stations"
	"github.com/transitops/omloop/core/turnaround"
	"github.com/transitops/omloop/infra/logger"
	"github.com/transitops/omloop/infra/metrics"
	"github.com/transitops/omloop/internal/tripio"
	"github.com/transitops/omloop/pkg/export"
)

// Service orchestrates the rotation engine for one command invocation.
type Service struct {
	cfg         *config.Config
	log         logger.Logger
	sink        coremetrics.Sink
	promEnabled bool
	promPort    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sink coremetrics.Sink = coremetrics.NopSink{}
	if cfg.Metrics.PrometheusEnabled {
		prom, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sink = prom
	}

	return &Service{
		cfg:         cfg,
		log:         logg,
		sink:        sink,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}, nil
}

// StartMetrics exposes the Prometheus endpoint for the lifetime of the
// context when enabled. It returns immediately.
func (s *Service) StartMetrics(ctx context.Context) {
	if !s.promEnabled {
		return
	}
	go func() {
		if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
			s.log.Errorf("prom server: %v", err)
		}
	}()
}

// input is the prepared working set for one run: validated trips, reserve
// duties, the station registry and the effective turnaround map.
type input struct {
	trips      []model.Trip
	duties     []reserve.Duty
	reg        *stations.Registry
	turnaround model.TurnaroundMap
}

func (s *Service) prepare(tripsPath string) (*input, error) {
	trips, duties, err := tripio.Load(tripsPath)
	if err != nil {
		return nil, err
	}
	reg := stations.Build(trips)
	for _, d := range duties {
		reg.RegisterName(d.Station)
	}

	est := turnaround.NewEstimator(reg.Canonical)
	detected := est.Detect(trips, s.cfg.Optimize.TurnaroundScope == "service")
	merged := turnaround.Merge(detected, s.cfg.Optimize.TurnaroundOverrides)

	s.log.Infof("loaded %d trips, %d reserve duties from %s", len(trips), len(duties), tripsPath)
	s.log.Debugw("effective turnaround", map[string]any{
		"scope":   s.cfg.Optimize.TurnaroundScope,
		"minutes": merged,
	})
	return &input{trips: trips, duties: duties, reg: reg, turnaround: merged}, nil
}

func (s *Service) solverOptions(in *input, runID string) rotation.Options {
	return rotation.Options{
		Turnaround:        in.turnaround,
		Canon:             in.reg.Canonical,
		PerService:        s.cfg.Optimize.PerService,
		ServiceConstraint: s.cfg.Optimize.ServiceConstraint,
		Workers:           s.cfg.Optimize.Workers,
		RunID:             runID,
		Logger:            s.log,
		Metrics:           s.sink,
	}
}

// Optimize runs the configured algorithm over the trips at tripsPath and
// writes the rotation document to outPath. Reserve duties are expanded into
// phantom trips before solving, and the resulting coverage is reported.
// A non-empty csvPath additionally writes a roster CSV.
func (s *Service) Optimize(tripsPath, outPath, csvPath string) error {
	in, err := s.prepare(tripsPath)
	if err != nil {
		return err
	}

	working := in.trips
	if phantoms := reserve.PhantomTrips(in.duties, in.trips, in.reg); len(phantoms) > 0 {
		working = append(append([]model.Trip(nil), in.trips...), phantoms...)
		s.log.Infof("expanded %d reserve duties into %d phantom trips", len(in.duties), len(phantoms))
	}

	solver, err := rotation.NewSolver(s.cfg.Optimize.Algorithm, s.solverOptions(in, uuid.NewString()))
	if err != nil {
		return err
	}
	rotations := solver.Solve(working)
	s.log.Infof("%s: %d trips assigned to %d rotations", solver.Algorithm(), len(working), len(rotations))

	for _, cov := range reserve.OptimizeCoverage(rotations, in.duties, in.reg) {
		if cov.Shortfall > 0 {
			s.log.Warnf("reserve %s %s %s-%s: %d of %d slots covered",
				cov.Duty.Station, cov.Duty.Date,
				model.FormatMinutes(cov.Duty.Start), model.FormatMinutes(cov.Duty.End),
				cov.Covered, cov.Required)
		} else {
			s.log.Infof("reserve %s %s: all %d slots covered",
				cov.Duty.Station, cov.Duty.Date, cov.Required)
		}
	}

	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return fmt.Errorf("create roster: %w", err)
		}
		defer f.Close()
		if err := export.WriteCSV(f, rotations); err != nil {
			return fmt.Errorf("write roster: %w", err)
		}
	}
	return tripio.WriteRotations(outPath, rotations)
}
