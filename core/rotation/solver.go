package rotation

import (
	"runtime"
	"sync"
	"time"

	"github.com/transitops/omloop/core/logger"
	"github.com/transitops/omloop/core/metrics"
	"github.com/transitops/omloop/core/model"
	"github.com/transitops/omloop/core/turnaround"
)

// Options configures a Solver.
type Options struct {
	// Turnaround gives the minimum connection minutes per vehicle type.
	// Nil selects the stock defaults.
	Turnaround model.TurnaroundMap
	// Canon maps raw location codes to canonical identities. Nil leaves
	// codes untouched.
	Canon Canonicalizer
	// PerService splits every (date, type) partition further by service,
	// guaranteeing no chain crosses service boundaries.
	PerService bool
	// ServiceConstraint keeps revenue-to-revenue connections within one
	// service without splitting partitions; reserve trips may bridge.
	// Ignored when PerService is set.
	ServiceConstraint bool
	// Workers bounds the number of partitions solved concurrently.
	// Zero or negative selects GOMAXPROCS.
	Workers int
	// RunID tags solve results for observability. May be empty.
	RunID   string
	Logger  logger.Logger
	Metrics metrics.Sink
}

// Solver runs one assignment algorithm over every partition of a trip set.
// A solver is stateless across Solve calls; each run is a pure batch
// computation over its input.
type Solver struct {
	algo Algorithm
	opts Options
}

// NewSolver builds a solver for the named algorithm.
func NewSolver(algorithm string, opts Options) (*Solver, error) {
	algo, err := New(algorithm)
	if err != nil {
		return nil, err
	}
	if opts.Turnaround == nil {
		opts.Turnaround = turnaround.Defaults()
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NopSink{}
	}
	return &Solver{algo: algo, opts: opts}, nil
}

// Algorithm returns the name of the configured algorithm.
func (s *Solver) Algorithm() string { return s.algo.Name() }

// Solve partitions the trips, solves every partition and assembles the
// rotation records. Partitions are independent and solved concurrently;
// assembly runs sequentially in deterministic key order so vehicle ids and
// output order are identical across runs. An empty input yields zero
// rotations.
func (s *Solver) Solve(trips []model.Trip) []model.Rotation {
	groups := Partition(trips, s.opts.PerService)
	keys := SortedKeys(groups)

	check := Checker{
		Turnaround:  s.opts.Turnaround,
		Canon:       s.opts.Canon,
		SameService: s.opts.ServiceConstraint && !s.opts.PerService,
	}

	type partResult struct {
		trips  []model.Trip
		chains [][]int
		dur    time.Duration
	}
	results := make([]partResult, len(keys))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.opts.Workers)
	for i, key := range keys {
		wg.Add(1)
		go func(i int, group []model.Trip) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			start := time.Now()
			SortTrips(group)
			g := BuildGraph(group, check)
			chains := s.algo.Chains(group, g)
			results[i] = partResult{trips: group, chains: chains, dur: time.Since(start)}
		}(i, groups[key])
	}
	wg.Wait()

	var asm Assembler
	var rotations []model.Rotation
	records := make([]metrics.SolveResult, 0, len(keys))
	for i, key := range keys {
		rots := asm.Build(results[i].trips, key, results[i].chains)
		rotations = append(rotations, rots...)

		idle := 0
		for _, r := range rots {
			idle += r.IdleMinutes()
		}
		records = append(records, metrics.SolveResult{
			RunID:       s.opts.RunID,
			Algorithm:   s.algo.Name(),
			Date:        key.Date,
			VehicleType: key.VehicleType,
			Service:     key.Service,
			Trips:       len(results[i].trips),
			Rotations:   len(rots),
			IdleMinutes: idle,
			Duration:    results[i].dur,
		})
		s.opts.Logger.Debugw("partition solved", map[string]any{
			"partition": key.String(),
			"trips":     len(results[i].trips),
			"rotations": len(rots),
			"idle_min":  idle,
		})
	}

	if err := s.opts.Metrics.RecordSolveResult(records); err != nil {
		s.opts.Logger.Errorf("metrics error: %v", err)
	}
	return rotations
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
