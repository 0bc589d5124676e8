package app

import (
	"sort"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/transitops/omloop/core/model"
	"github.com/transitops/omloop/core/rotation"
	"github.com/transitops/omloop/core/turnaround"
)

// AlgorithmResult summarizes the rotation set produced by one algorithm.
type AlgorithmResult struct {
	Algorithm        string  `json:"algorithm"`
	Vehicles         int     `json:"vehicles"`
	TotalIdleMinutes int     `json:"total_idle_minutes"`
	MeanIdleMinutes  float64 `json:"mean_idle_minutes"`
	StdDevIdle       float64 `json:"stddev_idle_minutes"`
	TotalRideMinutes int     `json:"total_ride_minutes"`
	MeanDutyMinutes  float64 `json:"mean_duty_minutes"`
}

// CompareReport holds the side-by-side results of every algorithm run on the
// same input with identical settings.
type CompareReport struct {
	Trips   int               `json:"trips"`
	Results []AlgorithmResult `json:"results"`
}

// Compare runs all algorithms on the trips at tripsPath and summarizes the
// outcomes. Reserve duties are left out so the numbers reflect the scheduled
// work alone.
func (s *Service) Compare(tripsPath string) (*CompareReport, error) {
	in, err := s.prepare(tripsPath)
	if err != nil {
		return nil, err
	}

	report := &CompareReport{Trips: len(in.trips)}
	runID := uuid.NewString()
	for _, name := range rotation.Names() {
		solver, err := rotation.NewSolver(name, s.solverOptions(in, runID))
		if err != nil {
			return nil, err
		}
		rotations := solver.Solve(in.trips)
		report.Results = append(report.Results, summarize(name, rotations))
	}
	return report, nil
}

func summarize(name string, rotations []model.Rotation) AlgorithmResult {
	res := AlgorithmResult{Algorithm: name, Vehicles: len(rotations)}
	idle := make([]float64, 0, len(rotations))
	duty := make([]float64, 0, len(rotations))
	for _, r := range rotations {
		m := r.IdleMinutes()
		res.TotalIdleMinutes += m
		res.TotalRideMinutes += r.RideMinutes()
		idle = append(idle, float64(m))
		duty = append(duty, float64(r.DutyMinutes()))
	}
	if len(idle) > 0 {
		res.MeanIdleMinutes = stat.Mean(idle, nil)
		res.StdDevIdle = stat.StdDev(idle, nil)
		res.MeanDutyMinutes = stat.Mean(duty, nil)
	}
	return res
}

// ServiceTurnaround is the diagnostic estimate for one service.
type ServiceTurnaround struct {
	Service     string `json:"service"`
	VehicleType string `json:"vehicle_type"`
	Minutes     int    `json:"minutes"`
	Observed    bool   `json:"observed"`
}

// TurnaroundReport pairs the effective per-type turnaround map with the
// per-service detail behind it.
type TurnaroundReport struct {
	Scope    string              `json:"scope"`
	PerType  map[string]int      `json:"per_type"`
	Services []ServiceTurnaround `json:"services"`
}

// Turnaround reports the turnaround times that optimization would use for
// the trips at tripsPath, with per-service diagnostics.
func (s *Service) Turnaround(tripsPath string) (*TurnaroundReport, error) {
	in, err := s.prepare(tripsPath)
	if err != nil {
		return nil, err
	}

	report := &TurnaroundReport{
		Scope:   s.cfg.Optimize.TurnaroundScope,
		PerType: map[string]int(in.turnaround),
	}
	est := turnaround.NewEstimator(in.reg.Canonical)
	for service, se := range est.DetectPerService(in.trips) {
		report.Services = append(report.Services, ServiceTurnaround{
			Service:     service,
			VehicleType: se.VehicleType,
			Minutes:     se.Minutes,
			Observed:    se.Observed,
		})
	}
	sort.Slice(report.Services, func(i, j int) bool {
		return report.Services[i].Service < report.Services[j].Service
	})
	return report, nil
}
