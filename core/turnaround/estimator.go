// Package turnaround derives the minimum realistic connection time per
// vehicle type from observed schedule data.
package turnaround

import (
	"sort"

	"github.com/transitops/omloop/core/model"
)

const (
	// Floor is the absolute minimum turnaround in minutes. Detected gaps
	// below the floor are treated as coincidental and ignored.
	Floor = 2
	// Fallback is used for vehicle types without a qualifying observation.
	Fallback = 8
)

// Defaults returns the stock turnaround minutes per vehicle type, used when
// detection is disabled and no overrides are supplied.
func Defaults() model.TurnaroundMap {
	return model.TurnaroundMap{
		"Dubbeldekker": 15,
		"Touringcar":   8,
		"Lagevloerbus": 12,
		"Midi bus":     10,
		"Taxibus":      5,
	}
}

// Canonicalizer maps a raw location code to its canonical identity.
type Canonicalizer func(code string) string

// Estimator detects minimum turnaround times from a trip set.
type Estimator struct {
	canon Canonicalizer
}

// NewEstimator returns an estimator using the given location canonicalizer.
// A nil canonicalizer leaves codes untouched.
func NewEstimator(canon Canonicalizer) *Estimator {
	if canon == nil {
		canon = func(code string) string { return code }
	}
	return &Estimator{canon: canon}
}

type gapKey struct {
	vehicleType string
	date        string
	location    string
	service     string
}

// Detect estimates the minimum turnaround per vehicle type. For every
// canonical location it pairs arrivals with the earliest departure at least
// Floor minutes later and keeps the smallest such gap per type. Scoping is
// always per date; withinService additionally restricts pairs to the same
// service, which gives a conservative baseline immune to coincidental short
// gaps between unrelated services. Types without a qualifying observation
// get Fallback.
func (e *Estimator) Detect(trips []model.Trip, withinService bool) model.TurnaroundMap {
	arrivals := make(map[gapKey][]int)
	departures := make(map[gapKey][]int)

	for _, t := range trips {
		arrKey := gapKey{t.VehicleType, t.Date, e.canon(t.Destination), ""}
		depKey := gapKey{t.VehicleType, t.Date, e.canon(t.Origin), ""}
		if withinService {
			arrKey.service = t.Service
			depKey.service = t.Service
		}
		arrivals[arrKey] = append(arrivals[arrKey], t.Arrival)
		departures[depKey] = append(departures[depKey], t.Departure)
	}

	minGap := make(map[string]int)
	for key, arrTimes := range arrivals {
		depTimes, ok := departures[key]
		if !ok {
			continue
		}
		sort.Ints(depTimes)
		for _, arr := range arrTimes {
			if gap, ok := smallestGap(arr, depTimes); ok {
				if cur, seen := minGap[key.vehicleType]; !seen || gap < cur {
					minGap[key.vehicleType] = gap
				}
			}
		}
	}

	result := make(model.TurnaroundMap)
	for _, t := range trips {
		if gap, ok := minGap[t.VehicleType]; ok {
			result[t.VehicleType] = gap
		} else {
			result[t.VehicleType] = Fallback
		}
	}
	return result
}

// ServiceEstimate is the diagnostic turnaround detail for one service.
type ServiceEstimate struct {
	VehicleType string
	Minutes     int
	Observed    bool
}

// DetectPerService computes the minimum turnaround per individual service.
// The detail is reporting output only; it never feeds back into optimization.
func (e *Estimator) DetectPerService(trips []model.Trip) map[string]ServiceEstimate {
	byService := make(map[string][]model.Trip)
	for _, t := range trips {
		byService[t.Service] = append(byService[t.Service], t)
	}

	result := make(map[string]ServiceEstimate, len(byService))
	for service, svcTrips := range byService {
		arrivals := make(map[string][]int)
		departures := make(map[string][]int)
		for _, t := range svcTrips {
			arrivals[e.canon(t.Destination)] = append(arrivals[e.canon(t.Destination)], t.Arrival)
			departures[e.canon(t.Origin)] = append(departures[e.canon(t.Origin)], t.Departure)
		}

		best := -1
		for loc, arrTimes := range arrivals {
			depTimes := departures[loc]
			sort.Ints(depTimes)
			for _, arr := range arrTimes {
				if gap, ok := smallestGap(arr, depTimes); ok {
					if best < 0 || gap < best {
						best = gap
					}
				}
			}
		}

		est := ServiceEstimate{VehicleType: svcTrips[0].VehicleType}
		if best >= 0 {
			est.Minutes = best
			est.Observed = true
		} else {
			est.Minutes = Fallback
		}
		result[service] = est
	}
	return result
}

// Merge applies manual overrides on top of a detected map. Overrides win per
// vehicle type and are clamped to the floor.
func Merge(detected model.TurnaroundMap, overrides map[string]int) model.TurnaroundMap {
	merged := make(model.TurnaroundMap, len(detected)+len(overrides))
	for vt, m := range detected {
		merged[vt] = m
	}
	for vt, m := range overrides {
		if m < Floor {
			m = Floor
		}
		merged[vt] = m
	}
	return merged
}

// smallestGap returns the gap to the earliest departure at or after arr whose
// distance is at least Floor. depTimes must be sorted ascending.
func smallestGap(arr int, depTimes []int) (int, bool) {
	i := sort.SearchInts(depTimes, arr+Floor)
	if i == len(depTimes) {
		return 0, false
	}
	return depTimes[i] - arr, true
}
