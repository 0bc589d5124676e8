// Package reserve handles standing reserve duties: requirements to keep a
// number of vehicles waiting at a station during a time window. Duties are
// expanded into phantom trips so the optimizer absorbs reserve time into
// rotations, and rotation sets can be checked for how well their idle time
// covers the requirements.
package reserve

import (
	"fmt"
	"strings"

	"github.com/transitops/omloop/core/model"
	"github.com/transitops/omloop/core/rotation"
	"github.com/transitops/omloop/core/stations"
)

// Duty describes a standing reserve requirement at a station.
type Duty struct {
	Station string `json:"station"`
	Count   int    `json:"count"`
	Date    string `json:"date"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Remark  string `json:"remark,omitempty"`
}

// endOfDay bounds the trailing idle slot of a rotation.
const endOfDay = 1440

// PhantomTrips expands duties into phantom trips. Each duty of count N at
// station S yields N trips pinned to S for the window, typed after the
// vehicle type most common at that station on that date so they partition
// together with the trips they are meant to back up.
func PhantomTrips(duties []Duty, trips []model.Trip, reg *stations.Registry) []model.Trip {
	typeCount := make(map[[3]string]int)
	locCode := make(map[string]string)
	locName := make(map[string]string)
	for _, t := range trips {
		for _, end := range []struct{ code, name string }{
			{t.Origin, t.OriginName},
			{t.Destination, t.DestinationName},
		} {
			loc := reg.Canonical(end.code)
			typeCount[[3]string{loc, t.Date, t.VehicleType}]++
			if _, ok := locCode[loc]; !ok {
				locCode[loc] = end.code
				locName[loc] = end.name
			}
		}
	}

	var phantoms []model.Trip
	for _, d := range duties {
		loc := reg.CanonicalName(d.Station)

		bestType := ""
		bestCount := 0
		for key, n := range typeCount {
			if key[0] == loc && key[1] == d.Date && n > bestCount {
				bestType = key[2]
				bestCount = n
			}
		}
		if bestType == "" {
			continue // no scheduled traffic at this station on this date
		}

		code, ok := locCode[loc]
		if !ok {
			code = d.Station
		}
		name := locName[loc]
		if name == "" {
			name = d.Station
		}

		for i := 1; i <= d.Count; i++ {
			phantoms = append(phantoms, model.Trip{
				ID:              fmt.Sprintf("RES_%s_%s_%d", compact(d.Station), compact(d.Date), i),
				Service:         "Reserve " + d.Station,
				Date:            d.Date,
				VehicleType:     bestType,
				Origin:          code,
				OriginName:      name,
				Destination:     code,
				DestinationName: name,
				Departure:       d.Start,
				Arrival:         d.End,
				Reserve:         true,
			})
		}
	}
	return phantoms
}

func compact(s string) string { return strings.ReplaceAll(s, " ", "") }

// Coverage reports how a rotation set covers one reserve duty.
type Coverage struct {
	Duty      Duty
	Required  int
	Covered   int
	Vehicles  []string
	Shortfall int
}

type idleSlot struct {
	vehicleID string
	date      string
	location  string
	start     int
	end       int
}

func idleSlots(rotations []model.Rotation, reg *stations.Registry) []idleSlot {
	var slots []idleSlot
	for _, rot := range rotations {
		if len(rot.Trips) == 0 {
			continue
		}
		for i := 0; i < len(rot.Trips)-1; i++ {
			slots = append(slots, idleSlot{
				vehicleID: rot.VehicleID,
				date:      rot.Date,
				location:  reg.Canonical(rot.Trips[i].Destination),
				start:     rot.Trips[i].Arrival,
				end:       rot.Trips[i+1].Departure,
			})
		}
		first := rot.Trips[0]
		slots = append(slots, idleSlot{
			vehicleID: rot.VehicleID,
			date:      rot.Date,
			location:  reg.Canonical(first.Origin),
			start:     0,
			end:       first.Departure,
		})
		last := rot.Trips[len(rot.Trips)-1]
		slots = append(slots, idleSlot{
			vehicleID: rot.VehicleID,
			date:      rot.Date,
			location:  reg.Canonical(last.Destination),
			start:     last.Arrival,
			end:       endOfDay,
		})
	}
	return slots
}

func (s idleSlot) covers(d Duty, loc string) bool {
	return s.date == d.Date && s.location == loc && s.start <= d.Start && s.end >= d.End
}

// AnalyzeCoverage lists, per duty, every rotation whose idle time fully
// covers the duty window at the right station. A vehicle may show up under
// several duties; use OptimizeCoverage for a consistent assignment.
func AnalyzeCoverage(rotations []model.Rotation, duties []Duty, reg *stations.Registry) []Coverage {
	slots := idleSlots(rotations, reg)
	results := make([]Coverage, 0, len(duties))
	for _, d := range duties {
		loc := reg.CanonicalName(d.Station)
		cov := Coverage{Duty: d, Required: d.Count}
		for _, s := range slots {
			if s.covers(d, loc) {
				cov.Covered++
				cov.Vehicles = append(cov.Vehicles, s.vehicleID)
			}
		}
		cov.Shortfall = max(0, cov.Required-cov.Covered)
		results = append(results, cov)
	}
	return results
}

// OptimizeCoverage assigns idle slots to reserve slots one-to-one with a
// maximum bipartite matching, so each vehicle counts for at most one duty
// slot and the total number of covered slots is maximal.
func OptimizeCoverage(rotations []model.Rotation, duties []Duty, reg *stations.Registry) []Coverage {
	slots := idleSlots(rotations, reg)

	type reserveSlot struct {
		duty int
		loc  string
	}
	var reserveSlots []reserveSlot
	for di, d := range duties {
		loc := reg.CanonicalName(d.Station)
		for i := 0; i < d.Count; i++ {
			reserveSlots = append(reserveSlots, reserveSlot{duty: di, loc: loc})
		}
	}

	adj := make([][]int, len(slots))
	for i, s := range slots {
		for j, rs := range reserveSlots {
			if s.covers(duties[rs.duty], rs.loc) {
				adj[i] = append(adj[i], j)
			}
		}
	}

	_, matchR := rotation.MaxBipartiteMatching(adj, len(slots), len(reserveSlots))

	results := make([]Coverage, len(duties))
	for di, d := range duties {
		results[di] = Coverage{Duty: d, Required: d.Count}
	}
	for j, i := range matchR {
		if i == -1 {
			continue
		}
		cov := &results[reserveSlots[j].duty]
		cov.Covered++
		cov.Vehicles = append(cov.Vehicles, slots[i].vehicleID)
	}
	for di := range results {
		results[di].Shortfall = max(0, results[di].Required-results[di].Covered)
	}
	return results
}
