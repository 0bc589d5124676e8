package model

// Rotation is an ordered chain of trips executed by one vehicle. Trips are
// time-ascending by construction and every adjacent pair is connectable under
// the turnaround rules that produced the rotation. A rotation is never empty.
type Rotation struct {
	VehicleID   string `json:"vehicle_id"`
	VehicleType string `json:"vehicle_type"`
	Date        string `json:"date"`
	Trips       []Trip `json:"trips"`
}

// StartTime returns the departure of the first trip.
func (r Rotation) StartTime() int {
	if len(r.Trips) == 0 {
		return 0
	}
	return r.Trips[0].Departure
}

// EndTime returns the arrival of the last trip.
func (r Rotation) EndTime() int {
	if len(r.Trips) == 0 {
		return 0
	}
	return r.Trips[len(r.Trips)-1].Arrival
}

// RideMinutes sums the durations of all revenue trips in the chain.
func (r Rotation) RideMinutes() int {
	total := 0
	for _, t := range r.Trips {
		if !t.Reserve {
			total += t.Duration()
		}
	}
	return total
}

// ReserveMinutes sums the durations of reserve duties in the chain.
func (r Rotation) ReserveMinutes() int {
	total := 0
	for _, t := range r.Trips {
		if t.Reserve {
			total += t.Duration()
		}
	}
	return total
}

// IdleMinutes sums the gaps between consecutive trips.
func (r Rotation) IdleMinutes() int {
	idle := 0
	for i := 1; i < len(r.Trips); i++ {
		idle += r.Trips[i].Departure - r.Trips[i-1].Arrival
	}
	return idle
}

// DutyMinutes returns the span from first departure to last arrival.
func (r Rotation) DutyMinutes() int {
	if len(r.Trips) == 0 {
		return 0
	}
	return r.EndTime() - r.StartTime()
}

// RealTrips returns the revenue trips, excluding reserve duties.
func (r Rotation) RealTrips() []Trip {
	var out []Trip
	for _, t := range r.Trips {
		if !t.Reserve {
			out = append(out, t)
		}
	}
	return out
}
