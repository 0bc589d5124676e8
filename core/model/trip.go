package model

import "fmt"

// Trip is an immutable unit of scheduled service. Times are expressed in
// minutes since local midnight; Arrival may exceed 1440 for trips crossing
// midnight, so Arrival > Departure always holds.
type Trip struct {
	ID              string `json:"id"`
	Service         string `json:"service"`
	Date            string `json:"date"`
	VehicleType     string `json:"vehicle_type"`
	Origin          string `json:"origin"`
	OriginName      string `json:"origin_name,omitempty"`
	Destination     string `json:"destination"`
	DestinationName string `json:"destination_name,omitempty"`
	Departure       int    `json:"departure"`
	Arrival         int    `json:"arrival"`
	// Reserve marks a phantom trip that pins a vehicle to a station for a
	// standing reserve duty. Reserve trips have Origin == Destination.
	Reserve bool `json:"reserve,omitempty"`
}

// Duration returns the trip length in minutes.
func (t Trip) Duration() int { return t.Arrival - t.Departure }

// DepartureClock returns the departure time as HH:MM.
func (t Trip) DepartureClock() string { return FormatMinutes(t.Departure) }

// ArrivalClock returns the arrival time as HH:MM.
func (t Trip) ArrivalClock() string { return FormatMinutes(t.Arrival) }

// FormatMinutes renders minutes since midnight as HH:MM, wrapping values
// past midnight back onto the clock face.
func FormatMinutes(m int) string {
	m %= 1440
	if m < 0 {
		m += 1440
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// TurnaroundMap holds the minimum connection minutes per vehicle type.
// It is read-only during optimization.
type TurnaroundMap map[string]int
