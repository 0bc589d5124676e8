// Package export renders rotation sets in exchange formats for downstream
// planning tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/transitops/omloop/core/model"
)

// WriteJSON writes the rotations to w in JSON format.
func WriteJSON(w io.Writer, rotations []model.Rotation) error {
	enc := json.NewEncoder(w)
	return enc.Encode(rotations)
}

// WriteCSV writes a roster to w: one row per trip, grouped by vehicle in
// rotation order, with clock-formatted times.
func WriteCSV(w io.Writer, rotations []model.Rotation) error {
	cw := csv.NewWriter(w)
	header := []string{"vehicle_id", "vehicle_type", "date", "trip_id", "service", "origin", "destination", "departure", "arrival", "reserve"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rotations {
		for _, t := range r.Trips {
			rec := []string{
				r.VehicleID,
				r.VehicleType,
				r.Date,
				t.ID,
				t.Service,
				t.Origin,
				t.Destination,
				t.DepartureClock(),
				t.ArrivalClock(),
				strconv.FormatBool(t.Reserve),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
