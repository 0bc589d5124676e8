// Package tripio reads normalized trip documents produced by the external
// schedule parser and writes rotation documents for downstream reporting.
// Contract validation happens here, at the boundary: the engine itself
// assumes well-formed trips.
package tripio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/transitops/omloop/core/model"
	"github.com/transitops/omloop/core/reserve"
)

type tripRecord struct {
	ID              string `json:"id" validate:"required"`
	Service         string `json:"service"`
	Date            string `json:"date" validate:"required"`
	VehicleType     string `json:"vehicle_type" validate:"required"`
	Origin          string `json:"origin" validate:"required"`
	OriginName      string `json:"origin_name"`
	Destination     string `json:"destination" validate:"required"`
	DestinationName string `json:"destination_name"`
	Departure       int    `json:"departure" validate:"min=0"`
	Arrival         int    `json:"arrival" validate:"gtfield=Departure"`
}

type reserveRecord struct {
	Station string `json:"station" validate:"required"`
	Count   int    `json:"count" validate:"min=1"`
	Date    string `json:"date" validate:"required"`
	Start   int    `json:"start" validate:"min=0"`
	End     int    `json:"end" validate:"gtfield=Start"`
	Remark  string `json:"remark"`
}

type document struct {
	Trips    []tripRecord    `json:"trips" validate:"required,min=1,dive"`
	Reserves []reserveRecord `json:"reserves" validate:"dive"`
}

// Load reads and validates a trip document. Arrival strictly after
// departure is enforced for every trip; violations are reported with the
// offending record rather than passed into the engine.
func Load(path string) ([]model.Trip, []reserve.Duty, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read trips: %w", err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse trips: %w", err)
	}
	if err := validator.New().Struct(doc); err != nil {
		return nil, nil, fmt.Errorf("validate trips: %w", err)
	}

	trips := make([]model.Trip, 0, len(doc.Trips))
	for _, r := range doc.Trips {
		trips = append(trips, model.Trip{
			ID:              r.ID,
			Service:         r.Service,
			Date:            r.Date,
			VehicleType:     r.VehicleType,
			Origin:          r.Origin,
			OriginName:      r.OriginName,
			Destination:     r.Destination,
			DestinationName: r.DestinationName,
			Departure:       r.Departure,
			Arrival:         r.Arrival,
		})
	}
	duties := make([]reserve.Duty, 0, len(doc.Reserves))
	for _, r := range doc.Reserves {
		duties = append(duties, reserve.Duty{
			Station: r.Station,
			Count:   r.Count,
			Date:    r.Date,
			Start:   r.Start,
			End:     r.End,
			Remark:  r.Remark,
		})
	}
	return trips, duties, nil
}
