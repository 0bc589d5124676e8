package tripio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/transitops/omloop/core/model"
)

type rotationRecord struct {
	VehicleID      string       `json:"vehicle_id"`
	VehicleType    string       `json:"vehicle_type"`
	Date           string       `json:"date"`
	Start          string       `json:"start"`
	End            string       `json:"end"`
	RideMinutes    int          `json:"ride_minutes"`
	IdleMinutes    int          `json:"idle_minutes"`
	ReserveMinutes int          `json:"reserve_minutes,omitempty"`
	DutyMinutes    int          `json:"duty_minutes"`
	Trips          []model.Trip `json:"trips"`
}

type rotationDocument struct {
	Rotations []rotationRecord `json:"rotations"`
}

// WriteRotations writes the rotation records with their derived metrics as
// indented JSON. A path of "-" writes to stdout.
func WriteRotations(path string, rotations []model.Rotation) error {
	doc := rotationDocument{Rotations: make([]rotationRecord, 0, len(rotations))}
	for _, r := range rotations {
		doc.Rotations = append(doc.Rotations, rotationRecord{
			VehicleID:      r.VehicleID,
			VehicleType:    r.VehicleType,
			Date:           r.Date,
			Start:          model.FormatMinutes(r.StartTime()),
			End:            model.FormatMinutes(r.EndTime()),
			RideMinutes:    r.RideMinutes(),
			IdleMinutes:    r.IdleMinutes(),
			ReserveMinutes: r.ReserveMinutes(),
			DutyMinutes:    r.DutyMinutes(),
			Trips:          r.Trips,
		})
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode rotations: %w", err)
	}
	out = append(out, '\n')
	if path == "-" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write rotations: %w", err)
	}
	return nil
}
