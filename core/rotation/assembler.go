package rotation

import (
	"fmt"
	"strings"

	"github.com/transitops/omloop/core/model"
)

// Assembler converts algorithm chains into rotation records with generated
// vehicle identifiers. The running counter is explicit state scoped to one
// output set, keeping assembly side-effect free and safe next to parallel
// partition runs.
type Assembler struct {
	counter int
}

// Build materializes the chains of one partition. Chain order is temporal
// order by construction, so trips are never reordered here. Empty chains are
// skipped; a produced rotation is never empty.
func (a *Assembler) Build(trips []model.Trip, key Key, chains [][]int) []model.Rotation {
	rotations := make([]model.Rotation, 0, len(chains))
	for _, chain := range chains {
		if len(chain) == 0 {
			continue
		}
		a.counter++
		rot := model.Rotation{
			VehicleID:   vehicleID(key, a.counter),
			VehicleType: key.VehicleType,
			Date:        key.Date,
			Trips:       make([]model.Trip, 0, len(chain)),
		}
		for _, idx := range chain {
			rot.Trips = append(rot.Trips, trips[idx])
		}
		rotations = append(rotations, rot)
	}
	return rotations
}

// vehicleID builds a human-legible identifier such as "TC-DO-014" from the
// vehicle type, the day token of the date key and the running counter.
func vehicleID(key Key, n int) string {
	return fmt.Sprintf("%s-%s-%03d", typeAbbrev(key.VehicleType), dayToken(key.Date), n)
}

func typeAbbrev(vehicleType string) string {
	r := []rune(strings.TrimSpace(vehicleType))
	if len(r) == 0 {
		return "XX"
	}
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}

func dayToken(date string) string {
	fields := strings.Fields(date)
	if len(fields) == 0 {
		return "DAG"
	}
	return strings.ToUpper(fields[0])
}
