package rotation

import (
	"sort"

	"github.com/transitops/omloop/core/model"
)

// Key identifies an independent optimization subproblem. Trips never chain
// across keys. Service stays empty unless per-service partitioning is
// requested.
type Key struct {
	Date        string
	VehicleType string
	Service     string
}

func (k Key) String() string {
	if k.Service == "" {
		return k.Date + "/" + k.VehicleType
	}
	return k.Date + "/" + k.VehicleType + "/" + k.Service
}

// Partition groups trips by (date, vehicle type), further split by service
// when perService is set. Partitions are fully independent.
func Partition(trips []model.Trip, perService bool) map[Key][]model.Trip {
	groups := make(map[Key][]model.Trip)
	for _, t := range trips {
		key := Key{Date: t.Date, VehicleType: t.VehicleType}
		if perService {
			key.Service = t.Service
		}
		groups[key] = append(groups[key], t)
	}
	return groups
}

// SortedKeys returns the partition keys in deterministic order.
func SortedKeys(groups map[Key][]model.Trip) []Key {
	keys := make([]Key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Date != keys[j].Date {
			return keys[i].Date < keys[j].Date
		}
		if keys[i].VehicleType != keys[j].VehicleType {
			return keys[i].VehicleType < keys[j].VehicleType
		}
		return keys[i].Service < keys[j].Service
	})
	return keys
}
