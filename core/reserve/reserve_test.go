package reserve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/transitops/omloop/core/model"
	"github.com/transitops/omloop/core/rotation"
	"github.com/transitops/omloop/core/stations"
)

func fixtureTrips() []model.Trip {
	return []model.Trip{
		{ID: "t1", Service: "lijn 1", Date: "do", VehicleType: "Touringcar",
			Origin: "UT", OriginName: "Utrecht Centraal", Destination: "ED", DestinationName: "Ede-Wageningen",
			Departure: 360, Arrival: 402},
		{ID: "t2", Service: "lijn 1", Date: "do", VehicleType: "Touringcar",
			Origin: "ED", OriginName: "Ede-Wageningen", Destination: "UT", DestinationName: "Utrecht Centraal",
			Departure: 410, Arrival: 452},
	}
}

func TestPhantomTrips(t *testing.T) {
	trips := fixtureTrips()
	reg := stations.Build(trips)
	duties := []Duty{{Station: "Utrecht Centraal", Count: 2, Date: "do", Start: 480, End: 600}}

	phantoms := PhantomTrips(duties, trips, reg)
	require.Len(t, phantoms, 2)
	for _, p := range phantoms {
		require.True(t, p.Reserve)
		require.Equal(t, "Touringcar", p.VehicleType, "dominant type at the station")
		require.Equal(t, p.Origin, p.Destination, "reserve trips stay in place")
		require.Equal(t, 480, p.Departure)
		require.Equal(t, 600, p.Arrival)
		require.Equal(t, "do", p.Date)
	}
	require.NotEqual(t, phantoms[0].ID, phantoms[1].ID)
}

func TestPhantomTripsSkipsUnknownStation(t *testing.T) {
	trips := fixtureTrips()
	reg := stations.Build(trips)
	duties := []Duty{{Station: "Zwolle", Count: 1, Date: "do", Start: 480, End: 600}}
	require.Empty(t, PhantomTrips(duties, trips, reg))
}

func TestPhantomTripsChainIntoRotations(t *testing.T) {
	trips := fixtureTrips()
	reg := stations.Build(trips)
	duties := []Duty{{Station: "Utrecht Centraal", Count: 1, Date: "do", Start: 460, End: 600}}
	all := append(trips, PhantomTrips(duties, trips, reg)...)

	s, err := rotation.NewSolver(rotation.MinCostName, rotation.Options{
		Turnaround: model.TurnaroundMap{"Touringcar": 8},
		Canon:      reg.Canonical,
	})
	require.NoError(t, err)
	rotations := s.Solve(all)

	// t1 -> t2 ends at Utrecht at 452; the reserve duty starting 460 chains
	// onto the same vehicle with zero turnaround.
	require.Len(t, rotations, 1)
	require.Equal(t, 3, len(rotations[0].Trips))
	require.True(t, rotations[0].Trips[2].Reserve)
	require.Equal(t, 84, rotations[0].RideMinutes())
	require.Equal(t, 140, rotations[0].ReserveMinutes())
}

func coverageFixture() ([]model.Rotation, *stations.Registry) {
	trips := fixtureTrips()
	reg := stations.Build(trips)
	rot := model.Rotation{
		VehicleID: "TO-DO-001", VehicleType: "Touringcar", Date: "do",
		Trips: trips,
	}
	return []model.Rotation{rot}, reg
}

func TestAnalyzeCoverage(t *testing.T) {
	rotations, reg := coverageFixture()
	duties := []Duty{
		// Covered by the trailing idle slot at Utrecht (452 .. end of day).
		{Station: "Utrecht Centraal", Count: 1, Date: "do", Start: 460, End: 600},
		// Not covered: nothing idles at Ede during this window.
		{Station: "Ede-Wageningen", Count: 1, Date: "do", Start: 460, End: 600},
	}
	results := AnalyzeCoverage(rotations, duties, reg)
	require.Len(t, results, 2)
	require.Equal(t, 1, results[0].Covered)
	require.Equal(t, 0, results[0].Shortfall)
	require.Equal(t, []string{"TO-DO-001"}, results[0].Vehicles)
	require.Equal(t, 0, results[1].Covered)
	require.Equal(t, 1, results[1].Shortfall)
}

func TestOptimizeCoverageCountsVehiclesOnce(t *testing.T) {
	rotations, reg := coverageFixture()
	// Two duties at Utrecht both coverable by the same trailing slot: the
	// matching may satisfy only one of them with the single vehicle.
	duties := []Duty{
		{Station: "Utrecht Centraal", Count: 1, Date: "do", Start: 460, End: 600},
		{Station: "Utrecht Centraal", Count: 1, Date: "do", Start: 470, End: 620},
	}
	results := OptimizeCoverage(rotations, duties, reg)
	total := results[0].Covered + results[1].Covered
	require.Equal(t, 1, total, "one idle slot covers at most one duty slot")
	require.Equal(t, 1, results[0].Shortfall+results[1].Shortfall)
}

func TestOptimizeCoverageMatchesAcrossDuties(t *testing.T) {
	trips := fixtureTrips()
	reg := stations.Build(trips)
	rotations := []model.Rotation{
		{VehicleID: "TO-DO-001", VehicleType: "Touringcar", Date: "do", Trips: trips[:1]},
		{VehicleID: "TO-DO-002", VehicleType: "Touringcar", Date: "do", Trips: trips[1:]},
	}
	// Vehicle 1 idles at Ede after 402, vehicle 2 at Utrecht after 452.
	duties := []Duty{
		{Station: "Ede-Wageningen", Count: 1, Date: "do", Start: 420, End: 600},
		{Station: "Utrecht Centraal", Count: 1, Date: "do", Start: 460, End: 600},
	}
	results := OptimizeCoverage(rotations, duties, reg)
	require.Equal(t, 1, results[0].Covered)
	require.Equal(t, 1, results[1].Covered)
}
