package rotation

import (
	"testing"

	"github.com/transitops/omloop/core/model"
	"github.com/transitops/omloop/core/turnaround"
)

func mkTrip(id, service, vt, date, origin, dest string, dep, arr int) model.Trip {
	return model.Trip{
		ID: id, Service: service, VehicleType: vt, Date: date,
		Origin: origin, Destination: dest, Departure: dep, Arrival: arr,
	}
}

func TestCanConnect(t *testing.T) {
	check := Checker{Turnaround: model.TurnaroundMap{"Touringcar": 8}}
	base := mkTrip("a", "lijn 1", "Touringcar", "do", "ut", "ed", 360, 402)

	cases := []struct {
		name string
		next model.Trip
		want bool
	}{
		{"exact turnaround gap", mkTrip("b", "lijn 1", "Touringcar", "do", "ed", "ut", 410, 452), true},
		{"gap below turnaround", mkTrip("b", "lijn 1", "Touringcar", "do", "ed", "ut", 409, 452), false},
		{"different vehicle type", mkTrip("b", "lijn 1", "Dubbeldekker", "do", "ed", "ut", 420, 460), false},
		{"different date", mkTrip("b", "lijn 1", "Touringcar", "vr", "ed", "ut", 420, 460), false},
		{"location mismatch", mkTrip("b", "lijn 1", "Touringcar", "do", "am", "ut", 420, 460), false},
		{"departs before arrival", mkTrip("b", "lijn 1", "Touringcar", "do", "ed", "ut", 300, 340), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := check.CanConnect(base, c.next); got != c.want {
				t.Fatalf("CanConnect = %v, want %v", got, c.want)
			}
		})
	}
}

func TestCanConnectFallbackTurnaround(t *testing.T) {
	check := Checker{Turnaround: model.TurnaroundMap{}}
	a := mkTrip("a", "", "Minibus", "do", "ut", "ed", 360, 402)
	b := mkTrip("b", "", "Minibus", "do", "ed", "ut", 402+turnaround.Fallback, 460)
	if !check.CanConnect(a, b) {
		t.Fatalf("gap equal to the fallback should connect")
	}
	b.Departure--
	if check.CanConnect(a, b) {
		t.Fatalf("gap below the fallback should not connect")
	}
}

func TestCanConnectServiceConstraint(t *testing.T) {
	check := Checker{Turnaround: model.TurnaroundMap{"Touringcar": 5}, SameService: true}
	a := mkTrip("a", "lijn 1", "Touringcar", "do", "ut", "ed", 360, 402)
	b := mkTrip("b", "lijn 2", "Touringcar", "do", "ed", "ut", 420, 460)
	if check.CanConnect(a, b) {
		t.Fatalf("cross-service revenue connection must be rejected")
	}

	// A reserve duty bridges services and waives turnaround.
	res := mkTrip("r", "reserve ed", "Touringcar", "do", "ed", "ed", 402, 500)
	res.Reserve = true
	if !check.CanConnect(a, res) {
		t.Fatalf("reserve trip should connect across services with zero turnaround")
	}
}

func TestCanConnectUsesCanonicalizer(t *testing.T) {
	canon := func(code string) string {
		if code == "utc" {
			return "ut"
		}
		return code
	}
	check := Checker{Turnaround: model.TurnaroundMap{"Touringcar": 5}, Canon: canon}
	a := mkTrip("a", "", "Touringcar", "do", "ed", "utc", 360, 402)
	b := mkTrip("b", "", "Touringcar", "do", "ut", "ed", 410, 452)
	if !check.CanConnect(a, b) {
		t.Fatalf("codes canonicalizing to the same stop should connect")
	}
}

func TestBuildGraphForwardEdgesOnly(t *testing.T) {
	trips := []model.Trip{
		mkTrip("t1", "", "Touringcar", "do", "ut", "ed", 360, 402),
		mkTrip("t2", "", "Touringcar", "do", "ed", "ut", 410, 452),
		mkTrip("t3", "", "Touringcar", "do", "ut", "ed", 420, 462),
	}
	SortTrips(trips)
	g := BuildGraph(trips, Checker{Turnaround: model.TurnaroundMap{"Touringcar": 8}})

	if !g.HasEdge(0, 1) {
		t.Fatalf("expected edge t1->t2")
	}
	if g.Cost(0, 1) != 8 {
		t.Fatalf("expected cost 8, got %d", g.Cost(0, 1))
	}
	if g.HasEdge(1, 0) || g.HasEdge(0, 2) {
		t.Fatalf("unexpected edge present")
	}
	if g.Len() != 3 {
		t.Fatalf("graph length mismatch")
	}
}

func TestSortTripsStableTieBreak(t *testing.T) {
	trips := []model.Trip{
		mkTrip("late", "", "Touringcar", "do", "ut", "ed", 400, 460),
		mkTrip("short", "", "Touringcar", "do", "ut", "ed", 400, 440),
		mkTrip("early", "", "Touringcar", "do", "ut", "ed", 390, 450),
	}
	SortTrips(trips)
	if trips[0].ID != "early" || trips[1].ID != "short" || trips[2].ID != "late" {
		t.Fatalf("unexpected order: %s %s %s", trips[0].ID, trips[1].ID, trips[2].ID)
	}
}
