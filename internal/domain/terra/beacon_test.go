package terra

import (
	"testing"

	"terraverse/internal/domain/geo"
)

func testTypes() TypeLookup {
	defs := map[BuildingCode]BuildingType{
		CodeCommandCenter: {Code: CodeCommandCenter, IsCenter: true, MaxBeacons: 1, BeaconRangeKm: 10},
		CodeAreaBeacon:    {Code: CodeAreaBeacon, IsCenter: true},
	}
	return func(code BuildingCode) (BuildingType, bool) {
		bt, ok := defs[code]
		return bt, ok
	}
}

func TestAuthorizeBeaconInRange(t *testing.T) {
	center := Building{
		ID:                "b-center",
		TypeCode:          CodeCommandCenter,
		Position:          geo.Coordinate{Lat: 36.0, Lng: 127.0},
		IsTerritoryCenter: true,
	}
	candidate := geo.Coordinate{Lat: 36.05, Lng: 127.05} // ~7.2km away

	decision := AuthorizeBeacon([]Building{center}, testTypes(), candidate, 0)
	if !decision.Authorized {
		t.Fatalf("expected authorization, got denial %q", decision.Reason)
	}
	if decision.Parent.ID != "b-center" {
		t.Fatalf("expected parent b-center, got %q", decision.Parent.ID)
	}
}

func TestAuthorizeBeaconOutOfRange(t *testing.T) {
	center := Building{
		ID:       "b-center",
		TypeCode: CodeCommandCenter,
		Position: geo.Coordinate{Lat: 36.0, Lng: 127.0},
	}
	candidate := geo.Coordinate{Lat: 37.0, Lng: 127.0} // ~111km away

	decision := AuthorizeBeacon([]Building{center}, testTypes(), candidate, 0)
	if decision.Authorized {
		t.Fatal("expected denial for out-of-range candidate")
	}
	if decision.Reason != DenyNoCenterInRange {
		t.Fatalf("expected %q, got %q", DenyNoCenterInRange, decision.Reason)
	}
}

func TestAuthorizeBeaconLimitReached(t *testing.T) {
	center := Building{
		ID:       "b-center",
		TypeCode: CodeCommandCenter,
		Position: geo.Coordinate{Lat: 36.0, Lng: 127.0},
	}
	candidate := geo.Coordinate{Lat: 36.05, Lng: 127.05}

	decision := AuthorizeBeacon([]Building{center}, testTypes(), candidate, 1)
	if decision.Authorized {
		t.Fatal("expected denial at beacon limit")
	}
	if decision.Reason != DenyBeaconLimit {
		t.Fatalf("expected %q, got %q", DenyBeaconLimit, decision.Reason)
	}
}

func TestAuthorizeBeaconSkipsNonBeaconTypes(t *testing.T) {
	// AREA_BEACON centers permit no child beacons; only the command center
	// should ever authorize.
	beaconCenter := Building{ID: "b-beacon", TypeCode: CodeAreaBeacon, Position: geo.Coordinate{Lat: 36.0, Lng: 127.0}}
	command := Building{ID: "b-command", TypeCode: CodeCommandCenter, Position: geo.Coordinate{Lat: 36.01, Lng: 127.01}}
	candidate := geo.Coordinate{Lat: 36.02, Lng: 127.02}

	decision := AuthorizeBeacon([]Building{beaconCenter, command}, testTypes(), candidate, 0)
	if !decision.Authorized || decision.Parent.ID != "b-command" {
		t.Fatalf("expected command center to authorize, got %+v", decision)
	}
}

func TestAuthorizeBeaconFallsThroughToNextParent(t *testing.T) {
	defs := map[BuildingCode]BuildingType{
		"OUTPOST":         {Code: "OUTPOST", MaxBeacons: 2, BeaconRangeKm: 1},
		CodeCommandCenter: {Code: CodeCommandCenter, MaxBeacons: 2, BeaconRangeKm: 10},
	}
	types := func(code BuildingCode) (BuildingType, bool) {
		bt, ok := defs[code]
		return bt, ok
	}

	near := Building{ID: "b-outpost", TypeCode: "OUTPOST", Position: geo.Coordinate{Lat: 36.0, Lng: 127.0}}
	far := Building{ID: "b-command", TypeCode: CodeCommandCenter, Position: geo.Coordinate{Lat: 36.0, Lng: 127.0}}
	candidate := geo.Coordinate{Lat: 36.05, Lng: 127.05} // beyond 1km, within 10km

	decision := AuthorizeBeacon([]Building{near, far}, types, candidate, 1)
	if !decision.Authorized || decision.Parent.ID != "b-command" {
		t.Fatalf("expected fallthrough to second parent, got %+v", decision)
	}
}

func TestAuthorizeBeaconNoCenters(t *testing.T) {
	decision := AuthorizeBeacon(nil, testTypes(), geo.Coordinate{Lat: 36, Lng: 127}, 0)
	if decision.Authorized {
		t.Fatal("expected denial with no centers")
	}
	if decision.Reason != DenyNoCenterInRange {
		t.Fatalf("expected %q, got %q", DenyNoCenterInRange, decision.Reason)
	}
}
