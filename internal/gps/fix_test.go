package gps

import (
	"encoding/json"
	"math"
	"testing"
)

func TestFixValid(t *testing.T) {
	tables := []struct {
		fix      Fix
		expected bool
	}{
		{Fix{Latitude: 48.1173, Longitude: 11.51667, Satellites: 8}, true},
		{Fix{Latitude: -37.7715, Longitude: -122.41833, Satellites: 6}, true},
		{NoFix, false},
		{Fix{Latitude: -999, Longitude: -999}, false},
	}

	for _, table := range tables {
		if out := table.fix.Valid(); out != table.expected {
			t.Errorf("%+v expected: %v, got: %v", table.fix, table.expected, out)
		}
	}
}

func TestNoFixSentinel(t *testing.T) {
	if NoFix.Latitude != -999 || NoFix.Longitude != -999 || NoFix.Satellites != 0 {
		t.Errorf("unexpected sentinel value: %+v", NoFix)
	}
}

func TestEnvelopeJSON(t *testing.T) {
	env := Envelope{GPS: Fix{Latitude: 48.1173, Longitude: 11.51667, Satellites: 8}}

	payload, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `{"gps":{"lat":48.1173,"lon":11.51667,"num_satellites":8}}`
	if string(payload) != expected {
		t.Errorf("expected: %s, got: %s", expected, payload)
	}
}

// GeoJSON puts longitude first.
func TestGeoPointOrdering(t *testing.T) {
	fix := Fix{Latitude: 48.1173, Longitude: 11.51667, Satellites: 8}

	p := fix.GeoPoint()
	if p.Type != "Point" {
		t.Errorf("expected type Point, got %q", p.Type)
	}
	if p.Coordinates[0] != fix.Longitude || p.Coordinates[1] != fix.Latitude {
		t.Errorf("expected [lon, lat] ordering, got %v", p.Coordinates)
	}
}

func TestDistanceMeters(t *testing.T) {
	a := Fix{Latitude: 0, Longitude: 0}
	b := Fix{Latitude: 1, Longitude: 0}

	if d := a.DistanceMeters(a); d > 0.01 {
		t.Errorf("distance to self expected ~0, got %v", d)
	}

	// One degree of latitude is about 111.2 km.
	d := b.DistanceMeters(a)
	if math.Abs(d-111195) > 200 {
		t.Errorf("expected ~111195m, got %v", d)
	}
}
