package gps

import (
	"github.com/golang/geo/s2"
)

// Fix is a single position fix in signed decimal degrees, suitable for
// JSON and MQTT. South and west are negative.
type Fix struct {
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lon"`
	Satellites uint32  `json:"num_satellites"`
}

const noFixCoord = -999.0

// NoFix is returned when no position could be obtained within the
// attempt budget. Callers should test with Valid rather than compare
// coordinates.
var NoFix = Fix{Latitude: noFixCoord, Longitude: noFixCoord}

// Valid reports whether the fix carries real coordinates.
func (f Fix) Valid() bool {
	return f.Latitude > noFixCoord && f.Longitude > noFixCoord
}

// Envelope is the telemetry message wrapper published to the broker:
// {"gps": {"lat": ..., "lon": ..., "num_satellites": ...}}
type Envelope struct {
	GPS Fix `json:"gps"`
}

// Point is a GeoJSON point. Coordinates are [lon, lat] per the GeoJSON
// spec, the reverse of the usual lat/lon ordering.
type Point struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Record is the storage/query shape consumed by downstream services.
type Record struct {
	DeviceID   string `json:"deviceid"`
	Satellites uint32 `json:"num_satellites"`
	Location   Point  `json:"location"`
}

// GeoPoint returns the fix as a GeoJSON point.
func (f Fix) GeoPoint() Point {
	return Point{
		Type:        "Point",
		Coordinates: [2]float64{f.Longitude, f.Latitude},
	}
}

// Mean earth radius in meters.
const earthRadiusMeters = 6371010.0

// DistanceMeters returns the great-circle distance from prev to f.
func (f Fix) DistanceMeters(prev Fix) float64 {
	a := s2.LatLngFromDegrees(prev.Latitude, prev.Longitude)
	b := s2.LatLngFromDegrees(f.Latitude, f.Longitude)
	return float64(a.Distance(b)) * earthRadiusMeters
}
