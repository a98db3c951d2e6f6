package nmea

import (
	"testing"

	gonmea "github.com/adrianmo/go-nmea"
)

// Test sentence checksumming
func TestChecksum(t *testing.T) {
	tables := []struct {
		in       string
		expected string
	}{
		{"GPGLL,0000.00000,N,00000.00000,E,070254.000,V,N", "45"},
		{"GNGSA,A,1,,,,,,,,,,,,,99.0,99.0,99.0", "1E"},
		{"GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,", "47"},
		{"GPGSV,3,1,11,10,63,137,17", "4C"},
	}

	for _, table := range tables {
		out := checksum(table.in)
		if out != table.expected {
			t.Errorf("%q expected: %q, got: %q", table.in, table.expected, out)
		}
	}
}

// Test sentence stringer
func TestStringer(t *testing.T) {
	tables := []struct {
		inType   string
		inData   []string
		expected string
	}{
		{"GPGSV", []string{"3", "1", "11", "10", "63", "137", "17"}, "$GPGSV,3,1,11,10,63,137,17*4C"},
		{"GPGGA", []string{"123519", "4807.038", "N", "01131.000", "E", "1", "08", "0.9", "545.4", "M", "46.9", "M", "", ""}, "$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47"},
	}

	for _, table := range tables {
		s := Sentence{
			Type: table.inType,
			Data: table.inData,
		}
		out := s.String()
		if out != table.expected {
			t.Errorf("%q, %q expected: %q, got: %q", table.inType, table.inData, table.expected, out)
		}
	}
}

// A built GGA sentence must be accepted by the wire parser and carry
// the converted coordinates.
func TestGGARoundTrip(t *testing.T) {
	s := GGA("123519", "4807.038", "N", "01131.000", "E", 1, 8)

	want := "$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47"
	if s.String() != want {
		t.Fatalf("expected: %q, got: %q", want, s.String())
	}

	parsed, err := gonmea.Parse(s.String())
	if err != nil {
		t.Fatalf("built sentence failed to parse: %v", err)
	}

	gga, ok := parsed.(gonmea.GGA)
	if !ok {
		t.Fatalf("expected GGA, got %s", parsed.DataType())
	}
	if gga.NumSatellites != 8 {
		t.Errorf("expected 8 satellites, got %d", gga.NumSatellites)
	}
}
