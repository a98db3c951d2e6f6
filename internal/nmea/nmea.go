// Package nmea builds NMEA 0183 sentences with valid checksums. It is
// used to script GPS traffic for the replay tool and for tests; parsing
// of live sentences is done with github.com/adrianmo/go-nmea.
package nmea

import "fmt"

type Sentence struct {
	Type string
	Data []string
}

// checksum XORs every byte between '$' and '*'.
func checksum(s string) string {
	var sum uint8
	for i := 0; i < len(s); i++ {
		sum ^= s[i]
	}

	return fmt.Sprintf("%02X", sum)
}

func (s Sentence) String() string {
	body := s.Type
	for _, d := range s.Data {
		body = fmt.Sprintf("%s,%s", body, d)
	}

	return fmt.Sprintf("$%s*%s", body, checksum(body))
}

func (s Sentence) Bytes() []byte {
	return []byte(s.String())
}

// GGA builds a position-fix sentence from raw field values. Latitude and
// longitude are in the DDMM.MMMM wire format with separate hemisphere
// letters, as a receiver would emit them.
func GGA(utc, lat, latHemi, lon, lonHemi string, quality, satellites int) Sentence {
	return Sentence{
		Type: "GPGGA",
		Data: []string{
			utc,
			lat, latHemi,
			lon, lonHemi,
			fmt.Sprintf("%d", quality),
			fmt.Sprintf("%02d", satellites),
			"0.9", "545.4", "M", "46.9", "M", "", "",
		},
	}
}
