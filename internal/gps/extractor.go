// Package gps extracts position fixes from the NMEA sentence stream of
// a serial GPS receiver.
package gps

import (
	nmea "github.com/adrianmo/go-nmea"

	"github.com/relabs-tech/gps_tracker/internal/serialio"
)

// DefaultMaxAttempts is the number of well-formed non-GGA sentences
// NextFix will skip before giving up. A receiver interleaves roughly
// 5-10 other sentence types per fix cycle, so 100 is generous.
const DefaultMaxAttempts = 100

// Extractor filters the interleaved sentence stream coming off a
// LineReader down to GGA position fixes.
type Extractor struct {
	reader *serialio.LineReader
}

func NewExtractor(r *serialio.LineReader) *Extractor {
	return &Extractor{reader: r}
}

// NextFix drains stale buffered data and scans the live stream for the
// next GGA sentence, returning it as a decimal-degree Fix.
//
// Lines that fail to parse as NMEA (garbled, truncated, bad checksum)
// are skipped without consuming an attempt; only a well-formed sentence
// of another type counts against maxAttempts. If the budget runs out
// NoFix is returned with a nil error. A transport error ends the scan
// immediately.
func (e *Extractor) NextFix(maxAttempts int) (Fix, error) {
	// The caller wants the current position, not the backlog of old
	// ones that accumulated since the last poll.
	if err := e.reader.Drain(); err != nil {
		return NoFix, err
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		// Inner loop: re-read until a line parses. Malformed sentences
		// never spend an attempt, only the counted outer loop does.
		var sentence nmea.Sentence
		for {
			line, err := e.reader.NextLine()
			if err != nil {
				return NoFix, err
			}

			sentence, err = nmea.Parse(line)
			if err == nil {
				break
			}
		}

		if sentence.DataType() != nmea.TypeGGA {
			continue
		}

		// Parse already converted DDMM.MMMM plus hemisphere to signed
		// decimal degrees.
		gga := sentence.(nmea.GGA)
		return Fix{
			Latitude:   gga.Latitude,
			Longitude:  gga.Longitude,
			Satellites: uint32(gga.NumSatellites),
		}, nil
	}

	return NoFix, nil
}
