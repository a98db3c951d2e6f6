// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"

	"github.com/relabs-tech/gps_tracker/internal/gps"
	"github.com/relabs-tech/gps_tracker/internal/nmea"
	"github.com/relabs-tech/gps_tracker/internal/serialio"
)

// RunReplay feeds a scripted NMEA stream through the real extractor and
// prints the fixes. Useful for demos and for exercising the pipeline
// without a receiver attached.
func RunReplay() error {
	script := serialio.NewScriptTransport()
	// Stale readings from a previous cycle; drained before the scan.
	script.Backlog(
		append(nmea.GGA("115739", "4158.8441", "S", "09147.4416", "W", 1, 7).Bytes(), '\r', '\n'),
	)
	// Each scan cycle starts with a drain, which discards one line to
	// resync, so every fix is preceded by a sacrificial sentence.
	script.Feed(
		[]byte("31.000,E,1,08,0.9,545.4,M,46.9,M,,*47\r\n"), // partial line, mid-stream start
		append(nmea.Sentence{Type: "GPGSV", Data: []string{"3", "1", "11", "10", "63", "137", "17"}}.Bytes(), '\r', '\n'),
		append(nmea.GGA("123519", "4807.038", "N", "01131.000", "E", 1, 8).Bytes(), '\r', '\n'),
		append(nmea.Sentence{Type: "GPGSV", Data: []string{"3", "2", "11", "24", "38", "290", "21"}}.Bytes(), '\r', '\n'),
		append(nmea.GGA("123529", "4807.112", "N", "01131.204", "E", 1, 9).Bytes(), '\r', '\n'),
	)

	reader := serialio.NewLineReader(script)
	extractor := gps.NewExtractor(reader)

	var lastFix gps.Fix
	haveFix := false

	for {
		fix, err := extractor.NextFix(gps.DefaultMaxAttempts)
		if err != nil {
			// Script exhausted.
			return nil
		}
		if !fix.Valid() {
			continue
		}

		if haveFix {
			fmt.Printf("Lat: %f, Lon: %f. Data from %d satellites. Moved %.1fm\n",
				fix.Latitude, fix.Longitude, fix.Satellites, fix.DistanceMeters(lastFix))
		} else {
			fmt.Printf("Lat: %f, Lon: %f. Data from %d satellites\n",
				fix.Latitude, fix.Longitude, fix.Satellites)
		}
		lastFix = fix
		haveFix = true
	}
}
