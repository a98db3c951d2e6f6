// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"flag"
	"log"

	"github.com/relabs-tech/gps_tracker/internal/app"
	"github.com/relabs-tech/gps_tracker/internal/config"
)

func main() {
	confFile := flag.String("c", "gps_tracker.toml", "Configuration file to use.")
	flag.Parse()

	log.Println("starting gps-tracker sender (serial NMEA → MQTT)")

	if err := config.InitGlobal(*confFile); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunSendGPS(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
