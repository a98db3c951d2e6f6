// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"log"

	"github.com/relabs-tech/gps_tracker/internal/app"
)

func main() {
	log.Println("starting gps-tracker (scripted replay)")

	if err := app.RunReplay(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
