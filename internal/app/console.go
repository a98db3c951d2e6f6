// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/gps_tracker/internal/config"
	"github.com/relabs-tech/gps_tracker/internal/gps"
)

// RunConsole subscribes to the GPS topic and prints every fix, along
// with the distance moved since the previous one.
func RunConsole() error {
	cfg := config.Get()

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientIDConsole)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: connected to MQTT broker at %s", cfg.Broker)

	var (
		lastFix gps.Fix
		haveFix bool
	)

	token := client.Subscribe(cfg.Topic, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var env gps.Envelope
		if err := json.Unmarshal(msg.Payload(), &env); err != nil {
			log.Printf("console: gps unmarshal error: %v", err)
			return
		}

		fix := env.GPS
		if haveFix {
			fmt.Printf(
				"[GPS ]  lat=%.6f lon=%.6f sats=%d  moved=%.1fm\n",
				fix.Latitude, fix.Longitude, fix.Satellites,
				fix.DistanceMeters(lastFix),
			)
		} else {
			fmt.Printf(
				"[GPS ]  lat=%.6f lon=%.6f sats=%d\n",
				fix.Latitude, fix.Longitude, fix.Satellites,
			)
		}
		lastFix = fix
		haveFix = true
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: subscribed to %s", cfg.Topic)

	// Wait for Ctrl+C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("console: shutting down")
	client.Disconnect(250)
	return nil
}
