package app

import (
	"encoding/json"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/gps_tracker/internal/config"
	"github.com/relabs-tech/gps_tracker/internal/gps"
	"github.com/relabs-tech/gps_tracker/internal/serialio"
)

// RunSendGPS polls the GPS receiver for a fix every send interval and
// publishes it as JSON to the MQTT broker. Cycles without a valid fix
// publish nothing, so subscribers only ever see real positions.
func RunSendGPS() error {
	cfg := config.Get()

	// ---- 1) Connect to MQTT broker ----
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientIDSender)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("GPS sender connected to MQTT broker at %s", cfg.Broker)

	// ---- 2) Open GPS serial port ----
	port, err := serialio.OpenPort(cfg.DevicePath, cfg.BaudRate)
	if err != nil {
		return err
	}
	defer port.Close()
	log.Printf("GPS serial port opened on %s at %d baud", cfg.DevicePath, cfg.BaudRate)

	reader := serialio.NewLineReader(port)
	extractor := gps.NewExtractor(reader)

	if err := reader.Drain(); err != nil {
		return err
	}

	for {
		fix, err := extractor.NextFix(cfg.RetryBudget)
		if err != nil {
			return err
		}

		if fix.Valid() {
			payload, err := json.Marshal(gps.Envelope{GPS: fix})
			if err != nil {
				log.Printf("GPS JSON marshal error: %v", err)
				continue
			}

			token := client.Publish(cfg.Topic, 0, true, payload)
			token.Wait()
			if token.Error() != nil {
				log.Printf("GPS publish error: %v", token.Error())
				continue
			}

			log.Printf("published GPS fix: %+v", fix)
		}

		time.Sleep(time.Duration(cfg.SendInterval) * time.Second)
	}
}
