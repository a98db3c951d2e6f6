package app

import (
	"fmt"
	"log"
	"time"

	"github.com/relabs-tech/gps_tracker/internal/config"
	"github.com/relabs-tech/gps_tracker/internal/gps"
	"github.com/relabs-tech/gps_tracker/internal/serialio"
)

// RunPrintGPS opens the GPS serial port and prints a fresh fix every
// poll interval. Cycles where the receiver produced no GGA sentence
// within the retry budget are skipped silently.
func RunPrintGPS() error {
	cfg := config.Get()

	port, err := serialio.OpenPort(cfg.DevicePath, cfg.BaudRate)
	if err != nil {
		return err
	}
	defer port.Close()
	log.Printf("GPS serial port opened on %s at %d baud", cfg.DevicePath, cfg.BaudRate)

	reader := serialio.NewLineReader(port)
	extractor := gps.NewExtractor(reader)

	// Clear out anything buffered since boot so the first read starts
	// on a whole sentence.
	if err := reader.Drain(); err != nil {
		return err
	}

	for {
		fix, err := extractor.NextFix(cfg.RetryBudget)
		if err != nil {
			return err
		}

		if fix.Valid() {
			fmt.Printf("Lat: %f, Lon: %f. Data from %d satellites\n",
				fix.Latitude, fix.Longitude, fix.Satellites)
		}

		time.Sleep(time.Duration(cfg.PollInterval) * time.Second)
	}
}
