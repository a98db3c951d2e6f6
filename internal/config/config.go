package config

import (
	"fmt"
	"os"
	"sync"

	toml "github.com/pelletier/go-toml"
)

// Config holds all application configuration values.
type Config struct {
	// GPS serial connection
	DevicePath string `toml:"device_path"`
	BaudRate   int    `toml:"device_baud_rate"`

	// Fix acquisition
	RetryBudget  int `toml:"retry_budget"`
	PollInterval int `toml:"poll_interval_seconds"`
	SendInterval int `toml:"send_interval_seconds"`

	// MQTT
	Broker          string `toml:"mqtt_broker"`
	DeviceID        string `toml:"device_id"`
	Topic           string `toml:"gps_topic"`
	ClientIDSender  string `toml:"mqtt_client_id_sender"`
	ClientIDConsole string `toml:"mqtt_client_id_console"`
	ClientIDWeb     string `toml:"mqtt_client_id_web"`
	ClientIDDisplay string `toml:"mqtt_client_id_display"`

	// Web server
	WebPort int `toml:"web_port"`

	// OLED display. The ssd1306 driver uses the fixed default I2C
	// address 0x3C.
	DisplayUpdateInterval int `toml:"display_update_interval_ms"`
}

// Default returns a Config with the values the reference hardware uses:
// a 9600 baud module on /dev/ttyAMA0, polled every 10 seconds locally
// and reported upstream every 60.
func Default() *Config {
	return &Config{
		DevicePath:            "/dev/ttyAMA0",
		BaudRate:              9600,
		RetryBudget:           100,
		PollInterval:          10,
		SendInterval:          60,
		Broker:                "tcp://localhost:1883",
		DeviceID:              "gps-tracker",
		Topic:                 "gps/fix",
		ClientIDSender:        "gps-tracker-sender",
		ClientIDConsole:       "gps-tracker-console",
		ClientIDWeb:           "gps-tracker-web",
		ClientIDDisplay:       "gps-tracker-display",
		WebPort:               8080,
		DisplayUpdateInterval: 1000,
	}
}

// Load reads the TOML configuration file over the defaults.
func Load(path string) (*Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DevicePath == "" {
		return fmt.Errorf("device_path is required")
	}
	if c.BaudRate <= 0 {
		return fmt.Errorf("device_baud_rate must be positive, got %d", c.BaudRate)
	}
	if c.RetryBudget <= 0 {
		return fmt.Errorf("retry_budget must be positive, got %d", c.RetryBudget)
	}
	if c.Broker == "" {
		return fmt.Errorf("mqtt_broker is required")
	}
	return nil
}

var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// InitGlobal loads the configuration file once for the process. A
// missing file is not an error; the defaults are used.
func InitGlobal(path string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			globalConfig = Default()
			return
		}
		globalConfig, err = Load(path)
	})
	return err
}

// Get returns the global configuration. InitGlobal must be called first.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
