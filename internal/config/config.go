// Package config loads the razerctl tool configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel string       `yaml:"log_level"`
	Device   DeviceConfig `yaml:"device"`
	Report   ReportConfig `yaml:"report"`
}

// Transport selectors for reaching the device.
const (
	TransportUSB = "usb" // claim the interface, raw control transfers
	TransportHID = "hid" // go through the host's HID layer
)

type DeviceConfig struct {
	VendorID  uint16 `yaml:"vendor_id"`
	ProductID uint16 `yaml:"product_id"`
	Transport string `yaml:"transport"`
}

// ReportConfig tunes the control-transfer exchange for hardware that
// deviates from the usual interface index or needs a longer settling window.
type ReportConfig struct {
	RequestIndex  uint16 `yaml:"request_index"`
	ResponseIndex uint16 `yaml:"response_index"`
	WaitMinUs     int    `yaml:"wait_min_us"`
	WaitMaxUs     int    `yaml:"wait_max_us"`
}

// Default returns the configuration used when no file is given: the usual
// Razer interface index and the settling window the stock firmware expects.
func Default() Config {
	return Config{
		LogLevel: "info",
		Device: DeviceConfig{
			VendorID:  0x1532,
			Transport: TransportUSB,
		},
		Report: ReportConfig{
			RequestIndex:  0x02,
			ResponseIndex: 0x02,
			WaitMinUs:     600,
			WaitMaxUs:     800,
		},
	}
}

// Load reads and validates a YAML configuration file. Fields left unset keep
// their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// normalize fills derivable fields. It runs before validation so that a file
// setting only wait_min_us still ends up with a coherent window.
func normalize(cfg *Config) {
	if cfg.Report.WaitMaxUs == 0 {
		cfg.Report.WaitMaxUs = cfg.Report.WaitMinUs
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Device.Transport == "" {
		cfg.Device.Transport = TransportUSB
	}
}

// WaitMin returns the settling window lower bound as a duration.
func (c ReportConfig) WaitMin() time.Duration {
	return time.Duration(c.WaitMinUs) * time.Microsecond
}

// WaitMax returns the settling window upper bound as a duration.
func (c ReportConfig) WaitMax() time.Duration {
	return time.Duration(c.WaitMaxUs) * time.Microsecond
}
