package config

import "fmt"

// Validate checks configuration correctness. It performs declarative
// validation only and MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", cfg.LogLevel)
	}

	if cfg.Device.VendorID == 0 {
		return fmt.Errorf("config: device.vendor_id must be set")
	}

	switch cfg.Device.Transport {
	case TransportUSB, TransportHID:
	default:
		return fmt.Errorf("config: unknown device.transport %q", cfg.Device.Transport)
	}

	if cfg.Report.WaitMinUs < 0 {
		return fmt.Errorf("config: report.wait_min_us must not be negative")
	}
	if cfg.Report.WaitMaxUs < cfg.Report.WaitMinUs {
		return fmt.Errorf("config: report.wait_max_us (%d) below wait_min_us (%d)",
			cfg.Report.WaitMaxUs, cfg.Report.WaitMinUs)
	}

	return nil
}
