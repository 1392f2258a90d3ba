// razerctl talks to Razer peripherals from user space: device discovery,
// the standard command set over control transfers, and the key-translation
// wire format of the driver's button_translations attribute.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/Miziak/openrazer/internal/config"
)

var cli struct {
	Config    string `help:"Path to a razerctl.yaml configuration file." type:"path"`
	LogLevel  string `help:"Log level (debug, info, warn, error)."`
	Transport string `help:"Device transport (usb, hid)."`

	List       ListCmd       `cmd:"" help:"List attached Razer devices."`
	Info       InfoCmd       `cmd:"" help:"Print serial, firmware and mode of a device."`
	Brightness BrightnessCmd `cmd:"" help:"Get or set an LED brightness."`
	Keymap     KeymapCmd     `cmd:"" help:"Encode, decode or clear key-translation tables."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("razerctl"),
		kong.Description("Control tool for Razer USB peripherals."),
		kong.UsageOnError(),
	)

	cfg := config.Default()
	if cli.Config != "" {
		loaded, err := config.Load(cli.Config)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.Transport != "" {
		cfg.Device.Transport = cli.Transport
	}
	if err := config.Validate(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	})))

	ctx.FatalIfErrorf(ctx.Run(cfg))
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// parseID accepts decimal or 0x-prefixed hex device ids.
func parseID(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return uint16(v), nil
}
