package main

import (
	"fmt"

	"github.com/Miziak/openrazer/internal/config"
	"github.com/Miziak/openrazer/internal/discover"
	"github.com/Miziak/openrazer/pkg/razer"
)

type ListCmd struct {
	All bool `help:"List every USB device, not just Razer hardware."`
}

func (c *ListCmd) Run(cfg config.Config) error {
	infos, err := discover.Razer()
	if c.All {
		infos, err = discover.All()
	}
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("no devices found")
		return nil
	}
	for _, d := range infos {
		name := d.Product
		if name == "" {
			name = razer.DeviceName(d.ProductID)
		}
		fmt.Printf("%04x:%04x if%d  %s\n", d.VendorID, d.ProductID, d.Interface, name)
	}
	return nil
}

type InfoCmd struct {
	Product string `arg:"" help:"Product id (decimal or 0x hex)."`
}

func (c *InfoCmd) Run(cfg config.Config) error {
	dev, err := openDevice(cfg, c.Product)
	if err != nil {
		return err
	}
	defer dev.Close()

	serial, err := dev.Serial()
	if err != nil {
		return err
	}
	fw, err := dev.FirmwareVersion()
	if err != nil {
		return err
	}
	mode, err := dev.Mode()
	if err != nil {
		return err
	}

	fmt.Printf("device:   %s\n", dev.Name)
	fmt.Printf("serial:   %s\n", serial.Serial)
	fmt.Printf("firmware: %s\n", fw)
	fmt.Printf("mode:     %02x\n", mode.Mode)
	return nil
}

type BrightnessCmd struct {
	Product string `arg:"" help:"Product id (decimal or 0x hex)."`
	LED     byte   `help:"LED identifier." default:"5"`
	Set     int    `help:"Brightness to store (0-255); omit to read." default:"-1"`
}

func (c *BrightnessCmd) Run(cfg config.Config) error {
	dev, err := openDevice(cfg, c.Product)
	if err != nil {
		return err
	}
	defer dev.Close()

	if c.Set >= 0 {
		return dev.SetBrightness(c.LED, byte(c.Set))
	}
	got, err := dev.Brightness(c.LED)
	if err != nil {
		return err
	}
	fmt.Printf("led %02x brightness %d\n", got.LED, got.Brightness)
	return nil
}

// openDevice resolves the device from the flag or the config file, opens it
// over the configured transport, and applies the exchange overrides.
func openDevice(cfg config.Config, product string) (*razer.Device, error) {
	pid := cfg.Device.ProductID
	if product != "" {
		p, err := parseID(product)
		if err != nil {
			return nil, err
		}
		pid = p
	}
	if pid == 0 {
		return nil, fmt.Errorf("no product id given (flag or config)")
	}

	var (
		dev *razer.Device
		err error
	)
	switch cfg.Device.Transport {
	case config.TransportHID:
		dev, err = razer.OpenHID(cfg.Device.VendorID, pid)
	default:
		dev, err = razer.OpenVIDPID(cfg.Device.VendorID, pid)
	}
	if err != nil {
		return nil, err
	}
	dev.RequestIndex = cfg.Report.RequestIndex
	dev.ResponseIndex = cfg.Report.ResponseIndex
	if cfg.Report.WaitMinUs > 0 {
		dev.WaitMin = cfg.Report.WaitMin()
		dev.WaitMax = cfg.Report.WaitMax()
	}
	return dev, nil
}
