// Package razerusb opens Razer hardware over raw USB and implements the
// control-transfer transport the report protocol needs (SET_REPORT /
// GET_REPORT class requests against the device's control endpoint).
package razerusb

import (
	"fmt"
	"time"

	"github.com/google/gousb"

	"github.com/Miziak/openrazer/internal/discover"
)

const (
	hidReqSetReport uint8 = 0x09
	hidReqGetReport uint8 = 0x01

	// bmRequestType: class request to an interface, out and in directions.
	requestTypeOut uint8 = 0x21
	requestTypeIn  uint8 = 0xA1

	// Control-transfer timeout, distinct from the protocol settling delay.
	controlTimeout = 5 * time.Second
)

// Device is a Razer device opened for control-transfer report I/O. It
// satisfies the hid.Device interface consumed by internal/protocol.
type Device struct {
	ctx *gousb.Context
	dev *gousb.Device
}

// Open finds and opens a device by VID/PID and detaches any kernel driver so
// the control requests reach the hardware.
func Open(vendorID, productID uint16) (*Device, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(vendorID), gousb.ID(productID))
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("razerusb: open device: %w", err)
	}
	if dev == nil {
		ctx.Close()
		// Enumerate what is attached so the failure message is actionable.
		others, _ := discover.Razer()
		return nil, fmt.Errorf("razerusb: device %04x:%04x not found (%d Razer devices attached)",
			vendorID, productID, len(others))
	}

	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("razerusb: auto-detach: %w", err)
	}
	dev.ControlTimeout = controlTimeout

	return &Device{ctx: ctx, dev: dev}, nil
}

// ControlWrite issues the SET_REPORT class request.
func (d *Device) ControlWrite(value, index uint16, data []byte) (int, error) {
	return d.dev.Control(requestTypeOut, hidReqSetReport, value, index, data)
}

// ControlRead issues the GET_REPORT class request.
func (d *Device) ControlRead(value, index uint16, data []byte) (int, error) {
	return d.dev.Control(requestTypeIn, hidReqGetReport, value, index, data)
}

// Close releases the device handle and the USB context.
func (d *Device) Close() error {
	err := d.dev.Close()
	if cerr := d.ctx.Close(); err == nil {
		err = cerr
	}
	return err
}
