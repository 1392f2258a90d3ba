// Package razer implements the device-specific commands of the Razer report
// protocol on top of the generic exchange substrate in internal/protocol.
package razer

import (
	"fmt"
	"time"

	"github.com/Miziak/openrazer/internal/hid"
	"github.com/Miziak/openrazer/internal/protocol"
	"github.com/Miziak/openrazer/internal/razerusb"
)

// RazerVID is Razer Inc.'s USB vendor id.
const RazerVID uint16 = 0x1532

// Command classes used by the standard command set.
const (
	classStandard byte = 0x00
	classLED      byte = 0x03
)

// Storage selector for LED parameters: written to flash or volatile only.
const (
	VarStore byte = 0x01
	NoStore  byte = 0x00
)

// LED identifiers shared by the whole device family.
const (
	LEDZero      byte = 0x00
	LEDScroll    byte = 0x01
	LEDBattery   byte = 0x03
	LEDLogo      byte = 0x04
	LEDBacklight byte = 0x05
	LEDMacro     byte = 0x07
	LEDGameMode  byte = 0x08
	LEDRightSide byte = 0x10
	LEDLeftSide  byte = 0x11
)

// Defaults for the exchange: most devices answer on interface 0x02 and need
// a 600–800µs quiet period between control transfers.
const (
	DefaultReportIndex uint16 = 0x02

	DefaultWaitMin = 600 * time.Microsecond
	DefaultWaitMax = 800 * time.Microsecond
)

// Device is an opened Razer device plus the exchange parameters it needs.
type Device struct {
	Transport     hid.Device
	Name          string
	RequestIndex  uint16
	ResponseIndex uint16
	WaitMin       time.Duration
	WaitMax       time.Duration
}

// Open finds a Razer device by product id over raw USB and wraps it with the
// default exchange parameters.
func Open(productID uint16) (*Device, error) {
	return OpenVIDPID(RazerVID, productID)
}

// OpenVIDPID is Open for hardware attached under a different vendor id.
func OpenVIDPID(vendorID, productID uint16) (*Device, error) {
	t, err := razerusb.Open(vendorID, productID)
	if err != nil {
		return nil, err
	}
	return wrap(t, productID), nil
}

// OpenHID reaches the device through the host's HID layer instead of
// claiming the USB interface, for hosts where the kernel driver cannot be
// detached. The control requests are the same; only the transport differs.
func OpenHID(vendorID, productID uint16) (*Device, error) {
	mgr, err := hid.NewManager()
	if err != nil {
		return nil, err
	}
	return OpenManager(mgr, vendorID, productID)
}

// OpenManager opens the device through an externally supplied Manager.
func OpenManager(mgr hid.Manager, vendorID, productID uint16) (*Device, error) {
	t, err := mgr.OpenVIDPID(vendorID, productID)
	if err != nil {
		return nil, fmt.Errorf("razer: open %04x:%04x: %w", vendorID, productID, err)
	}
	return wrap(t, productID), nil
}

func wrap(t hid.Device, productID uint16) *Device {
	return &Device{
		Transport:     t,
		Name:          DeviceName(productID),
		RequestIndex:  DefaultReportIndex,
		ResponseIndex: DefaultReportIndex,
		WaitMin:       DefaultWaitMin,
		WaitMax:       DefaultWaitMax,
	}
}

func (d *Device) Close() error {
	return d.Transport.Close()
}

// Do checksums and sends the request, reads back the response, and validates
// that the device acknowledged this command. The response is returned even
// when validation fails so callers can log it.
func (d *Device) Do(request protocol.Report) (protocol.Report, error) {
	request.CRC = request.Checksum()

	response, err := protocol.Exchange(d.Transport, request, d.RequestIndex, d.ResponseIndex, d.WaitMin, d.WaitMax)
	if err != nil {
		return response, err
	}

	if response.CommandClass != request.CommandClass || response.CommandID != request.CommandID {
		return response, &protocol.ReportError{
			Driver:  d.Name,
			Message: "response for a different command",
			Report:  response,
		}
	}
	if !response.Successful() {
		return response, &protocol.ReportError{
			Driver:  d.Name,
			Message: "device did not acknowledge command",
			Report:  response,
		}
	}
	return response, nil
}
