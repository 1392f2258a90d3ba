package hid

import (
	"fmt"

	usbhid "rafaelmartins.com/p/usbhid"
)

type usbManager struct{}

func newManager() (Manager, error) { return &usbManager{}, nil }

func (m *usbManager) List() ([]Info, error) {
	devs, err := usbhid.Enumerate(nil)
	if err != nil {
		return nil, err
	}
	out := make([]Info, 0, len(devs))
	for _, d := range devs {
		out = append(out, Info{
			Path:         d.Path(),
			VendorID:     d.VendorId(),
			ProductID:    d.ProductId(),
			Product:      d.Product(),
			Manufacturer: d.Manufacturer(),
		})
	}
	return out, nil
}

type usbDevice struct{ d *usbhid.Device }

func (m *usbManager) Open(info Info) (Device, error) {
	d, err := usbhid.Get(func(dev *usbhid.Device) bool {
		return dev.Path() == info.Path
	}, true, false)
	if err != nil {
		return nil, err
	}
	return &usbDevice{d}, nil
}

func (m *usbManager) OpenVIDPID(vendorID, productID uint16) (Device, error) {
	d, err := usbhid.Get(func(dev *usbhid.Device) bool {
		return dev.VendorId() == vendorID && dev.ProductId() == productID
	}, true, false)
	if err != nil {
		return nil, err
	}
	return &usbDevice{d}, nil
}

// ControlWrite maps the SET_REPORT request onto a feature-report write. The
// report id is the low byte of wValue (0x300 is feature report 0); wIndex is
// implicit in the already-opened interface handle.
func (d *usbDevice) ControlWrite(value, _ uint16, data []byte) (int, error) {
	if value>>8 != 0x03 {
		return 0, fmt.Errorf("hid: unsupported report type in wValue 0x%04x", value)
	}
	if err := d.d.SetFeatureReport(byte(value), data); err != nil {
		return 0, err
	}
	return len(data), nil
}

// ControlRead maps the GET_REPORT request onto a feature-report read.
func (d *usbDevice) ControlRead(value, _ uint16, data []byte) (int, error) {
	if value>>8 != 0x03 {
		return 0, fmt.Errorf("hid: unsupported report type in wValue 0x%04x", value)
	}
	buf, err := d.d.GetFeatureReport(byte(value))
	if err != nil {
		return 0, err
	}
	return copy(data, buf), nil
}

func (d *usbDevice) Close() error { return d.d.Close() }
