// Package hid abstracts the transport the report protocol runs over.
// The primary backend (internal/razerusb) issues raw USB control transfers;
// the backend in this package reaches the same feature-report requests
// through a HID library, which is enough on hosts where claiming the USB
// interface directly is not possible.
package hid

// Device is an opened device capable of report control transfers.
//
// ControlWrite issues a SET_REPORT class request (bmRequestType 0x21,
// bRequest 0x09) and ControlRead a GET_REPORT class request (bmRequestType
// 0xA1, bRequest 0x01), with the given wValue and wIndex. Both return the
// number of bytes actually moved.
type Device interface {
	ControlWrite(value, index uint16, data []byte) (int, error)
	ControlRead(value, index uint16, data []byte) (int, error)
	Close() error
}

// Info represents a HID device descriptor.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Product      string
	Manufacturer string
}

// Manager enumerates and opens HID devices.
type Manager interface {
	List() ([]Info, error)
	Open(info Info) (Device, error)
	OpenVIDPID(vendorID, productID uint16) (Device, error)
}

// NewManager returns the HID-library-backed manager.
func NewManager() (Manager, error) {
	return newManager()
}
