// Package discover enumerates attached Razer hardware without opening it.
package discover

import (
	"fmt"

	"github.com/karalabe/usb"
)

// RazerVID is Razer Inc.'s USB vendor id.
const RazerVID uint16 = 0x1532

// Info describes one attached device.
type Info struct {
	Path      string
	VendorID  uint16
	ProductID uint16
	Product   string
	Interface int
}

// Razer lists every attached device with the Razer vendor id.
func Razer() ([]Info, error) {
	return byVendor(RazerVID)
}

// All lists every attached USB device the host lets us see.
func All() ([]Info, error) {
	return byVendor(0)
}

func byVendor(vid uint16) ([]Info, error) {
	infos, err := usb.Enumerate(vid, 0)
	if err != nil {
		return nil, fmt.Errorf("discover: usb enumerate: %w", err)
	}
	out := make([]Info, 0, len(infos))
	for _, d := range infos {
		out = append(out, Info{
			Path:      d.Path,
			VendorID:  d.VendorID,
			ProductID: d.ProductID,
			Product:   d.Product,
			Interface: d.Interface,
		})
	}
	return out, nil
}
