package razer

import (
	"strings"

	"github.com/Miziak/openrazer/internal/protocol"
)

const razer_GETSERIAL_CMD = 0x82

func GetSerial() protocol.Report {
	return protocol.New(classStandard, razer_GETSERIAL_CMD, 0x16)
}

type GetSerialResponse struct {
	Serial string
}

func parseGetSerialResponse(r protocol.Report) (GetSerialResponse, error) {
	// 22 ASCII bytes, NUL padded on shorter serials.
	raw := string(r.Arguments[:0x16])
	return GetSerialResponse{
		Serial: strings.TrimRight(raw, "\x00"),
	}, nil
}

// Serial asks the device for its serial number.
func (d *Device) Serial() (GetSerialResponse, error) {
	resp, err := d.Do(GetSerial())
	if err != nil {
		return GetSerialResponse{}, err
	}
	return parseGetSerialResponse(resp)
}
