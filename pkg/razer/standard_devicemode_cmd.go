package razer

import (
	"github.com/Miziak/openrazer/internal/protocol"
)

const (
	razer_SETDEVICEMODE_CMD = 0x04
	razer_GETDEVICEMODE_CMD = 0x84
)

// Device modes. Driver mode stops the firmware from handling macro keys
// itself so the host sees the raw events.
const (
	DeviceModeNormal byte = 0x00
	DeviceModeDriver byte = 0x03
)

func SetDeviceMode(mode, param byte) protocol.Report {
	r := protocol.New(classStandard, razer_SETDEVICEMODE_CMD, 0x02)
	r.Arguments[0] = mode
	r.Arguments[1] = param
	return r
}

func GetDeviceMode() protocol.Report {
	return protocol.New(classStandard, razer_GETDEVICEMODE_CMD, 0x02)
}

type GetDeviceModeResponse struct {
	Mode  byte
	Param byte
}

func parseGetDeviceModeResponse(r protocol.Report) (GetDeviceModeResponse, error) {
	return GetDeviceModeResponse{
		Mode:  r.Arguments[0],
		Param: r.Arguments[1],
	}, nil
}

// Mode reads the current device mode.
func (d *Device) Mode() (GetDeviceModeResponse, error) {
	resp, err := d.Do(GetDeviceMode())
	if err != nil {
		return GetDeviceModeResponse{}, err
	}
	return parseGetDeviceModeResponse(resp)
}

// SetMode switches the device mode.
func (d *Device) SetMode(mode, param byte) error {
	_, err := d.Do(SetDeviceMode(mode, param))
	return err
}
