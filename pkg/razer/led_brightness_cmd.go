package razer

import (
	"github.com/Miziak/openrazer/internal/protocol"
)

const (
	razer_SETLEDBRIGHTNESS_CMD = 0x03
	razer_GETLEDBRIGHTNESS_CMD = 0x83
)

func SetLEDBrightness(storage, led, brightness byte) protocol.Report {
	r := protocol.New(classLED, razer_SETLEDBRIGHTNESS_CMD, 0x03)
	r.Arguments[0] = storage
	r.Arguments[1] = led
	r.Arguments[2] = brightness
	return r
}

func GetLEDBrightness(storage, led byte) protocol.Report {
	r := protocol.New(classLED, razer_GETLEDBRIGHTNESS_CMD, 0x03)
	r.Arguments[0] = storage
	r.Arguments[1] = led
	return r
}

type GetLEDBrightnessResponse struct {
	LED        byte
	Brightness byte
}

func parseGetLEDBrightnessResponse(r protocol.Report) (GetLEDBrightnessResponse, error) {
	return GetLEDBrightnessResponse{
		LED:        r.Arguments[1],
		Brightness: r.Arguments[2],
	}, nil
}

// Brightness reads the stored brightness of one LED.
func (d *Device) Brightness(led byte) (GetLEDBrightnessResponse, error) {
	resp, err := d.Do(GetLEDBrightness(VarStore, led))
	if err != nil {
		return GetLEDBrightnessResponse{}, err
	}
	return parseGetLEDBrightnessResponse(resp)
}

// SetBrightness persists a new brightness for one LED.
func (d *Device) SetBrightness(led, brightness byte) error {
	_, err := d.Do(SetLEDBrightness(VarStore, led, brightness))
	return err
}
