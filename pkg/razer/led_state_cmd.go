package razer

import (
	"github.com/Miziak/openrazer/internal/protocol"
)

const (
	razer_SETLEDSTATE_CMD = 0x00
	razer_GETLEDSTATE_CMD = 0x80
)

const (
	LEDOff byte = 0x00
	LEDOn  byte = 0x01
)

func SetLEDState(storage, led, state byte) protocol.Report {
	r := protocol.New(classLED, razer_SETLEDSTATE_CMD, 0x03)
	r.Arguments[0] = storage
	r.Arguments[1] = led
	r.Arguments[2] = protocol.ClampU8(state, LEDOff, LEDOn)
	return r
}

func GetLEDState(storage, led byte) protocol.Report {
	r := protocol.New(classLED, razer_GETLEDSTATE_CMD, 0x03)
	r.Arguments[0] = storage
	r.Arguments[1] = led
	return r
}

type GetLEDStateResponse struct {
	LED   byte
	State byte
}

func parseGetLEDStateResponse(r protocol.Report) (GetLEDStateResponse, error) {
	return GetLEDStateResponse{
		LED:   r.Arguments[1],
		State: r.Arguments[2],
	}, nil
}

// LEDState reads whether one LED is lit.
func (d *Device) LEDState(led byte) (GetLEDStateResponse, error) {
	resp, err := d.Do(GetLEDState(VarStore, led))
	if err != nil {
		return GetLEDStateResponse{}, err
	}
	return parseGetLEDStateResponse(resp)
}

// SetLED switches one LED on or off.
func (d *Device) SetLED(led, state byte) error {
	_, err := d.Do(SetLEDState(VarStore, led, state))
	return err
}
