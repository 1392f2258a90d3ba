package razer

import (
	"encoding/binary"

	"github.com/Miziak/openrazer/internal/protocol"
)

const classMisc byte = 0x07

const (
	razer_SETLOWBATTERYTHRESHOLD_CMD = 0x01
	razer_SETIDLETIME_CMD            = 0x03
)

// Idle time the firmware accepts, in seconds.
const (
	IdleTimeMin uint16 = 60
	IdleTimeMax uint16 = 900
)

// SetLowBatteryThreshold sets the battery percentage below which the
// battery LED starts blinking. The firmware misbehaves above 25%, so the
// value is clamped to that.
func SetLowBatteryThreshold(threshold byte) protocol.Report {
	r := protocol.New(classMisc, razer_SETLOWBATTERYTHRESHOLD_CMD, 0x01)
	r.Arguments[0] = protocol.ClampU8(threshold, 0x01, 0x40)
	return r
}

// SetIdleTime sets how long a wireless device stays awake without input.
func SetIdleTime(seconds uint16) protocol.Report {
	r := protocol.New(classMisc, razer_SETIDLETIME_CMD, 0x02)
	binary.BigEndian.PutUint16(r.Arguments[0:2], protocol.ClampU16(seconds, IdleTimeMin, IdleTimeMax))
	return r
}

// SetIdleTimeout persists the wireless idle timeout.
func (d *Device) SetIdleTimeout(seconds uint16) error {
	_, err := d.Do(SetIdleTime(seconds))
	return err
}
