package razer

import (
	"github.com/Miziak/openrazer/internal/protocol"
)

// Pre-standard hardware (DeathAdder 3.5G era) does not speak the 90-byte
// report protocol: it takes a 4-byte configuration block under its own
// report value, with no response to read back.
const (
	legacyConfigValue uint16 = 0x10
	legacyConfigIndex uint16 = 0x00
)

// Polling rate selectors accepted by the legacy configuration block.
const (
	LegacyPoll1000Hz byte = 0x01
	LegacyPoll500Hz  byte = 0x02
	LegacyPoll125Hz  byte = 0x03
)

// LegacyConfig builds the raw configuration block.
func LegacyConfig(pollingRate, dpi, ledFlags byte) []byte {
	return []byte{
		protocol.ClampU8(pollingRate, LegacyPoll1000Hz, LegacyPoll125Hz),
		dpi,
		ledFlags,
		0x00,
	}
}

// SetLegacyConfig pushes polling rate, DPI selector and LED flags to a
// pre-standard device in one write.
func (d *Device) SetLegacyConfig(pollingRate, dpi, ledFlags byte) error {
	return protocol.SendPayload(d.Transport, LegacyConfig(pollingRate, dpi, ledFlags),
		legacyConfigValue, legacyConfigIndex, d.WaitMin, d.WaitMax)
}
