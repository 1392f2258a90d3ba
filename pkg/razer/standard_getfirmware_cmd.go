package razer

import (
	"fmt"

	"github.com/Miziak/openrazer/internal/protocol"
)

const razer_GETFIRMWARE_CMD = 0x81

func GetFirmwareVersion() protocol.Report {
	return protocol.New(classStandard, razer_GETFIRMWARE_CMD, 0x02)
}

type GetFirmwareVersionResponse struct {
	Major byte
	Minor byte
}

func (v GetFirmwareVersionResponse) String() string {
	return fmt.Sprintf("v%d.%d", v.Major, v.Minor)
}

func parseGetFirmwareVersionResponse(r protocol.Report) (GetFirmwareVersionResponse, error) {
	return GetFirmwareVersionResponse{
		Major: r.Arguments[0],
		Minor: r.Arguments[1],
	}, nil
}

// FirmwareVersion asks the device for its firmware revision.
func (d *Device) FirmwareVersion() (GetFirmwareVersionResponse, error) {
	resp, err := d.Do(GetFirmwareVersion())
	if err != nil {
		return GetFirmwareVersionResponse{}, err
	}
	return parseGetFirmwareVersionResponse(resp)
}
