package razer

import (
	"errors"
	"testing"

	"github.com/Miziak/openrazer/internal/hid"
	"github.com/Miziak/openrazer/internal/protocol"
)

func testDevice(mock *hid.MockDevice) *Device {
	return &Device{
		Transport:     mock,
		Name:          "razertest",
		RequestIndex:  DefaultReportIndex,
		ResponseIndex: DefaultReportIndex,
	}
}

// success builds the device's acknowledgement for a request.
func success(request protocol.Report) protocol.Report {
	r := request
	r.Status = protocol.StatusSuccess
	return r
}

func TestGetSerialBuild(t *testing.T) {
	r := GetSerial()
	if r.CommandClass != 0x00 || r.CommandID != 0x82 || r.DataSize != 0x16 {
		t.Fatalf("unexpected request: %+v", r)
	}
}

func TestSerialRoundTrip(t *testing.T) {
	resp := success(GetSerial())
	copy(resp.Arguments[:], "PM1733D02900123")

	mock := hid.NewMockDevice()
	mock.Responses = [][]byte{resp.Marshal()}

	got, err := testDevice(mock).Serial()
	if err != nil {
		t.Fatalf("serial: %v", err)
	}
	if got.Serial != "PM1733D02900123" {
		t.Fatalf("serial: %q", got.Serial)
	}

	// The request on the wire carried a valid checksum.
	sent, err := protocol.Unmarshal(mock.Writes[0])
	if err != nil {
		t.Fatal(err)
	}
	if sent.CRC != sent.Checksum() {
		t.Fatalf("request sent without recomputed checksum")
	}
}

func TestFirmwareVersionRoundTrip(t *testing.T) {
	resp := success(GetFirmwareVersion())
	resp.Arguments[0] = 1
	resp.Arguments[1] = 7

	mock := hid.NewMockDevice()
	mock.Responses = [][]byte{resp.Marshal()}

	got, err := testDevice(mock).FirmwareVersion()
	if err != nil {
		t.Fatalf("firmware: %v", err)
	}
	if got.String() != "v1.7" {
		t.Fatalf("version: %s", got)
	}
}

func TestDoRejectsMismatchedCommand(t *testing.T) {
	resp := success(GetFirmwareVersion())

	mock := hid.NewMockDevice()
	mock.Responses = [][]byte{resp.Marshal()}

	_, err := testDevice(mock).Serial()
	var rerr *protocol.ReportError
	if !errors.As(err, &rerr) {
		t.Fatalf("mismatched response accepted: %v", err)
	}
}

func TestDoRejectsUnacknowledged(t *testing.T) {
	resp := GetDeviceMode()
	resp.Status = protocol.StatusNotSupported

	mock := hid.NewMockDevice()
	mock.Responses = [][]byte{resp.Marshal()}

	_, err := testDevice(mock).Mode()
	var rerr *protocol.ReportError
	if !errors.As(err, &rerr) {
		t.Fatalf("unacknowledged response accepted: %v", err)
	}
}

func TestSetLEDStateClamps(t *testing.T) {
	r := SetLEDState(VarStore, LEDBacklight, 0x7F)
	if r.Arguments[2] != LEDOn {
		t.Fatalf("state not clamped: %02x", r.Arguments[2])
	}
	if r.Arguments[0] != VarStore || r.Arguments[1] != LEDBacklight {
		t.Fatalf("arguments misplaced: %+v", r.Arguments[:3])
	}
}

func TestSetIdleTimeClamps(t *testing.T) {
	r := SetIdleTime(10_000)
	if got := uint16(r.Arguments[0])<<8 | uint16(r.Arguments[1]); got != IdleTimeMax {
		t.Fatalf("idle time not clamped: %d", got)
	}
}

func TestSetBrightnessBuild(t *testing.T) {
	r := SetLEDBrightness(NoStore, LEDLogo, 0xC8)
	if r.CommandClass != 0x03 || r.CommandID != 0x03 || r.DataSize != 0x03 {
		t.Fatalf("unexpected request: %+v", r)
	}
	if r.Arguments[0] != NoStore || r.Arguments[1] != LEDLogo || r.Arguments[2] != 0xC8 {
		t.Fatalf("arguments misplaced: %+v", r.Arguments[:3])
	}
}

func TestOpenManagerRoundTrip(t *testing.T) {
	resp := success(GetFirmwareVersion())
	resp.Arguments[0] = 2
	resp.Arguments[1] = 4

	mock := hid.NewMockDevice()
	mock.Responses = [][]byte{resp.Marshal()}
	mgr := &hid.MockManager{Device: mock}

	dev, err := OpenManager(mgr, RazerVID, 0x0C00)
	if err != nil {
		t.Fatalf("open through manager: %v", err)
	}
	defer dev.Close()

	if dev.Name != "Razer Firefly" {
		t.Fatalf("device name: %q", dev.Name)
	}
	if dev.RequestIndex != DefaultReportIndex || dev.WaitMin != DefaultWaitMin {
		t.Fatalf("defaults not applied: %+v", dev)
	}
	// Avoid slowing the test down with the real settling window.
	dev.WaitMin, dev.WaitMax = 0, 0

	fw, err := dev.FirmwareVersion()
	if err != nil {
		t.Fatalf("firmware over manager transport: %v", err)
	}
	if fw.String() != "v2.4" {
		t.Fatalf("version: %s", fw)
	}
}

func TestOpenManagerFailure(t *testing.T) {
	mgr := &hid.MockManager{OpenErr: errors.New("device not found")}
	if _, err := OpenManager(mgr, RazerVID, 0x0C00); !errors.Is(err, mgr.OpenErr) {
		t.Fatalf("open error not propagated: %v", err)
	}
}

func TestLegacyConfigBuild(t *testing.T) {
	buf := LegacyConfig(0x09, 0x02, 0x07)
	if len(buf) != 4 {
		t.Fatalf("legacy block length: %d", len(buf))
	}
	if buf[0] != LegacyPoll125Hz {
		t.Fatalf("polling rate not clamped: %02x", buf[0])
	}
	if buf[1] != 0x02 || buf[2] != 0x07 || buf[3] != 0x00 {
		t.Fatalf("legacy block misassembled: %v", buf)
	}
}

func TestSetLegacyConfigWrite(t *testing.T) {
	mock := hid.NewMockDevice()

	if err := testDevice(mock).SetLegacyConfig(LegacyPoll500Hz, 0x01, 0x03); err != nil {
		t.Fatalf("legacy config: %v", err)
	}
	want := []byte{LegacyPoll500Hz, 0x01, 0x03, 0x00}
	if len(mock.Writes) != 1 || len(mock.Writes[0]) != 4 {
		t.Fatalf("legacy write missing: %v", mock.Writes)
	}
	for i, b := range want {
		if mock.Writes[0][i] != b {
			t.Fatalf("legacy write: got %v, want %v", mock.Writes[0], want)
		}
	}
	// No response read happens on the legacy path.
	if len(mock.Responses) != 0 {
		t.Fatalf("legacy path consumed a response")
	}
}

func TestDeviceName(t *testing.T) {
	if DeviceName(0x0C00) != "Razer Firefly" {
		t.Fatalf("known device not resolved")
	}
	if DeviceName(0xFFFF) != "Razer device" {
		t.Fatalf("unknown device has no fallback")
	}
}
