package protocol

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Miziak/openrazer/internal/hid"
)

// ReportValue is the wValue of the standard protocol's SET_REPORT/GET_REPORT
// control requests (feature report, report id 0).
const ReportValue = 0x300

var (
	// ErrShortWrite is returned by Send when the transfer moved fewer bytes
	// than the full report.
	ErrShortWrite = errors.New("protocol: short report write")

	// ErrShortRead is returned by Exchange when the response transfer did not
	// return a full report. The partial response is still returned alongside
	// it for inspection.
	ErrShortRead = errors.New("protocol: short report read")
)

// Send writes the report to the device as a SET_REPORT control transfer at
// the given interface index, then sleeps for the mandatory settling window.
//
// The report is marshaled into a fresh buffer, so the caller's copy is never
// aliased during the transfer. The settling delay happens on every path,
// including failures: the device may have consumed part of the transfer
// regardless of the reported status, and issuing another transfer too early
// wedges the firmware.
func Send(dev hid.Device, r Report, index uint16, waitMin, waitMax time.Duration) error {
	buf := r.Marshal()
	n, err := dev.ControlWrite(ReportValue, index, buf)
	settle(waitMin, waitMax)
	if err != nil {
		return fmt.Errorf("protocol: report write: %w", err)
	}
	if n != ReportLen {
		slog.Warn("device data transfer failed", slog.Int("written", n), slog.Int("expected", ReportLen))
		return ErrShortWrite
	}
	return nil
}

// SendPayload is the legacy-device variant of Send: some pre-standard
// hardware expects a different report value and length. The same duplication
// and unconditional-settle rules apply.
func SendPayload(dev hid.Device, data []byte, value, index uint16, waitMin, waitMax time.Duration) error {
	buf := make([]byte, len(data))
	copy(buf, data)
	n, err := dev.ControlWrite(value, index, buf)
	settle(waitMin, waitMax)
	if err != nil {
		return fmt.Errorf("protocol: payload write: %w", err)
	}
	if n != len(buf) {
		slog.Warn("device data transfer failed", slog.Int("written", n), slog.Int("expected", len(buf)))
		return ErrShortWrite
	}
	return nil
}

// Exchange arms a response by sending the request report, then reads the
// response with a GET_REPORT control transfer. The read is issued even when
// the send failed: devices sometimes still hold a response buffer from a
// prior state, and callers want to see it.
//
// The returned report is always populated with whatever the device produced.
// The error joins the send failure (if any) with ErrShortRead when the read
// did not return a full report; a non-nil error therefore does not mean the
// response is empty.
func Exchange(dev hid.Device, request Report, requestIndex, responseIndex uint16, waitMin, waitMax time.Duration) (Report, error) {
	sendErr := Send(dev, request, requestIndex, waitMin, waitMax)
	if sendErr != nil {
		slog.Warn("request report send failed, reading response anyway", slog.Any("error", sendErr))
	}

	buf := make([]byte, ReportLen)
	n, err := dev.ControlRead(ReportValue, responseIndex, buf)
	if err != nil {
		response, _ := Unmarshal(buf)
		return response, errors.Join(sendErr, fmt.Errorf("protocol: report read: %w", err))
	}

	var readErr error
	if n != ReportLen {
		slog.Warn("invalid USB response", slog.Int("length", n))
		readErr = fmt.Errorf("%w: got %d bytes", ErrShortRead, n)
	}

	response, _ := Unmarshal(buf)
	return response, errors.Join(sendErr, readErr)
}

// settle blocks for the post-transfer quiet period the hardware needs before
// it will accept another control transfer. Any point inside
// [waitMin, waitMax] satisfies the firmware; we target mid-window and let
// time.Sleep overshoot from there.
func settle(waitMin, waitMax time.Duration) {
	wait := waitMin
	if waitMax > wait {
		wait = waitMin + (waitMax-waitMin)/2
	}
	if wait > 0 {
		time.Sleep(wait)
	}
}
