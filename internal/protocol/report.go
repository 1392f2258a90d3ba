// Package protocol implements the Razer USB control-transfer report protocol:
// the fixed 90-byte report layout, its XOR checksum, and the send /
// request-response exchange sequencing shared by every device command.
package protocol

import (
	"encoding/binary"
	"fmt"
)

const (
	// ReportLen is the fixed length of every report on the wire. A transfer
	// that moves any other number of bytes is a protocol error, not a partial
	// read to retry.
	ReportLen = 90

	// ArgumentsLen is the width of the argument region (offsets 8..87).
	ArgumentsLen = 80

	// Checksum window: XOR of raw bytes [ChecksumStart, ChecksumEnd). The
	// checksum byte at offset 88 and the reserved byte at 89 are excluded.
	ChecksumStart = 2
	ChecksumEnd   = 88

	checksumOffset = 88

	// DefaultTransactionID tags a freshly built request.
	DefaultTransactionID = 0xFF
)

// Device-reported status values seen at offset 0 of a response.
const (
	StatusNewCommand   = 0x00
	StatusBusy         = 0x01
	StatusSuccess      = 0x02
	StatusFailure      = 0x03
	StatusTimeout      = 0x04
	StatusNotSupported = 0x05
)

// Report is one fixed-layout control-transfer message. The zero value is a
// valid all-zero report (see NewEmpty).
type Report struct {
	Status           byte
	TransactionID    byte
	RemainingPackets uint16
	ProtocolType     byte
	DataSize         byte
	CommandClass     byte
	CommandID        byte
	Arguments        [ArgumentsLen]byte
	CRC              byte
	Reserved         byte
}

// New returns a report initialised for a single-packet request: transaction
// id 0xFF, everything else zero except the given class/id/size.
func New(commandClass, commandID, dataSize byte) Report {
	return Report{
		TransactionID: DefaultTransactionID,
		DataSize:      dataSize,
		CommandClass:  commandClass,
		CommandID:     commandID,
	}
}

// NewEmpty returns a fully zeroed report, used as a response scratch buffer.
func NewEmpty() Report {
	return Report{}
}

// Marshal renders the report into its fixed 90-byte wire form. Field offsets
// are explicit; the in-memory struct layout is never reinterpreted directly.
func (r Report) Marshal() []byte {
	b := make([]byte, ReportLen)
	b[0] = r.Status
	b[1] = r.TransactionID
	binary.BigEndian.PutUint16(b[2:4], r.RemainingPackets)
	b[4] = r.ProtocolType
	b[5] = r.DataSize
	b[6] = r.CommandClass
	b[7] = r.CommandID
	copy(b[8:8+ArgumentsLen], r.Arguments[:])
	b[checksumOffset] = r.CRC
	b[89] = r.Reserved
	return b
}

// Unmarshal parses a 90-byte wire buffer into a Report. Any other length is
// rejected.
func Unmarshal(b []byte) (Report, error) {
	if len(b) != ReportLen {
		return Report{}, fmt.Errorf("protocol: report must be %d bytes, got %d", ReportLen, len(b))
	}
	var r Report
	r.Status = b[0]
	r.TransactionID = b[1]
	r.RemainingPackets = binary.BigEndian.Uint16(b[2:4])
	r.ProtocolType = b[4]
	r.DataSize = b[5]
	r.CommandClass = b[6]
	r.CommandID = b[7]
	copy(r.Arguments[:], b[8:8+ArgumentsLen])
	r.CRC = b[checksumOffset]
	r.Reserved = b[89]
	return r, nil
}

// Checksum XOR-reduces wire bytes [2, 88) of the report. The stored CRC field
// does not participate and is not authoritative until the caller assigns the
// returned value before sending.
func (r Report) Checksum() byte {
	b := r.Marshal()
	var crc byte
	for _, v := range b[ChecksumStart:ChecksumEnd] {
		crc ^= v
	}
	return crc
}

// Successful reports whether the device acknowledged the command.
func (r Report) Successful() bool {
	return r.Status == StatusSuccess
}
