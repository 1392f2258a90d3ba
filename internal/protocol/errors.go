package protocol

import "fmt"

// ReportError describes a malformed or unexpected report. It is built by
// callers on failure paths and only ever rendered; nothing branches on it.
type ReportError struct {
	Driver  string
	Message string
	Report  Report
}

func (e *ReportError) Error() string {
	r := e.Report
	return fmt.Sprintf("%s: %s. Status: %02x Transaction ID: %02x Data Size: %02x Command Class: %02x Command ID: %02x Params: % 02x",
		e.Driver, e.Message,
		r.Status, r.TransactionID, r.DataSize, r.CommandClass, r.CommandID,
		r.Arguments[:16])
}
