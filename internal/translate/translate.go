// Package translate keeps the per-device key-translation tables: which
// physical key produces which logical keycode, overridable from user space
// through a raw binary attribute.
//
// The wire format is a flat array of little-endian u16 pairs, one
// (from, to) pair per entry. Writing a single byte of any value clears the
// device's table. Flags live in memory only and reset to zero on every write.
//
// The registry does no locking of its own: the surrounding driver must
// serialize Apply calls against concurrent Lookup/Serialize for the same
// device id.
package translate

import "encoding/binary"

// Result codes surfaced to the attribute write path.
type Result int

const (
	Applied       Result = 0 // table replaced or created
	Cleared       Result = 1 // table removed (or was already absent)
	InvalidLength Result = 2 // buffer is not whole (from, to) pairs
)

// entrySize is the wire width of one entry: two u16 words.
const entrySize = 4

// Entry is one remapping rule. From is the physical keycode, To the keycode
// reported in its place.
type Entry struct {
	From  uint16
	To    uint16
	Flags uint8
}

// Registry holds at most one translation table per device id. Tables are
// created lazily on first write and replaced wholesale whenever their entry
// count changes.
type Registry struct {
	tables map[uint16][]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[uint16][]Entry)}
}

// Apply drives the per-device state machine from one raw attribute write.
//
//   - one byte of any value: drop the device's table (idempotent), Cleared
//   - length not a multiple of one entry (4 bytes): InvalidLength, registry
//     untouched — this includes even lengths that are not whole pairs
//   - otherwise: replace the device's table with the decoded entries, Applied
//
// A write either fully replaces the table or leaves it exactly as it was.
func (r *Registry) Apply(id uint16, buf []byte) Result {
	if len(buf) == 1 {
		delete(r.tables, id)
		return Cleared
	}

	if len(buf)%entrySize != 0 {
		return InvalidLength
	}

	entries := make([]Entry, len(buf)/entrySize)
	for i := range entries {
		off := i * entrySize
		entries[i] = Entry{
			From: binary.LittleEndian.Uint16(buf[off : off+2]),
			To:   binary.LittleEndian.Uint16(buf[off+2 : off+4]),
		}
	}
	r.tables[id] = entries
	return Applied
}

// Lookup scans the device's table in stored order and returns the first
// entry whose From matches key. Duplicate From keys are allowed; the earliest
// one wins.
func (r *Registry) Lookup(id, key uint16) (Entry, bool) {
	for _, e := range r.tables[id] {
		if e.From == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Len reports the entry count of the device's table, zero when absent.
func (r *Registry) Len(id uint16) int {
	return len(r.tables[id])
}

// Serialize renders the device's table back into the wire format. A device
// with no table yields a single NUL marker byte so a reader always gets at
// least one byte back.
func (r *Registry) Serialize(id uint16) []byte {
	entries, ok := r.tables[id]
	if !ok {
		return []byte{0x00}
	}
	buf := make([]byte, len(entries)*entrySize)
	for i, e := range entries {
		off := i * entrySize
		binary.LittleEndian.PutUint16(buf[off:off+2], e.From)
		binary.LittleEndian.PutUint16(buf[off+2:off+4], e.To)
	}
	return buf
}

// Teardown drops every table. Safe to call on an already-empty registry.
func (r *Registry) Teardown() {
	r.tables = make(map[uint16][]Entry)
}
