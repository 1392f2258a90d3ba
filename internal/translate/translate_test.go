package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyThenClear(t *testing.T) {
	r := NewRegistry()

	// Two pairs: 0x0002->0x001E, 0x0003->0x0030.
	buf := []byte{0x02, 0x00, 0x1E, 0x00, 0x03, 0x00, 0x30, 0x00}
	require.Equal(t, Applied, r.Apply(5, buf))

	e, ok := r.Lookup(5, 2)
	require.True(t, ok)
	assert.Equal(t, Entry{From: 2, To: 0x1E}, e)

	assert.Equal(t, buf, r.Serialize(5))

	require.Equal(t, Cleared, r.Apply(5, []byte{0x00}))
	_, ok = r.Lookup(5, 2)
	assert.False(t, ok)
	assert.Equal(t, []byte{0x00}, r.Serialize(5))
}

func TestClearIsIdempotent(t *testing.T) {
	r := NewRegistry()
	// No table yet: still reports Cleared.
	assert.Equal(t, Cleared, r.Apply(9, []byte{0xFF}))
	assert.Equal(t, Cleared, r.Apply(9, []byte{0xFF}))
}

func TestRoundTrip(t *testing.T) {
	r := NewRegistry()
	for n := 1; n <= 8; n++ {
		buf := make([]byte, 0, n*4)
		for i := 0; i < n; i++ {
			from := uint16(i + 1)
			to := uint16(0x1E + i)
			buf = append(buf, byte(from), byte(from>>8), byte(to), byte(to>>8))
		}
		require.Equal(t, Applied, r.Apply(1, buf), "n=%d", n)
		assert.Equal(t, buf, r.Serialize(1), "n=%d", n)
		assert.Equal(t, n, r.Len(1))
	}
}

func TestReplaceDropsStaleEntries(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, Applied, r.Apply(1, []byte{
		0x02, 0x00, 0x1E, 0x00,
		0x03, 0x00, 0x30, 0x00,
		0x04, 0x00, 0x2E, 0x00,
	}))
	require.Equal(t, 3, r.Len(1))

	// Smaller replacement: every old key must stop resolving.
	require.Equal(t, Applied, r.Apply(1, []byte{0x07, 0x00, 0x20, 0x00}))
	assert.Equal(t, 1, r.Len(1))
	for _, key := range []uint16{2, 3, 4} {
		_, ok := r.Lookup(1, key)
		assert.False(t, ok, "stale key %d survived replacement", key)
	}
	e, ok := r.Lookup(1, 7)
	require.True(t, ok)
	assert.Equal(t, uint16(0x20), e.To)
}

func TestSameCountOverwrites(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, Applied, r.Apply(1, []byte{0x02, 0x00, 0x1E, 0x00}))
	require.Equal(t, Applied, r.Apply(1, []byte{0x02, 0x00, 0x30, 0x00}))

	e, ok := r.Lookup(1, 2)
	require.True(t, ok)
	assert.Equal(t, uint16(0x30), e.To)
	assert.Equal(t, 1, r.Len(1))
}

func TestInvalidLengthLeavesTableUntouched(t *testing.T) {
	r := NewRegistry()
	good := []byte{0x02, 0x00, 0x1E, 0x00}
	require.Equal(t, Applied, r.Apply(1, good))

	// Odd length, and an even length that is not whole pairs: both rejected.
	assert.Equal(t, InvalidLength, r.Apply(1, []byte{0x01, 0x02, 0x03}))
	assert.Equal(t, InvalidLength, r.Apply(1, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}))

	e, ok := r.Lookup(1, 2)
	require.True(t, ok, "rejected write modified the table")
	assert.Equal(t, uint16(0x1E), e.To)
	assert.Equal(t, good, r.Serialize(1))
}

func TestLookupFirstMatchWins(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, Applied, r.Apply(1, []byte{
		0x02, 0x00, 0x1E, 0x00,
		0x02, 0x00, 0x30, 0x00,
	}))
	e, ok := r.Lookup(1, 2)
	require.True(t, ok)
	assert.Equal(t, uint16(0x1E), e.To)
}

func TestFlagsResetOnWrite(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, Applied, r.Apply(1, []byte{0x02, 0x00, 0x1E, 0x00}))
	e, _ := r.Lookup(1, 2)
	assert.Equal(t, uint8(0), e.Flags)
}

func TestSerializeUnknownDevice(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []byte{0x00}, r.Serialize(42))
}

func TestTablesAreIndependent(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, Applied, r.Apply(1, []byte{0x02, 0x00, 0x1E, 0x00}))
	require.Equal(t, Applied, r.Apply(2, []byte{0x02, 0x00, 0x30, 0x00}))

	require.Equal(t, Cleared, r.Apply(1, []byte{0x00}))
	e, ok := r.Lookup(2, 2)
	require.True(t, ok, "clearing one device touched another")
	assert.Equal(t, uint16(0x30), e.To)
}

func TestTeardown(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, Applied, r.Apply(1, []byte{0x02, 0x00, 0x1E, 0x00}))
	r.Teardown()
	assert.Equal(t, 0, r.Len(1))
	assert.Equal(t, []byte{0x00}, r.Serialize(1))
	// Idempotent on an already-empty registry.
	r.Teardown()
}
