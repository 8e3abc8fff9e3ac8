package probe

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func littleEndianHost() bool {
	return binary.NativeEndian.Uint16([]byte{1, 0}) == 1
}

func TestEvent_EncodeLayout(t *testing.T) {
	e := Event{Depth: 7, ElapsedMicros: 1234567, CallSite: 0x401136, StackPointer: 0x7ffd5e8c3a40}

	b, err := e.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, RecordSize)

	assert.Equal(t, uint32(7), binary.NativeEndian.Uint32(b[0:4]))
	assert.Equal(t, uint64(1234567), binary.NativeEndian.Uint64(b[4:12]))
	assert.Equal(t, uint64(0x401136), binary.NativeEndian.Uint64(b[12:20]))
	assert.Equal(t, uint64(0x7ffd5e8c3a40), binary.NativeEndian.Uint64(b[20:28]))
}

func TestEvent_FirstEntryRecord(t *testing.T) {
	if !littleEndianHost() {
		t.Skip("byte-level expectation is written for little-endian hosts")
	}

	e := Event{Depth: 1, ElapsedMicros: 0, CallSite: 0x1000, StackPointer: 0x7ffe1000}
	var buf [RecordSize]byte
	e.Encode(buf[:])

	want := []byte{
		0x01, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x10, 0xfe, 0x7f, 0x00, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, want, buf[:])
}

func TestEvent_RecordSizeIsFixed(t *testing.T) {
	events := []Event{
		{},
		{Depth: 1},
		{Depth: math.MaxUint32, ElapsedMicros: math.MaxUint64, CallSite: math.MaxUint64, StackPointer: math.MaxUint64},
	}

	for _, e := range events {
		b, err := e.MarshalBinary()
		require.NoError(t, err)
		assert.Len(t, b, RecordSize)
	}
}

func TestEvent_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		event Event
	}{
		{"zero", Event{}},
		{"first entry", Event{Depth: 1, CallSite: 0x1000, StackPointer: 0x7ffe1000}},
		{"wrapped depth", Event{Depth: math.MaxUint32, ElapsedMicros: 42}},
		{"all bits", Event{Depth: math.MaxUint32, ElapsedMicros: math.MaxUint64, CallSite: math.MaxUint64, StackPointer: math.MaxUint64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.event.MarshalBinary()
			require.NoError(t, err)

			got, err := DecodeEvent(b)
			require.NoError(t, err)
			assert.Equal(t, tt.event, got)

			var u Event
			require.NoError(t, u.UnmarshalBinary(b))
			assert.Equal(t, tt.event, u)
		})
	}
}

func TestEvent_AppendBinary(t *testing.T) {
	prefix := []byte("hdr")
	b, err := Event{Depth: 3}.AppendBinary(prefix)
	require.NoError(t, err)

	assert.Len(t, b, len(prefix)+RecordSize)
	assert.Equal(t, "hdr", string(b[:3]))

	got, err := DecodeEvent(b[3:])
	require.NoError(t, err)
	assert.Equal(t, uint32(3), got.Depth)
}

func TestDecodeEvent_WrongSize(t *testing.T) {
	for _, n := range []int{0, 1, RecordSize - 1, RecordSize + 1, 1024} {
		_, err := DecodeEvent(make([]byte, n))
		assert.ErrorIs(t, err, ErrRecordSize, "len=%d", n)
	}
}

func TestEvent_String(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{Event{Depth: 1, CallSite: 0x1000, StackPointer: 0x7ffe1000}, "[1] T 0, PC 0x1000, SP 0x7ffe1000"},
		{Event{Depth: 12, ElapsedMicros: 1500, CallSite: 0x4011a6, StackPointer: 0xc000123f58}, "[12] T 1500, PC 0x4011a6, SP 0xc000123f58"},
		{Event{}, "[0] T 0, PC 0x0, SP 0x0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.event.String())
	}
}
