package probe

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// RecordSize is the size in bytes of an encoded Event.
const RecordSize = 4 + 8 + 8 + 8

// Field offsets within an encoded record.
const (
	offsetDepth        = 0
	offsetElapsed      = 4
	offsetCallSite     = 12
	offsetStackPointer = 20
)

// ErrRecordSize is returned when decoding a buffer that is not exactly
// RecordSize bytes long.
var ErrRecordSize = errors.New("trace record must be 28 bytes")

// Event is a single function entry report.
type Event struct {
	// Depth is the call-stack depth after entering the function.
	Depth uint32

	// ElapsedMicros is the time since the first traced entry.
	ElapsedMicros uint64

	// CallSite is the return address of the caller.
	CallSite uint64

	// StackPointer is the stack pointer observed at the entry hook.
	StackPointer uint64
}

// Encode writes the record into dst, which must hold at least RecordSize bytes.
// Multi-byte fields use the host's native byte order.
func (e Event) Encode(dst []byte) {
	_ = dst[RecordSize-1]
	binary.NativeEndian.PutUint32(dst[offsetDepth:], e.Depth)
	binary.NativeEndian.PutUint64(dst[offsetElapsed:], e.ElapsedMicros)
	binary.NativeEndian.PutUint64(dst[offsetCallSite:], e.CallSite)
	binary.NativeEndian.PutUint64(dst[offsetStackPointer:], e.StackPointer)
}

// AppendBinary appends the encoded record to b.
func (e Event) AppendBinary(b []byte) ([]byte, error) {
	var buf [RecordSize]byte
	e.Encode(buf[:])
	return append(b, buf[:]...), nil
}

// MarshalBinary returns the encoded record.
func (e Event) MarshalBinary() ([]byte, error) {
	return e.AppendBinary(make([]byte, 0, RecordSize))
}

// UnmarshalBinary decodes a record produced by MarshalBinary.
func (e *Event) UnmarshalBinary(data []byte) error {
	decoded, err := DecodeEvent(data)
	if err != nil {
		return err
	}
	*e = decoded
	return nil
}

// DecodeEvent decodes a captured datagram payload.
func DecodeEvent(b []byte) (Event, error) {
	if len(b) != RecordSize {
		return Event{}, fmt.Errorf("decode record (len=%d): %w", len(b), ErrRecordSize)
	}

	return Event{
		Depth:         binary.NativeEndian.Uint32(b[offsetDepth:]),
		ElapsedMicros: binary.NativeEndian.Uint64(b[offsetElapsed:]),
		CallSite:      binary.NativeEndian.Uint64(b[offsetCallSite:]),
		StackPointer:  binary.NativeEndian.Uint64(b[offsetStackPointer:]),
	}, nil
}

// String formats the event as the per-entry diagnostic line.
func (e Event) String() string {
	return fmt.Sprintf("[%d] T %d, PC %#x, SP %#x", e.Depth, e.ElapsedMicros, e.CallSite, e.StackPointer)
}
