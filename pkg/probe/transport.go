package probe

import (
	"fmt"
	"io"
)

// Transport delivers trace records to CollectorAddr, one datagram per event.
// The socket is opened on first use and reused afterwards. Delivery is
// fire-and-forget: there is no acknowledgment, retry or buffering.
//
// A Transport is not safe for concurrent use.
type Transport struct {
	open SocketFunc
	sock Socket
	buf  [RecordSize]byte
}

// NewTransport creates a transport opening its socket through open.
// A nil open selects DefaultSocket.
func NewTransport(open SocketFunc) *Transport {
	if open == nil {
		open = DefaultSocket
	}
	return &Transport{open: open}
}

// EnsureChannel opens the socket unless it is already open.
func (t *Transport) EnsureChannel() error {
	if t.sock != nil {
		return nil
	}

	sock, err := t.open(CollectorAddr)
	if err != nil {
		return &ChannelError{Err: err}
	}
	t.sock = sock
	return nil
}

// Ready reports whether the socket is open.
func (t *Transport) Ready() bool {
	return t.sock != nil
}

// Send encodes e and sends it as a single datagram.
func (t *Transport) Send(e Event) error {
	if err := t.EnsureChannel(); err != nil {
		return err
	}

	e.Encode(t.buf[:])
	n, err := t.sock.Send(t.buf[:])
	if err != nil {
		return &SendError{Err: err}
	}
	if n != RecordSize {
		return &SendError{Err: fmt.Errorf("short write (%d of %d bytes): %w", n, RecordSize, io.ErrShortWrite)}
	}
	return nil
}

// Close releases the socket. A later Send opens a new one.
func (t *Transport) Close() error {
	if t.sock == nil {
		return nil
	}
	err := t.sock.Close()
	t.sock = nil
	return err
}
