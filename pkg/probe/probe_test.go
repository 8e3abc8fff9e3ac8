package probe

import (
	"bytes"
	"errors"
	"net/netip"
	"sync"
	"time"
)

// fakeClock is a manually advanced wall clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1_700_000_000, 250_000_000)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fakeSocket captures every datagram instead of sending it.
type fakeSocket struct {
	net     *fakeNetwork
	dest    netip.AddrPort
	sendErr error
	short   bool
	closed  bool
}

func (s *fakeSocket) Send(b []byte) (int, error) {
	if s.sendErr != nil {
		return 0, s.sendErr
	}
	if s.short {
		return len(b) - 1, nil
	}
	s.net.mu.Lock()
	defer s.net.mu.Unlock()
	s.net.datagrams = append(s.net.datagrams, append([]byte(nil), b...))
	return len(b), nil
}

func (s *fakeSocket) Close() error {
	s.closed = true
	return nil
}

// fakeNetwork hands out fakeSockets and records what they send.
type fakeNetwork struct {
	mu        sync.Mutex
	openErr   error
	sendErr   error
	short     bool
	opened    []*fakeSocket
	datagrams [][]byte
}

func (n *fakeNetwork) Open(dest netip.AddrPort) (Socket, error) {
	if n.openErr != nil {
		return nil, n.openErr
	}
	s := &fakeSocket{net: n, dest: dest, sendErr: n.sendErr, short: n.short}
	n.opened = append(n.opened, s)
	return s, nil
}

func (n *fakeNetwork) Events() []Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	events := make([]Event, 0, len(n.datagrams))
	for _, d := range n.datagrams {
		e, err := DecodeEvent(d)
		if err != nil {
			panic(err)
		}
		events = append(events, e)
	}
	return events
}

var errNoSocket = errors.New("address family not supported by protocol")

const testStackPointer = 0x7ffe_1000

type testTracer struct {
	*Tracer
	net   *fakeNetwork
	out   *bytes.Buffer
	clock *fakeClock
}

func newTestTracer() *testTracer {
	tt := &testTracer{
		net:   &fakeNetwork{},
		out:   &bytes.Buffer{},
		clock: newFakeClock(),
	}
	tt.Tracer = NewTracer(Config{
		Output:       tt.out,
		StackPointer: func() uintptr { return testStackPointer },
		Socket:       tt.net.Open,
		Clock:        tt.clock.Now,
	})
	return tt
}
