package testutil

import (
	"net"
	"net/netip"
	"testing"
	"time"
)

// Collector is a loopback UDP listener on an ephemeral port that captures
// datagrams for assertions.
type Collector struct {
	t    *testing.T
	conn *net.UDPConn
}

// NewCollector starts a collector. It is closed when the test ends.
func NewCollector(t *testing.T) *Collector {
	t.Helper()

	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("failed to listen on loopback: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return &Collector{t: t, conn: conn}
}

// Addr returns the collector's IPv4 address.
func (c *Collector) Addr() netip.AddrPort {
	ap := c.conn.LocalAddr().(*net.UDPAddr).AddrPort()
	return netip.AddrPortFrom(ap.Addr().Unmap(), ap.Port())
}

// Next returns the payload of the next datagram, failing the test if none
// arrives within timeout.
func (c *Collector) Next(timeout time.Duration) []byte {
	c.t.Helper()

	if err := c.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		c.t.Fatalf("failed to set read deadline: %v", err)
	}

	buf := make([]byte, 1024)
	n, _, err := c.conn.ReadFromUDPAddrPort(buf)
	if err != nil {
		c.t.Fatalf("no datagram received: %v", err)
	}
	return buf[:n]
}
