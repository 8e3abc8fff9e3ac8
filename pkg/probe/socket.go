package probe

import (
	"fmt"
	"net"
	"net/netip"

	"github.com/coral-mesh/calltrace/internal/constants"
)

// CollectorAddr is the fixed destination of trace records.
var CollectorAddr = netip.AddrPortFrom(netip.MustParseAddr(constants.CollectorHost), constants.CollectorPort)

// Socket is a connectionless channel bound to one destination.
type Socket interface {
	// Send transmits b as a single datagram.
	Send(b []byte) (int, error)
	Close() error
}

// SocketFunc opens a Socket sending to dest.
type SocketFunc func(dest netip.AddrPort) (Socket, error)

// DefaultSocket opens the platform's preferred datagram socket.
func DefaultSocket(dest netip.AddrPort) (Socket, error) {
	return openSocket(dest)
}

// UDPSocket opens an unconnected IPv4 UDP socket from the net package.
func UDPSocket(dest netip.AddrPort) (Socket, error) {
	if !dest.Addr().Is4() {
		return nil, fmt.Errorf("destination %s is not an IPv4 address", dest)
	}
	conn, err := net.ListenUDP("udp4", nil)
	if err != nil {
		return nil, err
	}
	return &udpSocket{conn: conn, dest: dest}, nil
}

type udpSocket struct {
	conn *net.UDPConn
	dest netip.AddrPort
}

func (s *udpSocket) Send(b []byte) (int, error) {
	return s.conn.WriteToUDPAddrPort(b, s.dest)
}

func (s *udpSocket) Close() error {
	return s.conn.Close()
}
