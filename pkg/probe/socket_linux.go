//go:build linux

package probe

import (
	"fmt"
	"net/netip"

	"golang.org/x/sys/unix"
)

// rawSocket is an AF_INET datagram socket driven through sendto(2).
type rawSocket struct {
	fd int
	sa unix.SockaddrInet4
}

func openSocket(dest netip.AddrPort) (Socket, error) {
	if !dest.Addr().Is4() {
		return nil, fmt.Errorf("destination %s is not an IPv4 address", dest)
	}

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("socket(AF_INET, SOCK_DGRAM): %w", err)
	}

	return &rawSocket{
		fd: fd,
		sa: unix.SockaddrInet4{Port: int(dest.Port()), Addr: dest.Addr().As4()},
	}, nil
}

func (s *rawSocket) Send(b []byte) (int, error) {
	if err := unix.Sendto(s.fd, b, 0, &s.sa); err != nil {
		return 0, err
	}
	return len(b), nil
}

func (s *rawSocket) Close() error {
	return unix.Close(s.fd)
}
