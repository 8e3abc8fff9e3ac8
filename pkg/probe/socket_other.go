//go:build !linux

package probe

import "net/netip"

func openSocket(dest netip.AddrPort) (Socket, error) {
	return UDPSocket(dest)
}
