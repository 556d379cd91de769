package net

import (
	"net"

	"Drawall/internal/logx"
)

// OutgoingIP returns the address other machines on the LAN can reach the tap
// at. Without any usable interface it returns the loopback address.
func OutgoingIP() string {
	if ip := routeIP(); ip != nil {
		return ip.String()
	}
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		logx.Logger().Warn("tap: listing interfaces", "err", err)
	}
	if ip := pickIPv4(addrs); ip != nil {
		return ip.String()
	}
	logx.Logger().Warn("tap: no LAN address, using loopback")
	return "127.0.0.1"
}

// routeIP asks for the source address of a route to a public host. No
// packet is sent.
func routeIP() net.IP {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return nil
	}
	defer conn.Close()
	if a, ok := conn.LocalAddr().(*net.UDPAddr); ok && !a.IP.IsUnspecified() {
		return a.IP
	}
	return nil
}

// pickIPv4 returns the first non-loopback IPv4 address of addrs.
func pickIPv4(addrs []net.Addr) net.IP {
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		if v4 := ipnet.IP.To4(); v4 != nil {
			return v4
		}
	}
	return nil
}
