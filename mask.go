package dataclass

import (
	"net"
	"net/netip"
	"strconv"
)

const (
	// DefaultRedactedValue is rendered for any value without a more specific rule.
	DefaultRedactedValue = "***"

	// IPv4HostMask replaces the host octet of a redacted IPv4 address.
	IPv4HostMask = "xxx"
)

// redactAddress applies the builtin address rules.
// IPv4: 192.168.1.100 -> 192.168.1.xxx
// IPv6: 2001:db8::1 -> ***
// The second return value is false if v is not an address type.
func redactAddress(v any) (string, bool) {
	switch addr := v.(type) {
	case netip.Addr:
		return redactNetipAddr(addr), true
	case net.IP:
		return redactNetIP(addr), true
	case *net.IPAddr:
		if addr == nil {
			return DefaultRedactedValue, true
		}
		return redactNetIP(addr.IP), true
	}
	return "", false
}

// redactNetipAddr keeps the network octets of an IPv4 address.
// IPv4-mapped IPv6 addresses are IPv6 and are masked entirely.
func redactNetipAddr(addr netip.Addr) string {
	if !addr.Is4() {
		return DefaultRedactedValue
	}
	return redactIPv4(addr.As4())
}

// redactNetIP keeps the network octets of an IPv4 address.
// net.IP stores IPv4 in 16-byte form as well, so To4 decides the family.
func redactNetIP(ip net.IP) string {
	v4 := ip.To4()
	if v4 == nil {
		return DefaultRedactedValue
	}
	return redactIPv4([4]byte{v4[0], v4[1], v4[2], v4[3]})
}

// redactIPv4 renders the first three octets and masks the host octet.
func redactIPv4(octets [4]byte) string {
	return strconv.Itoa(int(octets[0])) + "." +
		strconv.Itoa(int(octets[1])) + "." +
		strconv.Itoa(int(octets[2])) + "." +
		IPv4HostMask
}
