package endpoint

import (
	"fmt"
	"net"
	"strings"
)

// ifaceUnset is the normalised "no interface given" value for v4
// endpoints: 0.0.0.0, meaning the kernel routing table chooses.
var ifaceUnset = net.IPv4zero

// parseDottedQuad requires strict dotted-quad IPv4 presentation form,
// rejecting colon-hex (v6) literals the way inet_pton(AF_INET, ...) does.
func parseDottedQuad(s string) (net.IP, error) {
	if strings.IndexByte(s, ':') >= 0 {
		return nil, ErrBadAddr
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return nil, ErrBadAddr
	}
	v4 := ip.To4()
	if v4 == nil {
		return nil, ErrBadAddr
	}
	return v4, nil
}

// ResolveV4Iface resolves a v4 interface specifier that is either a
// literal dotted-quad address or an interface name. A name is resolved
// to that interface's first IPv4 address by querying the host.
func ResolveV4Iface(s string) (net.IP, error) {
	if ip, err := parseDottedQuad(s); err == nil {
		return ip, nil
	}
	ifi, err := net.InterfaceByName(s)
	if err != nil {
		return nil, fmt.Errorf("interface %q: %w", s, err)
	}
	return firstIPv4Addr(ifi)
}

// firstIPv4Addr returns the first IPv4 address assigned to ifi.
func firstIPv4Addr(ifi *net.Interface) (net.IP, error) {
	addrs, err := ifi.Addrs()
	if err != nil {
		return nil, err
	}
	for _, a := range addrs {
		var ip net.IP
		switch v := a.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}
		if ip == nil {
			continue
		}
		if v4 := ip.To4(); v4 != nil {
			return v4, nil
		}
	}
	return nil, fmt.Errorf("no IPv4 address on interface %s", ifi.Name)
}

// ResolveV6IfaceIndex resolves an interface name to its numeric index.
// An unknown name yields index 0 ("unspecified"), which is not an error
// at parse time.
func ResolveV6IfaceIndex(name string) uint32 {
	ifi, err := net.InterfaceByName(name)
	if err != nil {
		return 0
	}
	return uint32(ifi.Index)
}
