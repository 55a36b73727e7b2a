package endpoint

import (
	"net"
	"strings"
)

// ParseV6Endpoint parses "[addr[%iface]]:port".
//
// The interface name, when present, is searched for between '%' and
// ']'; an unknown name resolves to index 0 rather than failing. The
// ']' must be immediately followed by ':', else ErrBadPort.
func ParseV6Endpoint(s string) (Endpoint6, error) {
	if !strings.HasPrefix(s, "[") {
		return Endpoint6{}, parseErr(ErrBadAddr, s)
	}

	addrStr := s[1:]
	var ifaceStr string
	hasIface := false
	work := s

	if i := strings.IndexByte(s, '%'); i >= 0 {
		addrStr = s[1:i]
		ifaceStr = s[i+1:]
		hasIface = true
		work = ifaceStr
	}

	var portStr string
	hasPort := false
	if j := strings.IndexByte(work, ']'); j >= 0 {
		if hasIface {
			ifaceStr = work[:j]
		} else {
			addrStr = s[1:j]
		}
		rest := work[j+1:]
		if len(rest) == 0 || rest[0] != ':' {
			return Endpoint6{}, parseErr(ErrBadPort, s)
		}
		portStr = rest[1:]
		hasPort = true
	}

	if !hasPort {
		return Endpoint6{}, parseErr(ErrBadPort, s)
	}

	addr := net.ParseIP(addrStr)
	if addr == nil || addr.To4() != nil {
		return Endpoint6{}, parseErr(ErrBadAddr, addrStr)
	}

	var ifaceIdx uint32
	if hasIface && ifaceStr != "" {
		ifaceIdx = ResolveV6IfaceIndex(ifaceStr)
	}

	port, err := parsePort(portStr)
	if err != nil {
		return Endpoint6{}, parseErr(ErrBadPort, s)
	}

	return Endpoint6{Addr: addr, IfaceIndex: ifaceIdx, Port: port}, nil
}

// ParseCSVv6 parses a comma-separated list of v6 destination endpoints.
// See ParseCSVv4 for the max/ignoreErrors semantics.
func ParseCSVv6(s string, max int, ignoreErrors bool) ([]Destination6, string, error) {
	var out []Destination6
	items := strings.Split(s, ",")
	for _, item := range items {
		if item == "" {
			if ignoreErrors {
				continue
			}
			return out, item, parseErr(ErrBadAddr, item)
		}
		ep, err := ParseV6Endpoint(item)
		if err != nil {
			if ignoreErrors {
				continue
			}
			return out, item, err
		}
		out = append(out, Destination6{Addr: ep.Addr, Port: ep.Port})
		if max > 0 && len(out) >= max {
			break
		}
	}
	return out, "", nil
}

// CountCSVv6 is the count-only counterpart of ParseCSVv6, letting a
// caller pre-size a destination slice before allocating it.
func CountCSVv6(s string, max int, ignoreErrors bool) (int, string, error) {
	n := 0
	items := strings.Split(s, ",")
	for _, item := range items {
		if item == "" {
			if ignoreErrors {
				continue
			}
			return n, item, parseErr(ErrBadAddr, item)
		}
		if _, err := ParseV6Endpoint(item); err != nil {
			if ignoreErrors {
				continue
			}
			return n, item, err
		}
		n++
		if max > 0 && n >= max {
			break
		}
	}
	return n, "", nil
}
