package endpoint

import (
	"net"
	"strconv"
	"strings"
)

// ParseV4Endpoint parses "addr[%iface]:port".
//
// The port search is confined to whatever follows the '%' when one is
// present: the interface substring is scanned for the *last* ':', not
// the address substring, so an interface given as a dotted-quad never
// steals the port's colon.
func ParseV4Endpoint(s string) (Endpoint4, error) {
	addrPart := s
	var ifacePart string
	hasIface := false

	if i := strings.IndexByte(s, '%'); i >= 0 {
		addrPart = s[:i]
		ifacePart = s[i+1:]
		hasIface = true
	}

	portSearch := s
	if hasIface {
		portSearch = ifacePart
	}

	var portStr string
	if j := strings.LastIndexByte(portSearch, ':'); j >= 0 {
		if hasIface {
			ifacePart = portSearch[:j]
		} else {
			addrPart = portSearch[:j]
		}
		portStr = portSearch[j+1:]
	} else {
		return Endpoint4{}, parseErr(ErrBadPort, s)
	}

	addr, err := parseV4Addr(addrPart)
	if err != nil {
		return Endpoint4{}, parseErr(ErrBadAddr, addrPart)
	}

	ifaceAddr := ifaceUnset
	if hasIface {
		if ifacePart == "" {
			return Endpoint4{}, parseErr(ErrBadIfAddr, ifacePart)
		}
		resolved, err := ResolveV4Iface(ifacePart)
		if err != nil {
			return Endpoint4{}, parseErr(ErrBadIfAddr, ifacePart)
		}
		ifaceAddr = resolved
	}

	port, err := parsePort(portStr)
	if err != nil {
		return Endpoint4{}, parseErr(ErrBadPort, s)
	}

	return Endpoint4{Addr: addr, IfaceAddr: ifaceAddr, Port: port}, nil
}

// ParseCSVv4 parses a comma-separated list of v4 destination endpoints.
//
// max caps the number of successful items written (0 = unbounded).
// When ignoreErrors is false, the first failing item aborts the whole
// call and the offending substring is returned alongside the error
//; when true, failing items are skipped.
//
// A count-only pass (no allocation) satisfies invariant 5: call
// CountCSVv4 first if only the count, not the slice, is needed — it
// runs the identical loop and returns the same number.
func ParseCSVv4(s string, max int, ignoreErrors bool) ([]Destination4, string, error) {
	var out []Destination4
	items := strings.Split(s, ",")
	for _, item := range items {
		if item == "" {
			if ignoreErrors {
				continue
			}
			return out, item, parseErr(ErrBadAddr, item)
		}
		ep, err := ParseV4Endpoint(item)
		if err != nil {
			if ignoreErrors {
				continue
			}
			return out, item, err
		}
		out = append(out, Destination4{Addr: ep.Addr, Port: ep.Port})
		if max > 0 && len(out) >= max {
			break
		}
	}
	return out, "", nil
}

// CountCSVv4 returns the number of items ParseCSVv4 would successfully
// parse, without allocating the destination slice.
func CountCSVv4(s string, max int, ignoreErrors bool) (int, string, error) {
	n := 0
	items := strings.Split(s, ",")
	for _, item := range items {
		if item == "" {
			if ignoreErrors {
				continue
			}
			return n, item, parseErr(ErrBadAddr, item)
		}
		if _, err := ParseV4Endpoint(item); err != nil {
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

func parseV4Addr(s string) (net.IP, error) {
	return parseDottedQuad(s)
}

func parsePort(s string) (uint16, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 0xffff {
		return 0, ErrBadPort
	}
	return uint16(v), nil
}
