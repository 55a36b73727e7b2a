package endpoint

import (
	"errors"
	"net"
)

// Option-validation failures, surfaced by the flag decoder
// in cmd/replicast before any socket is opened.
var (
	ErrNoSrcAddr    = errors.New("no source address given")
	ErrMultiSrcAddr = errors.New("both -4in and -6in given")
	ErrNoDstAddrs   = errors.New("no destination addresses given")
	ErrTxTTLRange   = errors.New("multicast TTL out of range [0,255]")
	ErrTxHopsRange  = errors.New("multicast hop limit out of range [0,255]")
	ErrOutIntf      = errors.New("bad output interface")
	ErrBadPortZero  = errors.New("port 0 not valid for a receive endpoint")
)

// ReceiveParams4 is a validated v4 receive endpoint plus derived fields.
type ReceiveParams4 struct {
	Endpoint4
	Multicast bool
}

// ReceiveParams6 is the v6 counterpart of ReceiveParams4.
type ReceiveParams6 struct {
	Endpoint6
	Multicast bool
}

// NewReceiveParams4 validates ep for use as a receive endpoint: the
// port must be in [1, 65535] — port 0 parses but is rejected here.
func NewReceiveParams4(ep Endpoint4) (ReceiveParams4, error) {
	if ep.Port == 0 {
		return ReceiveParams4{}, ErrBadPortZero
	}
	return ReceiveParams4{Endpoint4: ep, Multicast: IsMulticast4(ep.Addr)}, nil
}

// NewReceiveParams6 is the v6 counterpart of NewReceiveParams4.
func NewReceiveParams6(ep Endpoint6) (ReceiveParams6, error) {
	if ep.Port == 0 {
		return ReceiveParams6{}, ErrBadPortZero
	}
	return ReceiveParams6{Endpoint6: ep, Multicast: IsMulticast6(ep.Addr)}, nil
}

// TransmitParams4 is an ordered destination list plus multicast
// options. TTL 0 means "unset, OS default applies"; OutIface is
// net.IPv4zero when unset.
type TransmitParams4 struct {
	Destinations   []Destination4
	TTL            uint8
	Loop           bool
	OutIface       net.IP
	MulticastCount int
}

// NewTransmitParams4 validates ttl and counts how many destinations are
// multicast; that count drives whether multicast socket options must
// be set on the transmit socket at all.
func NewTransmitParams4(dests []Destination4, ttl int, loop bool, outIface net.IP) (TransmitParams4, error) {
	if len(dests) == 0 {
		return TransmitParams4{}, ErrNoDstAddrs
	}
	if ttl < 0 || ttl > 255 {
		return TransmitParams4{}, ErrTxTTLRange
	}
	if outIface == nil {
		outIface = ifaceUnset
	}
	mc := 0
	for _, d := range dests {
		if IsMulticast4(d.Addr) {
			mc++
		}
	}
	return TransmitParams4{
		Destinations:   dests,
		TTL:            uint8(ttl),
		Loop:           loop,
		OutIface:       outIface,
		MulticastCount: mc,
	}, nil
}

// TransmitParams6 is the v6 counterpart of TransmitParams4. Hops 0
// means "unset, OS default applies"; OutIface 0 means unspecified.
type TransmitParams6 struct {
	Destinations   []Destination6
	Hops           uint8
	Loop           bool
	OutIface       uint32
	MulticastCount int
}

// NewTransmitParams6 is the v6 counterpart of NewTransmitParams4.
func NewTransmitParams6(dests []Destination6, hops int, loop bool, outIface uint32) (TransmitParams6, error) {
	if len(dests) == 0 {
		return TransmitParams6{}, ErrNoDstAddrs
	}
	if hops < 0 || hops > 255 {
		return TransmitParams6{}, ErrTxHopsRange
	}
	mc := 0
	for _, d := range dests {
		if IsMulticast6(d.Addr) {
			mc++
		}
	}
	return TransmitParams6{
		Destinations:   dests,
		Hops:           uint8(hops),
		Loop:           loop,
		OutIface:       outIface,
		MulticastCount: mc,
	}, nil
}
