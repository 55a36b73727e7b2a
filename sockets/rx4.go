package sockets

import (
	"fmt"
	"net"

	"golang.org/x/net/ipv4"

	"github.com/atypo/replicast/endpoint"
)

// RxV4 is an open, possibly group-joined, IPv4 receive socket.
type RxV4 struct {
	conn net.PacketConn
	pc   *ipv4.PacketConn
}

// OpenRxV4 implements open_v4_rx: create, enable address reuse, bind,
// and join the multicast group if the receive address is multicast.
func OpenRxV4(p endpoint.ReceiveParams4) (*RxV4, error) {
	addr := &net.UDPAddr{IP: p.Addr, Port: int(p.Port)}
	conn, err := listenPacket("udp4", addr.String())
	if err != nil {
		return nil, opErr("OpenRxV4", err)
	}

	pc := ipv4.NewPacketConn(conn)

	if p.Multicast {
		ifi, err := ifaceForV4Addr(p.IfaceAddr)
		if err != nil {
			_ = conn.Close()
			return nil, opErr("OpenRxV4", err)
		}
		group := &net.UDPAddr{IP: p.Addr}
		if err := pc.JoinGroup(ifi, group); err != nil {
			_ = conn.Close()
			return nil, opErr("OpenRxV4", err)
		}
	}

	return &RxV4{conn: conn, pc: pc}, nil
}

// ReadFrom blocks for up to deadline for a datagram. This is the
// engine's only suspension point, cooperatively bounded so it can poll
// the signal channel between receives.
func (r *RxV4) ReadFrom(buf []byte, deadlineSecs int) (int, error) {
	if err := r.conn.SetReadDeadline(deadlineFromNow(deadlineSecs)); err != nil {
		return 0, err
	}
	n, _, err := r.conn.ReadFrom(buf)
	return n, err
}

// Close is idempotent; calling it on a nil *RxV4 is a no-op.
func (r *RxV4) Close() error {
	if r == nil || r.conn == nil {
		return nil
	}
	return r.conn.Close()
}

// ifaceForV4Addr finds the *net.Interface carrying addr. A nil/zero
// addr (the "any" sentinel) yields a nil *net.Interface, which
// JoinGroup treats as "system default multicast interface."
func ifaceForV4Addr(addr net.IP) (*net.Interface, error) {
	if addr == nil || addr.IsUnspecified() {
		return nil, nil
	}
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	for i := range ifaces {
		addrs, err := ifaces[i].Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			var ip net.IP
			switch v := a.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}
			if ip != nil && ip.Equal(addr) {
				return &ifaces[i], nil
			}
		}
	}
	return nil, fmt.Errorf("no local interface has address %s", addr)
}
