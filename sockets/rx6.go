package sockets

import (
	"net"

	"golang.org/x/net/ipv6"

	"github.com/atypo/replicast/endpoint"
)

// RxV6 is an open, possibly group-joined, IPv6 receive socket.
type RxV6 struct {
	conn net.PacketConn
	pc   *ipv6.PacketConn
}

// OpenRxV6 implements open_v6_rx: create, enable address reuse, set
// the bind sockaddr's scope id for link-local addresses, bind, and
// join the multicast group if the receive address is multicast.
func OpenRxV6(p endpoint.ReceiveParams6) (*RxV6, error) {
	var zone string
	if p.Addr.IsLinkLocalMulticast() || p.Addr.IsLinkLocalUnicast() {
		if p.IfaceIndex != 0 {
			if ifi, err := net.InterfaceByIndex(int(p.IfaceIndex)); err == nil {
				zone = ifi.Name
			}
		}
	}

	addr := &net.UDPAddr{IP: p.Addr, Port: int(p.Port), Zone: zone}
	conn, err := listenPacket("udp6", addr.String())
	if err != nil {
		return nil, opErr("OpenRxV6", err)
	}

	pc := ipv6.NewPacketConn(conn)

	if p.Multicast {
		var ifi *net.Interface
		if p.IfaceIndex != 0 {
			ifi, err = net.InterfaceByIndex(int(p.IfaceIndex))
			if err != nil {
				_ = conn.Close()
				return nil, opErr("OpenRxV6", err)
			}
		}
		group := &net.UDPAddr{IP: p.Addr}
		if err := pc.JoinGroup(ifi, group); err != nil {
			_ = conn.Close()
			return nil, opErr("OpenRxV6", err)
		}
	}

	return &RxV6{conn: conn, pc: pc}, nil
}

// ReadFrom is the v6 counterpart of (*RxV4).ReadFrom.
func (r *RxV6) ReadFrom(buf []byte, deadlineSecs int) (int, error) {
	if err := r.conn.SetReadDeadline(deadlineFromNow(deadlineSecs)); err != nil {
		return 0, err
	}
	n, _, err := r.conn.ReadFrom(buf)
	return n, err
}

// Close is idempotent; calling it on a nil *RxV6 is a no-op.
func (r *RxV6) Close() error {
	if r == nil || r.conn == nil {
		return nil
	}
	return r.conn.Close()
}
