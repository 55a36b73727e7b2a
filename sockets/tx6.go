package sockets

import (
	"net"

	"golang.org/x/net/ipv6"

	"github.com/atypo/replicast/endpoint"
)

// TxV6 is an open IPv6 transmit socket.
type TxV6 struct {
	conn net.PacketConn
	pc   *ipv6.PacketConn
}

// OpenTxV6 sets the multicast hop limit, loopback, and output
// interface; the output interface is skipped when the index is 0.
func OpenTxV6(p endpoint.TransmitParams6) (*TxV6, error) {
	conn, err := listenPacket("udp6", ":0")
	if err != nil {
		return nil, opErr("OpenTxV6", err)
	}
	pc := ipv6.NewPacketConn(conn)

	if p.MulticastCount > 0 {
		if p.Hops > 0 {
			if err := pc.SetMulticastHopLimit(int(p.Hops)); err != nil {
				_ = conn.Close()
				return nil, opErr("OpenTxV6", err)
			}
		}
		if err := pc.SetMulticastLoopback(p.Loop); err != nil {
			_ = conn.Close()
			return nil, opErr("OpenTxV6", err)
		}
		if p.OutIface != 0 {
			ifi, err := net.InterfaceByIndex(int(p.OutIface))
			if err != nil {
				_ = conn.Close()
				return nil, opErr("OpenTxV6", err)
			}
			if err := pc.SetMulticastInterface(ifi); err != nil {
				_ = conn.Close()
				return nil, opErr("OpenTxV6", err)
			}
		}
	}

	return &TxV6{conn: conn, pc: pc}, nil
}

// Send is the v6 counterpart of (*TxV4).Send.
func (t *TxV6) Send(buf []byte, dst endpoint.Destination6) bool {
	addr := &net.UDPAddr{IP: dst.Addr, Port: int(dst.Port)}
	_, err := t.pc.WriteTo(buf, nil, addr)
	return err == nil
}

// Close is idempotent; calling it on a nil *TxV6 is a no-op.
func (t *TxV6) Close() error {
	if t == nil || t.conn == nil {
		return nil
	}
	return t.conn.Close()
}
