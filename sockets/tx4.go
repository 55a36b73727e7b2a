package sockets

import (
	"net"

	"golang.org/x/net/ipv4"

	"github.com/atypo/replicast/endpoint"
)

// TxV4 is an open IPv4 transmit socket.
type TxV4 struct {
	conn net.PacketConn
	pc   *ipv4.PacketConn
}

// OpenTxV4 implements open_v4_tx. The socket is bound only to the
// wildcard address and an ephemeral port; destinations carry their own
// address. Multicast TTL/loopback/output-interface are
// only set when the destination list contains at least one multicast
// address.
func OpenTxV4(p endpoint.TransmitParams4) (*TxV4, error) {
	conn, err := listenPacket("udp4", ":0")
	if err != nil {
		return nil, opErr("OpenTxV4", err)
	}
	pc := ipv4.NewPacketConn(conn)

	if p.MulticastCount > 0 {
		if p.TTL > 0 {
			if err := pc.SetMulticastTTL(int(p.TTL)); err != nil {
				_ = conn.Close()
				return nil, opErr("OpenTxV4", err)
			}
		}
		if err := pc.SetMulticastLoopback(p.Loop); err != nil {
			_ = conn.Close()
			return nil, opErr("OpenTxV4", err)
		}
		if !p.OutIface.IsUnspecified() {
			ifi, err := ifaceForV4Addr(p.OutIface)
			if err != nil {
				_ = conn.Close()
				return nil, opErr("OpenTxV4", err)
			}
			if err := pc.SetMulticastInterface(ifi); err != nil {
				_ = conn.Close()
				return nil, opErr("OpenTxV4", err)
			}
		}
	}

	return &TxV4{conn: conn, pc: pc}, nil
}

// Send transmits buf to dst, reporting success as a bool so the engine
// can accumulate a per-destination send count without treating a
// single failed send as fatal; OS errors during send are swallowed and
// only affect the success counter.
func (t *TxV4) Send(buf []byte, dst endpoint.Destination4) bool {
	addr := &net.UDPAddr{IP: dst.Addr, Port: int(dst.Port)}
	_, err := t.pc.WriteTo(buf, nil, addr)
	return err == nil
}

// Close is idempotent; calling it on a nil *TxV4 is a no-op.
func (t *TxV4) Close() error {
	if t == nil || t.conn == nil {
		return nil
	}
	return t.conn.Close()
}
