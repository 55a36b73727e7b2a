// Package sockets opens and configures the receive/transmit UDP sockets
// for both address families: binding, group membership, TTL/hop limit,
// multicast loopback and output-interface selection.
//
// Every socket is obtained through net.ListenConfig so its Control
// callback can set SO_REUSEADDR via golang.org/x/sys/unix before bind —
// neither net nor golang.org/x/net/ipv4 / ipv6 expose that option
// directly. Group join, TTL/hops, loopback and output interface are
// then set through golang.org/x/net/ipv4.PacketConn / ipv6.PacketConn.
package sockets

import (
	"context"
	"fmt"
	"net"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// reuseAddrControl is a net.ListenConfig.Control callback that enables
// SO_REUSEADDR on the socket before bind.
func reuseAddrControl(_, _ string, c syscall.RawConn) error {
	var ctlErr error
	err := c.Control(func(fd uintptr) {
		ctlErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}
	return ctlErr
}

var listenConfig = net.ListenConfig{Control: reuseAddrControl}

func listenPacket(network, address string) (net.PacketConn, error) {
	return listenConfig.ListenPacket(context.Background(), network, address)
}

func opErr(fn string, err error) error {
	return fmt.Errorf("sockets.%s: %w", fn, err)
}

// deadlineFromNow turns a whole-seconds timeout into an absolute
// deadline; receive sockets use a short deadline so the engine can
// cooperatively poll the signals channel between reads.
func deadlineFromNow(secs int) time.Time {
	return time.Now().Add(time.Duration(secs) * time.Second)
}
