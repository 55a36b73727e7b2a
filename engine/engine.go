package engine

import (
	"context"
	"errors"
	"net"

	"github.com/atypo/replicast/endpoint"
	"github.com/atypo/replicast/internal/signals"
)

// bufSize is the maximum accepted datagram size.
const bufSize = 65535

// readDeadlineSecs bounds each blocking receive so the loop can poll
// the signals channel between datagrams instead of blocking forever.
const readDeadlineSecs = 1

// receiver is satisfied by *sockets.RxV4 and *sockets.RxV6.
type receiver interface {
	ReadFrom(buf []byte, deadlineSecs int) (int, error)
}

// sender4 is satisfied by *sockets.TxV4.
type sender4 interface {
	Send(buf []byte, dst endpoint.Destination4) bool
}

// sender6 is satisfied by *sockets.TxV6.
type sender6 interface {
	Send(buf []byte, dst endpoint.Destination6) bool
}

// Family identifies which side is the receive side of an Engine.
type Family int

const (
	FamilyV4 Family = 4
	FamilyV6 Family = 6
)

// Engine runs one of the six forwarding shapes: one receive side
// paired with one or both transmit sides. All six share this one
// generic loop; which rx/tx fields are populated is what the mode
// dispatcher in cmd/replicast decides per shape.
type Engine struct {
	RXFamily Family
	RX       receiver

	TX4  sender4
	Dst4 []endpoint.Destination4

	TX6  sender6
	Dst6 []endpoint.Destination6

	Counters *Counters

	// Dump and DumpParams are invoked synchronously from the forwarding
	// goroutine in response to signals.ReqCounters / signals.ReqParams.
	// They only ever run between receives, never concurrently with one.
	Dump       func(Snapshot)
	DumpParams func()
}

// Run blocks on receive, counts the datagram in, walks every enabled
// destination list in order, and counts successful sends out. Read
// errors (including deadline timeouts used for cooperative polling)
// are not fatal; the loop continues.
//
// Run returns when ctx is cancelled or req delivers signals.ReqShutdown.
func (e *Engine) Run(ctx context.Context, req <-chan signals.Request) error {
	buf := make([]byte, bufSize)

	for {
		select {
		case <-ctx.Done():
			return nil
		case r := <-req:
			switch r {
			case signals.ReqShutdown:
				return nil
			case signals.ReqCounters:
				if e.Dump != nil {
					e.Dump(e.Counters.Snapshot())
				}
			case signals.ReqParams:
				if e.DumpParams != nil {
					e.DumpParams()
				}
			}
			continue
		default:
		}

		n, err := e.RX.ReadFrom(buf, readDeadlineSecs)
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			// Non-timeout receive errors are silently ignored; a
			// transient OS error on one datagram should not stop
			// forwarding of the next one.
			continue
		}
		if n <= 0 {
			continue
		}

		switch e.RXFamily {
		case FamilyV4:
			e.Counters.IncV4In()
		case FamilyV6:
			e.Counters.IncV6In()
		}

		payload := buf[:n]

		if e.TX4 != nil {
			for _, d := range e.Dst4 {
				if e.TX4.Send(payload, d) {
					e.Counters.IncV4Out()
				}
			}
		}
		if e.TX6 != nil {
			for _, d := range e.Dst6 {
				if e.TX6.Send(payload, d) {
					e.Counters.IncV6Out()
				}
			}
		}
	}
}
