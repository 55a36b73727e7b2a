package main

import (
	"fmt"
	"log"

	"github.com/atypo/replicast/endpoint"
	"github.com/atypo/replicast/engine"
	"github.com/atypo/replicast/internal/metrics"
	"github.com/atypo/replicast/sockets"
)

// openSockets opens whichever of the four sockets the resolved
// parameters call for and assembles them into a ready-to-run
// *engine.Engine, returning a closeAll func that is always safe to
// call regardless of which sockets were actually opened.
func openSockets(p *endpoint.ProgramParameters, counters *engine.Counters) (*engine.Engine, func(), error) {
	var rx4 *sockets.RxV4
	var rx6 *sockets.RxV6
	var tx4 *sockets.TxV4
	var tx6 *sockets.TxV6

	closeAll := func() {
		_ = rx4.Close()
		_ = rx6.Close()
		_ = tx4.Close()
		_ = tx6.Close()
	}

	if p.RX4 != nil {
		var err error
		rx4, err = sockets.OpenRxV4(*p.RX4)
		if err != nil {
			return nil, closeAll, err
		}
	}
	if p.RX6 != nil {
		var err error
		rx6, err = sockets.OpenRxV6(*p.RX6)
		if err != nil {
			closeAll()
			return nil, closeAll, err
		}
	}
	if p.TX4 != nil {
		var err error
		tx4, err = sockets.OpenTxV4(*p.TX4)
		if err != nil {
			closeAll()
			return nil, closeAll, err
		}
	}
	if p.TX6 != nil {
		var err error
		tx6, err = sockets.OpenTxV6(*p.TX6)
		if err != nil {
			closeAll()
			return nil, closeAll, err
		}
	}

	e := &engine.Engine{Counters: counters}

	switch {
	case p.RX4 != nil:
		e.RXFamily = engine.FamilyV4
		e.RX = rx4
	case p.RX6 != nil:
		e.RXFamily = engine.FamilyV6
		e.RX = rx6
	default:
		closeAll()
		return nil, closeAll, fmt.Errorf("dispatch: no receive side configured")
	}

	if tx4 != nil {
		e.TX4 = tx4
		e.Dst4 = p.TX4.Destinations
	}
	if tx6 != nil {
		e.TX6 = tx6
		e.Dst6 = p.TX6.Destinations
	}

	e.Dump = func(s engine.Snapshot) {
		log.Printf("counters: v4-in=%d v6-in=%d v4-out=%d v6-out=%d",
			s.V4In, s.V6In, s.V4Out, s.V6Out)
	}
	e.DumpParams = func() {
		logBanner(p)
	}

	return e, closeAll, nil
}

// wireMetrics attaches counters.Observe so every increment the
// forwarding loop makes is mirrored into the Prometheus counters
// exposed by internal/metrics. It is only called when -metricsaddr was
// given; with it unset counters.Observe stays nil and engine.Counters
// has no Prometheus dependency at all.
func wireMetrics(counters *engine.Counters) {
	counters.Observe = func(name string) {
		switch name {
		case "v4in":
			metrics.PacketsIn.WithLabelValues("v4").Inc()
		case "v6in":
			metrics.PacketsIn.WithLabelValues("v6").Inc()
		case "v4out":
			metrics.PacketsOut.WithLabelValues("v4").Inc()
		case "v6out":
			metrics.PacketsOut.WithLabelValues("v6").Inc()
		}
	}
}
