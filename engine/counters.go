// Package engine runs the blocking receive loop that forwards each
// datagram to every configured destination and keeps the four packet
// counters.
package engine

import "sync/atomic"

// Counters holds the four packet accumulators. Each is an
// atomic.Uint64: the single writer is the forwarding loop, the reader
// is the signal-driven stats dump. The optional Prometheus exporter in
// internal/metrics does not read them; it is fed through Observe.
type Counters struct {
	V4In  atomic.Uint64
	V6In  atomic.Uint64
	V4Out atomic.Uint64
	V6Out atomic.Uint64

	// Observe, when set, is called after each increment below with the
	// counter's name ("v4in", "v6in", "v4out", "v6out"). It exists so
	// internal/metrics can mirror the same events into Prometheus
	// without the forwarding loop importing that package directly.
	Observe func(name string)
}

func (c *Counters) observe(name string) {
	if c.Observe != nil {
		c.Observe(name)
	}
}

// IncV4In, IncV6In, IncV4Out and IncV6Out are the only writers of the
// four accumulators; the forwarding loop is their single caller.
func (c *Counters) IncV4In() {
	c.V4In.Add(1)
	c.observe("v4in")
}

func (c *Counters) IncV6In() {
	c.V6In.Add(1)
	c.observe("v6in")
}

func (c *Counters) IncV4Out() {
	c.V4Out.Add(1)
	c.observe("v4out")
}

func (c *Counters) IncV6Out() {
	c.V6Out.Add(1)
	c.observe("v6out")
}

// Snapshot is a point-in-time read of all four counters, used by the
// SIGUSR1 stats dump.
type Snapshot struct {
	V4In, V6In, V4Out, V6Out uint64
}

// Snapshot reads all four counters. Because they are read without any
// coordination with the writer beyond atomic.Uint64's own load, the
// four values may not reflect one single instant.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		V4In:  c.V4In.Load(),
		V6In:  c.V6In.Load(),
		V4Out: c.V4Out.Load(),
		V6Out: c.V6Out.Load(),
	}
}
