package endpoint

import (
	"errors"
	"net"
	"testing"
)

func TestNewReceiveParams4_RejectsPortZero(t *testing.T) {
	_, err := NewReceiveParams4(Endpoint4{Addr: net.ParseIP("224.5.5.5"), Port: 0})
	if !errors.Is(err, ErrBadPortZero) {
		t.Fatalf("err = %v, want ErrBadPortZero", err)
	}
}

func TestNewReceiveParams4_DetectsMulticast(t *testing.T) {
	p, err := NewReceiveParams4(Endpoint4{Addr: net.ParseIP("224.5.5.5"), Port: 1234})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Multicast {
		t.Fatal("expected 224.5.5.5 to be detected as multicast")
	}

	p, err = NewReceiveParams4(Endpoint4{Addr: net.ParseIP("10.0.0.1"), Port: 1234})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Multicast {
		t.Fatal("expected 10.0.0.1 not to be detected as multicast")
	}
}

func TestNewTransmitParams4_TTLBoundaries(t *testing.T) {
	dests := []Destination4{{Addr: net.ParseIP("224.6.6.6"), Port: 1}}

	if _, err := NewTransmitParams4(dests, 0, false, nil); err != nil {
		t.Fatalf("ttl=0 (unset) should be accepted: %v", err)
	}
	if _, err := NewTransmitParams4(dests, 255, false, nil); err != nil {
		t.Fatalf("ttl=255 should be accepted: %v", err)
	}
	if _, err := NewTransmitParams4(dests, 256, false, nil); !errors.Is(err, ErrTxTTLRange) {
		t.Fatalf("ttl=256 err = %v, want ErrTxTTLRange", err)
	}
	if _, err := NewTransmitParams4(dests, -1, false, nil); !errors.Is(err, ErrTxTTLRange) {
		t.Fatalf("ttl=-1 err = %v, want ErrTxTTLRange", err)
	}
}

func TestNewTransmitParams4_RejectsEmptyList(t *testing.T) {
	if _, err := NewTransmitParams4(nil, 0, false, nil); !errors.Is(err, ErrNoDstAddrs) {
		t.Fatalf("err = %v, want ErrNoDstAddrs", err)
	}
}

func TestNewTransmitParams4_MulticastCount(t *testing.T) {
	dests := []Destination4{
		{Addr: net.ParseIP("224.6.6.6"), Port: 1},
		{Addr: net.ParseIP("10.0.0.1"), Port: 2},
		{Addr: net.ParseIP("239.1.1.1"), Port: 3},
	}
	p, err := NewTransmitParams4(dests, 0, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.MulticastCount != 2 {
		t.Fatalf("MulticastCount = %d, want 2", p.MulticastCount)
	}
}

func TestNewTransmitParams6_HopsBoundaries(t *testing.T) {
	dests := []Destination6{{Addr: net.ParseIP("ff05::1"), Port: 1}}

	if _, err := NewTransmitParams6(dests, 255, false, 0); err != nil {
		t.Fatalf("hops=255 should be accepted: %v", err)
	}
	if _, err := NewTransmitParams6(dests, 256, false, 0); !errors.Is(err, ErrTxHopsRange) {
		t.Fatalf("hops=256 err = %v, want ErrTxHopsRange", err)
	}
}

func TestModeFor(t *testing.T) {
	tests := []struct {
		v4s, v6s, v4d, v6d bool
		want               Mode
	}{
		{v4s: true, v4d: true, want: ModeV4ToV4},
		{v4s: true, v6d: true, want: ModeV4ToV6},
		{v4s: true, v4d: true, v6d: true, want: ModeV4ToV4V6},
		{v6s: true, v6d: true, want: ModeV6ToV6},
		{v6s: true, v4d: true, want: ModeV6ToV4},
		{v6s: true, v4d: true, v6d: true, want: ModeV6ToV4V6},
		{want: ModeError},
	}
	for _, tc := range tests {
		got := ModeFor(tc.v4s, tc.v6s, tc.v4d, tc.v6d)
		if got != tc.want {
			t.Errorf("ModeFor(%v,%v,%v,%v) = %v, want %v", tc.v4s, tc.v6s, tc.v4d, tc.v6d, got, tc.want)
		}
	}
}
