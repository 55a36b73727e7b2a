package sockets

import (
	"net"
	"testing"
	"time"

	"github.com/atypo/replicast/endpoint"
)

func TestRxV4TxV4_UnicastRoundTrip(t *testing.T) {
	rx, err := OpenRxV4(endpoint.ReceiveParams4{
		Endpoint4: endpoint.Endpoint4{Addr: net.ParseIP("127.0.0.1"), Port: 47551},
	})
	if err != nil {
		t.Fatalf("OpenRxV4: %v", err)
	}
	defer rx.Close()

	tx, err := OpenTxV4(endpoint.TransmitParams4{
		Destinations: []endpoint.Destination4{
			{Addr: net.ParseIP("127.0.0.1"), Port: 47551},
		},
	})
	if err != nil {
		t.Fatalf("OpenTxV4: %v", err)
	}
	defer tx.Close()

	if ok := tx.Send([]byte("ping"), endpoint.Destination4{Addr: net.ParseIP("127.0.0.1"), Port: 47551}); !ok {
		t.Fatal("Send reported failure")
	}

	buf := make([]byte, 64)
	n, err := rx.ReadFrom(buf, 2)
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if string(buf[:n]) != "ping" {
		t.Fatalf("got %q, want %q", buf[:n], "ping")
	}
}

func TestRxV4_ReadFrom_DeadlineTimesOut(t *testing.T) {
	rx, err := OpenRxV4(endpoint.ReceiveParams4{
		Endpoint4: endpoint.Endpoint4{Addr: net.ParseIP("127.0.0.1"), Port: 47552},
	})
	if err != nil {
		t.Fatalf("OpenRxV4: %v", err)
	}
	defer rx.Close()

	start := time.Now()
	buf := make([]byte, 64)
	_, err = rx.ReadFrom(buf, 1)
	if err == nil {
		t.Fatal("expected a timeout error")
	}
	ne, ok := err.(net.Error)
	if !ok || !ne.Timeout() {
		t.Fatalf("err = %v, want a timeout net.Error", err)
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Fatalf("ReadFrom took %v, want ~1s", elapsed)
	}
}

func TestRxV4Close_NilSafe(t *testing.T) {
	var rx *RxV4
	if err := rx.Close(); err != nil {
		t.Fatalf("Close on nil *RxV4 = %v, want nil", err)
	}
}

func TestTxV4Close_NilSafe(t *testing.T) {
	var tx *TxV4
	if err := tx.Close(); err != nil {
		t.Fatalf("Close on nil *TxV4 = %v, want nil", err)
	}
}
