package endpoint

import (
	"errors"
	"net"
	"strconv"
	"testing"
)

func TestParseV6Endpoint(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantAddr string
		wantPort uint16
		wantErr  error
	}{
		{name: "plain", in: "[ff05::30]:1234", wantAddr: "ff05::30", wantPort: 1234},
		{name: "with iface", in: "[ff05::30%eth0]:1234", wantAddr: "ff05::30", wantPort: 1234},
		{name: "missing bracket prefix", in: "ff05::30]:1234", wantErr: ErrBadAddr},
		{name: "missing colon after bracket", in: "[ff05::30]1234", wantErr: ErrBadPort},
		{name: "port too big", in: "[ff05::30]:70000", wantErr: ErrBadPort},
		{name: "v4 literal rejected", in: "[192.168.0.1]:80", wantErr: ErrBadAddr},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseV6Endpoint(tc.in)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ParseV6Endpoint(%q) err = %v, want %v", tc.in, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseV6Endpoint(%q) unexpected error: %v", tc.in, err)
			}
			if !got.Addr.Equal(net.ParseIP(tc.wantAddr)) {
				t.Errorf("Addr = %v, want %v", got.Addr, tc.wantAddr)
			}
			if got.Port != tc.wantPort {
				t.Errorf("Port = %d, want %d", got.Port, tc.wantPort)
			}
		})
	}
}

func TestParseV6Endpoint_UnknownIfaceIsNotAnError(t *testing.T) {
	got, err := ParseV6Endpoint("[ff05::30%does-not-exist-9999]:1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.IfaceIndex != 0 {
		t.Fatalf("IfaceIndex = %d, want 0 for an unknown interface name", got.IfaceIndex)
	}
}

func TestParseV6Endpoint_RoundTrip(t *testing.T) {
	in := "[ff05::15]:1234"
	ep, err := ParseV6Endpoint(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	formatted := "[" + ep.Addr.String() + "]:" + strconv.Itoa(int(ep.Port))
	ep2, err := ParseV6Endpoint(formatted)
	if err != nil {
		t.Fatalf("round-trip parse failed for %q: %v", formatted, err)
	}
	if !ep.Addr.Equal(ep2.Addr) || ep.Port != ep2.Port {
		t.Fatalf("round trip mismatch: %+v vs %+v", ep, ep2)
	}
}

func TestParseCSVv6_ThreeDestinations(t *testing.T) {
	got, _, err := ParseCSVv6("[ff05::15]:1234,[ff05::16]:1234,[ff05::17]:1234", 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d destinations, want 3", len(got))
	}
}

func TestCountCSVv6MatchesParseCSVv6(t *testing.T) {
	const list = "[ff05::15]:1234,[ff05::16]:1234"
	n, _, err := CountCSVv6(list, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dests, _, err := ParseCSVv6(list, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(dests) {
		t.Fatalf("CountCSVv6 = %d, len(ParseCSVv6) = %d", n, len(dests))
	}
}
