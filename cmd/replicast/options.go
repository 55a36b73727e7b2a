package main

import (
	"flag"
	"fmt"
	"net"

	"github.com/atypo/replicast/endpoint"
)

// rawOptions holds the flags exactly as decoded, before any parsing or
// validation, grouped into one struct for testability.
type rawOptions struct {
	help     bool
	license  bool
	nodaemon bool
	verbose  bool

	in4 string
	out4 string
	mcTTL4 int
	mcLoop4 bool
	mcOutIf4 string

	in6 string
	out6 string
	mcHops6 int
	mcLoop6 bool
	mcOutIf6 string

	metricsAddr string
}

func parseFlags(args []string) (*rawOptions, error) {
	fs := flag.NewFlagSet("replicast", flag.ContinueOnError)
	o := &rawOptions{}

	fs.BoolVar(&o.help, "help", false, "Emit help and exit")
	fs.BoolVar(&o.license, "license", false, "Emit license and exit")
	fs.BoolVar(&o.nodaemon, "nodaemon", false, "Accepted; replicast never daemonises and always runs in the foreground")
	fs.BoolVar(&o.verbose, "v", false, "Enable verbose logging")

	fs.StringVar(&o.in4, "4in", "", "Source endpoint (v4): addr[%iface]:port")
	fs.StringVar(&o.out4, "4out", "", "v4 destinations (CSV)")
	fs.IntVar(&o.mcTTL4, "4mcttl", 0, "v4 multicast TTL (0-255, 0=unset)")
	fs.BoolVar(&o.mcLoop4, "4mcloop", false, "Enable v4 multicast loopback")
	fs.StringVar(&o.mcOutIf4, "4mcoutif", "", "v4 multicast output interface (name or address)")

	fs.StringVar(&o.in6, "6in", "", "Source endpoint (v6): [addr[%iface]]:port")
	fs.StringVar(&o.out6, "6out", "", "v6 destinations (CSV)")
	fs.IntVar(&o.mcHops6, "6mchops", 0, "v6 multicast hop limit (0-255, 0=unset)")
	fs.BoolVar(&o.mcLoop6, "6mcloop", false, "Enable v6 multicast loopback")
	fs.StringVar(&o.mcOutIf6, "6mcoutif", "", "v6 multicast output interface (name)")

	fs.StringVar(&o.metricsAddr, "metricsaddr", "", "Serve Prometheus /metrics on this address (optional)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

// buildParameters validates o and materialises it into a
// ProgramParameters.
func buildParameters(o *rawOptions) (*endpoint.ProgramParameters, error) {
	if o.help {
		return &endpoint.ProgramParameters{Mode: endpoint.ModeHelp}, nil
	}
	if o.license {
		return &endpoint.ProgramParameters{Mode: endpoint.ModeLicense}, nil
	}

	haveV4Src := o.in4 != ""
	haveV6Src := o.in6 != ""
	if haveV4Src == haveV6Src {
		if !haveV4Src {
			return nil, endpoint.ErrNoSrcAddr
		}
		return nil, endpoint.ErrMultiSrcAddr
	}

	haveV4Dst := o.out4 != ""
	haveV6Dst := o.out6 != ""
	if !haveV4Dst && !haveV6Dst {
		return nil, endpoint.ErrNoDstAddrs
	}

	params := &endpoint.ProgramParameters{
		Mode:      endpoint.ModeFor(haveV4Src, haveV6Src, haveV4Dst, haveV6Dst),
		Daemonise: !o.nodaemon,
	}

	if haveV4Src {
		ep, err := endpoint.ParseV4Endpoint(o.in4)
		if err != nil {
			return nil, fmt.Errorf("-4in %q: %w", o.in4, err)
		}
		rx, err := endpoint.NewReceiveParams4(ep)
		if err != nil {
			return nil, fmt.Errorf("-4in %q: %w", o.in4, err)
		}
		params.RX4 = &rx
	}
	if haveV6Src {
		ep, err := endpoint.ParseV6Endpoint(o.in6)
		if err != nil {
			return nil, fmt.Errorf("-6in %q: %w", o.in6, err)
		}
		rx, err := endpoint.NewReceiveParams6(ep)
		if err != nil {
			return nil, fmt.Errorf("-6in %q: %w", o.in6, err)
		}
		params.RX6 = &rx
	}

	if haveV4Dst {
		dests, errAddr, err := endpoint.ParseCSVv4(o.out4, 0, false)
		if err != nil {
			return nil, fmt.Errorf("-4out %q: %w", errAddr, err)
		}
		var outIf net.IP
		if o.mcOutIf4 != "" {
			outIf, err = endpoint.ResolveV4Iface(o.mcOutIf4)
			if err != nil {
				return nil, fmt.Errorf("-4mcoutif %q: %w", o.mcOutIf4, endpoint.ErrOutIntf)
			}
		}
		tx, err := endpoint.NewTransmitParams4(dests, o.mcTTL4, o.mcLoop4, outIf)
		if err != nil {
			return nil, err
		}
		params.TX4 = &tx
	}
	if haveV6Dst {
		dests, errAddr, err := endpoint.ParseCSVv6(o.out6, 0, false)
		if err != nil {
			return nil, fmt.Errorf("-6out %q: %w", errAddr, err)
		}
		var outIf uint32
		if o.mcOutIf6 != "" {
			outIf = endpoint.ResolveV6IfaceIndex(o.mcOutIf6)
			if outIf == 0 {
				return nil, fmt.Errorf("-6mcoutif %q: %w", o.mcOutIf6, endpoint.ErrOutIntf)
			}
		}
		tx, err := endpoint.NewTransmitParams6(dests, o.mcHops6, o.mcLoop6, outIf)
		if err != nil {
			return nil, err
		}
		params.TX6 = &tx
	}

	return params, nil
}
