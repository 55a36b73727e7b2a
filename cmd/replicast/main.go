// Command replicast forwards UDP datagrams received on one source
// endpoint out to one or both destination address families, matching
// the six forwarding shapes described in §4.3. Running several groups
// simultaneously means running several processes, one per group.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/atypo/replicast/endpoint"
	"github.com/atypo/replicast/engine"
	"github.com/atypo/replicast/internal/metrics"
	"github.com/atypo/replicast/internal/signals"
)

const helpText = `replicast: forward UDP datagrams between IPv4 and/or IPv6 endpoints

  -4in addr[%iface]:port        source endpoint (v4)
  -4out dst[%iface]:port,...    destination list (v4)
  -4mcttl n                     v4 multicast TTL (0-255)
  -4mcloop                      enable v4 multicast loopback
  -4mcoutif name|addr           v4 multicast output interface

  -6in [addr[%iface]]:port      source endpoint (v6)
  -6out [dst[%iface]]:port,...  destination list (v6)
  -6mchops n                    v6 multicast hop limit (0-255)
  -6mcloop                      enable v6 multicast loopback
  -6mcoutif name                v6 multicast output interface

  -nodaemon                     accepted; replicast never daemonises
  -v                             verbose logging
  -metricsaddr addr              serve Prometheus /metrics (optional)
  -help                          this text
  -license                       license text

Exactly one of -4in / -6in is required; at least one of -4out / -6out
is required.
`

const licenseText = `replicast is distributed under the same terms as its teacher project.
See the repository's LICENSE file.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	o, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	p, err := buildParameters(o)
	if err != nil {
		log.Printf("replicast: %v", err)
		return 1
	}

	switch p.Mode {
	case endpoint.ModeHelp:
		fmt.Print(helpText)
		return 0
	case endpoint.ModeLicense:
		fmt.Print(licenseText)
		return 0
	}

	if o.verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}

	if !p.Daemonise {
		log.Printf("replicast: -nodaemon given, running in foreground")
	}

	counters := &engine.Counters{}

	var metricsSrv *metrics.Server
	if o.metricsAddr != "" {
		wireMetrics(counters)
		metricsSrv = metrics.Listen(o.metricsAddr)
		log.Printf("replicast: serving metrics on %s", o.metricsAddr)
	}

	e, closeAll, err := openSockets(p, counters)
	if err != nil {
		log.Printf("replicast: %v", err)
		return 1
	}
	defer closeAll()

	logBanner(p)

	sigSvc := signals.New()
	defer sigSvc.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := e.Run(ctx, sigSvc.Requests()); err != nil {
		log.Printf("replicast: %v", err)
		return 1
	}

	if metricsSrv != nil {
		metricsSrv.Shutdown()
	}

	log.Println("replicast: shut down cleanly")
	return 0
}
