package main

import (
	"log"

	"github.com/atypo/replicast/endpoint"
)

// logBanner logs the resolved parameters for one run. It is called once
// at startup and again on every SIGUSR2, so a running process's
// configuration can be inspected without restarting it.
func logBanner(p *endpoint.ProgramParameters) {
	log.Printf("replicast: mode=%s daemonise=%t", p.Mode, p.Daemonise)

	if p.RX4 != nil {
		log.Printf("  4in  %s:%d multicast=%t", p.RX4.Addr, p.RX4.Port, p.RX4.Multicast)
	}
	if p.RX6 != nil {
		log.Printf("  6in  [%s]:%d multicast=%t", p.RX6.Addr, p.RX6.Port, p.RX6.Multicast)
	}
	if p.TX4 != nil {
		log.Printf("  4out %d destination(s), mcttl=%d mcloop=%t mcoutif=%s",
			len(p.TX4.Destinations), p.TX4.TTL, p.TX4.Loop, p.TX4.OutIface)
	}
	if p.TX6 != nil {
		log.Printf("  6out %d destination(s), mchops=%d mcloop=%t mcoutif=%d",
			len(p.TX6.Destinations), p.TX6.Hops, p.TX6.Loop, p.TX6.OutIface)
	}
}
