// Package metrics exposes replicast's packet counters as Prometheus
// counters. This is an optional addition: the counters already live in
// engine.Counters and are dumped on SIGUSR1 regardless of whether this
// package's HTTP listener is started.
package metrics

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// PacketsIn counts received datagrams, labelled by address family.
	PacketsIn = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "replicast_packets_in_total",
			Help: "Datagrams received, by source address family.",
		}, []string{"af"})

	// PacketsOut counts successful per-destination sends, labelled by
	// destination address family.
	PacketsOut = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "replicast_packets_out_total",
			Help: "Datagrams successfully forwarded, by destination address family.",
		}, []string{"af"})
)

// Server serves /metrics on addr until Shutdown is called. It is
// only started when -metricsaddr is given; replicast runs perfectly
// well without it. The exporter is read-only: it never adds a control
// plane of its own.
type Server struct {
	httpSrv *http.Server
}

// Listen starts the metrics HTTP server in the background. Call
// Shutdown to stop it.
func Listen(addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	s := &Server{httpSrv: &http.Server{Addr: addr, Handler: mux}}
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics: server stopped: %v", err)
		}
	}()
	return s
}

// Shutdown stops the metrics server, bounded by a short grace period.
func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = s.httpSrv.Shutdown(ctx)
}
