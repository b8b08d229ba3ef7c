package metrics

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the server's Prometheus instruments on a private
// registry.
type Collector struct {
	reg *prometheus.Registry

	PlansTotal       *prometheus.CounterVec // labels: mode, outcome (ok|invalid|no_route|error)
	SuggestionsTotal *prometheus.CounterVec // label: outcome (ok|skipped|error)
	GeocodesTotal    *prometheus.CounterVec // label: outcome (ok|no_result|error)
	SignupsTotal     *prometheus.CounterVec // label: outcome (ok|conflict|invalid|error)
	LoginsTotal      *prometheus.CounterVec // label: outcome (ok|denied|error)

	CollaboratorDuration *prometheus.HistogramVec // label: call (directions|geocode|autocomplete)
}

// NewCollector creates and registers all instruments.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		PlansTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "metrosync_plans_total",
			Help: "Total trip planning requests by travel mode and outcome.",
		}, []string{"mode", "outcome"}),
		SuggestionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "metrosync_suggestions_total",
			Help: "Total address suggestion requests by outcome.",
		}, []string{"outcome"}),
		GeocodesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "metrosync_geocodes_total",
			Help: "Total reverse geocoding requests by outcome.",
		}, []string{"outcome"}),
		SignupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "metrosync_signups_total",
			Help: "Total signup attempts by outcome.",
		}, []string{"outcome"}),
		LoginsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "metrosync_logins_total",
			Help: "Total login attempts by outcome.",
		}, []string{"outcome"}),
		CollaboratorDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "metrosync_collaborator_duration_seconds",
			Help:    "Round-trip time of mapping-provider calls.",
			Buckets: prometheus.DefBuckets,
		}, []string{"call"}),
	}

	reg.MustRegister(
		c.PlansTotal,
		c.SuggestionsTotal,
		c.GeocodesTotal,
		c.SignupsTotal,
		c.LoginsTotal,
		c.CollaboratorDuration,
	)
	return c
}

// Handler returns the scrape handler for the private registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// Serve runs a metrics listener on addr. It blocks; run it in a goroutine.
func (c *Collector) Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	log.Printf("Metrics listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("Metrics server stopped: %v", err)
	}
}
