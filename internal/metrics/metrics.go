package metrics

import (
	"net/http"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"banner-rotator/internal/core/domain"
)

const namespace = "banner"

// Metrics holds the counters exported by the service. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	Selections     *prometheus.CounterVec
	Impressions    prometheus.Counter
	Clicks         prometheus.Counter
	RejectedClicks *prometheus.CounterVec
	Exports        *prometheus.CounterVec
}

// New registers all counters on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selections_total",
			Help:      "Banner selections by location and outcome.",
		}, []string{"location", "result"}),
		Impressions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "impressions_total",
			Help:      "Tracked impressions of paid banners.",
		}),
		Clicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clicks_total",
			Help:      "Tracked clicks on paid banners.",
		}),
		RejectedClicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clicks_rejected_total",
			Help:      "Click tracking requests that were rejected, by reason.",
		}, []string{"reason"}),
		Exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "statistics_exports_total",
			Help:      "CSV statistics exports by kind.",
		}, []string{"kind"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.Selections,
		m.Impressions,
		m.Clicks,
		m.RejectedClicks,
		m.Exports,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Selected counts a selection. Locations outside domain.KnownLocations share
// the "other" label since the location comes from anonymous callers.
func (m *Metrics) Selected(location string, found bool) {
	if m == nil {
		return
	}
	result := "hit"
	if !found {
		result = "empty"
	}
	m.Selections.WithLabelValues(locationLabel(location), result).Inc()
}

func locationLabel(location string) string {
	switch {
	case location == "":
		return "any"
	case slices.Contains(domain.KnownLocations, location):
		return location
	default:
		return "other"
	}
}

func (m *Metrics) Impression() {
	if m == nil {
		return
	}
	m.Impressions.Inc()
}

func (m *Metrics) Click() {
	if m == nil {
		return
	}
	m.Clicks.Inc()
}

func (m *Metrics) ClickRejected(reason string) {
	if m == nil {
		return
	}
	m.RejectedClicks.WithLabelValues(reason).Inc()
}

func (m *Metrics) Exported(kind string) {
	if m == nil {
		return
	}
	m.Exports.WithLabelValues(kind).Inc()
}
