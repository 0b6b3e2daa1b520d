package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OutcomeStored labels submissions that were persisted.
const OutcomeStored = "stored"

// Metrics holds the Prometheus collectors for contact intake.
type Metrics struct {
	Submissions *prometheus.CounterVec
	Searches    prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Contact submissions by outcome (stored or the rejection reason).",
		}, []string{"outcome"}),
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "contact_searches_total",
			Help: "Listing requests that applied a search term.",
		}),
	}
	reg.MustRegister(m.Submissions, m.Searches)
	return m
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler exposes reg in the Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// Stored counts a persisted submission. Safe on a nil receiver.
func (m *Metrics) Stored() {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(OutcomeStored).Inc()
}

// Rejected counts a submission that failed validation with the given reason.
func (m *Metrics) Rejected(reason string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(reason).Inc()
}

// Searched counts a filtered listing.
func (m *Metrics) Searched() {
	if m == nil {
		return
	}
	m.Searches.Inc()
}
