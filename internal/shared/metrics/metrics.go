// Package metrics exposes Prometheus counters for form submissions.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes
const (
	OutcomeAccepted = "accepted"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
)

// Recorder is what handlers report to.
type Recorder interface {
	RecordSubmission(form, outcome string)
	RecordFieldErrors(form string, fields []string)
	RecordTransition(from, to string)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	submissions *prometheus.CounterVec
	fieldErrors *prometheus.CounterVec
	transitions *prometheus.CounterVec
}

// NewCollector registers the form metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "form_showcase_submissions_total",
			Help: "Form submissions by form and outcome.",
		}, []string{"form", "outcome"}),
		fieldErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "form_showcase_field_errors_total",
			Help: "Validation failures by form and field.",
		}, []string{"form", "field"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "form_showcase_view_transitions_total",
			Help: "Showcase view changes.",
		}, []string{"from", "to"}),
	}

	reg.MustRegister(c.submissions, c.fieldErrors, c.transitions)

	return c
}

func (c *Collector) RecordSubmission(form, outcome string) {
	c.submissions.WithLabelValues(form, outcome).Inc()
}

func (c *Collector) RecordFieldErrors(form string, fields []string) {
	for _, field := range fields {
		c.fieldErrors.WithLabelValues(form, field).Inc()
	}
}

func (c *Collector) RecordTransition(from, to string) {
	if from == to {
		return
	}
	c.transitions.WithLabelValues(from, to).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
