package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			matched := 0
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] == lp.GetValue() {
					matched++
				}
			}
			if matched == len(labels) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestRecordSubmission(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordSubmission("register", OutcomeAccepted)
	c.RecordSubmission("register", OutcomeAccepted)
	c.RecordSubmission("register", OutcomeInvalid)

	assert.Equal(t, 2.0, counterValue(t, reg, "form_showcase_submissions_total",
		map[string]string{"form": "register", "outcome": OutcomeAccepted}))
	assert.Equal(t, 1.0, counterValue(t, reg, "form_showcase_submissions_total",
		map[string]string{"form": "register", "outcome": OutcomeInvalid}))
}

func TestRecordFieldErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordFieldErrors("user-registration", []string{"hobbies", "bio"})

	assert.Equal(t, 1.0, counterValue(t, reg, "form_showcase_field_errors_total",
		map[string]string{"form": "user-registration", "field": "hobbies"}))
}

func TestRecordTransition_IgnoresSelfTransitions(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordTransition("signin", "signin")
	c.RecordTransition("signin", "signup")

	assert.Equal(t, 0.0, counterValue(t, reg, "form_showcase_view_transitions_total",
		map[string]string{"from": "signin", "to": "signin"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "form_showcase_view_transitions_total",
		map[string]string{"from": "signin", "to": "signup"}))
}

func TestHandler_ServesExposition(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordSubmission("login", OutcomeFailed)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), `form_showcase_submissions_total{form="login",outcome="failed"} 1`)
}
