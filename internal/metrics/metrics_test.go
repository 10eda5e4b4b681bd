package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInstrument(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/report", nil)
	w := httptest.NewRecorder()

	before := testutil.CollectAndCount(httpRequests)
	Instrument(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Greater(t, testutil.CollectAndCount(httpRequests), before-1)
	assert.Equal(t, float64(1),
		testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/api/orders/report", "418")))
}

func TestDomainCounters(t *testing.T) {
	before := testutil.ToFloat64(SequencerRetries)
	SequencerRetries.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(SequencerRetries))
}

func TestHandlerServesExposition(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "orderdesk_http_requests_total")
}
