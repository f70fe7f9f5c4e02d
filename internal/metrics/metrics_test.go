package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSubmission(t *testing.T) {
	m := New()
	m.RecordSubmission(OutcomeOutfits)
	m.RecordSubmission(OutcomeOutfits)
	m.RecordSubmission(OutcomeInvalidInventory)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Submissions.WithLabelValues(OutcomeOutfits)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Submissions.WithLabelValues(OutcomeInvalidInventory)))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.Submissions.WithLabelValues(OutcomeEmpty)))
}

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest("/api/v1/recommend-outfits", http.StatusOK, 120*time.Millisecond, nil)
	m.ObserveRequest("/api/v1/recommend-outfits", 0, time.Second, errors.New("connection refused"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("/api/v1/recommend-outfits", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("/api/v1/recommend-outfits", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.UpstreamDuration))
}

func TestHandler(t *testing.T) {
	m := New()
	m.RecordSubmission(OutcomeEmpty)
	m.RecordHTTPRequest(http.MethodGet, http.StatusOK)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `outfit_curator_submissions_total{outcome="empty"} 1`)
	assert.Contains(t, string(body), `outfit_curator_http_requests_total{code="200",method="GET"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNew_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()
	a.RecordSubmission(OutcomeOutfits)

	assert.Equal(t, float64(0), testutil.ToFloat64(b.Submissions.WithLabelValues(OutcomeOutfits)))
}
