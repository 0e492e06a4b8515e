package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New()

	m.ObserveGeneration("advice", nil)
	m.ObserveGeneration("advice", errors.New("quota"))
	m.ObserveGeneration("advice", errors.New("timeout"))
	m.ObserveDigest("cache")
	m.ObserveGoalSync(nil)
	m.ObserveRateLimited()
	m.RecordTrade("sell", true)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.generations.WithLabelValues("advice", "success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.generations.WithLabelValues("advice", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.digestLookups.WithLabelValues("cache")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.goalSyncRuns.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rateLimited))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tradesCreated.WithLabelValues("sell", "true")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveRequest("/api/feed", http.MethodGet, http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `vibeinvestor_http_requests_total{method="GET",route="/api/feed",status="200"} 1`))
}
