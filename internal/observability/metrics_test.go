package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_RecordsAndServes(t *testing.T) {
	t.Parallel()

	m := NewMetrics(prometheus.NewRegistry())
	m.ObserveUpstream("fixtures_live", "ok", 120*time.Millisecond)
	m.ObserveUpstream("fixtures_live", "ok", 80*time.Millisecond)
	m.ObserveUpstream("standings", "upstream_error", time.Second)
	m.CacheHit("fixtures_live")
	m.CacheMiss("fixtures_live")
	m.CacheMiss("standings")
	m.CacheError("standings")
	m.ObserveHTTP("GET /v1/live", http.MethodGet, http.StatusOK, 5*time.Millisecond)

	if got := testutil.ToFloat64(m.upstreamRequests.WithLabelValues("fixtures_live", "ok")); got != 2 {
		t.Fatalf("upstream ok count=%v want 2", got)
	}
	if got := testutil.ToFloat64(m.cacheLookups.WithLabelValues("fixtures_live", "hit")); got != 1 {
		t.Fatalf("cache hit count=%v want 1", got)
	}
	if got := testutil.ToFloat64(m.cacheLookups.WithLabelValues("standings", "miss")); got != 1 {
		t.Fatalf("cache miss count=%v want 1", got)
	}
	if got := testutil.ToFloat64(m.cacheLookups.WithLabelValues("standings", "error")); got != 1 {
		t.Fatalf("cache error count=%v want 1", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `kickoff_http_requests_total{method="GET",route="GET /v1/live",status="200"} 1`) {
		t.Fatalf("metrics output missing http counter:\n%s", body)
	}
}
