package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petpal/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecover_Returns500JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Output: &buf})

	h := RequestID(Recover(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tasks/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"detail":"internal error"}` {
		t.Fatalf("unexpected body %q", got)
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("expected request id header")
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Fatalf("expected panic to be logged, got %q", buf.String())
	}
}

func TestRequestID_GeneratesAndKeeps(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rec.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("expected generated id in context and header, got %q / %q", seen, rec.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 200))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if len(seen) > 128 {
		t.Fatalf("expected oversized id to be replaced, got len %d", len(seen))
	}
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/tasks/{taskID}/completions", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"1", "2", "3"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tasks/"+id+"/completions", nil))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/tasks/{taskID}/completions", "200"))
	if got != 3 {
		t.Fatalf("expected 3 requests on pattern, got %v", got)
	}
	if n := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "unmatched", "404")); n != 1 {
		t.Fatalf("expected 1 unmatched request, got %v", n)
	}
}
