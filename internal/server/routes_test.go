package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestRouter_Integration(t *testing.T) {
	h := newTestHandlers(t)
	router := NewRouter(h, testLogger(), DefaultConfig())

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/home", "", http.StatusOK},
		{http.MethodGet, "/jobs?city=Noida", "", http.StatusOK},
		{http.MethodGet, "/jobs/filters", "", http.StatusOK},
		{http.MethodGet, "/jobs/5", "", http.StatusOK},
		{http.MethodGet, "/jobs/404", "", http.StatusNotFound},
		{http.MethodPost, "/jobs/5/save", "", http.StatusOK},
		{http.MethodPost, "/login", `{"email":"a@b.co","password":"x"}`, http.StatusOK},
		{http.MethodGet, "/employer/dashboard", "", http.StatusOK},
		{http.MethodGet, "/employer/jobs?status=draft", "", http.StatusOK},
		{http.MethodGet, "/employer/applications", "", http.StatusOK},
		{http.MethodPost, "/employer/applications/app-002/reject", "", http.StatusOK},
		{http.MethodDelete, "/jobs/1", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_FiltersRouteIsNotAJobID(t *testing.T) {
	h := newTestHandlers(t)
	router := NewRouter(h, testLogger(), DefaultConfig())

	req := httptest.NewRequest(http.MethodGet, "/jobs/filters", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp FilterOptionsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.ExperienceLevels)
}

func TestRateLimitMiddleware(t *testing.T) {
	h := newTestHandlers(t)
	cfg := DefaultConfig()
	cfg.SubmitRate = 0.001
	cfg.SubmitBurst = 1
	router := NewRouter(h, testLogger(), cfg)

	login := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login",
			bytes.NewReader([]byte(`{"email":"a@b.co","password":"x"}`)))
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, login("10.0.0.1:5000").Code)

	rec := login("10.0.0.1:5001")
	assertErrorCode(t, rec, http.StatusTooManyRequests, "RATE_LIMITED")
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Other clients have their own bucket.
	assert.Equal(t, http.StatusOK, login("10.0.0.2:5000").Code)

	// Reads are never throttled.
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.RemoteAddr = "10.0.0.1:5002"
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientLimiters_EvictsIdleClients(t *testing.T) {
	now := time.Unix(1704067200, 0)
	limiters := newClientLimiters(rate.Limit(1), 1, time.Minute)
	limiters.now = func() time.Time { return now }
	limiters.lastSweep = now

	idle := limiters.get("10.0.0.1")
	limiters.get("10.0.0.2")
	assert.Equal(t, 2, limiters.size())

	// 10.0.0.2 stays active, 10.0.0.1 goes quiet.
	now = now.Add(40 * time.Second)
	active := limiters.get("10.0.0.2")
	assert.Equal(t, 2, limiters.size())

	now = now.Add(30 * time.Second)
	assert.Same(t, active, limiters.get("10.0.0.2"))
	assert.Equal(t, 1, limiters.size())

	// An evicted client starts over with a fresh bucket.
	fresh := limiters.get("10.0.0.1")
	assert.NotSame(t, idle, fresh)
	assert.Equal(t, 2, limiters.size())
}

func TestCORSMiddleware(t *testing.T) {
	h := newTestHandlers(t)

	cfg := DefaultConfig()
	cfg.AllowedOrigins = []string{"https://example.com"}
	router := NewRouter(h, testLogger(), cfg)

	// Test with allowed origin
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	// Disallowed origin gets no CORS headers
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	// Test OPTIONS preflight
	req = httptest.NewRequest(http.MethodOptions, "/jobs", nil)
	req.Header.Set("Origin", "https://example.com")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	// Create a handler that panics
	panicHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	handler := RecoveryMiddleware(testLogger())(panicHandler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	// Should not panic
	handler.ServeHTTP(rec, req)

	assertErrorCode(t, rec, http.StatusInternalServerError, "INTERNAL_ERROR")
}
