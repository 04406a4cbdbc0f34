package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GHutch55/demo-app/api/v1/models"
	"github.com/GHutch55/demo-app/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, cfg config.Config, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	NewRouter(cfg, io.Discard).ServeHTTP(rec, req)
	return rec
}

func TestRouter_Home(t *testing.T) {
	rec := serve(t, config.Config{BuildID: "abc123"}, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.HomeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "abc123", body.Build)
	assert.Equal(t, "healthy", body.Status)
}

func TestRouter_Healthz(t *testing.T) {
	rec := serve(t, config.Config{BuildID: "local"}, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_UnmatchedPath(t *testing.T) {
	for _, path := range []string{"/health", "/healthz/extra", "/api"} {
		rec := serve(t, config.Config{}, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestRouter_WrongMethod(t *testing.T) {
	rec := serve(t, config.Config{}, httptest.NewRequest(http.MethodPost, "/healthz", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_CORS(t *testing.T) {
	cfg := config.Config{CORSOrigins: []string{"http://example.com"}}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := serve(t, cfg, req)
	assert.Equal(t, "http://example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = serve(t, cfg, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RateLimitDisabledByDefault(t *testing.T) {
	r := NewRouter(config.Config{}, io.Discard)

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRouter_RateLimit(t *testing.T) {
	r := NewRouter(config.Config{RateLimit: 2}, io.Discard)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func preflight(path string) *http.Request {
	req := httptest.NewRequest(http.MethodOptions, path, nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	return req
}

func TestRouter_PreflightUnmatchedPath(t *testing.T) {
	rec := serve(t, config.Config{CORSOrigins: []string{"*"}}, preflight("/nope"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_PreflightKnownPath(t *testing.T) {
	rec := serve(t, config.Config{CORSOrigins: []string{"http://example.com"}}, preflight("/healthz"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_PlainOptions(t *testing.T) {
	rec := serve(t, config.Config{}, httptest.NewRequest(http.MethodOptions, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "GET, HEAD, OPTIONS", rec.Header().Get("Allow"))
}

func TestRouter_Head(t *testing.T) {
	ts := httptest.NewServer(NewRouter(config.Config{BuildID: "local"}, io.Discard))
	defer ts.Close()

	for _, path := range []string{"/", "/healthz"} {
		resp, err := http.Head(ts.URL + path)
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Empty(t, body, path)
	}

	resp, err := http.Head(ts.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_RateLimitIgnoresForwardedFor(t *testing.T) {
	r := NewRouter(config.Config{RateLimit: 1}, io.Discard)

	codes := make([]int, 0, 3)
	for _, ip := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"} {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("X-Forwarded-For", ip)
		req.Header.Set("X-Real-IP", ip)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}
