package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/config"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/redis"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func testServer(buf *bytes.Buffer) *server.Server {
	log := zerolog.New(buf)
	cfg := &config.Config{
		Primary: config.PrimaryConfig{Env: "test"},
		RateLimit: config.RateLimitConfig{
			Enabled:  true,
			Requests: 2,
			Window:   time.Minute,
		},
	}
	return server.NewServer(cfg, &log, nil, nil)
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "req-123", seen)
}

func TestRequestID_RejectsOversizedOrBinary(t *testing.T) {
	for _, bad := range []string{strings.Repeat("a", 65), "has space", "tab\tid"} {
		var seen string
		h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = GetRequestID(r)
		}))

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(RequestIDHeader, bad)
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.NotEqual(t, bad, seen)
		assert.NotEmpty(t, seen)
	}
}

func TestGetLogger_DefaultsToNop(t *testing.T) {
	l := GetLogger(context.Background())
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestEnhanceContext_AddsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	s := testServer(&buf)
	ce := NewContextEnhancer(s)

	h := RequestID(ce.EnhanceContext(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		GetLogger(r.Context()).Info().Msg("inside")
	})))

	req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", nil)
	req.Header.Set(RequestIDHeader, "req-abc")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-abc"`)
	assert.Contains(t, out, `"path":"/create-checkout-session"`)
	assert.Contains(t, out, `"method":"POST"`)
}

func TestRequestLogger_RecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	g := NewGlobal(testServer(&buf))

	h := g.RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/x", nil))

	assert.Contains(t, buf.String(), `"status":500`)
	assert.Contains(t, buf.String(), "request completed")
}

func TestCORS_AllowsAnyOrigin(t *testing.T) {
	h := CORS([]string{"*"})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/create-checkout-session", nil)
	req.Header.Set("Origin", "http://shop.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodPost, "/create-checkout-session", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

type limiterMock struct {
	res *redis.RateLimitResult
	err error
}

func (m limiterMock) CheckRateLimit(ctx context.Context, key string, limit int64, window time.Duration) (*redis.RateLimitResult, error) {
	return m.res, m.err
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	rl := NewRateLimit(limiterMock{res: &redis.RateLimitResult{Allowed: false}}, config.RateLimitConfig{Enabled: false})

	rec := httptest.NewRecorder()
	rl.PerIP(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_NoStorePassesThrough(t *testing.T) {
	rl := NewRateLimit(nil, config.RateLimitConfig{Enabled: true, Requests: 1, Window: time.Minute})

	rec := httptest.NewRecorder()
	rl.PerIP(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_Rejects(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, Requests: 5, Window: time.Minute}
	rl := NewRateLimit(limiterMock{res: &redis.RateLimitResult{Allowed: false, ResetAt: time.Now().Add(30 * time.Second)}}, cfg)

	rec := httptest.NewRecorder()
	rl.PerIP(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"too many requests"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimit_FailsOpen(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, Requests: 5, Window: time.Minute}
	rl := NewRateLimit(limiterMock{err: errors.New("redis down")}, cfg)

	rec := httptest.NewRecorder()
	rl.PerIP(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	assert.Equal(t, "203.0.113.7", clientIP(req))

	req.RemoteAddr = "203.0.113.7"
	assert.Equal(t, "203.0.113.7", clientIP(req))
}

func TestNewMiddlewares_WithoutRedis(t *testing.T) {
	var buf bytes.Buffer
	mw := NewMiddlewares(testServer(&buf))

	rec := httptest.NewRecorder()
	mw.RateLimit.PerIP(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
