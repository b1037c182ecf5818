package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/SamTech-crypto/audit-workflow-app/config"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newRateLimitedRouter(requestsPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(&mockLogger{}, &config.Config{
		RateLimit: config.RateLimitConfig{RequestsPerMin: requestsPerMin},
	})

	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func get(r *gin.Engine, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit(t *testing.T) {
	t.Run("burst then 429", func(t *testing.T) {
		// 10 req/min gives a burst of 1: second immediate request is rejected.
		r := newRateLimitedRouter(10)

		if code := get(r, "10.0.0.1:1234", ""); code != http.StatusOK {
			t.Fatalf("first request = %d", code)
		}
		if code := get(r, "10.0.0.1:1234", ""); code != http.StatusTooManyRequests {
			t.Fatalf("second request = %d, want 429", code)
		}
	})

	t.Run("sources are limited independently", func(t *testing.T) {
		r := newRateLimitedRouter(10)

		if code := get(r, "10.0.0.1:1234", ""); code != http.StatusOK {
			t.Fatalf("first source = %d", code)
		}
		if code := get(r, "10.0.0.2:1234", ""); code != http.StatusOK {
			t.Fatalf("second source = %d, want 200", code)
		}
	})

	t.Run("X-Forwarded-For wins over RemoteAddr", func(t *testing.T) {
		r := newRateLimitedRouter(10)

		if code := get(r, "10.0.0.1:1234", "203.0.113.7, 10.0.0.1"); code != http.StatusOK {
			t.Fatalf("first = %d", code)
		}
		// Same forwarded client behind a different hop is still throttled.
		if code := get(r, "10.0.0.9:9999", "203.0.113.7"); code != http.StatusTooManyRequests {
			t.Fatalf("second = %d, want 429", code)
		}
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(&mockLogger{}, &config.Config{})

	r := gin.New()
	r.GET("/ping", mw.RequestID(), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	t.Run("generates an id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Header().Get(HeaderRequestID) == "" {
			t.Error("no request id set")
		}
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get(HeaderRequestID); got != "req-42" {
			t.Errorf("request id = %q, want req-42", got)
		}
	})
}
