package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRealIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"first forwarded hop", map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, "", "1.2.3.4"},
		{"real ip header", map[string]string{"X-Real-Ip": "9.10.11.12"}, "", "9.10.11.12"},
		{"remote addr", nil, "192.168.1.1:54321", "192.168.1.1"},
		{"forwarded wins over real ip", map[string]string{"X-Forwarded-For": "1.1.1.1", "X-Real-Ip": "2.2.2.2"}, "", "1.1.1.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/orders", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}
			assert.Equal(t, tt.want, realIP(req))
		})
	}
}

func TestLimit_RejectsOverBurst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rl := NewRateLimiter(ctx, rate.Limit(0.001), 2)
	h := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/orders", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		last = httptest.NewRecorder()
		h.ServeHTTP(last, req)
		codes = append(codes, last.Code)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "1000", last.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"too many requests"}`, last.Body.String())

	// another client has its own bucket
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestSweep_DropsStaleEntries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rl := NewRateLimiter(ctx, rate.Limit(1), 1)
	rl.get("1.1.1.1")
	rl.get("2.2.2.2")
	rl.limiters["1.1.1.1"].lastSeen = time.Now().Add(-time.Hour)

	rl.sweep(time.Now())

	assert.NotContains(t, rl.limiters, "1.1.1.1")
	assert.Contains(t, rl.limiters, "2.2.2.2")
}
