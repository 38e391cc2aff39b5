package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type memoryLimiter struct {
	counts map[string]int64
}

func newMemoryLimiter() *memoryLimiter {
	return &memoryLimiter{counts: map[string]int64{}}
}

func (m *memoryLimiter) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	m.counts[key]++
	return m.counts[key], nil
}

func postCode(handler http.Handler, phone, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/request-code", strings.NewReader(`{"phone":"`+phone+`"}`))
	req.Header.Set("X-Forwarded-For", ip)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestOTPRateLimitBlocksPhoneAfterLimit(t *testing.T) {
	policy := NewOTPRateLimitPolicy("request", time.Minute, 100, 2)
	handler := OTPRateLimit(policy, newMemoryLimiter(), nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	for i := 0; i < 2; i++ {
		if rec := postCode(handler, "+15550001111", "10.0.0.1"); rec.Code != http.StatusAccepted {
			t.Fatalf("request %d: expected 202, got %d", i+1, rec.Code)
		}
	}
	if rec := postCode(handler, "+15550001111", "10.0.0.1"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after phone limit, got %d", rec.Code)
	}

	// A different phone from the same IP is still within its own budget.
	if rec := postCode(handler, "+15550002222", "10.0.0.1"); rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202 for different phone, got %d", rec.Code)
	}
}

func TestOTPRateLimitBlocksIPAfterLimit(t *testing.T) {
	policy := NewOTPRateLimitPolicy("request", time.Minute, 2, 100)
	handler := OTPRateLimit(policy, newMemoryLimiter(), nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	phones := []string{"+15550001111", "+15550002222", "+15550003333"}
	for i, phone := range phones[:2] {
		if rec := postCode(handler, phone, "10.0.0.9"); rec.Code != http.StatusAccepted {
			t.Fatalf("request %d: expected 202, got %d", i+1, rec.Code)
		}
	}
	if rec := postCode(handler, phones[2], "10.0.0.9"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after ip limit, got %d", rec.Code)
	}
}

func TestOTPRateLimitPreservesRequestBody(t *testing.T) {
	policy := NewOTPRateLimitPolicy("request", time.Minute, 10, 10)
	var seen string
	handler := OTPRateLimit(policy, newMemoryLimiter(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := make([]byte, 64)
		n, _ := r.Body.Read(body)
		seen = string(body[:n])
		w.WriteHeader(http.StatusAccepted)
	}))

	postCode(handler, "+15550001111", "10.0.0.1")
	if !strings.Contains(seen, "+15550001111") {
		t.Fatalf("downstream handler lost the body: %q", seen)
	}
}

func TestOTPRateLimitDisabledPolicyPassesThrough(t *testing.T) {
	policy := NewOTPRateLimitPolicy("request", 0, 0, 0)
	handler := OTPRateLimit(policy, newMemoryLimiter(), nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	for i := 0; i < 20; i++ {
		if rec := postCode(handler, "+15550001111", "10.0.0.1"); rec.Code != http.StatusAccepted {
			t.Fatalf("request %d: expected 202, got %d", i+1, rec.Code)
		}
	}
}
