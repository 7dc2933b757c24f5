package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// newBlockingLimiter allows exactly one request per client and never refills.
func newBlockingLimiter() *RateLimiter {
	return NewRateLimiter(0, 1)
}

func serveLimited(rl *RateLimiter, req *http.Request) *httptest.ResponseRecorder {
	handler := rl.Handler()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func requestFrom(addr, token string) *http.Request {
	req := httptest.NewRequest("GET", "/feed", nil)
	req.RemoteAddr = addr
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestRateLimiterKeysByBearerToken(t *testing.T) {
	rl := newBlockingLimiter()

	assert.Equal(t, http.StatusOK, serveLimited(rl, requestFrom("10.0.0.1:1234", "token-a")).Code)
	assert.Equal(t, http.StatusTooManyRequests, serveLimited(rl, requestFrom("10.0.0.1:1234", "token-a")).Code)

	// A different token from the same IP is a different client
	assert.Equal(t, http.StatusOK, serveLimited(rl, requestFrom("10.0.0.1:1234", "token-b")).Code)
}

func TestRateLimiterKeysAnonymousByIP(t *testing.T) {
	rl := newBlockingLimiter()

	assert.Equal(t, http.StatusOK, serveLimited(rl, requestFrom("10.0.0.1:1234", "")).Code)
	// Same IP, different source port: still the same client
	assert.Equal(t, http.StatusTooManyRequests, serveLimited(rl, requestFrom("10.0.0.1:5678", "")).Code)

	assert.Equal(t, http.StatusOK, serveLimited(rl, requestFrom("10.0.0.2:1234", "")).Code)
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	rl := newBlockingLimiter()

	serveLimited(rl, requestFrom("10.0.0.1:1234", "token-a"))
	serveLimited(rl, requestFrom("10.0.0.2:1234", ""))

	rl.mu.Lock()
	assert.Len(t, rl.clients, 2)
	rl.mu.Unlock()

	rl.evictIdle(0)

	rl.mu.Lock()
	assert.Empty(t, rl.clients)
	rl.mu.Unlock()

	// An evicted client starts over with a fresh limiter
	assert.Equal(t, http.StatusOK, serveLimited(rl, requestFrom("10.0.0.1:1234", "token-a")).Code)
}
