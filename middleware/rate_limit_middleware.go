package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"petnet_server/apierr"
)

// client is one throttled caller with the time of its last request.
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client. Requests carrying a bearer token
// are keyed by that token, anonymous ones by remote IP. Idle clients are
// evicted so the map stays bounded.
type RateLimiter struct {
	clients map[string]*client
	mu      sync.Mutex
	rate    rate.Limit
	burst   int
}

// NewRateLimiter creates a limiter allowing requestsPerSecond with the given
// burst per client, and starts the idle-client eviction loop.
func NewRateLimiter(requestsPerSecond, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		rate:    rate.Limit(requestsPerSecond),
		burst:   burst,
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *RateLimiter) cleanupLoop() {
	for range time.Tick(time.Minute) {
		rl.evictIdle(3 * time.Minute)
	}
}

func (rl *RateLimiter) evictIdle(maxIdle time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, c := range rl.clients {
		if time.Since(c.lastSeen) >= maxIdle {
			delete(rl.clients, key)
		}
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, exists := rl.clients[key]
	if !exists {
		c = &client{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = time.Now()
	return c.limiter
}

// clientKey identifies the caller before authentication runs: the bearer
// token when one is presented, the remote IP otherwise.
func clientKey(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok && token != "" {
		return token
	}
	if ip, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return ip
	}
	return r.RemoteAddr
}

// Handler returns the rate limiting middleware.
func (rl *RateLimiter) Handler() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.getLimiter(clientKey(r)).Allow() {
				apierr.Write(w, &apierr.Error{
					Status:  http.StatusTooManyRequests,
					Code:    "rate_limited",
					Message: "Too many requests",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
