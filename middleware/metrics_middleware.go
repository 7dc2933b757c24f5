package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"petnet_server/metrics"
)

// Metrics returns a middleware recording request counts, durations and
// in-flight gauge for every request, labeled by mux route template.
func Metrics() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			metrics.IncrementInFlight()
			defer metrics.DecrementInFlight()

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			metrics.RecordHTTPRequest(
				r.Method,
				routePattern(r),
				strconv.Itoa(wrapped.statusCode),
				time.Since(start),
			)
		})
	}
}
