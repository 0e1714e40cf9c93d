package middleware

import (
	"net/http"
	"time"
)

type requestRecorder interface {
	RequestStarted() (done func())
	ObserveRequest(method, route string, status int, d time.Duration)
}

const unmatchedRoute = "unmatched"

// Metrics records in-flight requests, totals and latency per route pattern.
// The route comes from the ServeMux pattern, so it must wrap the mux without
// an intermediate WithContext copy of the request.
func Metrics(rec requestRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := rec.RequestStarted()
			defer done()

			start := time.Now()
			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			rec.ObserveRequest(r.Method, route, sw.status, time.Since(start))
		})
	}
}
