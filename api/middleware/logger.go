package middleware

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// SetupLoggerMiddleware logs requests through gecho. Health and metrics
// probes fire on a schedule and are kept out of the request log.
func (mw *Middleware) SetupLoggerMiddleware() func(http.Handler) http.Handler {
	logRequests := gecho.Handlers.CreateLoggingMiddleware(mw.logger)
	return func(next http.Handler) http.Handler {
		logged := logRequests(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/metrics", "/health/server", "/health/database":
				next.ServeHTTP(w, r)
			default:
				logged.ServeHTTP(w, r)
			}
		})
	}
}
