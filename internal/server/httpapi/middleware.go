package httpapi

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/dmitrijs2005/launchkeeper/internal/logging"
)

// statusWriter records the status code written by the wrapped handler.
type statusWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

func requestLog(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			args := []any{"method", r.Method, "path", r.URL.Path, "status", sw.status, "size", sw.size, "duration", time.Since(start)}
			if sw.status >= http.StatusInternalServerError {
				logger.Error(r.Context(), "http request failed", args...)
			} else {
				logger.Debug(r.Context(), "http request", args...)
			}
		})
	}
}

func recovery(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					logger.Error(r.Context(), "panic recovered", "panic", p, "stack", string(debug.Stack()),
						"method", r.Method, "path", r.URL.Path)
					writeError(w, nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
