package web

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/navikt/zhotel/internal/utils"
)

// HTTPProtocolMiddleware keeps the event stream on HTTP/1.1 semantics.
// Browsers behind some proxies drop long-lived HTTP/3 streams with
// net::ERR_QUIC_PROTOCOL_ERROR, so HTTP/3 advertising is cleared everywhere.
func HTTPProtocolMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Alt-Svc", "clear")

		if strings.HasPrefix(r.URL.Path, EventsPath) {
			w.Header().Set("Connection", "keep-alive")
			w.Header().Set("X-Force-HTTP1", "true")
			w.Header().Set("X-Accel-Buffering", "no") // Disable nginx proxy buffering
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Flush lets the event stream flush through the recorder
func (s *statusRecorder) Flush() {
	if f, ok := s.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// RequestLogMiddleware logs method, path, status and duration of each request.
// Event stream connections are logged when they close.
func RequestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		if r.URL.Path == "/health/live" || r.URL.Path == "/health/ready" {
			return
		}
		log.Printf("%s %s %d %s",
			r.Method,
			utils.SanitizeLogString(r.URL.Path),
			rec.status,
			time.Since(start).Round(time.Millisecond))
	})
}

// WrapMuxWithMiddleware wraps an HTTP mux with the logging and protocol middleware
func WrapMuxWithMiddleware(mux *http.ServeMux) http.Handler {
	return RequestLogMiddleware(HTTPProtocolMiddleware(mux))
}
