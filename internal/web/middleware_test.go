package web

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPProtocolMiddleware(t *testing.T) {
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("test response"))
	})

	wrappedHandler := HTTPProtocolMiddleware(testHandler)

	t.Run("DisablesHTTP3Globally", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)

		wrappedHandler.ServeHTTP(recorder, request)

		assert.Equal(t, "clear", recorder.Header().Get("Alt-Svc"))
		assert.Empty(t, recorder.Header().Get("X-Force-HTTP1"))
	})

	t.Run("AddsStreamHeadersForEventsEndpoint", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/events", nil)

		wrappedHandler.ServeHTTP(recorder, request)

		assert.Equal(t, "clear", recorder.Header().Get("Alt-Svc"))
		assert.Equal(t, "keep-alive", recorder.Header().Get("Connection"))
		assert.Equal(t, "true", recorder.Header().Get("X-Force-HTTP1"))
		assert.Equal(t, "no", recorder.Header().Get("X-Accel-Buffering"))
	})
}

func TestRequestLogMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	handler := RequestLogMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/reservations", nil))
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, buf.String(), "POST /api/reservations 409")

	buf.Reset()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Empty(t, buf.String(), "health probes are not logged")
}

func TestWrapMuxWithMiddleware(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	wrappedHandler := WrapMuxWithMiddleware(mux)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/test", nil)

	wrappedHandler.ServeHTTP(recorder, request)

	assert.Equal(t, "clear", recorder.Header().Get("Alt-Svc"))
	assert.Equal(t, http.StatusOK, recorder.Code)
}
