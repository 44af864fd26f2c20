package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/navikt/zhotel/internal/api"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}

func decodeStatus(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	return response["status"]
}

func TestHealthLive(t *testing.T) {
	req, err := http.NewRequest("GET", "/health/live", nil)
	assert.NoError(t, err)

	rr := httptest.NewRecorder()
	http.HandlerFunc(api.HealthLiveHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "UP", decodeStatus(t, rr))
}

func TestHealthReady(t *testing.T) {
	tests := []struct {
		name     string
		pinger   api.Pinger
		code     int
		expected string
	}{
		{"no external store", nil, http.StatusOK, "UP"},
		{"store answers", stubPinger{}, http.StatusOK, "UP"},
		{"store down", stubPinger{err: errors.New("connection refused")}, http.StatusServiceUnavailable, "DOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("GET", "/health/ready", nil)
			assert.NoError(t, err)

			rr := httptest.NewRecorder()
			api.NewHealthReadyHandler(tt.pinger).ServeHTTP(rr, req)

			assert.Equal(t, tt.code, rr.Code)
			assert.Equal(t, tt.expected, decodeStatus(t, rr))
		})
	}
}
