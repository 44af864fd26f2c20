// Package api provides the HTTP handlers for the zhotel API
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// HealthResponse represents the response for health check endpoints
type HealthResponse struct {
	Status string `json:"status"`
}

func writeHealth(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(HealthResponse{Status: status})
}

// HealthLiveHandler handles Kubernetes liveness probe requests
func HealthLiveHandler(w http.ResponseWriter, r *http.Request) {
	writeHealth(w, http.StatusOK, "UP")
}

// NewHealthReadyHandler handles Kubernetes readiness probe requests.
// When pinger is non-nil the service is only ready while it answers.
func NewHealthReadyHandler(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pinger != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := pinger.Ping(ctx); err != nil {
				log.Printf("Readiness check failed: %v", err)
				writeHealth(w, http.StatusServiceUnavailable, "DOWN")
				return
			}
		}
		writeHealth(w, http.StatusOK, "UP")
	}
}
