package api

import (
	"net/http"
)

// SetupRoutes configures the HTTP routes for the API.
// pinger may be nil when no external store backs the service.
func SetupRoutes(booking BookingServicer, pinger Pinger) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check endpoints for Kubernetes
	mux.HandleFunc("/health/live", HealthLiveHandler)
	mux.HandleFunc("/health/ready", NewHealthReadyHandler(pinger))

	// Room listing and availability
	roomHandler := NewRoomHandler(booking)
	mux.Handle("/api/rooms", roomHandler)
	mux.Handle("/api/rooms/", roomHandler)

	// Reservations
	mux.Handle("/api/reservations", NewReservationHandler(booking))

	return mux
}
