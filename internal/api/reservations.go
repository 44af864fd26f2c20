package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/navikt/zhotel/internal/models"
	"github.com/navikt/zhotel/internal/service"
	"github.com/navikt/zhotel/internal/utils"
)

// ReservationRequest is the JSON body for creating a reservation
type ReservationRequest struct {
	RoomNumber string `json:"room_number"`
	GuestName  string `json:"guest_name"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
}

// ReservationHandler handles HTTP requests for making and cancelling reservations
type ReservationHandler struct {
	booking BookingServicer
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(booking BookingServicer) *ReservationHandler {
	return &ReservationHandler{
		booking: booking,
	}
}

// ServeHTTP handles HTTP requests for reservations
func (h *ReservationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/api/reservations" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodPost:
		h.createReservation(w, r)
	case http.MethodDelete:
		h.cancelReservation(w, r)
	default:
		w.Header().Set("Allow", strings.Join([]string{http.MethodPost, http.MethodDelete}, ", "))
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// createReservation handles POST /api/reservations
func (h *ReservationHandler) createReservation(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding reservation request: %v", err)
		writeError(w, fmt.Errorf("%w: invalid request body", models.ErrMalformedInput))
		return
	}

	checkIn, err := models.ParseDate(req.CheckIn)
	if err != nil {
		writeError(w, err)
		return
	}
	checkOut, err := models.ParseDate(req.CheckOut)
	if err != nil {
		writeError(w, err)
		return
	}

	reservation, err := h.booking.MakeReservation(r.Context(), service.ReservationRequest{
		RoomNumber: req.RoomNumber,
		GuestName:  req.GuestName,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		log.Printf("Reservation of room %s failed: %v", utils.SanitizeLogString(req.RoomNumber), err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, reservation.Record())
}

// cancelReservation handles DELETE /api/reservations?guest=NAME
func (h *ReservationHandler) cancelReservation(w http.ResponseWriter, r *http.Request) {
	guest := strings.TrimSpace(r.URL.Query().Get("guest"))
	if guest == "" {
		writeError(w, models.ErrEmptyGuestName)
		return
	}

	reservation, err := h.booking.CancelReservation(r.Context(), guest)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reservation.Record())
}
