package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/navikt/zhotel/internal/models"
)

// RoomsResponse is returned by the room listing endpoints
type RoomsResponse struct {
	Hotel string              `json:"hotel"`
	Rooms []models.RoomStatus `json:"rooms"`
}

// RoomHandler handles HTTP requests for room listing and availability
type RoomHandler struct {
	booking BookingServicer
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(booking BookingServicer) *RoomHandler {
	return &RoomHandler{
		booking: booking,
	}
}

// ServeHTTP handles HTTP requests for rooms
func (h *RoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch r.URL.Path {
	case "/api/rooms":
		h.listRooms(w, r)
	case "/api/rooms/available":
		h.availableRooms(w, r)
	default:
		http.NotFound(w, r)
	}
}

// listRooms handles GET /api/rooms
func (h *RoomHandler) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.booking.ListRooms(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.response(rooms))
}

// availableRooms handles GET /api/rooms/available?capacity=N&max_price=P
func (h *RoomHandler) availableRooms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	capacity, err := strconv.Atoi(query.Get("capacity"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: capacity must be an integer", models.ErrMalformedInput))
		return
	}

	maxPrice, err := strconv.ParseFloat(query.Get("max_price"), 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: max_price must be a number", models.ErrMalformedInput))
		return
	}

	rooms, err := h.booking.FindAvailableRooms(r.Context(), capacity, maxPrice)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.response(rooms))
}

func (h *RoomHandler) response(rooms []*models.Room) RoomsResponse {
	statuses := make([]models.RoomStatus, 0, len(rooms))
	for _, room := range rooms {
		statuses = append(statuses, room.Snapshot())
	}
	return RoomsResponse{
		Hotel: h.booking.HotelName(),
		Rooms: statuses,
	}
}
