package models

import (
	"fmt"
	"strings"
	"sync"
)

// Room represents a bookable hotel room with a single reservation slot
type Room struct {
	number        string
	capacity      int
	pricePerNight float64

	mu          sync.RWMutex
	reservation *Reservation
}

// NewRoom creates a free room with fixed capacity and nightly price
func NewRoom(number string, capacity int, pricePerNight float64) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, fmt.Errorf("%w: room number is required", ErrInvalidRoom)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: room %s capacity must be positive", ErrInvalidRoom, number)
	}
	if pricePerNight < 0 {
		return nil, fmt.Errorf("%w: room %s price must not be negative", ErrInvalidRoom, number)
	}

	return &Room{
		number:        number,
		capacity:      capacity,
		pricePerNight: pricePerNight,
	}, nil
}

// Number returns the room number
func (r *Room) Number() string {
	return r.number
}

// Capacity returns how many guests the room sleeps
func (r *Room) Capacity() int {
	return r.capacity
}

// PricePerNight returns the nightly rate
func (r *Room) PricePerNight() float64 {
	return r.pricePerNight
}

// IsReserved returns true if the room currently holds a reservation
func (r *Room) IsReserved() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.reservation != nil
}

// Reservation returns the active reservation, or nil if the room is free
func (r *Room) Reservation() *Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.reservation
}

// Reserve attaches the reservation to the room.
// Returns true if the room was free, false if it was already reserved or the
// reservation was made out for a different room. A false result leaves the
// room unchanged.
func (r *Room) Reserve(reservation *Reservation) bool {
	if reservation == nil || !reservation.Matches(r) {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.reservation != nil {
		return false
	}
	r.reservation = reservation
	return true
}

// CancelReservation clears the active reservation.
// Returns true if a reservation was removed, false if the room was already free.
func (r *Room) CancelReservation() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.reservation == nil {
		return false
	}
	r.reservation = nil
	return true
}

// cancelFor clears the reservation only if it belongs to guestName
func (r *Room) cancelFor(guestName string) (*Reservation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.reservation == nil || r.reservation.guestName != guestName {
		return nil, false
	}
	res := r.reservation
	r.reservation = nil
	return res, true
}

// RoomStatus is a point-in-time copy of a room for display purposes
type RoomStatus struct {
	RoomNumber    string             `json:"room_number"`
	Capacity      int                `json:"capacity"`
	PricePerNight float64            `json:"price_per_night"`
	IsReserved    bool               `json:"is_reserved"`
	Reservation   *ReservationRecord `json:"reservation,omitempty"`
}

// Snapshot returns the room's current state as a value
func (r *Room) Snapshot() RoomStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	status := RoomStatus{
		RoomNumber:    r.number,
		Capacity:      r.capacity,
		PricePerNight: r.pricePerNight,
		IsReserved:    r.reservation != nil,
	}
	if r.reservation != nil {
		rec := r.reservation.Record()
		status.Reservation = &rec
	}
	return status
}
