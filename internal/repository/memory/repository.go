// Package memory provides an in-memory implementation of the repository interface
package memory

import (
	"context"
	"sync"

	"github.com/navikt/zhotel/internal/models"
)

// ErrNotFound is returned when a requested entity is not found
var ErrNotFound = models.ErrNotFound

// Repository implements the repository interface with in-memory storage.
// Reservation state lives on the rooms themselves; the mutex only guards
// replacing the hotel on SeedRooms.
type Repository struct {
	hotel *models.Hotel
	mu    sync.RWMutex
}

// NewRepository creates a new in-memory repository with no rooms
func NewRepository() *Repository {
	hotel, _ := models.NewHotel("", nil)
	return &Repository{
		hotel: hotel,
	}
}

// current returns the hotel being served
func (r *Repository) current() *models.Hotel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hotel
}

// SeedRooms replaces all rooms; any reservations they carry are kept
func (r *Repository) SeedRooms(ctx context.Context, rooms []*models.Room) error {
	hotel, err := models.NewHotel("", rooms)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.hotel = hotel

	return nil
}

// ListRooms returns all rooms in listing order
func (r *Repository) ListRooms(ctx context.Context) ([]*models.Room, error) {
	return r.current().Rooms(), nil
}

// GetRoom retrieves a room by number
func (r *Repository) GetRoom(ctx context.Context, number string) (*models.Room, error) {
	room, ok := r.current().Room(number)
	if !ok {
		return nil, ErrNotFound
	}
	return room, nil
}

// ReserveRoom attaches the reservation to the room.
// Returns false if the room already holds a reservation.
func (r *Repository) ReserveRoom(ctx context.Context, number string, reservation *models.Reservation) (bool, error) {
	room, ok := r.current().Room(number)
	if !ok {
		return false, ErrNotFound
	}
	return room.Reserve(reservation), nil
}

// CancelGuestReservation cancels the guest's reservation.
// Returns ErrNotFound if the guest holds none.
func (r *Repository) CancelGuestReservation(ctx context.Context, guestName string) (*models.Reservation, error) {
	res, ok := r.current().CancelByGuest(guestName)
	if !ok {
		return nil, ErrNotFound
	}
	return res, nil
}

// FindRoomByGuest returns the room holding the guest's reservation
func (r *Repository) FindRoomByGuest(ctx context.Context, guestName string) (*models.Room, error) {
	room, ok := r.current().FindReservationByGuest(guestName)
	if !ok {
		return nil, ErrNotFound
	}
	return room, nil
}
