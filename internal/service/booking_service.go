package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/navikt/zhotel/internal/config"
	"github.com/navikt/zhotel/internal/models"
	"github.com/navikt/zhotel/internal/repository"
	"github.com/navikt/zhotel/internal/utils"
)

// Room change types reported to update callbacks
const (
	ChangeReserved  = "reserved"
	ChangeCancelled = "cancelled"
)

// RoomChange describes a reservation being made or cancelled
type RoomChange struct {
	Type       string            `json:"type"`
	RoomNumber string            `json:"room_number"`
	Room       models.RoomStatus `json:"room"`
	At         time.Time         `json:"at"`
}

// RoomUpdateCallback is a function type for room update callbacks
type RoomUpdateCallback func(RoomChange)

// ReservationRequest holds the input for a new reservation
type ReservationRequest struct {
	RoomNumber string
	GuestName  string
	CheckIn    time.Time
	CheckOut   time.Time
}

// BookingService provides business logic for searching, reserving and cancelling rooms
type BookingService struct {
	name            string
	repo            repository.Repository
	mu              sync.RWMutex
	updateCallbacks []RoomUpdateCallback
}

// NewBookingService creates a new BookingService for the named hotel
func NewBookingService(name string, repo repository.Repository) *BookingService {
	return &BookingService{
		name:            name,
		repo:            repo,
		updateCallbacks: make([]RoomUpdateCallback, 0),
	}
}

// NewRooms builds the configured rooms in listing order
func NewRooms(cfgs []config.RoomConfig) ([]*models.Room, error) {
	rooms := make([]*models.Room, 0, len(cfgs))
	for _, c := range cfgs {
		room, err := models.NewRoom(c.Number, c.Capacity, c.PricePerNight)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// HotelName returns the name of the hotel
func (s *BookingService) HotelName() string {
	return s.name
}

// RegisterUpdateCallback registers a callback function to be called when a room changes
func (s *BookingService) RegisterUpdateCallback(callback RoomUpdateCallback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateCallbacks = append(s.updateCallbacks, callback)
}

// notifyUpdate calls all registered callbacks with the change
func (s *BookingService) notifyUpdate(change RoomChange) {
	s.mu.RLock()
	callbacks := make([]RoomUpdateCallback, len(s.updateCallbacks))
	copy(callbacks, s.updateCallbacks)
	s.mu.RUnlock()

	for _, callback := range callbacks {
		callback(change)
	}
}

// ListRooms returns every room in listing order
func (s *BookingService) ListRooms(ctx context.Context) ([]*models.Room, error) {
	return s.repo.ListRooms(ctx)
}

// hotel builds a Hotel over the current room state
func (s *BookingService) hotel(ctx context.Context) (*models.Hotel, error) {
	rooms, err := s.repo.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	return models.NewHotel(s.name, rooms)
}

// FindAvailableRooms returns the free rooms that sleep at least minCapacity
// guests for at most maxPrice a night, in listing order. Any number is a
// valid bound: capacity 0 matches every free room, a negative price none.
func (s *BookingService) FindAvailableRooms(ctx context.Context, minCapacity int, maxPrice float64) ([]*models.Room, error) {
	hotel, err := s.hotel(ctx)
	if err != nil {
		return nil, err
	}
	return hotel.FindAvailableRooms(minCapacity, maxPrice), nil
}

// MakeReservation books the requested room for the guest.
// Returns ErrRoomNotFound, ErrEmptyGuestName, ErrInvalidDateRange or
// ErrAlreadyReserved when the booking cannot be made.
func (s *BookingService) MakeReservation(ctx context.Context, req ReservationRequest) (*models.Reservation, error) {
	room, err := s.repo.GetRoom(ctx, req.RoomNumber)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", models.ErrRoomNotFound, req.RoomNumber)
		}
		return nil, err
	}

	reservation, err := models.NewReservation(req.GuestName, room, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	ok, err := s.repo.ReserveRoom(ctx, room.Number(), reservation)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve room %s: %w", room.Number(), err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrAlreadyReserved, room.Number())
	}

	log.Printf("Room %s reserved for %s (%s -> %s)",
		utils.SanitizeLogString(room.Number()),
		utils.MaskGuestName(reservation.GuestName()),
		models.FormatDate(reservation.CheckInDate()),
		models.FormatDate(reservation.CheckOutDate()))

	s.notifyRoom(ctx, ChangeReserved, room.Number())
	return reservation, nil
}

// CancelReservation cancels the reservation held by the guest.
// Returns ErrNothingToCancel if the guest holds no reservation.
func (s *BookingService) CancelReservation(ctx context.Context, guestName string) (*models.Reservation, error) {
	guestName = strings.TrimSpace(guestName)

	reservation, err := s.repo.CancelGuestReservation(ctx, guestName)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNothingToCancel
		}
		return nil, fmt.Errorf("failed to cancel reservation: %w", err)
	}

	log.Printf("Reservation for room %s cancelled for %s",
		utils.SanitizeLogString(reservation.RoomNumber()),
		utils.MaskGuestName(guestName))

	s.notifyRoom(ctx, ChangeCancelled, reservation.RoomNumber())
	return reservation, nil
}

// notifyRoom reloads the room and notifies listeners about the change
func (s *BookingService) notifyRoom(ctx context.Context, changeType, number string) {
	room, err := s.repo.GetRoom(ctx, number)
	if err != nil {
		log.Printf("Error loading room %s for update notification: %v", utils.SanitizeLogString(number), err)
		return
	}

	s.notifyUpdate(RoomChange{
		Type:       changeType,
		RoomNumber: number,
		Room:       room.Snapshot(),
		At:         time.Now().UTC(),
	})
}
