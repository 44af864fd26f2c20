package api

import (
	"context"

	"github.com/navikt/zhotel/internal/models"
	"github.com/navikt/zhotel/internal/service"
)

// BookingServicer defines the interface for booking operations needed by API handlers
type BookingServicer interface {
	HotelName() string
	ListRooms(ctx context.Context) ([]*models.Room, error)
	FindAvailableRooms(ctx context.Context, minCapacity int, maxPrice float64) ([]*models.Room, error)
	MakeReservation(ctx context.Context, req service.ReservationRequest) (*models.Reservation, error)
	CancelReservation(ctx context.Context, guestName string) (*models.Reservation, error)
}

// Pinger is implemented by repositories that depend on an external store
type Pinger interface {
	Ping(ctx context.Context) error
}
