// Package repository defines interfaces for data storage
package repository

import (
	"context"

	"github.com/navikt/zhotel/internal/models"
)

// Repository defines the interface for storing room and reservation state
type Repository interface {
	// Room operations
	SeedRooms(ctx context.Context, rooms []*models.Room) error
	ListRooms(ctx context.Context) ([]*models.Room, error)
	GetRoom(ctx context.Context, number string) (*models.Room, error)

	// Reservation operations - a room holds at most one reservation
	ReserveRoom(ctx context.Context, number string, reservation *models.Reservation) (bool, error)
	// CancelGuestReservation clears the first room, in listing order, whose
	// reservation belongs to the guest. The ownership check and the clear are atomic.
	CancelGuestReservation(ctx context.Context, guestName string) (*models.Reservation, error)
	FindRoomByGuest(ctx context.Context, guestName string) (*models.Room, error)
}
