package models

import "errors"

// Errors reported by the booking core. Room and Hotel signal these outcomes
// through boolean results; the service layer surfaces them as these values.
var (
	ErrAlreadyReserved  = errors.New("room already reserved")
	ErrNothingToCancel  = errors.New("no reservation to cancel")
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrEmptyGuestName   = errors.New("guest name is required")
	ErrInvalidRoom      = errors.New("invalid room")
	ErrDuplicateRoom    = errors.New("duplicate room number")
	ErrRoomNotFound     = errors.New("room not found")
	ErrMalformedInput   = errors.New("malformed input")

	// ErrNotFound is returned by repositories for missing rooms or guests
	ErrNotFound = errors.New("entity not found")
)
