package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Reservation is a guest's claim on a room for a date range.
// It is immutable once created and carries a snapshot of the room it was
// made out for.
type Reservation struct {
	id            string
	guestName     string
	roomNumber    string
	capacity      int
	pricePerNight float64
	checkIn       time.Time
	checkOut      time.Time
	createdAt     time.Time
}

// NewReservation creates a reservation for the given room.
// It does not attach itself to the room; call Room.Reserve for that.
func NewReservation(guestName string, room *Room, checkIn, checkOut time.Time) (*Reservation, error) {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, ErrEmptyGuestName
	}
	if room == nil {
		return nil, fmt.Errorf("%w: reservation needs a room", ErrInvalidRoom)
	}

	checkIn, checkOut = Date(checkIn), Date(checkOut)
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidDateRange, FormatDate(checkIn), FormatDate(checkOut))
	}

	return &Reservation{
		id:            uuid.New().String(),
		guestName:     guestName,
		roomNumber:    room.Number(),
		capacity:      room.Capacity(),
		pricePerNight: room.PricePerNight(),
		checkIn:       checkIn,
		checkOut:      checkOut,
		createdAt:     time.Now().UTC(),
	}, nil
}

func (r *Reservation) ID() string              { return r.id }
func (r *Reservation) GuestName() string       { return r.guestName }
func (r *Reservation) RoomNumber() string      { return r.roomNumber }
func (r *Reservation) Capacity() int           { return r.capacity }
func (r *Reservation) PricePerNight() float64  { return r.pricePerNight }
func (r *Reservation) CheckInDate() time.Time  { return r.checkIn }
func (r *Reservation) CheckOutDate() time.Time { return r.checkOut }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }

// Nights returns the number of nights between check-in and check-out
func (r *Reservation) Nights() int {
	return DaysBetween(r.checkIn, r.checkOut)
}

// TotalCost returns nights multiplied by the nightly rate
func (r *Reservation) TotalCost() float64 {
	return float64(r.Nights()) * r.pricePerNight
}

// Matches reports whether the reservation was made out for this room
func (r *Reservation) Matches(room *Room) bool {
	return room != nil &&
		r.roomNumber == room.Number() &&
		r.capacity == room.Capacity() &&
		r.pricePerNight == room.PricePerNight()
}

// ReservationRecord is the serialised form of a reservation
type ReservationRecord struct {
	ID            string    `json:"id"`
	GuestName     string    `json:"guest_name"`
	RoomNumber    string    `json:"room_number"`
	Capacity      int       `json:"capacity"`
	PricePerNight float64   `json:"price_per_night"`
	CheckInDate   string    `json:"check_in_date"`
	CheckOutDate  string    `json:"check_out_date"`
	Nights        int       `json:"nights"`
	TotalCost     float64   `json:"total_cost"`
	CreatedAt     time.Time `json:"created_at"`
}

// Record returns the serialised form of the reservation
func (r *Reservation) Record() ReservationRecord {
	return ReservationRecord{
		ID:            r.id,
		GuestName:     r.guestName,
		RoomNumber:    r.roomNumber,
		Capacity:      r.capacity,
		PricePerNight: r.pricePerNight,
		CheckInDate:   FormatDate(r.checkIn),
		CheckOutDate:  FormatDate(r.checkOut),
		Nights:        r.Nights(),
		TotalCost:     r.TotalCost(),
		CreatedAt:     r.createdAt,
	}
}

// RestoreReservation rebuilds a reservation from its serialised form.
// The same validation as NewReservation applies.
func RestoreReservation(rec ReservationRecord) (*Reservation, error) {
	if strings.TrimSpace(rec.GuestName) == "" {
		return nil, ErrEmptyGuestName
	}
	checkIn, err := ParseDate(rec.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := ParseDate(rec.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	return &Reservation{
		id:            rec.ID,
		guestName:     strings.TrimSpace(rec.GuestName),
		roomNumber:    rec.RoomNumber,
		capacity:      rec.Capacity,
		pricePerNight: rec.PricePerNight,
		checkIn:       checkIn,
		checkOut:      checkOut,
		createdAt:     rec.CreatedAt,
	}, nil
}
