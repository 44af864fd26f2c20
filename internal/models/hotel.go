package models

import "fmt"

// Hotel owns an ordered, fixed set of rooms
type Hotel struct {
	name   string
	rooms  []*Room
	byRoom map[string]*Room
}

// NewHotel creates a hotel from rooms in listing order.
// Room numbers must be unique.
func NewHotel(name string, rooms []*Room) (*Hotel, error) {
	h := &Hotel{
		name:   name,
		rooms:  make([]*Room, 0, len(rooms)),
		byRoom: make(map[string]*Room, len(rooms)),
	}

	for _, room := range rooms {
		if room == nil {
			return nil, fmt.Errorf("%w: nil room", ErrInvalidRoom)
		}
		if _, exists := h.byRoom[room.Number()]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRoom, room.Number())
		}
		h.byRoom[room.Number()] = room
		h.rooms = append(h.rooms, room)
	}

	return h, nil
}

// Name returns the hotel name
func (h *Hotel) Name() string {
	return h.name
}

// Rooms returns the rooms in listing order
func (h *Hotel) Rooms() []*Room {
	rooms := make([]*Room, len(h.rooms))
	copy(rooms, h.rooms)
	return rooms
}

// Room looks up a room by number
func (h *Hotel) Room(number string) (*Room, bool) {
	room, ok := h.byRoom[number]
	return room, ok
}

// FindAvailableRooms returns the free rooms with at least minCapacity beds
// and a nightly price of at most maxPrice, in listing order
func (h *Hotel) FindAvailableRooms(minCapacity int, maxPrice float64) []*Room {
	available := make([]*Room, 0, len(h.rooms))
	for _, room := range h.rooms {
		if !room.IsReserved() && room.Capacity() >= minCapacity && room.PricePerNight() <= maxPrice {
			available = append(available, room)
		}
	}
	return available
}

// FindReservationByGuest returns the first room, in listing order, holding a
// reservation for the guest
func (h *Hotel) FindReservationByGuest(guestName string) (*Room, bool) {
	for _, room := range h.rooms {
		if res := room.Reservation(); res != nil && res.GuestName() == guestName {
			return room, true
		}
	}
	return nil, false
}

// CancelByGuest cancels the guest's reservation.
// Returns the cancelled reservation and true, or nil and false if the guest
// holds none.
func (h *Hotel) CancelByGuest(guestName string) (*Reservation, bool) {
	for _, room := range h.rooms {
		if res, ok := room.cancelFor(guestName); ok {
			return res, true
		}
	}
	return nil, false
}
