// Package redis provides a Redis/Valkey implementation of the repository interface
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/navikt/zhotel/internal/config"
	"github.com/navikt/zhotel/internal/models"
	"github.com/redis/go-redis/v9"
)

// Common errors
var (
	ErrNotFound = models.ErrNotFound
)

// roomState is the internal model for storing a room's fixed attributes in Redis
type roomState struct {
	Number        string  `json:"number"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `json:"price_per_night"`
}

// Repository implements the repository interface with Redis storage.
// Each room's reservation slot is its own key, claimed with SETNX so that
// concurrent bookings of one room have a single winner.
type Repository struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRepository creates a new Redis repository
func NewRepository(cfg config.RedisConfig) (*Repository, error) {
	var client *redis.Client

	// Use URI if provided, otherwise build connection from individual parameters
	if cfg.URI != "" {
		opt, err := redis.ParseURL(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URI: %w", err)
		}

		// Use DB from config if not specified in the URI
		if opt.DB == 0 {
			opt.DB = cfg.DB
		}

		if opt.Password == "" && cfg.Password != "" {
			opt.Password = cfg.Password
		}

		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Repository{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		ttl:       cfg.ReservationTTL,
	}, nil
}

// Close closes the Redis connection
func (r *Repository) Close() error {
	return r.client.Close()
}

// Ping checks that Redis is reachable
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// roomsKey returns the Redis key holding the room list
func (r *Repository) roomsKey() string {
	return r.keyPrefix + "rooms"
}

// reservationKey returns the Redis key for a room's reservation slot
func (r *Repository) reservationKey(number string) string {
	return fmt.Sprintf("%srooms:%s:reservation", r.keyPrefix, number)
}

// guestKey returns the Redis key for the set of rooms a guest has reserved
func (r *Repository) guestKey(guestName string) string {
	return fmt.Sprintf("%sguests:%s", r.keyPrefix, guestName)
}

// SeedRooms replaces the room list and clears every reservation under the key prefix
func (r *Repository) SeedRooms(ctx context.Context, rooms []*models.Room) error {
	if _, err := models.NewHotel("", rooms); err != nil {
		return err
	}

	states := make([]roomState, 0, len(rooms))
	for _, room := range rooms {
		states = append(states, roomState{
			Number:        room.Number(),
			Capacity:      room.Capacity(),
			PricePerNight: room.PricePerNight(),
		})
	}

	data, err := json.Marshal(states)
	if err != nil {
		return fmt.Errorf("failed to marshal rooms: %w", err)
	}

	stale, err := r.keys(ctx, r.keyPrefix+"rooms:*", r.keyPrefix+"guests:*")
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if len(stale) > 0 {
			pipe.Del(ctx, stale...)
		}
		pipe.Set(ctx, r.roomsKey(), data, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed rooms: %w", err)
	}

	// Carry over reservations the seeded rooms already hold
	for _, room := range rooms {
		if res := room.Reservation(); res != nil {
			if _, err := r.ReserveRoom(ctx, room.Number(), res); err != nil {
				return err
			}
		}
	}

	return nil
}

// keys returns all keys matching any of the patterns
func (r *Repository) keys(ctx context.Context, patterns ...string) ([]string, error) {
	var all []string
	for _, pattern := range patterns {
		keys, err := r.client.Keys(ctx, pattern).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to list keys: %w", err)
		}
		all = append(all, keys...)
	}
	return all, nil
}

// loadRoomStates reads the room list
func (r *Repository) loadRoomStates(ctx context.Context) ([]roomState, error) {
	data, err := r.client.Get(ctx, r.roomsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []roomState{}, nil
		}
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	var states []roomState
	if err := json.Unmarshal(data, &states); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rooms: %w", err)
	}
	return states, nil
}

// ListRooms returns all rooms in listing order with their reservations attached
func (r *Repository) ListRooms(ctx context.Context) ([]*models.Room, error) {
	states, err := r.loadRoomStates(ctx)
	if err != nil {
		return nil, err
	}
	if len(states) == 0 {
		return []*models.Room{}, nil
	}

	keys := make([]string, 0, len(states))
	for _, state := range states {
		keys = append(keys, r.reservationKey(state.Number))
	}

	// Use MGET to retrieve all reservation slots in a single roundtrip
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}

	rooms := make([]*models.Room, 0, len(states))
	for i, state := range states {
		room, err := r.buildRoom(state, values[i])
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

// buildRoom turns a stored room and its raw reservation slot into a Room
func (r *Repository) buildRoom(state roomState, slot interface{}) (*models.Room, error) {
	room, err := models.NewRoom(state.Number, state.Capacity, state.PricePerNight)
	if err != nil {
		return nil, fmt.Errorf("stored room %s is invalid: %w", state.Number, err)
	}

	strData, ok := slot.(string)
	if !ok {
		return room, nil
	}

	res, err := decodeReservation([]byte(strData))
	if err != nil {
		return nil, fmt.Errorf("stored reservation for room %s is invalid: %w", state.Number, err)
	}
	if !room.Reserve(res) {
		return nil, fmt.Errorf("stored reservation %s does not match room %s", res.ID(), state.Number)
	}

	return room, nil
}

func decodeReservation(data []byte) (*models.Reservation, error) {
	var rec models.ReservationRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reservation: %w", err)
	}
	return models.RestoreReservation(rec)
}

// GetRoom retrieves a room by number
func (r *Repository) GetRoom(ctx context.Context, number string) (*models.Room, error) {
	states, err := r.loadRoomStates(ctx)
	if err != nil {
		return nil, err
	}

	for _, state := range states {
		if state.Number != number {
			continue
		}

		slot, err := r.client.Get(ctx, r.reservationKey(number)).Result()
		if errors.Is(err, redis.Nil) {
			return r.buildRoom(state, nil)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get reservation: %w", err)
		}
		return r.buildRoom(state, slot)
	}

	return nil, ErrNotFound
}

// ReserveRoom claims the room's reservation slot.
// Returns false if the slot is already taken or the reservation was made out
// for a different room.
func (r *Repository) ReserveRoom(ctx context.Context, number string, reservation *models.Reservation) (bool, error) {
	room, err := r.GetRoom(ctx, number)
	if err != nil {
		return false, err
	}
	if reservation == nil || !reservation.Matches(room) {
		return false, nil
	}

	data, err := json.Marshal(reservation.Record())
	if err != nil {
		return false, fmt.Errorf("failed to marshal reservation: %w", err)
	}

	claimed, err := r.client.SetNX(ctx, r.reservationKey(number), data, r.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to reserve room: %w", err)
	}
	if !claimed {
		return false, nil
	}

	guestKey := r.guestKey(reservation.GuestName())
	if err := r.client.SAdd(ctx, guestKey, number).Err(); err != nil {
		return false, fmt.Errorf("failed to index guest: %w", err)
	}

	// Set TTL on the guest index to match the reservation TTL
	if r.ttl > 0 {
		if err := r.client.Expire(ctx, guestKey, r.ttl).Err(); err != nil {
			return false, fmt.Errorf("failed to set expiry on guest index: %w", err)
		}
	}

	return true, nil
}

// maxCancelRetries bounds how often a cancel is retried when the slot changes under WATCH
const maxCancelRetries = 5

// CancelGuestReservation clears the guest's reservation.
// The slot is only deleted while it still holds that guest's booking.
func (r *Repository) CancelGuestReservation(ctx context.Context, guestName string) (*models.Reservation, error) {
	for attempt := 0; attempt < maxCancelRetries; attempt++ {
		room, err := r.FindRoomByGuest(ctx, guestName)
		if err != nil {
			return nil, err
		}

		res, err := r.cancelIfOwned(ctx, room.Number(), guestName)
		switch {
		case err == nil:
			return res, nil
		case errors.Is(err, redis.TxFailedErr), errors.Is(err, ErrNotFound):
			// The slot changed hands since the lookup; look again
			continue
		default:
			return nil, err
		}
	}

	return nil, ErrNotFound
}

// cancelIfOwned deletes the room's slot and guest index entry if the slot
// belongs to guestName
func (r *Repository) cancelIfOwned(ctx context.Context, number, guestName string) (*models.Reservation, error) {
	key := r.reservationKey(number)
	var cancelled *models.Reservation

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get reservation: %w", err)
		}

		res, err := decodeReservation(data)
		if err != nil {
			return err
		}
		if res.GuestName() != guestName {
			return ErrNotFound
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.SRem(ctx, r.guestKey(guestName), number)
			return nil
		})
		if err != nil {
			return err
		}

		cancelled = res
		return nil
	}, key)
	if err != nil {
		return nil, err
	}

	return cancelled, nil
}

// FindRoomByGuest returns the first room, in listing order, holding the guest's reservation
func (r *Repository) FindRoomByGuest(ctx context.Context, guestName string) (*models.Room, error) {
	numbers, err := r.client.SMembers(ctx, r.guestKey(guestName)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to look up guest: %w", err)
	}
	if len(numbers) == 0 {
		return nil, ErrNotFound
	}

	indexed := make(map[string]struct{}, len(numbers))
	for _, n := range numbers {
		indexed[n] = struct{}{}
	}

	rooms, err := r.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	for _, room := range rooms {
		if _, ok := indexed[room.Number()]; !ok {
			continue
		}
		if res := room.Reservation(); res != nil && res.GuestName() == guestName {
			return room, nil
		}
	}

	return nil, ErrNotFound
}
