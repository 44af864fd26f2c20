package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/navikt/zhotel/internal/cli"
	"github.com/navikt/zhotel/internal/config"
	"github.com/navikt/zhotel/internal/models"
	"github.com/navikt/zhotel/internal/repository/memory"
	"github.com/navikt/zhotel/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *service.BookingService {
	t.Helper()
	cfgs, err := config.ParseRooms(config.DefaultRooms)
	require.NoError(t, err)
	rooms, err := service.NewRooms(cfgs)
	require.NoError(t, err)

	repo := memory.NewRepository()
	require.NoError(t, repo.SeedRooms(context.Background(), rooms))
	return service.NewBookingService("Example Hotel", repo)
}

// run feeds the lines to the menu and returns everything it printed
func run(t *testing.T, booker cli.Booker, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, cli.New(booker, in, &out).Run(context.Background()))
	return out.String()
}

func TestViewRooms(t *testing.T) {
	out := run(t, newService(t), "1", "4")

	assert.Contains(t, out, "Welcome to the Hotel Reservation System")
	assert.Equal(t, 3, strings.Count(out, "Room Information:"))
	assert.Contains(t, out, "Price per Night")
	assert.Contains(t, out, "$150")
	assert.NotContains(t, out, "Guest Name")
	assert.Contains(t, out, "Exiting...")
}

func TestMakeAndCancelReservation(t *testing.T) {
	svc := newService(t)

	out := run(t, svc,
		"2", "2", "150", "101", "Alice", "2024-03-01", "2024-03-03",
		"1",
		"3", "Alice",
		"3", "Alice",
		"4",
	)

	assert.Contains(t, out, "Available Rooms:")
	assert.Contains(t, out, "Reservation made successfully. Total cost: $200")
	assert.Contains(t, out, "Guest Name")
	assert.Contains(t, out, "2024-03-03")
	assert.Contains(t, out, "Reservation canceled successfully.")
	assert.Contains(t, out, "No reservation found for this guest.")

	rooms, err := svc.FindAvailableRooms(context.Background(), 2, 150)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestMakeReservationInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{"non-numeric capacity", []string{"2", "two"}, "Invalid input. Please try again."},
		{"non-numeric price", []string{"2", "2", "cheap"}, "Invalid input. Please try again."},
		{"negative price", []string{"2", "0", "-1"}, "No available rooms matching the criteria."},
		{"nothing matches", []string{"2", "5", "1000"}, "No available rooms matching the criteria."},
		{"room not offered", []string{"2", "2", "150", "103"}, "Invalid room number. Please try again."},
		{"bad date", []string{"2", "2", "150", "101", "Alice", "01/03/2024"}, "Invalid input. Please try again."},
		{"zero nights", []string{"2", "2", "150", "101", "Alice", "2024-03-01", "2024-03-01"}, "Check-out date must be after check-in date."},
		{"blank guest", []string{"2", "2", "150", "101", " ", "2024-03-01", "2024-03-02"}, "Guest name cannot be empty."},
		{"unknown menu choice", []string{"9"}, "Invalid choice. Please enter a number between 1 and 4."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t)
			out := run(t, svc, append(tt.lines, "4")...)
			assert.Contains(t, out, tt.expected)
			assert.Contains(t, out, "Exiting...", "the loop continues after an error")

			// Nothing was booked
			rooms, err := svc.FindAvailableRooms(context.Background(), 1, 1000)
			require.NoError(t, err)
			assert.Len(t, rooms, 3)
		})
	}
}

func TestZeroCapacityListsEveryFreeRoom(t *testing.T) {
	out := run(t, newService(t), "2", "0", "1000", "9", "4")

	assert.Contains(t, out, "Available Rooms:")
	assert.Contains(t, out, "$200")
	assert.Contains(t, out, "Invalid room number. Please try again.")
}

func TestEndOfInputStopsLoop(t *testing.T) {
	out := run(t, newService(t), "2", "2")
	assert.NotContains(t, out, "Exiting...")
}

// MockBooker is a mock implementation of cli.Booker
type MockBooker struct {
	mock.Mock
}

func (m *MockBooker) ListRooms(ctx context.Context) ([]*models.Room, error) {
	args := m.Called(ctx)
	rooms, _ := args.Get(0).([]*models.Room)
	return rooms, args.Error(1)
}

func (m *MockBooker) FindAvailableRooms(ctx context.Context, minCapacity int, maxPrice float64) ([]*models.Room, error) {
	args := m.Called(ctx, minCapacity, maxPrice)
	rooms, _ := args.Get(0).([]*models.Room)
	return rooms, args.Error(1)
}

func (m *MockBooker) MakeReservation(ctx context.Context, req service.ReservationRequest) (*models.Reservation, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*models.Reservation)
	return res, args.Error(1)
}

func (m *MockBooker) CancelReservation(ctx context.Context, guestName string) (*models.Reservation, error) {
	args := m.Called(ctx, guestName)
	res, _ := args.Get(0).(*models.Reservation)
	return res, args.Error(1)
}

func TestBackendErrorsAreReported(t *testing.T) {
	booker := new(MockBooker)
	booker.On("ListRooms", mock.Anything).Return(nil, errors.New("connection refused"))
	booker.On("CancelReservation", mock.Anything, "Alice").Return(nil, errors.New("timeout"))

	out := run(t, booker, "1", "3", "Alice", "4")

	assert.Contains(t, out, "Error: connection refused")
	assert.Contains(t, out, "Error: timeout")
	assert.Contains(t, out, "Exiting...")
	booker.AssertExpectations(t)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "200", cli.FormatMoney(200))
	assert.Equal(t, "99.5", cli.FormatMoney(99.5))
	assert.Equal(t, "0", cli.FormatMoney(0))
}
