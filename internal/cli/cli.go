// Package cli provides the interactive text menu for the booking system
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/navikt/zhotel/internal/models"
	"github.com/navikt/zhotel/internal/service"
	"github.com/olekukonko/tablewriter"
)

// Booker defines the booking operations the menu needs
type Booker interface {
	ListRooms(ctx context.Context) ([]*models.Room, error)
	FindAvailableRooms(ctx context.Context, minCapacity int, maxPrice float64) ([]*models.Room, error)
	MakeReservation(ctx context.Context, req service.ReservationRequest) (*models.Reservation, error)
	CancelReservation(ctx context.Context, guestName string) (*models.Reservation, error)
}

// Menu messages
const (
	msgInvalidInput  = "Invalid input. Please try again."
	msgInvalidRoom   = "Invalid room number. Please try again."
	msgNoRooms       = "No available rooms matching the criteria."
	msgInvalidChoice = "Invalid choice. Please enter a number between 1 and 4."
	msgCancelled     = "Reservation canceled successfully."
	msgNotFound      = "No reservation found for this guest."
	msgBadDateRange  = "Check-out date must be after check-in date. Please try again."
	msgEmptyGuest    = "Guest name cannot be empty. Please try again."
	msgTaken         = "Room is no longer available. Please try again."
	msgExiting       = "Exiting..."
)

// errEOF signals that the input ended while prompting
var errEOF = errors.New("end of input")

// CLI runs the menu loop over a reader and writer
type CLI struct {
	booker Booker
	in     *bufio.Scanner
	out    io.Writer
}

// New creates a menu reading from in and writing to out
func New(booker Booker, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		booker: booker,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run shows the menu until the user exits or the input ends.
// Errors from individual operations are reported and the loop continues.
func (c *CLI) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.println("\nWelcome to the Hotel Reservation System")
		c.println("1. View Room Information")
		c.println("2. Make a Reservation")
		c.println("3. Cancel Reservation")
		c.println("4. Exit")

		choice, err := c.prompt("Enter your choice: ")
		if err != nil {
			return nil
		}

		switch choice {
		case "1":
			err = c.viewRooms(ctx)
		case "2":
			err = c.makeReservation(ctx)
		case "3":
			err = c.cancelReservation(ctx)
		case "4":
			c.println(msgExiting)
			return nil
		default:
			c.println(msgInvalidChoice)
		}

		if errors.Is(err, errEOF) {
			return nil
		}
		if err != nil {
			c.printf("Error: %v\n", err)
		}
	}
}

func (c *CLI) viewRooms(ctx context.Context) error {
	rooms, err := c.booker.ListRooms(ctx)
	if err != nil {
		return err
	}

	for _, room := range rooms {
		c.println("\nRoom Information:")
		c.printRoom(room.Snapshot())
	}
	return nil
}

func (c *CLI) makeReservation(ctx context.Context) error {
	input, err := c.prompt("Enter required capacity: ")
	if err != nil {
		return err
	}
	capacity, err := strconv.Atoi(input)
	if err != nil {
		c.println(msgInvalidInput)
		return nil
	}

	input, err = c.prompt("Enter maximum price per night: ")
	if err != nil {
		return err
	}
	maxPrice, err := strconv.ParseFloat(input, 64)
	if err != nil {
		c.println(msgInvalidInput)
		return nil
	}

	available, err := c.booker.FindAvailableRooms(ctx, capacity, maxPrice)
	if err != nil {
		return err
	}
	if len(available) == 0 {
		c.println(msgNoRooms)
		return nil
	}

	c.println("Available Rooms:")
	c.printAvailable(available)

	choice, err := c.prompt("Enter room number to reserve: ")
	if err != nil {
		return err
	}
	var selected *models.Room
	for _, room := range available {
		if room.Number() == choice {
			selected = room
			break
		}
	}
	if selected == nil {
		c.println(msgInvalidRoom)
		return nil
	}

	guest, err := c.prompt("Enter guest name: ")
	if err != nil {
		return err
	}
	checkIn, ok, err := c.promptDate("Enter check-in date (YYYY-MM-DD): ")
	if err != nil || !ok {
		return err
	}
	checkOut, ok, err := c.promptDate("Enter check-out date (YYYY-MM-DD): ")
	if err != nil || !ok {
		return err
	}

	reservation, err := c.booker.MakeReservation(ctx, service.ReservationRequest{
		RoomNumber: selected.Number(),
		GuestName:  guest,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	switch {
	case errors.Is(err, models.ErrInvalidDateRange):
		c.println(msgBadDateRange)
	case errors.Is(err, models.ErrEmptyGuestName):
		c.println(msgEmptyGuest)
	case errors.Is(err, models.ErrAlreadyReserved), errors.Is(err, models.ErrRoomNotFound):
		c.println(msgTaken)
	case err != nil:
		return err
	default:
		c.printf("Reservation made successfully. Total cost: $%s\n", FormatMoney(reservation.TotalCost()))
	}
	return nil
}

func (c *CLI) cancelReservation(ctx context.Context) error {
	guest, err := c.prompt("Enter guest name: ")
	if err != nil {
		return err
	}

	_, err = c.booker.CancelReservation(ctx, guest)
	switch {
	case errors.Is(err, models.ErrNothingToCancel):
		c.println(msgNotFound)
	case err != nil:
		return err
	default:
		c.println(msgCancelled)
	}
	return nil
}

// prompt writes the label and reads one trimmed line
func (c *CLI) prompt(label string) (string, error) {
	c.printf("%s", label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", errEOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// promptDate reads a date; ok is false if the input did not parse
func (c *CLI) promptDate(label string) (date time.Time, ok bool, err error) {
	input, err := c.prompt(label)
	if err != nil {
		return date, false, err
	}
	parsed, err := models.ParseDate(input)
	if err != nil {
		c.println(msgInvalidInput)
		return date, false, nil
	}
	return parsed, true, nil
}

func (c *CLI) printRoom(status models.RoomStatus) {
	reserved := "No"
	if status.IsReserved {
		reserved = "Yes"
	}

	c.render([]string{"Room Number", "Capacity", "Price per Night", "Is Reserved"}, [][]string{{
		status.RoomNumber,
		strconv.Itoa(status.Capacity),
		"$" + FormatMoney(status.PricePerNight),
		reserved,
	}})

	if res := status.Reservation; res != nil {
		c.render([]string{"Guest Name", "Check-in Date", "Check-out Date"}, [][]string{{
			res.GuestName, res.CheckInDate, res.CheckOutDate,
		}})
	}
}

func (c *CLI) printAvailable(rooms []*models.Room) {
	rows := make([][]string, 0, len(rooms))
	for _, room := range rooms {
		rows = append(rows, []string{
			room.Number(),
			strconv.Itoa(room.Capacity()),
			"$" + FormatMoney(room.PricePerNight()),
		})
	}
	c.render([]string{"Room Number", "Capacity", "Price per Night"}, rows)
}

func (c *CLI) render(header []string, rows [][]string) {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.AppendBulk(rows)
	table.Render()
}

func (c *CLI) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *CLI) println(s string) {
	fmt.Fprintln(c.out, s)
}

// FormatMoney renders an amount without trailing zeros: 200, 99.5
func FormatMoney(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
