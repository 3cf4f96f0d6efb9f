package booking

import (
	"strings"
	"time"

	"github.com/mountainmajesty/stays/internal/catalog"
)

// Guest identifies who a room is reserved for. Mobile numbers are the
// ten digit local format the booking form collects.
type Guest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Mobile string `json:"mobile" validate:"required,len=10,number"`
}

// Booking is one confirmed reservation: one room, one date, one guest.
// Bookings are append-only, there is no cancellation flow.
type Booking struct {
	RoomID string `json:"roomId"`
	Date   string `json:"date"`
	Guest  Guest  `json:"guest"`
}

// SearchParams are the filter criteria for one search action. Zero
// values mean the criterion is inactive.
type SearchParams struct {
	Location string
	CheckIn  string
	CheckOut string
	Guests   int
}

// IsZero reports whether no criterion is active, so callers can tell
// "no search performed" apart from an empty result.
func (p SearchParams) IsZero() bool {
	return strings.TrimSpace(p.Location) == "" && p.CheckIn == "" && p.CheckOut == "" && p.Guests <= 0
}

// RoomAvailability pairs a room with its effective available dates,
// base availability minus confirmed bookings.
type RoomAvailability struct {
	Room  catalog.Room `json:"room"`
	Dates []string     `json:"dates"`
}

type ConfirmInput struct {
	RoomID string `json:"roomId"`
	Date   string `json:"date"`
	Guest  Guest  `json:"guest"`
}

type Confirmation struct {
	ID       string    `json:"id"`
	RoomID   string    `json:"roomId"`
	RoomName string    `json:"roomName"`
	Date     string    `json:"date"`
	Guest    Guest     `json:"guest"`
	BookedAt time.Time `json:"bookedAt"`
}
