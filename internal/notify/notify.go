// Package notify delivers booking notifications to the property
// inbox. Delivery is best-effort: the booking core never gates a
// confirmation on it.
package notify

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Booking carries everything the notification template needs.
type Booking struct {
	RoomName     string
	RoomLocation string
	Price        int
	Date         string
	GuestName    string
	GuestEmail   string
	GuestMobile  string
	BookedAt     time.Time
}

type Notifier interface {
	Notify(ctx context.Context, b Booking) error
}

func subject(b Booking) string {
	return fmt.Sprintf("New Booking: %s", b.RoomName)
}

func body(b Booking) string {
	var sb strings.Builder

	sb.WriteString("New Booking Received\n\n")
	sb.WriteString("Guest Details:\n")
	fmt.Fprintf(&sb, "Name: %s\n", b.GuestName)
	fmt.Fprintf(&sb, "Email: %s\n", b.GuestEmail)
	fmt.Fprintf(&sb, "Mobile: %s\n\n", b.GuestMobile)
	sb.WriteString("Booking Details:\n")
	fmt.Fprintf(&sb, "Property: %s\n", b.RoomName)
	fmt.Fprintf(&sb, "Location: %s\n", b.RoomLocation)
	fmt.Fprintf(&sb, "Check-in Date: %s\n", b.Date)
	fmt.Fprintf(&sb, "Price: ₹%d/night\n\n", b.Price)
	fmt.Fprintf(&sb, "Booking Time: %s\n", b.BookedAt.Format(time.RFC1123))

	return sb.String()
}

// MailtoLink builds the manual contact link offered when delivery
// fails.
func MailtoLink(to string, b Booking) string {
	return fmt.Sprintf(
		"mailto:%s?subject=%s&body=%s",
		to,
		url.PathEscape(subject(b)),
		url.PathEscape(body(b)),
	)
}
