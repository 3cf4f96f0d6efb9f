package booking_test

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/mountainmajesty/stays/internal/booking"
	"github.com/mountainmajesty/stays/internal/catalog"
	"github.com/mountainmajesty/stays/internal/logger"
	"github.com/mountainmajesty/stays/internal/notify"
)

func testLogger() *logger.Logger {
	return logger.New(log.New(io.Discard, "", 0))
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	rooms := []catalog.Room{
		{
			ID:           "mm-villa",
			Name:         "Mountain Majesty Villa",
			Location:     "Karjat",
			Region:       "Karjat",
			Guests:       4,
			Price:        9500,
			HostName:     "Anita",
			Availability: []string{"2026-03-10", "2026-03-14", "2026-03-21"},
		},
		{
			ID:           "lakeview",
			Name:         "Lakeview Retreat",
			Location:     "Lonavala",
			Region:       "Lonavala, Maharashtra",
			Guests:       6,
			Price:        7800,
			HostName:     "Rohan",
			Availability: []string{"2026-03-12", "2026-03-13"},
		},
		{
			ID:           "beachhouse",
			Name:         "Alibaug Beach House",
			Location:     "Alibaug",
			Region:       "Alibaug, Maharashtra",
			Guests:       10,
			Price:        12500,
			HostName:     "Kunal",
			Availability: []string{"2026-03-14"},
		},
	}

	c, err := catalog.New(rooms)
	if err != nil {
		t.Fatalf("build test catalog: %v", err)
	}

	return c
}

type stubNotifier struct {
	err   error
	calls chan notify.Booking
}

func (n *stubNotifier) Notify(_ context.Context, b notify.Booking) error {
	if n.calls != nil {
		n.calls <- b
	}

	return n.err
}

func newTestManager(t *testing.T) (*booking.Manager, *booking.Store) {
	t.Helper()

	l := testLogger()
	store := booking.NewStore(booking.StoreConfig{L: l})

	return booking.NewManager(l, testCatalog(t), store, &stubNotifier{}), store
}

func TestEffectiveDates_SubtractsBookedDates(t *testing.T) {
	c := testCatalog(t)

	room, ok := c.Get("mm-villa")
	if !ok {
		t.Fatal("mm-villa not in catalog")
	}

	booked := map[string]struct{}{"2026-03-14": {}}

	dates := booking.EffectiveDates(room, booked)

	if len(dates) != 2 {
		t.Fatalf("expected 2 effective dates, got %d: %v", len(dates), dates)
	}

	for _, d := range dates {
		if _, taken := booked[d]; taken {
			t.Errorf("booked date %s leaked into effective availability", d)
		}
	}
}

func TestEffectiveDates_NoBookings(t *testing.T) {
	c := testCatalog(t)

	room, _ := c.Get("lakeview")

	dates := booking.EffectiveDates(room, map[string]struct{}{})

	if len(dates) != len(room.Availability) {
		t.Fatalf("expected full base availability, got %v", dates)
	}
}

func TestEffectiveAvailability_ReflectsStoreChanges(t *testing.T) {
	m, store := newTestManager(t)

	before := m.EffectiveAvailability()
	if len(before) != 3 {
		t.Fatalf("expected 3 rooms, got %d", len(before))
	}

	err := store.Add(booking.Booking{
		RoomID: "beachhouse",
		Date:   "2026-03-14",
		Guest:  booking.Guest{Name: "Asha", Email: "asha@example.com", Mobile: "9876543210"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after := m.EffectiveAvailability()

	for _, r := range after {
		if r.Room.ID == "beachhouse" && len(r.Dates) != 0 {
			t.Errorf("expected beachhouse fully booked, got dates %v", r.Dates)
		}

		// Other rooms are untouched.
		if r.Room.ID == "mm-villa" && len(r.Dates) != 3 {
			t.Errorf("mm-villa availability changed unexpectedly: %v", r.Dates)
		}
	}
}
