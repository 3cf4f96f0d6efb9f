package booking

import "github.com/mountainmajesty/stays/internal/catalog"

// EffectiveDates derives the dates a room can still be booked on: base
// availability minus the dates already consumed by bookings. Pure, no
// caching; stale availability is a correctness bug so callers
// recompute on every read.
func EffectiveDates(room catalog.Room, booked map[string]struct{}) []string {
	dates := make([]string, 0, len(room.Availability))

	for _, d := range room.Availability {
		if _, taken := booked[d]; taken {
			continue
		}

		dates = append(dates, d)
	}

	return dates
}

// EffectiveAvailability resolves every catalog room against the
// current booking store, preserving catalog order.
func (m *Manager) EffectiveAvailability() []RoomAvailability {
	rooms := m.catalog.Rooms()
	resolved := make([]RoomAvailability, 0, len(rooms))

	for _, room := range rooms {
		resolved = append(resolved, RoomAvailability{
			Room:  room,
			Dates: EffectiveDates(room, m.store.BookedDates(room.ID)),
		})
	}

	return resolved
}
