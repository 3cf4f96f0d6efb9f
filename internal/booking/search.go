package booking

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Search narrows the effective-availability room list by every active
// criterion, keeping catalog order. Criteria are conjunctive; with no
// active criterion the full list comes back. Malformed values make
// only the offending criterion inactive, a search always yields a
// result.
//
// Date policy: a lone check-in date is an exact-match filter; as soon
// as a check-out bound is present the two form an inclusive range and
// a room matches if any effective date falls inside it (an absent
// check-in leaves the range open at the start).
func (m *Manager) Search(params SearchParams) []RoomAvailability {
	rooms := m.EffectiveAvailability()

	location := strings.TrimSpace(params.Location)
	guests := params.Guests
	checkIn, checkInOK := parseDate(params.CheckIn)
	checkOut, checkOutOK := parseDate(params.CheckOut)

	filtered := make([]RoomAvailability, 0, len(rooms))

	for _, r := range rooms {
		if location != "" && !matchesLocation(r, location) {
			continue
		}

		if guests > 0 && r.Room.Guests < guests {
			continue
		}

		if checkOutOK {
			if !matchesRange(r.Dates, checkIn, checkInOK, checkOut) {
				continue
			}
		} else if checkInOK {
			if !containsDate(r.Dates, params.CheckIn) {
				continue
			}
		}

		filtered = append(filtered, r)
	}

	return filtered
}

// matchesLocation checks the search text against location, region and
// name as a case-insensitive substring.
func matchesLocation(r RoomAvailability, query string) bool {
	q := strings.ToLower(query)

	return strings.Contains(strings.ToLower(r.Room.Location), q) ||
		strings.Contains(strings.ToLower(r.Room.Region), q) ||
		strings.Contains(strings.ToLower(r.Room.Name), q)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}

	return false
}

// matchesRange reports whether any effective date falls inside the
// inclusive [from, to] range. Dates that fail to parse are skipped,
// the catalog validates them so that should not happen.
func matchesRange(dates []string, from time.Time, fromOK bool, to time.Time) bool {
	for _, raw := range dates {
		d, ok := parseDate(raw)
		if !ok {
			continue
		}

		if fromOK && d.Before(from) {
			continue
		}

		if d.After(to) {
			continue
		}

		return true
	}

	return false
}

func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}

	return d, true
}
