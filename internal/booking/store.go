package booking

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mountainmajesty/stays/internal/logger"
	"github.com/mountainmajesty/stays/internal/storage/kv"
)

type StoreConfig struct {
	L *logger.Logger

	// Persist re-serializes the whole collection to KV under Key on
	// every append and restores it at construction. When false the
	// store is transient and starts empty.
	Persist bool
	Key     string
	KV      kv.Store
}

// Store holds the confirmed bookings. The (roomID, date) pair is
// unique across the collection; everything else in the core leans on
// that invariant.
type Store struct {
	mu       sync.Mutex
	l        *logger.Logger
	persist  bool
	key      string
	kv       kv.Store
	bookings []Booking
}

// NewStore builds the store, restoring persisted bookings when
// configured to. Unreadable or malformed persisted data degrades to an
// empty store rather than failing the session.
func NewStore(conf StoreConfig) *Store {
	s := &Store{
		l:       conf.L,
		persist: conf.Persist,
		key:     conf.Key,
		kv:      conf.KV,
	}

	if !s.persist {
		return s
	}

	data, ok, err := s.kv.Read(s.key)
	if err != nil {
		s.l.LogWarnf("Could not read persisted bookings under %q, starting empty: %v", s.key, err)

		return s
	}

	if !ok {
		return s
	}

	var bookings []Booking

	if err := json.Unmarshal(data, &bookings); err != nil {
		s.l.LogWarnf("Persisted bookings under %q are malformed, starting empty: %v", s.key, err)

		return s
	}

	s.bookings = bookings

	return s
}

// Add appends a booking, enforcing the (roomID, date) uniqueness
// invariant, and synchronously flushes the collection when persistence
// is on. A flush failure is logged and does not undo the append.
func (s *Store) Add(b Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.bookings {
		if existing.RoomID == b.RoomID && existing.Date == b.Date {
			return fmt.Errorf("room %q on %s: %w", b.RoomID, b.Date, ErrAlreadyBooked)
		}
	}

	s.bookings = append(s.bookings, b)

	if !s.persist {
		return nil
	}

	data, err := json.Marshal(s.bookings)
	if err != nil {
		s.l.LogErrorf("Could not serialize bookings for %q: %v", s.key, err)

		return nil
	}

	if err := s.kv.Write(s.key, data); err != nil {
		s.l.LogErrorf("Could not persist bookings under %q: %v", s.key, err)
	}

	return nil
}

// All returns the bookings in append order.
func (s *Store) All() []Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := make([]Booking, len(s.bookings))
	copy(bookings, s.bookings)

	return bookings
}

// BookedDates returns the set of dates already consumed for a room.
func (s *Store) BookedDates(roomID string) map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	dates := make(map[string]struct{})

	for _, b := range s.bookings {
		if b.RoomID == roomID {
			dates[b.Date] = struct{}{}
		}
	}

	return dates
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.bookings)
}
