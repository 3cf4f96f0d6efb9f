package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Room is a bookable property listing. Records are validated once at
// catalog construction and never mutated afterwards.
type Room struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Region      string   `json:"region" validate:"required"`
	Guests      int      `json:"guests" validate:"gte=1"`
	Bedrooms    int      `json:"bedrooms" validate:"gte=0"`
	Beds        int      `json:"beds" validate:"gte=0"`
	Bathrooms   int      `json:"bathrooms" validate:"gte=0"`
	Price       int      `json:"price" validate:"gte=0"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	AirbnbLink  string   `json:"airbnbLink"`
	HostName    string   `json:"hostName" validate:"required"`
	HostRating  float64  `json:"hostRating" validate:"gte=0,lte=5"`
	HostReviews int      `json:"hostReviews" validate:"gte=0"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	Reviews     int      `json:"reviews" validate:"gte=0"`

	// Availability holds the dates (YYYY-MM-DD) on which the room is
	// nominally bookable, before confirmed bookings are subtracted.
	Availability []string `json:"availability" validate:"dive,datetime=2006-01-02"`
}

// Catalog is an immutable, ordered collection of rooms.
type Catalog struct {
	rooms []Room
	byID  map[string]int
}

var validateRoom = validator.New()

// New validates every room record and builds the catalog. Malformed
// records fail the whole load, a partially valid catalog is worse than
// no catalog.
func New(rooms []Room) (*Catalog, error) {
	byID := make(map[string]int, len(rooms))

	for i, room := range rooms {
		if err := validateRoom.Struct(room); err != nil {
			return nil, fmt.Errorf("validate room %q: %w", room.ID, err)
		}

		if _, ok := byID[room.ID]; ok {
			return nil, fmt.Errorf("duplicate room id %q", room.ID)
		}

		seen := make(map[string]struct{}, len(room.Availability))
		for _, d := range room.Availability {
			if _, ok := seen[d]; ok {
				return nil, fmt.Errorf("room %q: duplicate availability date %s", room.ID, d)
			}

			seen[d] = struct{}{}
		}

		byID[room.ID] = i
	}

	return &Catalog{rooms: rooms, byID: byID}, nil
}

// Load builds a catalog from a JSON array of room records.
func Load(data []byte) (*Catalog, error) {
	var rooms []Room

	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return New(rooms)
}

// Rooms returns the rooms in catalog order. The returned slice is a
// copy, callers cannot mutate catalog state through it.
func (c *Catalog) Rooms() []Room {
	rooms := make([]Room, len(c.rooms))
	copy(rooms, c.rooms)

	return rooms
}

func (c *Catalog) Get(id string) (Room, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Room{}, false
	}

	return c.rooms[i], true
}

func (c *Catalog) Len() int {
	return len(c.rooms)
}
