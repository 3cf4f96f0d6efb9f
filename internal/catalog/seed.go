package catalog

import "fmt"

// Seed returns the static Majesty Stays catalog. The listing content
// mirrors the published property set; a deployment may replace it via
// Load with an external JSON catalog.
func Seed() (*Catalog, error) {
	rooms := []Room{
		{
			ID:          "mm-villa",
			Name:        "Mountain Majesty Villa",
			Location:    "Karjat",
			Region:      "Karjat",
			Guests:      8,
			Bedrooms:    3,
			Beds:        4,
			Bathrooms:   3,
			Price:       9500,
			Description: "A spacious villa with sweeping mountain views. Large garden, private pool and a fully equipped kitchen for long family stays.",
			Amenities:   []string{"WiFi", "Swimming Pool", "Kitchen", "Free Parking", "Mountain View", "Garden View"},
			Images:      []string{"/images/mm-villa-1.jpg", "/images/mm-villa-2.jpg"},
			AirbnbLink:  "https://www.airbnb.co.in/rooms/mm-villa",
			HostName:    "Anita",
			HostRating:  4.9,
			HostReviews: 212,
			Rating:      4.8,
			Reviews:     186,
			Availability: []string{
				"2026-03-07", "2026-03-08", "2026-03-10", "2026-03-14",
				"2026-03-15", "2026-03-21", "2026-03-22", "2026-03-28",
			},
		},
		{
			ID:          "mm-cottage",
			Name:        "Majesty Hillside Cottage",
			Location:    "Karjat",
			Region:      "Karjat",
			Guests:      4,
			Bedrooms:    2,
			Beds:        2,
			Bathrooms:   2,
			Price:       5200,
			Description: "A quiet two-bedroom cottage on the hillside. Ideal for small groups looking for a weekend escape near the waterfalls.",
			Amenities:   []string{"WiFi", "Kitchen", "Free Parking", "Mountain View", "Heating"},
			Images:      []string{"/images/mm-cottage-1.jpg"},
			AirbnbLink:  "https://www.airbnb.co.in/rooms/mm-cottage",
			HostName:    "Anita",
			HostRating:  4.9,
			HostReviews: 212,
			Rating:      4.7,
			Reviews:     94,
			Availability: []string{
				"2026-03-07", "2026-03-08", "2026-03-13", "2026-03-14",
				"2026-03-20", "2026-03-21", "2026-03-27", "2026-03-28",
			},
		},
		{
			ID:          "lonavala-retreat",
			Name:        "Lakeview Retreat",
			Location:    "Lonavala",
			Region:      "Lonavala, Maharashtra",
			Guests:      6,
			Bedrooms:    3,
			Beds:        3,
			Bathrooms:   2,
			Price:       7800,
			Description: "Modern retreat overlooking the lake. Restaurant and game area on site, walking distance from the market.",
			Amenities:   []string{"WiFi", "Restaurant", "Game Area", "TV", "Air Conditioning"},
			Images:      []string{"/images/lonavala-1.jpg", "/images/lonavala-2.jpg"},
			AirbnbLink:  "https://www.airbnb.co.in/rooms/lonavala-retreat",
			HostName:    "Rohan",
			HostRating:  4.6,
			HostReviews: 58,
			Rating:      4.5,
			Reviews:     41,
			Availability: []string{
				"2026-03-06", "2026-03-07", "2026-03-08", "2026-03-12",
				"2026-03-13", "2026-03-14", "2026-03-15",
			},
		},
		{
			ID:          "alibaug-beachhouse",
			Name:        "Alibaug Beach House",
			Location:    "Alibaug",
			Region:      "Alibaug, Maharashtra",
			Guests:      10,
			Bedrooms:    4,
			Beds:        6,
			Bathrooms:   4,
			Price:       12500,
			Description: "Beachfront house with a private lawn, minutes from the jetty. Sleeps large groups comfortably.",
			Amenities:   []string{"WiFi", "Swimming Pool", "Kitchen", "Free Parking", "Washer", "Private entrance"},
			Images:      []string{"/images/alibaug-1.jpg"},
			AirbnbLink:  "https://www.airbnb.co.in/rooms/alibaug-beachhouse",
			HostName:    "Kunal",
			HostRating:  4.4,
			HostReviews: 23,
			Rating:      4.3,
			Reviews:     19,
			Availability: []string{
				"2026-03-07", "2026-03-14", "2026-03-21", "2026-03-28",
			},
		},
	}

	c, err := New(rooms)
	if err != nil {
		return nil, fmt.Errorf("build seed catalog: %w", err)
	}

	return c, nil
}
