package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings, loaded from environment variables.
type Config struct {
	Host              string `env:"HOST" envDefault:"localhost"`
	Port              string `env:"PORT" envDefault:"8092"`
	ReadHeaderTimeout int    `env:"READ_HEADER_TIMEOUT" envDefault:"20"`
	LivenessEndpoint  string `env:"LIVENESS_ENDPOINT" envDefault:"/liveness"`

	// Booking store lifecycle. When PersistBookings is false the store
	// is transient and lost on shutdown.
	PersistBookings bool   `env:"PERSIST_BOOKINGS" envDefault:"false"`
	StoragePath     string `env:"STORAGE_PATH" envDefault:"stays.db"`
	BookingsKey     string `env:"BOOKINGS_KEY" envDefault:"mm_bookings"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPass     string `env:"SMTP_PASS"`
	BookingInbox string `env:"BOOKING_INBOX" envDefault:"mymountainmajestykarjat@gmail.com"`

	ReviewsAPIKey  string `env:"REVIEWS_API_KEY"`
	ReviewsBaseURL string `env:"REVIEWS_BASE_URL" envDefault:"https://maps.googleapis.com/maps/api/place"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
}

func Load() (*Config, error) {
	var conf Config

	if err := env.Parse(&conf); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &conf, nil
}
