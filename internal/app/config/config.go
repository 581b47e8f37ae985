package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel  LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP      HTTP       `mapstructure:",squash"`
	Redis     Redis      `mapstructure:",squash"`
	Amadeus   Amadeus    `mapstructure:",squash"`
	Locations Locations  `mapstructure:",squash"`
	Booking   Booking    `mapstructure:",squash"`
}

type HTTP struct {
	Port           int           `mapstructure:"HTTP_PORT"`
	Timeout        time.Duration `mapstructure:"HTTP_TIMEOUT"`
	AllowedOrigins []string      `mapstructure:"HTTP_ALLOWED_ORIGINS"`
}

type Redis struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

// Amadeus holds the upstream flight/location provider configuration.
type Amadeus struct {
	BaseURL      string        `mapstructure:"AMADEUS_BASE_URL"`
	ClientID     string        `mapstructure:"AMADEUS_CLIENT_ID"`
	ClientSecret string        `mapstructure:"AMADEUS_CLIENT_SECRET"`
	Timeout      time.Duration `mapstructure:"AMADEUS_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"AMADEUS_RATE_LIMIT"`
}

type Locations struct {
	DebounceDelay time.Duration `mapstructure:"LOCATION_DEBOUNCE_DELAY"`
}

type Booking struct {
	StorageKey    string `mapstructure:"BOOKING_STORAGE_KEY"`
	TicketBaseURL string `mapstructure:"TICKET_BASE_URL"`
}
