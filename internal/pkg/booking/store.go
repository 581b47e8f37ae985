package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Store keeps the whole booking list as one JSON array under a single
// key, mirroring the browser local-storage model the flow was built for:
// every append reads the full list, extends it and writes it back whole.
type Store struct {
	redis RedisClient
	key   string
}

func NewStore(redis RedisClient, key string) *Store {
	if key == "" {
		key = "bookings"
	}

	return &Store{redis: redis, key: key}
}

// List returns all persisted bookings in insertion order. An absent key
// is an empty list; an unparseable value is treated the same way, with no
// repair attempt and no error to the caller.
func (s *Store) List(ctx context.Context) ([]Booking, error) {
	data, err := s.redis.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []Booking{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read booking list: %w", err)
	}

	var bookings []Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		slog.WarnContext(ctx, "stored booking list is unparseable, treating as empty",
			slog.String("key", s.key),
			slog.String("error", err.Error()))

		return []Booking{}, nil
	}

	return bookings, nil
}

// Append adds one booking to the end of the persisted list via a full
// read-modify-write.
func (s *Store) Append(ctx context.Context, record Booking) error {
	bookings, err := s.List(ctx)
	if err != nil {
		return err
	}

	bookings = append(bookings, record)

	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("marshal booking list: %w", err)
	}

	if err := s.redis.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write booking list: %w", err)
	}

	return nil
}
