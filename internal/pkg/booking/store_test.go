//go:build unit

package booking

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewStore(client, "bookings"), server
}

func TestStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("absent_key_is_empty_list", func(t *testing.T) {
		store, _ := newTestStore(t)

		bookings, err := store.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, bookings)
	})

	t.Run("unparseable_value_is_empty_list", func(t *testing.T) {
		store, server := newTestStore(t)
		server.Set("bookings", "{not json")

		bookings, err := store.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, bookings)
	})

	t.Run("returns_records_in_insertion_order", func(t *testing.T) {
		store, _ := newTestStore(t)
		first := Booking{ID: "BK-1", Price: "100.00", Currency: "EUR"}
		second := Booking{ID: "BK-2", Price: "200.00", Currency: "EUR"}

		require.NoError(t, store.Append(ctx, first))
		require.NoError(t, store.Append(ctx, second))

		bookings, err := store.List(ctx)

		require.NoError(t, err)
		require.Len(t, bookings, 2)
		assert.Equal(t, "BK-1", bookings[0].ID)
		assert.Equal(t, "BK-2", bookings[1].ID)
	})
}

func TestStore_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("appends_without_touching_existing_records", func(t *testing.T) {
		store, _ := newTestStore(t)
		existing := newBooking("BK-1", testOffer(), nil, time.Now())

		require.NoError(t, store.Append(ctx, existing))
		require.NoError(t, store.Append(ctx, Booking{ID: "BK-2"}))

		bookings, err := store.List(ctx)

		require.NoError(t, err)
		require.Len(t, bookings, 2)
		assert.Equal(t, existing.ID, bookings[0].ID)
		assert.Equal(t, existing.Price, bookings[0].Price)
		assert.Equal(t, existing.CreatedAt, bookings[0].CreatedAt)
	})

	t.Run("recovers_from_corrupt_list", func(t *testing.T) {
		store, server := newTestStore(t)
		server.Set("bookings", "[[[")

		require.NoError(t, store.Append(ctx, Booking{ID: "BK-1"}))

		bookings, err := store.List(ctx)

		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, "BK-1", bookings[0].ID)
	})

	t.Run("default_key_when_unset", func(t *testing.T) {
		server := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: server.Addr()})
		t.Cleanup(func() { _ = client.Close() })

		store := NewStore(client, "")
		require.NoError(t, store.Append(ctx, Booking{ID: "BK-1"}))

		assert.True(t, server.Exists("bookings"))
	})
}
