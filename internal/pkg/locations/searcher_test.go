//go:build unit

package locations

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Bekaronn/jetly/internal/pkg/amadeus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearcher_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("empty_keyword_skips_provider", func(t *testing.T) {
		calls := 0
		searcher := NewSearcher(func(context.Context, string) ([]amadeus.Location, error) {
			calls++
			return nil, nil
		}, time.Millisecond)

		results, err := searcher.Search(ctx, "")

		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Zero(t, calls)
	})

	t.Run("delivers_latest_results", func(t *testing.T) {
		searcher := NewSearcher(func(_ context.Context, keyword string) ([]amadeus.Location, error) {
			return []amadeus.Location{{Name: keyword}}, nil
		}, time.Millisecond)

		results, err := searcher.Search(ctx, "London")

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "London", results[0].Name)
	})

	t.Run("fetch_error_propagates", func(t *testing.T) {
		searcher := NewSearcher(func(context.Context, string) ([]amadeus.Location, error) {
			return nil, errors.New("provider down")
		}, time.Millisecond)

		_, err := searcher.Search(ctx, "Lon")

		assert.EqualError(t, err, "provider down")
	})

	t.Run("older_query_is_discarded_when_retyped", func(t *testing.T) {
		var fetched []string
		var mu sync.Mutex

		searcher := NewSearcher(func(_ context.Context, keyword string) ([]amadeus.Location, error) {
			mu.Lock()
			fetched = append(fetched, keyword)
			mu.Unlock()

			return []amadeus.Location{{Name: keyword}}, nil
		}, 50*time.Millisecond)

		var wg sync.WaitGroup
		var olderErr, newerErr error
		var newerResults []amadeus.Location

		wg.Add(1)
		go func() {
			defer wg.Done()
			_, olderErr = searcher.Search(ctx, "Lon")
		}()

		// the second keystroke lands while the first query is still
		// inside its debounce window
		time.Sleep(10 * time.Millisecond)

		wg.Add(1)
		go func() {
			defer wg.Done()
			newerResults, newerErr = searcher.Search(ctx, "London")
		}()

		wg.Wait()

		assert.ErrorIs(t, olderErr, ErrSuperseded)
		require.NoError(t, newerErr)
		require.Len(t, newerResults, 1)
		assert.Equal(t, "London", newerResults[0].Name)

		mu.Lock()
		defer mu.Unlock()
		assert.NotContains(t, fetched, "Lon")
	})

	t.Run("cancelled_context_stops_the_wait", func(t *testing.T) {
		searcher := NewSearcher(func(context.Context, string) ([]amadeus.Location, error) {
			return nil, nil
		}, time.Hour)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := searcher.Search(cancelled, "Lon")

		assert.ErrorIs(t, err, context.Canceled)
	})
}
