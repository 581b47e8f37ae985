// Package locations debounces city/airport autocomplete queries against
// the upstream reference-data API.
package locations

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/Bekaronn/jetly/internal/pkg/amadeus"
	"github.com/Bekaronn/jetly/internal/pkg/exception"
)

// DefaultDebounce bounds request volume while the user is still typing.
const DefaultDebounce = 400 * time.Millisecond

// ErrSuperseded reports that a newer query was issued while this one was
// waiting or in flight; its result must be discarded, last write wins.
var ErrSuperseded = exception.ApplicationError{
	StatusCode: http.StatusConflict,
	Message:    "location query superseded by a newer one",
}

type Fetcher func(ctx context.Context, keyword string) ([]amadeus.Location, error)

// Searcher serializes autocomplete queries: each query waits out the
// debounce window and only the latest issued query may deliver results.
type Searcher struct {
	fetch Fetcher
	delay time.Duration

	mu  sync.Mutex
	seq uint64
}

func NewSearcher(fetch Fetcher, delay time.Duration) *Searcher {
	if delay <= 0 {
		delay = DefaultDebounce
	}

	return &Searcher{fetch: fetch, delay: delay}
}

// Search runs one debounced query. An empty keyword short-circuits to an
// empty result without touching the network or the debounce window.
func (s *Searcher) Search(ctx context.Context, keyword string) ([]amadeus.Location, error) {
	s.mu.Lock()
	s.seq++
	issued := s.seq
	s.mu.Unlock()

	if keyword == "" {
		return []amadeus.Location{}, nil
	}

	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if s.superseded(issued) {
		return nil, ErrSuperseded
	}

	results, err := s.fetch(ctx, keyword)
	if err != nil {
		return nil, err
	}

	// a newer keyword may have been issued while this one was in flight
	if s.superseded(issued) {
		return nil, ErrSuperseded
	}

	return results, nil
}

func (s *Searcher) superseded(issued uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.seq != issued
}
