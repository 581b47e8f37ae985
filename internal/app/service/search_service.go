package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Bekaronn/jetly/internal/app/dto"
	"github.com/Bekaronn/jetly/internal/pkg/amadeus"
	"github.com/Bekaronn/jetly/internal/pkg/offer"
)

type FlightSearcher interface {
	SearchFlights(ctx context.Context, params amadeus.SearchParams) (offer.SearchResponse, error)
}

// SearchService runs flight searches against the upstream provider and
// enriches the raw offers for display. Each submission gets a sequence
// number per client key; a response that is no longer the newest
// submission is dropped instead of silently replacing newer results.
type SearchService struct {
	client FlightSearcher

	mu     sync.Mutex
	latest map[string]uint64
}

func NewSearchService(client FlightSearcher) *SearchService {
	return &SearchService{
		client: client,
		latest: make(map[string]uint64),
	}
}

func (s *SearchService) SearchFlights(
	ctx context.Context,
	req dto.SearchFlightsRequest,
) (dto.SearchFlightsResponse, error) {
	seq := s.issue(req.ClientKey)

	counts := req.Counts()
	params := amadeus.SearchParams{
		OriginLocationCode:      req.OriginLocationCode,
		DestinationLocationCode: req.DestinationLocationCode,
		DepartureDate:           req.DepartureDate,
		ReturnDate:              req.ReturnDate,
		Adults:                  counts.Adults,
		Children:                counts.Children,
		Infants:                 counts.Infants,
		TravelClass:             req.TravelClass,
	}

	response, err := s.client.SearchFlights(ctx, params)
	if err != nil {
		return dto.SearchFlightsResponse{}, fmt.Errorf("flight search: %w", err)
	}

	if s.superseded(req.ClientKey, seq) {
		slog.InfoContext(ctx, "dropping superseded search response",
			slog.String("client_key", req.ClientKey))

		return dto.SearchFlightsResponse{}, ErrSearchSuperseded
	}

	return dto.SearchFlightsResponse{
		Criteria: req,
		Meta:     response.Meta,
		Offers:   offer.Enrich(response),
		Raw:      response.Data,
	}, nil
}

func (s *SearchService) issue(clientKey string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest[clientKey]++

	return s.latest[clientKey]
}

func (s *SearchService) superseded(clientKey string, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latest[clientKey] != seq
}
