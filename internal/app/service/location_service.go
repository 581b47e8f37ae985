package service

import (
	"context"
	"fmt"

	"github.com/Bekaronn/jetly/internal/app/dto"
	"github.com/Bekaronn/jetly/internal/pkg/amadeus"
)

type LocationSearcher interface {
	Search(ctx context.Context, keyword string) ([]amadeus.Location, error)
}

// LocationService serves city/airport autocomplete through the debounced
// searcher.
type LocationService struct {
	searcher LocationSearcher
}

func NewLocationService(searcher LocationSearcher) *LocationService {
	return &LocationService{searcher: searcher}
}

func (s *LocationService) SearchLocations(
	ctx context.Context,
	req dto.SearchLocationsRequest,
) (dto.SearchLocationsResponse, error) {
	results, err := s.searcher.Search(ctx, req.Keyword)
	if err != nil {
		return dto.SearchLocationsResponse{}, fmt.Errorf("location search: %w", err)
	}

	return dto.SearchLocationsResponse{Locations: results}, nil
}
