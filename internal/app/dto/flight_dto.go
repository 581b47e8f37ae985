package dto

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Bekaronn/jetly/internal/pkg/amadeus"
	"github.com/Bekaronn/jetly/internal/pkg/exception"
	"github.com/Bekaronn/jetly/internal/pkg/offer"
	"github.com/Bekaronn/jetly/internal/pkg/passenger"
)

// HeaderClientKey identifies the submitting client for search
// sequencing; searches without it share one sequence.
const HeaderClientKey = "X-Client-Key"

// SearchFlightsRequest is one search submission. Constructed fresh per
// submission; infants never exceed adults and at least one adult is
// required before the upstream query is built.
type SearchFlightsRequest struct {
	OriginLocationCode      string `json:"origin_location_code" validate:"required,len=3,alpha"`
	DestinationLocationCode string `json:"destination_location_code" validate:"required,len=3,alpha"`
	DepartureDate           string `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate              string `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Adults                  int    `json:"adults" validate:"required,min=1,max=9"`
	Children                int    `json:"children,omitempty" validate:"omitempty,min=0,max=9"`
	Infants                 int    `json:"infants,omitempty" validate:"omitempty,min=0,max=9"`
	TravelClass             string `json:"travel_class,omitempty" validate:"omitempty,oneof=ECONOMY PREMIUM_ECONOMY BUSINESS FIRST"`

	ClientKey string `json:"-"`
}

func (s *SearchFlightsRequest) Bind(r *http.Request) error {
	s.ClientKey = r.Header.Get(HeaderClientKey)

	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SearchFlightsRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	counts := s.Counts()
	if counts.Infants > counts.Adults {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "infants must not exceed adults",
		}
	}

	return nil
}

// Counts groups the traveler numbers into the selector triple.
func (s *SearchFlightsRequest) Counts() passenger.Count {
	return passenger.Count{
		Adults:   s.Adults,
		Children: s.Children,
		Infants:  s.Infants,
	}
}

// SearchFlightsResponse carries the enriched offers alongside the raw
// ones, so a booking flow can later be opened from the untouched offer.
type SearchFlightsResponse struct {
	Criteria SearchFlightsRequest       `json:"criteria"`
	Meta     map[string]json.RawMessage `json:"meta,omitempty"`
	Offers   []offer.OfferView          `json:"offers"`
	Raw      []offer.Offer              `json:"raw_offers"`
}

// SearchLocationsRequest is the autocomplete query. Keyword may be empty;
// an empty keyword yields an empty result without a provider call.
type SearchLocationsRequest struct {
	Keyword string `json:"-"`
}

func (s *SearchLocationsRequest) Bind(r *http.Request) error {
	s.Keyword = r.URL.Query().Get("keyword")

	return nil
}

type SearchLocationsResponse struct {
	Locations []amadeus.Location `json:"locations"`
}
