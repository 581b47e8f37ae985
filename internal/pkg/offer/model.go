// Package offer models flight offers as returned by the upstream provider
// and their enrichment into display-ready itineraries.
package offer

import (
	"encoding/json"
	"fmt"
)

// SegmentEndpoint is the departure or arrival side of one flight leg.
type SegmentEndpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type Aircraft struct {
	Code string `json:"code,omitempty"`
}

type Operating struct {
	CarrierName string `json:"carrierName,omitempty"`
}

// Segment is one non-stop flight leg within an itinerary.
type Segment struct {
	Departure   SegmentEndpoint `json:"departure"`
	Arrival     SegmentEndpoint `json:"arrival"`
	CarrierCode string          `json:"carrierCode"`
	Number      string          `json:"number"`
	Duration    string          `json:"duration,omitempty"`
	Aircraft    *Aircraft       `json:"aircraft,omitempty"`
	Operating   *Operating      `json:"operating,omitempty"`
}

// Itinerary is one direction of travel. Index 0 of an offer's itinerary
// list is the outbound leg, index 1 the return leg.
type Itinerary struct {
	Duration string    `json:"duration,omitempty"`
	Segments []Segment `json:"segments"`
}

type Price struct {
	Total    string `json:"total"`
	Base     string `json:"base,omitempty"`
	Currency string `json:"currency"`
}

// TravelerPricing is the per-passenger price breakdown of an offer.
type TravelerPricing struct {
	TravelerType string `json:"travelerType"`
	Price        Price  `json:"price"`
}

// Offer is one priced, bookable combination of itineraries. The schema is
// closed; provider fields the service does not interpret land in Extra so
// they survive round trips without being indexed dynamically.
type Offer struct {
	ID                     string            `json:"id"`
	Itineraries            []Itinerary       `json:"itineraries"`
	ValidatingAirlineCodes []string          `json:"validatingAirlineCodes,omitempty"`
	NumberOfBookableSeats  int               `json:"numberOfBookableSeats,omitempty"`
	Price                  *Price            `json:"price,omitempty"`
	TravelerPricings       []TravelerPricing `json:"travelerPricings,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// offerKnownKeys are the JSON keys bound to typed Offer fields.
var offerKnownKeys = map[string]struct{}{
	"id":                     {},
	"itineraries":            {},
	"validatingAirlineCodes": {},
	"numberOfBookableSeats":  {},
	"price":                  {},
	"travelerPricings":       {},
}

type offerAlias Offer

// UnmarshalJSON fills the typed fields and routes every unknown key into
// the Extra side-map.
func (o *Offer) UnmarshalJSON(data []byte) error {
	var alias offerAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return fmt.Errorf("unmarshal offer: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal offer keys: %w", err)
	}

	for key := range offerKnownKeys {
		delete(raw, key)
	}

	if len(raw) > 0 {
		alias.Extra = raw
	}

	*o = Offer(alias)

	return nil
}

// MarshalJSON merges the Extra side-map back into the object so captured
// provider fields survive the round trip. Typed fields win over a stale
// Extra entry under the same key.
func (o Offer) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(offerAlias(o))
	if err != nil {
		return nil, fmt.Errorf("marshal offer: %w", err)
	}

	if len(o.Extra) == 0 {
		return data, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, fmt.Errorf("remarshal offer keys: %w", err)
	}

	for key, value := range o.Extra {
		if _, known := offerKnownKeys[key]; known {
			continue
		}

		merged[key] = value
	}

	return json.Marshal(merged)
}

// LocationEntry is one dictionary entry resolving an airport code to its
// city and country.
type LocationEntry struct {
	CityCode    string `json:"cityCode"`
	CountryCode string `json:"countryCode"`
}

// Dictionaries are the response-scoped code lookup tables supplied
// alongside search results. All tables are optional and never merged
// across responses.
type Dictionaries struct {
	Locations map[string]LocationEntry `json:"locations,omitempty"`
	Carriers  map[string]string        `json:"carriers,omitempty"`
	Aircraft  map[string]string        `json:"aircraft,omitempty"`
}

// SearchResponse is one raw search response from the provider.
type SearchResponse struct {
	Data         []Offer                    `json:"data"`
	Meta         map[string]json.RawMessage `json:"meta,omitempty"`
	Dictionaries *Dictionaries              `json:"dictionaries,omitempty"`
}
