package offer

import "strings"

// SegmentView is one enriched flight leg, ready for display.
type SegmentView struct {
	CarrierCode       string `json:"carrier_code"`
	CarrierName       string `json:"carrier_name"`
	OperatingCarrier  string `json:"operating_carrier,omitempty"`
	FlightNumber      string `json:"flight_number"`
	DepartureCode     string `json:"departure_code"`
	DepartureCity     string `json:"departure_city"`
	DepartureCountry  string `json:"departure_country,omitempty"`
	DepartureTerminal string `json:"departure_terminal,omitempty"`
	DepartureAt       string `json:"departure_at"`
	ArrivalCode       string `json:"arrival_code"`
	ArrivalCity       string `json:"arrival_city"`
	ArrivalCountry    string `json:"arrival_country,omitempty"`
	ArrivalTerminal   string `json:"arrival_terminal,omitempty"`
	ArrivalAt         string `json:"arrival_at"`
	Aircraft          string `json:"aircraft"`
	Duration          string `json:"duration"`
}

type ItineraryView struct {
	Duration string        `json:"duration"`
	Segments []SegmentView `json:"segments"`
}

// RouteSummary is the condensed origin -> destination line of one
// itinerary, shown in the list view.
type RouteSummary struct {
	From        string `json:"from"`
	To          string `json:"to"`
	DepartureAt string `json:"departure_at"`
	ArrivalAt   string `json:"arrival_at"`
	Duration    string `json:"duration"`
}

// OfferView is the display projection of one offer. Every field degrades
// independently; partial provider data never blocks the rest.
type OfferView struct {
	ID               string            `json:"id"`
	Airline          string            `json:"airline"`
	Outbound         RouteSummary      `json:"outbound"`
	Return           *RouteSummary     `json:"return,omitempty"`
	PriceTotal       string            `json:"price_total"`
	Currency         string            `json:"currency"`
	BookableSeats    int               `json:"bookable_seats"`
	Itineraries      []ItineraryView   `json:"itineraries"`
	TravelerPricings []TravelerPricing `json:"traveler_pricings,omitempty"`
}

// NormalizeDuration turns an ISO-8601 "PT5H30M" duration into "5h30m".
// An absent duration renders as the placeholder glyph.
func NormalizeDuration(iso string) string {
	if iso == "" {
		return Placeholder
	}

	return strings.ToLower(strings.TrimPrefix(iso, "PT"))
}

// Enrich projects every offer of a raw search response into its display
// model using the response's own dictionaries. The raw offers are not
// mutated, so enriching the same response again yields identical views.
func Enrich(resp SearchResponse) []OfferView {
	resolver := NewResolver(resp.Dictionaries)

	views := make([]OfferView, len(resp.Data))
	for i, raw := range resp.Data {
		views[i] = enrichOffer(raw, resolver)
	}

	return views
}

func enrichOffer(raw Offer, resolver *Resolver) OfferView {
	view := OfferView{
		ID:               raw.ID,
		Airline:          Placeholder,
		PriceTotal:       Placeholder,
		Currency:         "",
		Outbound:         emptyRouteSummary(),
		TravelerPricings: raw.TravelerPricings,
	}

	if len(raw.ValidatingAirlineCodes) > 0 {
		view.Airline = resolver.Carrier(raw.ValidatingAirlineCodes[0]).Value
	}

	if raw.Price != nil {
		view.PriceTotal = raw.Price.Total
		view.Currency = raw.Price.Currency
	}

	view.BookableSeats = raw.NumberOfBookableSeats

	view.Itineraries = make([]ItineraryView, len(raw.Itineraries))
	for i, itin := range raw.Itineraries {
		view.Itineraries[i] = enrichItinerary(itin, resolver)
	}

	if len(raw.Itineraries) > 0 {
		view.Outbound = summarizeRoute(raw.Itineraries[0])
	}

	if len(raw.Itineraries) > 1 {
		ret := summarizeRoute(raw.Itineraries[1])
		view.Return = &ret
	}

	return view
}

func enrichItinerary(itin Itinerary, resolver *Resolver) ItineraryView {
	view := ItineraryView{
		Duration: NormalizeDuration(itin.Duration),
		Segments: make([]SegmentView, len(itin.Segments)),
	}

	for i, seg := range itin.Segments {
		view.Segments[i] = enrichSegment(seg, resolver)
	}

	return view
}

func enrichSegment(seg Segment, resolver *Resolver) SegmentView {
	view := SegmentView{
		CarrierCode:       seg.CarrierCode,
		CarrierName:       resolver.Carrier(seg.CarrierCode).Value,
		FlightNumber:      seg.Number,
		DepartureCode:     seg.Departure.IATACode,
		DepartureCity:     resolver.City(seg.Departure.IATACode).Value,
		DepartureCountry:  resolver.Country(seg.Departure.IATACode).Value,
		DepartureTerminal: seg.Departure.Terminal,
		DepartureAt:       seg.Departure.At,
		ArrivalCode:       seg.Arrival.IATACode,
		ArrivalCity:       resolver.City(seg.Arrival.IATACode).Value,
		ArrivalCountry:    resolver.Country(seg.Arrival.IATACode).Value,
		ArrivalTerminal:   seg.Arrival.Terminal,
		ArrivalAt:         seg.Arrival.At,
		Aircraft:          Placeholder,
		Duration:          NormalizeDuration(seg.Duration),
	}

	if seg.Aircraft != nil {
		view.Aircraft = resolver.Aircraft(seg.Aircraft.Code).Value
	}

	if seg.Operating != nil {
		view.OperatingCarrier = seg.Operating.CarrierName
	}

	return view
}

// summarizeRoute condenses an itinerary to its first-segment departure and
// last-segment arrival. An itinerary with no segments yields placeholders
// rather than being dropped.
func summarizeRoute(itin Itinerary) RouteSummary {
	summary := emptyRouteSummary()
	summary.Duration = NormalizeDuration(itin.Duration)

	if len(itin.Segments) == 0 {
		return summary
	}

	first := itin.Segments[0]
	last := itin.Segments[len(itin.Segments)-1]

	summary.From = first.Departure.IATACode
	summary.DepartureAt = first.Departure.At
	summary.To = last.Arrival.IATACode
	summary.ArrivalAt = last.Arrival.At

	return summary
}

func emptyRouteSummary() RouteSummary {
	return RouteSummary{
		From:        Placeholder,
		To:          Placeholder,
		DepartureAt: Placeholder,
		ArrivalAt:   Placeholder,
		Duration:    Placeholder,
	}
}
