package booking

import (
	"fmt"
	"sync"
	"time"

	"github.com/Bekaronn/jetly/internal/pkg/offer"
	"github.com/Bekaronn/jetly/internal/pkg/passenger"
)

// Booking is a locally persisted record of one completed (simulated)
// reservation. Created exactly once per successful submit, appended to
// the stored list and never mutated afterward.
type Booking struct {
	ID            string                    `json:"id"`
	Itineraries   []offer.Itinerary         `json:"itineraries"`
	Travelers     []offer.TravelerPricing   `json:"travelers,omitempty"`
	PassengerData map[int]passenger.Details `json:"passenger_data"`
	Price         string                    `json:"price"`
	Currency      string                    `json:"currency"`
	CreatedAt     string                    `json:"created_at"`
}

func newBooking(id string, raw offer.Offer, entries []passenger.Details, now time.Time) Booking {
	record := Booking{
		ID:            id,
		Itineraries:   raw.Itineraries,
		Travelers:     raw.TravelerPricings,
		PassengerData: make(map[int]passenger.Details, len(entries)),
		CreatedAt:     now.Format(time.RFC3339),
	}

	for index, entry := range entries {
		record.PassengerData[index] = entry
	}

	if raw.Price != nil {
		record.Price = raw.Price.Total
		record.Currency = raw.Price.Currency
	}

	return record
}

// IDGenerator issues time-derived booking ids. A process-local counter
// keeps two bookings within the same millisecond distinct.
type IDGenerator struct {
	mu  sync.Mutex
	now func() time.Time
	seq uint64
}

func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}

	return &IDGenerator{now: now}
}

func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.seq++

	return fmt.Sprintf("BK-%d-%d", g.now().UnixMilli(), g.seq)
}
