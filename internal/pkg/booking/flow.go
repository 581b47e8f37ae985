// Package booking drives the three-step booking wizard and persists
// issued ticket records.
package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/Bekaronn/jetly/internal/pkg/offer"
	"github.com/Bekaronn/jetly/internal/pkg/passenger"
	"github.com/google/uuid"
)

// State of one booking flow. The wizard only ever moves forward:
// details -> booking -> ticket. Reopening an offer starts a fresh flow.
type State string

const (
	StateDetails State = "details"
	StateBooking State = "booking"
	StateTicket  State = "ticket"
)

// ErrWrongState reports an operation attempted outside its wizard step.
var ErrWrongState = errors.New("wrong wizard state")

// Flow is one opened booking wizard over a single offer. It is not safe
// for concurrent use; the registry serializes access per flow.
type Flow struct {
	ID        string
	Offer     offer.Offer
	CreatedAt time.Time

	state State
	form  *passenger.FormState
}

// NewFlow opens the wizard at the details step.
func NewFlow(raw offer.Offer, now time.Time) *Flow {
	return &Flow{
		ID:        uuid.New().String(),
		Offer:     raw,
		CreatedAt: now,
		state:     StateDetails,
	}
}

func (f *Flow) State() State {
	return f.state
}

// TravelerCount derives the passenger set size from the offer's pricing
// breakdown. An offer without a breakdown still books for one traveler.
func (f *Flow) TravelerCount() int {
	if n := len(f.Offer.TravelerPricings); n > 0 {
		return n
	}

	return 1
}

// TravelerType names the traveler at index for validation messages.
func (f *Flow) TravelerType(index int) string {
	if index >= 0 && index < len(f.Offer.TravelerPricings) {
		if t := f.Offer.TravelerPricings[index].TravelerType; t != "" {
			return t
		}
	}

	return "ADULT"
}

// OpenBooking moves details -> booking unconditionally and creates the
// empty passenger entries.
func (f *Flow) OpenBooking() error {
	if f.state != StateDetails {
		return fmt.Errorf("cannot open booking from state %q: %w", f.state, ErrWrongState)
	}

	f.state = StateBooking
	f.form = passenger.NewFormState(f.TravelerCount())

	return nil
}

// UpdatePassenger merges field values into one traveler's entry. Only
// legal while at the booking step.
func (f *Flow) UpdatePassenger(index int, fields map[string]string) error {
	if f.state != StateBooking {
		return fmt.Errorf("cannot edit passengers in state %q: %w", f.state, ErrWrongState)
	}

	return f.form.Update(index, fields)
}

// Passengers returns the collected entries in traveler-index order.
func (f *Flow) Passengers() []passenger.Details {
	if f.form == nil {
		return nil
	}

	return f.form.Entries()
}

// Submit validates the full passenger set atomically. On a clean
// validation the record is built and handed to persist; only once
// persistence succeeds does the flow reach its terminal ticket state. A
// failed validation or a failed persist leaves the flow at the booking
// step with nothing committed.
func (f *Flow) Submit(
	v *passenger.Validator,
	id string,
	now time.Time,
	persist func(Booking) error,
) (Booking, passenger.Result, error) {
	if f.state != StateBooking {
		return Booking{}, passenger.Result{}, fmt.Errorf("cannot submit in state %q: %w", f.state, ErrWrongState)
	}

	result := v.ValidateAll(f.form.Entries())
	if !result.Valid() {
		return Booking{}, result, nil
	}

	record := newBooking(id, f.Offer, f.form.Entries(), now)

	if err := persist(record); err != nil {
		return Booking{}, result, fmt.Errorf("persist booking: %w", err)
	}

	f.state = StateTicket

	return record, result, nil
}
