//go:build unit

package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/Bekaronn/jetly/internal/pkg/offer"
	"github.com/Bekaronn/jetly/internal/pkg/passenger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var flowNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func testOffer() offer.Offer {
	return offer.Offer{
		ID: "offer-1",
		Itineraries: []offer.Itinerary{{
			Duration: "PT2H",
			Segments: []offer.Segment{{
				Departure:   offer.SegmentEndpoint{IATACode: "SVO", At: "2026-10-01T10:00:00"},
				Arrival:     offer.SegmentEndpoint{IATACode: "LED", At: "2026-10-01T12:00:00"},
				CarrierCode: "AB",
				Number:      "101",
			}},
		}},
		Price: &offer.Price{Total: "120.00", Currency: "EUR"},
		TravelerPricings: []offer.TravelerPricing{
			{TravelerType: "ADULT", Price: offer.Price{Total: "80.00", Currency: "EUR"}},
			{TravelerType: "CHILD", Price: offer.Price{Total: "40.00", Currency: "EUR"}},
		},
	}
}

func fillPassenger(t *testing.T, flow *Flow, index int) {
	t.Helper()

	require.NoError(t, flow.UpdatePassenger(index, map[string]string{
		passenger.FieldFirstName:      "Anna",
		passenger.FieldLastName:       "Petrova",
		passenger.FieldBirthDate:      "1990-04-12",
		passenger.FieldGender:         "F",
		passenger.FieldDocumentType:   "PASSPORT",
		passenger.FieldDocumentNumber: "12 34 567890",
		passenger.FieldNationality:    "RU",
	}))
}

func TestFlow_Transitions(t *testing.T) {
	validator, err := passenger.NewValidator()
	require.NoError(t, err)

	noPersist := func(Booking) error { return nil }

	t.Run("starts_at_details", func(t *testing.T) {
		flow := NewFlow(testOffer(), flowNow)

		assert.Equal(t, StateDetails, flow.State())
		assert.Equal(t, 2, flow.TravelerCount())
	})

	t.Run("details_to_booking_is_unconditional", func(t *testing.T) {
		flow := NewFlow(testOffer(), flowNow)

		require.NoError(t, flow.OpenBooking())
		assert.Equal(t, StateBooking, flow.State())
		assert.Len(t, flow.Passengers(), 2)
	})

	t.Run("cannot_open_booking_twice", func(t *testing.T) {
		flow := NewFlow(testOffer(), flowNow)
		require.NoError(t, flow.OpenBooking())

		assert.Error(t, flow.OpenBooking())
	})

	t.Run("cannot_edit_or_submit_at_details", func(t *testing.T) {
		flow := NewFlow(testOffer(), flowNow)

		assert.ErrorIs(t, flow.UpdatePassenger(0, map[string]string{passenger.FieldFirstName: "A"}), ErrWrongState)

		_, _, err := flow.Submit(validator, "BK-1", flowNow, noPersist)
		assert.ErrorIs(t, err, ErrWrongState)
	})

	t.Run("incomplete_passenger_blocks_ticket", func(t *testing.T) {
		flow := NewFlow(testOffer(), flowNow)
		require.NoError(t, flow.OpenBooking())
		fillPassenger(t, flow, 0)
		// passenger 1 never filled in

		_, result, err := flow.Submit(validator, "BK-1", flowNow, noPersist)

		require.NoError(t, err)
		assert.False(t, result.Valid())
		assert.Equal(t, StateBooking, flow.State())

		first, _ := result.First()
		assert.Equal(t, 1, first.PassengerIndex)
		assert.Equal(t, "CHILD", flow.TravelerType(first.PassengerIndex))
	})

	t.Run("complete_set_reaches_ticket", func(t *testing.T) {
		flow := NewFlow(testOffer(), flowNow)
		require.NoError(t, flow.OpenBooking())
		fillPassenger(t, flow, 0)
		fillPassenger(t, flow, 1)

		var persisted []Booking
		record, result, err := flow.Submit(validator, "BK-42", flowNow, func(b Booking) error {
			persisted = append(persisted, b)
			return nil
		})

		require.NoError(t, err)
		assert.True(t, result.Valid())
		assert.Equal(t, StateTicket, flow.State())
		require.Len(t, persisted, 1)

		assert.Equal(t, "BK-42", record.ID)
		assert.Equal(t, "120.00", record.Price)
		assert.Equal(t, "EUR", record.Currency)
		assert.Equal(t, flowNow.Format(time.RFC3339), record.CreatedAt)
		assert.Len(t, record.PassengerData, 2)
		assert.Len(t, record.Itineraries, 1)
	})

	t.Run("persist_failure_keeps_booking_state", func(t *testing.T) {
		flow := NewFlow(testOffer(), flowNow)
		require.NoError(t, flow.OpenBooking())
		fillPassenger(t, flow, 0)
		fillPassenger(t, flow, 1)

		_, _, err := flow.Submit(validator, "BK-1", flowNow, func(Booking) error {
			return errors.New("store down")
		})

		assert.Error(t, err)
		assert.Equal(t, StateBooking, flow.State())
	})

	t.Run("ticket_is_terminal", func(t *testing.T) {
		flow := NewFlow(testOffer(), flowNow)
		require.NoError(t, flow.OpenBooking())
		fillPassenger(t, flow, 0)
		fillPassenger(t, flow, 1)

		_, _, err := flow.Submit(validator, "BK-1", flowNow, noPersist)
		require.NoError(t, err)

		_, _, err = flow.Submit(validator, "BK-2", flowNow, noPersist)
		assert.ErrorIs(t, err, ErrWrongState)
		assert.ErrorIs(t, flow.UpdatePassenger(0, map[string]string{passenger.FieldFirstName: "B"}), ErrWrongState)
	})
}

func TestFlow_TravelerFallbacks(t *testing.T) {
	raw := testOffer()
	raw.TravelerPricings = nil

	flow := NewFlow(raw, flowNow)

	assert.Equal(t, 1, flow.TravelerCount())
	assert.Equal(t, "ADULT", flow.TravelerType(0))
	assert.Equal(t, "ADULT", flow.TravelerType(5))
}

func TestIDGenerator_Unique(t *testing.T) {
	fixed := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	generator := NewIDGenerator(func() time.Time { return fixed })

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := generator.Next()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	flow := NewFlow(testOffer(), flowNow)

	registry.Add(flow)

	got, ok := registry.Get(flow.ID)
	require.True(t, ok)
	assert.Same(t, flow, got)

	found, err := registry.WithFlow(flow.ID, func(f *Flow) error {
		return f.OpenBooking()
	})
	require.True(t, found)
	require.NoError(t, err)
	assert.Equal(t, StateBooking, flow.State())

	registry.Remove(flow.ID)
	_, ok = registry.Get(flow.ID)
	assert.False(t, ok)

	found, _ = registry.WithFlow(flow.ID, func(*Flow) error { return nil })
	assert.False(t, found)
}
