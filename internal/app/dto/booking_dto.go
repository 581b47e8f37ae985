package dto

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Bekaronn/jetly/internal/pkg/booking"
	"github.com/Bekaronn/jetly/internal/pkg/exception"
	"github.com/Bekaronn/jetly/internal/pkg/offer"
	"github.com/go-chi/chi/v5"
)

// CreateFlowRequest opens a booking wizard over one offer as it was
// returned by the search response.
type CreateFlowRequest struct {
	Offer offer.Offer `json:"offer"`
}

func (c *CreateFlowRequest) Bind(_ *http.Request) error {
	if c.Offer.ID == "" {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "offer id is required",
		}
	}

	return nil
}

// FlowResponse is the wizard's externally visible state.
type FlowResponse struct {
	FlowID        string        `json:"flow_id"`
	OfferID       string        `json:"offer_id"`
	State         booking.State `json:"state"`
	TravelerCount int           `json:"traveler_count"`
}

// FlowRequest addresses one flow by path variable.
type FlowRequest struct {
	FlowID string `json:"-"`
}

func (f *FlowRequest) Bind(r *http.Request) error {
	f.FlowID = chi.URLParam(r, "flowID")
	if f.FlowID == "" {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "flow id is required",
		}
	}

	return nil
}

// UpdatePassengerRequest merges field values into one traveler's entry.
type UpdatePassengerRequest struct {
	Fields map[string]string `json:"fields"`

	FlowID         string `json:"-"`
	PassengerIndex int    `json:"-"`
}

func (u *UpdatePassengerRequest) Bind(r *http.Request) error {
	u.FlowID = chi.URLParam(r, "flowID")
	if u.FlowID == "" {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "flow id is required",
		}
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("invalid passenger index: %s", chi.URLParam(r, "index")),
		}
	}
	u.PassengerIndex = index

	if len(u.Fields) == 0 {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "at least one field is required",
		}
	}

	return nil
}

// TicketResponse is returned once a submit succeeds: the persisted record
// plus the reference its display code encodes.
type TicketResponse struct {
	FlowID          string          `json:"flow_id"`
	State           booking.State   `json:"state"`
	Booking         booking.Booking `json:"booking"`
	TicketReference string          `json:"ticket_reference"`
}

// ListBookingsRequest has no parameters; the whole list is returned.
type ListBookingsRequest struct{}

type ListBookingsResponse struct {
	Bookings []booking.Booking `json:"bookings"`
}

// TicketCodeRequest addresses one issued booking by id.
type TicketCodeRequest struct {
	BookingID string `json:"-"`
}

func (t *TicketCodeRequest) Bind(r *http.Request) error {
	t.BookingID = chi.URLParam(r, "bookingID")
	if t.BookingID == "" {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "booking id is required",
		}
	}

	return nil
}

// TicketCodeResponse carries the rendered display code.
type TicketCodeResponse struct {
	Image []byte `json:"-"`
}

// PNG implements the image response encoder contract.
func (t TicketCodeResponse) PNG() []byte {
	return t.Image
}
