package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Bekaronn/jetly/internal/app/dto"
	"github.com/Bekaronn/jetly/internal/pkg/booking"
	"github.com/Bekaronn/jetly/internal/pkg/exception"
	"github.com/Bekaronn/jetly/internal/pkg/passenger"
	"github.com/Bekaronn/jetly/internal/pkg/ticket"
)

type BookingStore interface {
	List(ctx context.Context) ([]booking.Booking, error)
	Append(ctx context.Context, record booking.Booking) error
}

// BookingService orchestrates the booking wizard: flow sessions, passenger
// data collection, validation-gated ticket issuance and persistence.
type BookingService struct {
	Flows     *booking.Registry
	Store     BookingStore
	Validator *passenger.Validator
	IDs       *booking.IDGenerator
	Tickets   *ticket.Generator
	Now       func() time.Time
}

func NewBookingService(
	store BookingStore,
	validator *passenger.Validator,
	tickets *ticket.Generator,
) *BookingService {
	return &BookingService{
		Flows:     booking.NewRegistry(),
		Store:     store,
		Validator: validator,
		IDs:       booking.NewIDGenerator(time.Now),
		Tickets:   tickets,
		Now:       time.Now,
	}
}

// CreateFlow opens a wizard at the details step for one offer.
func (s *BookingService) CreateFlow(
	ctx context.Context,
	req dto.CreateFlowRequest,
) (dto.FlowResponse, error) {
	flow := booking.NewFlow(req.Offer, s.Now())
	s.Flows.Add(flow)

	slog.DebugContext(ctx, "booking flow opened",
		slog.String("flow_id", flow.ID),
		slog.String("offer_id", req.Offer.ID))

	return flowResponse(flow), nil
}

// OpenBooking advances details -> booking and creates the empty passenger
// entries.
func (s *BookingService) OpenBooking(
	_ context.Context,
	req dto.FlowRequest,
) (dto.FlowResponse, error) {
	var response dto.FlowResponse

	found, err := s.Flows.WithFlow(req.FlowID, func(flow *booking.Flow) error {
		if err := flow.OpenBooking(); err != nil {
			return illegalTransition(err)
		}

		response = flowResponse(flow)

		return nil
	})
	if !found {
		return dto.FlowResponse{}, ErrFlowNotFound
	}

	return response, err
}

// UpdatePassenger merges field values into one traveler's entry.
func (s *BookingService) UpdatePassenger(
	_ context.Context,
	req dto.UpdatePassengerRequest,
) (dto.FlowResponse, error) {
	var response dto.FlowResponse

	found, err := s.Flows.WithFlow(req.FlowID, func(flow *booking.Flow) error {
		if err := flow.UpdatePassenger(req.PassengerIndex, req.Fields); err != nil {
			if errors.Is(err, booking.ErrWrongState) {
				return illegalTransition(err)
			}

			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    err.Error(),
			}
		}

		response = flowResponse(flow)

		return nil
	})
	if !found {
		return dto.FlowResponse{}, ErrFlowNotFound
	}

	return response, err
}

// SubmitFlow validates the full passenger set and, on success, persists
// exactly one new booking and reaches the terminal ticket state. On a
// validation failure the flow stays at the booking step and the persisted
// list is untouched.
func (s *BookingService) SubmitFlow(
	ctx context.Context,
	req dto.FlowRequest,
) (dto.TicketResponse, error) {
	var response dto.TicketResponse

	found, err := s.Flows.WithFlow(req.FlowID, func(flow *booking.Flow) error {
		record, result, err := flow.Submit(s.Validator, s.IDs.Next(), s.Now(),
			func(record booking.Booking) error {
				return s.Store.Append(ctx, record)
			})
		if err != nil {
			if errors.Is(err, booking.ErrWrongState) {
				return illegalTransition(err)
			}

			return err
		}

		if !result.Valid() {
			return validationError(flow, result)
		}

		slog.InfoContext(ctx, "booking issued",
			slog.String("flow_id", flow.ID),
			slog.String("booking_id", record.ID))

		response = dto.TicketResponse{
			FlowID:          flow.ID,
			State:           flow.State(),
			Booking:         record,
			TicketReference: s.Tickets.Reference(record.ID),
		}

		return nil
	})
	if !found {
		return dto.TicketResponse{}, ErrFlowNotFound
	}

	return response, err
}

// CloseFlow discards the session and any unsubmitted passenger data.
func (s *BookingService) CloseFlow(_ context.Context, req dto.FlowRequest) error {
	s.Flows.Remove(req.FlowID)

	return nil
}

// ListBookings returns every persisted booking in insertion order.
func (s *BookingService) ListBookings(ctx context.Context) (dto.ListBookingsResponse, error) {
	bookings, err := s.Store.List(ctx)
	if err != nil {
		return dto.ListBookingsResponse{}, fmt.Errorf("list bookings: %w", err)
	}

	return dto.ListBookingsResponse{Bookings: bookings}, nil
}

// TicketCode renders the scannable display code of one issued booking.
func (s *BookingService) TicketCode(
	ctx context.Context,
	req dto.TicketCodeRequest,
) (dto.TicketCodeResponse, error) {
	bookings, err := s.Store.List(ctx)
	if err != nil {
		return dto.TicketCodeResponse{}, fmt.Errorf("list bookings: %w", err)
	}

	for _, record := range bookings {
		if record.ID != req.BookingID {
			continue
		}

		image, err := s.Tickets.Code(record.ID)
		if err != nil {
			return dto.TicketCodeResponse{}, fmt.Errorf("render ticket code: %w", err)
		}

		return dto.TicketCodeResponse{Image: image}, nil
	}

	return dto.TicketCodeResponse{}, ErrBookingNotFound
}

func flowResponse(flow *booking.Flow) dto.FlowResponse {
	return dto.FlowResponse{
		FlowID:        flow.ID,
		OfferID:       flow.Offer.ID,
		State:         flow.State(),
		TravelerCount: flow.TravelerCount(),
	}
}

func illegalTransition(err error) error {
	return exception.ApplicationError{
		StatusCode: http.StatusConflict,
		Message:    err.Error(),
	}
}

func validationError(flow *booking.Flow, result passenger.Result) error {
	first, _ := result.First()

	return exception.ValidationError{
		StatusCode: http.StatusUnprocessableEntity,
		Message: fmt.Sprintf("passenger %d (%s) is incomplete: %s",
			first.PassengerIndex, flow.TravelerType(first.PassengerIndex), first.Reason),
		Violations: result.Violations,
	}
}
