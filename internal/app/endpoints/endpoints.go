package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bekaronn/jetly/internal/app/dto"
	"github.com/go-kit/kit/endpoint"
)

type SearchService interface {
	SearchFlights(ctx context.Context, req dto.SearchFlightsRequest) (dto.SearchFlightsResponse, error)
}

type LocationService interface {
	SearchLocations(ctx context.Context, req dto.SearchLocationsRequest) (dto.SearchLocationsResponse, error)
}

type BookingService interface {
	CreateFlow(ctx context.Context, req dto.CreateFlowRequest) (dto.FlowResponse, error)
	OpenBooking(ctx context.Context, req dto.FlowRequest) (dto.FlowResponse, error)
	UpdatePassenger(ctx context.Context, req dto.UpdatePassengerRequest) (dto.FlowResponse, error)
	SubmitFlow(ctx context.Context, req dto.FlowRequest) (dto.TicketResponse, error)
	CloseFlow(ctx context.Context, req dto.FlowRequest) error
	ListBookings(ctx context.Context) (dto.ListBookingsResponse, error)
	TicketCode(ctx context.Context, req dto.TicketCodeRequest) (dto.TicketCodeResponse, error)
}

type Endpoints struct {
	SearchFlights   endpoint.Endpoint
	SearchLocations endpoint.Endpoint
	CreateFlow      endpoint.Endpoint
	OpenBooking     endpoint.Endpoint
	UpdatePassenger endpoint.Endpoint
	SubmitFlow      endpoint.Endpoint
	CloseFlow       endpoint.Endpoint
	ListBookings    endpoint.Endpoint
	TicketCode      endpoint.Endpoint
}

func MakeEndpoints(search SearchService, locations LocationService, bookings BookingService) Endpoints {
	return Endpoints{
		SearchFlights:   makeSearchFlightsEndpoint(search),
		SearchLocations: makeSearchLocationsEndpoint(locations),
		CreateFlow:      makeCreateFlowEndpoint(bookings),
		OpenBooking:     makeOpenBookingEndpoint(bookings),
		UpdatePassenger: makeUpdatePassengerEndpoint(bookings),
		SubmitFlow:      makeSubmitFlowEndpoint(bookings),
		CloseFlow:       makeCloseFlowEndpoint(bookings),
		ListBookings:    makeListBookingsEndpoint(bookings),
		TicketCode:      makeTicketCodeEndpoint(bookings),
	}
}

func makeSearchFlightsEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchFlightsRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SearchFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return response, nil
	}
}

func makeSearchLocationsEndpoint(service LocationService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchLocationsRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SearchLocations(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("location service: %w", err)
		}

		return response, nil
	}
}

func makeCreateFlowEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.CreateFlowRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.CreateFlow(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeOpenBookingEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FlowRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.OpenBooking(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeUpdatePassengerEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.UpdatePassengerRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.UpdatePassenger(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeSubmitFlowEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FlowRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SubmitFlow(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeCloseFlowEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FlowRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		if err := service.CloseFlow(ctx, *request); err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return dto.Response{Message: "flow closed"}, nil
	}
}

func makeListBookingsEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		response, err := service.ListBookings(ctx)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeTicketCodeEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.TicketCodeRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.TicketCode(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}
