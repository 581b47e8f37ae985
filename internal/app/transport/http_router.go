package transport

import (
	"log/slog"
	"net/http"

	"github.com/Bekaronn/jetly/internal/app/config"
	"github.com/Bekaronn/jetly/internal/app/dto"
	"github.com/Bekaronn/jetly/internal/app/endpoints"
	httptransport "github.com/Bekaronn/jetly/internal/pkg/transport/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(cfg.HTTP.AllowedOrigins),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Get("/locations", httptransport.MakeHandlerFunc(
			endpts.SearchLocations,
			httptransport.DecodeRequest[dto.SearchLocationsRequest],
			httptransport.ResponseWithBody,
		))

		router.Post("/flights/search", httptransport.MakeHandlerFunc(
			endpts.SearchFlights,
			httptransport.DecodeRequest[dto.SearchFlightsRequest],
			httptransport.ResponseWithBody,
		))

		router.Route("/bookings", func(router chi.Router) {
			router.Get("/", httptransport.MakeHandlerFunc(
				endpts.ListBookings,
				httptransport.DecodeRequest[dto.ListBookingsRequest],
				httptransport.ResponseWithBody,
			))

			router.Get("/{bookingID}/code", httptransport.MakeHandlerFunc(
				endpts.TicketCode,
				httptransport.DecodeRequest[dto.TicketCodeRequest],
				httptransport.ImagePNGResponse,
			))

			router.Post("/flows", httptransport.MakeHandlerFunc(
				endpts.CreateFlow,
				httptransport.DecodeRequest[dto.CreateFlowRequest],
				httptransport.CreatedResponseWithBody,
			))

			router.Route("/flows/{flowID}", func(router chi.Router) {
				router.Post("/booking", httptransport.MakeHandlerFunc(
					endpts.OpenBooking,
					httptransport.DecodeRequest[dto.FlowRequest],
					httptransport.ResponseWithBody,
				))

				router.Patch("/passengers/{index}", httptransport.MakeHandlerFunc(
					endpts.UpdatePassenger,
					httptransport.DecodeRequest[dto.UpdatePassengerRequest],
					httptransport.ResponseWithBody,
				))

				router.Post("/submit", httptransport.MakeHandlerFunc(
					endpts.SubmitFlow,
					httptransport.DecodeRequest[dto.FlowRequest],
					httptransport.CreatedResponseWithBody,
				))

				router.Delete("/", httptransport.MakeHandlerFunc(
					endpts.CloseFlow,
					httptransport.DecodeRequest[dto.FlowRequest],
					httptransport.NoContentResponse,
				))
			})
		})
	})

	return router
}
