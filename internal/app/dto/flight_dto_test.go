//go:build unit

package dto

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Bekaronn/jetly/internal/pkg/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := InitValidator(); err != nil {
		panic(err)
	}

	m.Run()
}

func validSearch() SearchFlightsRequest {
	return SearchFlightsRequest{
		OriginLocationCode:      "ALA",
		DestinationLocationCode: "IST",
		DepartureDate:           "2026-10-05",
		Adults:                  2,
	}
}

func TestSearchFlightsRequest_Validate(t *testing.T) {
	t.Run("minimal_request_passes", func(t *testing.T) {
		req := validSearch()

		assert.NoError(t, req.Validate())
	})

	t.Run("full_request_passes", func(t *testing.T) {
		req := validSearch()
		req.ReturnDate = "2026-10-12"
		req.Children = 1
		req.Infants = 2
		req.TravelClass = "BUSINESS"

		assert.NoError(t, req.Validate())
	})

	t.Run("infants_exceeding_adults_is_rejected", func(t *testing.T) {
		req := validSearch()
		req.Infants = 3

		err := req.Validate()

		var appErr exception.ApplicationError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
		assert.Contains(t, appErr.Message, "infants must not exceed adults")
	})

	t.Run("bad_airport_code_is_rejected", func(t *testing.T) {
		req := validSearch()
		req.OriginLocationCode = "AL1"

		assert.Error(t, req.Validate())
	})

	t.Run("zero_adults_is_rejected", func(t *testing.T) {
		req := validSearch()
		req.Adults = 0

		assert.Error(t, req.Validate())
	})

	t.Run("bad_date_format_is_rejected", func(t *testing.T) {
		req := validSearch()
		req.DepartureDate = "05.10.2026"

		assert.Error(t, req.Validate())
	})

	t.Run("unknown_travel_class_is_rejected", func(t *testing.T) {
		req := validSearch()
		req.TravelClass = "CARGO"

		assert.Error(t, req.Validate())
	})
}

func TestSearchFlightsRequest_Bind(t *testing.T) {
	body := `{"origin_location_code":"ALA","destination_location_code":"IST",` +
		`"departure_date":"2026-10-05","adults":1}`

	r := httptest.NewRequest(http.MethodPost, "/api/v1/flights/search", strings.NewReader(body))
	r.Header.Set(HeaderClientKey, "client-a")

	req := validSearch()
	require.NoError(t, req.Bind(r))
	assert.Equal(t, "client-a", req.ClientKey)
}

func TestSearchLocationsRequest_Bind(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/locations?keyword=Lon", nil)

	var req SearchLocationsRequest
	require.NoError(t, req.Bind(r))
	assert.Equal(t, "Lon", req.Keyword)
}
