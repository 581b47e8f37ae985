package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Bekaronn/jetly/internal/pkg/exception"
	"github.com/Bekaronn/jetly/internal/pkg/offer"
	"github.com/go-redis/redis_rate/v10"
)

// Fixed search parameters appended to every flight search.
const (
	searchResultCap = "50"
	searchNonStop   = "false"
)

var ErrRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "provider rate limit exceeded",
}

// Location is one city or airport entry from the reference-data API.
type Location struct {
	ID       string   `json:"id"`
	IATACode string   `json:"iataCode"`
	Name     string   `json:"name"`
	SubType  string   `json:"subType"`
	Address  *Address `json:"address,omitempty"`
}

type Address struct {
	CityName    string `json:"cityName,omitempty"`
	CountryName string `json:"countryName,omitempty"`
}

// SearchParams are the flight search parameters. Zero-valued optional
// fields are omitted from the outgoing query entirely.
type SearchParams struct {
	OriginLocationCode      string
	DestinationLocationCode string
	DepartureDate           string
	ReturnDate              string
	Adults                  int
	Children                int
	Infants                 int
	TravelClass             string
}

type ClientConfig struct {
	BaseURL      string
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
}

// Client calls the upstream search APIs with an injected token source and
// an optional outbound rate limit.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	tokens       TokenSource
	limiter      *redis_rate.Limiter
	rateLimitRPS int
}

func NewClient(cfg ClientConfig, tokens TokenSource) *Client {
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		tokens:       tokens,
		limiter:      cfg.Limiter,
		rateLimitRPS: cfg.RateLimitRPS,
	}
}

// FetchLocations queries cities and airports matching keyword. An empty
// keyword short-circuits to an empty result without a network call.
func (c *Client) FetchLocations(ctx context.Context, keyword string) ([]Location, error) {
	if keyword == "" {
		return []Location{}, nil
	}

	query := url.Values{}
	query.Set("subType", "CITY,AIRPORT")
	query.Set("keyword", keyword)
	query.Set("page[limit]", "8")
	query.Set("view", "LIGHT")

	var response struct {
		Data []Location `json:"data"`
	}

	if err := c.get(ctx, "/v1/reference-data/locations", query, &response); err != nil {
		return nil, fmt.Errorf("fetch locations: %w", err)
	}

	return response.Data, nil
}

// SearchFlights runs one flight-offers search. The result cap and the
// non-stop flag are always appended; empty optional parameters are
// omitted. A non-success status surfaces as a failure carrying the
// upstream status code and body text.
func (c *Client) SearchFlights(ctx context.Context, params SearchParams) (offer.SearchResponse, error) {
	query := buildSearchQuery(params)

	var response offer.SearchResponse
	if err := c.get(ctx, "/v2/shopping/flight-offers", query, &response); err != nil {
		return offer.SearchResponse{}, fmt.Errorf("search flights: %w", err)
	}

	return response, nil
}

func buildSearchQuery(params SearchParams) url.Values {
	query := url.Values{}

	setNonEmpty := func(key, value string) {
		if value != "" {
			query.Set(key, value)
		}
	}

	setNonEmpty("originLocationCode", params.OriginLocationCode)
	setNonEmpty("destinationLocationCode", params.DestinationLocationCode)
	setNonEmpty("departureDate", params.DepartureDate)
	setNonEmpty("returnDate", params.ReturnDate)
	setNonEmpty("travelClass", params.TravelClass)

	if params.Adults > 0 {
		query.Set("adults", strconv.Itoa(params.Adults))
	}
	if params.Children > 0 {
		query.Set("children", strconv.Itoa(params.Children))
	}
	if params.Infants > 0 {
		query.Set("infants", strconv.Itoa(params.Infants))
	}

	query.Set("max", searchResultCap)
	query.Set("nonStop", searchNonStop)

	return query
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if err := c.allow(ctx); err != nil {
		return err
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("acquire token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.amadeus+json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadGateway,
			Message:    "provider unreachable",
			Cause:      err,
		}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		// the cached token is no longer honored; the caller's retry will
		// re-authenticate
		c.tokens.Invalidate()
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return exception.ApplicationError{
			StatusCode: http.StatusBadGateway,
			Message:    fmt.Sprintf("provider responded with status %d: %s", resp.StatusCode, body),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}

	return nil
}

func (c *Client) allow(ctx context.Context) error {
	if c.limiter == nil || c.rateLimitRPS <= 0 {
		return nil
	}

	res, err := c.limiter.Allow(ctx, "limit:amadeus", redis_rate.PerSecond(c.rateLimitRPS))
	if err != nil {
		return fmt.Errorf("rate limit check: %w", err)
	}

	if res.Allowed == 0 {
		return ErrRateLimitExceeded
	}

	return nil
}
