// Package amadeus is the client for the upstream flight and location
// search APIs, including OAuth2 token acquisition.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Bekaronn/jetly/internal/pkg/exception"
)

// expirySafetyMargin is subtracted from the provider's expires_in so a
// token is refreshed before it can expire mid-request.
const expirySafetyMargin = 300 * time.Second

// TokenSource yields a valid bearer token and can be told to drop the
// cached one.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Invalidate()
}

// TokenCache is an explicitly owned client-credentials token cache. It is
// injected into the API client rather than living as ambient state, and
// refreshes transparently once the cached token passes its expiry.
type TokenCache struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	now          func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewTokenCache(baseURL, clientID, clientSecret string, timeout time.Duration) *TokenCache {
	return &TokenCache{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: timeout},
		now:          time.Now,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Token returns the cached token, fetching a fresh one when the cache is
// empty or past its safety-margin expiry. Rejected credentials fail the
// caller.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expiresAt) {
		return c.token, nil
	}

	token, expiresIn, err := c.fetch(ctx)
	if err != nil {
		return "", err
	}

	c.token = token
	c.expiresAt = c.now().Add(time.Duration(expiresIn)*time.Second - expirySafetyMargin)

	return c.token, nil
}

// Invalidate drops the cached token so the next Token call re-authenticates.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	c.expiresAt = time.Time{}
}

func (c *TokenCache) fetch(ctx context.Context) (string, int, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", 0, exception.ApplicationError{
			StatusCode: http.StatusBadGateway,
			Message:    fmt.Sprintf("token request rejected with status %d: %s", resp.StatusCode, body),
		}
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", 0, fmt.Errorf("decode token response: %w", err)
	}

	if token.AccessToken == "" {
		return "", 0, exception.ApplicationError{
			StatusCode: http.StatusBadGateway,
			Message:    "token response carried no access token",
		}
	}

	return token.AccessToken, token.ExpiresIn, nil
}
