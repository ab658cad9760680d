// Package places is the pass-through proxy to the Google Maps APIs:
// locality autocomplete for search and geocoding for place details.
// Provider responses are relayed to callers verbatim.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"roam-backend/internal/domain"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// Client calls the provider. BaseURL is a field so tests can point the
// client at a local server.
type Client struct {
	BaseURL string

	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a provider client. upstreamRPS bounds how fast the
// backend hits the billed provider endpoints, independent of the per-caller
// limiting done in the HTTP layer.
func NewClient(apiKey string, upstreamRPS float64) *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(upstreamRPS), int(upstreamRPS)+1),
	}
}

// Search proxies the Place Autocomplete API restricted to localities.
func (c *Client) Search(ctx context.Context, text string) (json.RawMessage, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: text", domain.ErrMissingField)
	}

	query := url.Values{}
	query.Set("types", "locality")
	query.Set("input", text)
	return c.get(ctx, "/place/autocomplete/json", query)
}

// Info proxies the Geocoding API for a single place id.
func (c *Client) Info(ctx context.Context, placeID string) (json.RawMessage, error) {
	if placeID == "" {
		return nil, fmt.Errorf("%w: place_id", domain.ErrMissingField)
	}

	query := url.Values{}
	query.Set("place_id", placeID)
	return c.get(ctx, "/geocode/json", query)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query.Set("key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build provider request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	return json.RawMessage(body), nil
}
