// Package geoip resolves a client IP to a country code, best effort.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public ipapi endpoint.
const DefaultBaseURL = "https://ipapi.co"

// Locator looks up the country code for an IP address.
type Locator interface {
	CountryCode(ctx context.Context, ip string) (string, error)
}

// Client calls the ipapi country lookup.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a geoip client. An empty baseURL uses the public endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// CountryCode returns the ISO country code for the given IP. Callers treat
// any error as "use the default locale" — nothing here is fatal.
func (c *Client) CountryCode(ctx context.Context, ip string) (string, error) {
	u := fmt.Sprintf("%s/%s/json/", c.baseURL, url.PathEscape(ip))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geoip: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		CountryCode string `json:"country_code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("geoip: malformed response: %w", err)
	}
	if body.CountryCode == "" {
		return "", fmt.Errorf("geoip: no country code for %s", ip)
	}

	return body.CountryCode, nil
}
