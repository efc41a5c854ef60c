// Package vpic is a thin client for the NHTSA vPIC vehicle API.
package vpic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public vPIC endpoint.
const DefaultBaseURL = "https://vpic.nhtsa.dot.gov"

// Record is a single decoded VIN result. vPIC returns every field as a
// string; absent values come back as "", "NULL" or "Not Applicable".
type Record struct {
	ModelYear              string `json:"ModelYear"`
	Make                   string `json:"Make"`
	Model                  string `json:"Model"`
	Trim                   string `json:"Trim"`
	DriveType              string `json:"DriveType"`
	BrakeSystemType        string `json:"BrakeSystemType"`
	DisplacementL          string `json:"DisplacementL"`
	EngineCylinders        string `json:"EngineCylinders"`
	EngineModel            string `json:"EngineModel"`
	PlantCountry           string `json:"PlantCountry"`
	BodyClass              string `json:"BodyClass"`
	TireSize               string `json:"TireSize"`
	WheelSizeFront         string `json:"WheelSizeFront"`
	TransmissionStyle      string `json:"TransmissionStyle"`
	TransmissionDescriptor string `json:"TransmissionDescriptor"`
	Doors                  string `json:"Doors"`
	Seats                  string `json:"Seats"`
	FuelTypePrimary        string `json:"FuelTypePrimary"`
	VehicleType            string `json:"VehicleType"`
}

// Decoder decodes a VIN into a vehicle record.
type Decoder interface {
	Decode(ctx context.Context, vin string) (*Record, error)
}

// Client calls the vPIC DecodeVinValuesExtended endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a vPIC client. An empty baseURL uses the public endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Decode issues one lookup for the given VIN and returns the first result.
// Not retried.
func (c *Client) Decode(ctx context.Context, vin string) (*Record, error) {
	u := fmt.Sprintf("%s/api/vehicles/DecodeVinValuesExtended/%s?format=json",
		c.baseURL, url.PathEscape(vin))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vpic: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Results []Record `json:"Results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("vpic: malformed response: %w", err)
	}
	if len(body.Results) == 0 {
		return nil, fmt.Errorf("vpic: empty result set for %s", vin)
	}

	return &body.Results[0], nil
}
