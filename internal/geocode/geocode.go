// Package geocode resolves US ZIP codes into coordinates and a UTC offset
// through an OpenWeatherMap-compatible provider.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/atlasgrid/user-atlas/internal/model"
)

// Lookup resolves ZIP codes against an external provider.
type Lookup interface {
	// Resolve issues a single provider request for the ZIP code. The ZIP
	// format is validated upstream; whatever string arrives is forwarded.
	Resolve(ctx context.Context, zip string) (model.Location, error)
	// Validate wraps Resolve and downgrades every failure into the payload.
	Validate(ctx context.Context, zip string) model.ZipValidation
}

// Client calls the provider's current-weather endpoint. Stateless across calls.
type Client struct {
	http    *resty.Client
	apiKey  string
	country string
}

// NewClient creates a provider client. baseURL is the provider root, e.g.
// https://api.openweathermap.org.
func NewClient(baseURL, apiKey, country string) *Client {
	if country == "" {
		country = "us"
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)

	return &Client{http: c, apiKey: apiKey, country: country}
}

// weatherResponse is the slice of the provider payload we care about:
// coordinates plus the timezone shift in seconds from UTC.
type weatherResponse struct {
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Timezone int `json:"timezone"`
}

// Resolve implements Lookup. A single attempt, no retries.
func (c *Client) Resolve(ctx context.Context, zip string) (model.Location, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("zip", fmt.Sprintf("%s,%s", zip, c.country)).
		SetQueryParam("appid", c.apiKey).
		Get("/data/2.5/weather")
	if err != nil {
		return model.Location{}, LookupError{Zip: zip, Cause: err}
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return model.Location{}, NotFoundError{Zip: zip}
	case http.StatusUnauthorized:
		return model.Location{}, AuthError{}
	default:
		return model.Location{}, LookupError{Zip: zip, Cause: fmt.Errorf("provider status %d", resp.StatusCode())}
	}

	var wr weatherResponse
	if err := json.Unmarshal(resp.Body(), &wr); err != nil {
		return model.Location{}, LookupError{Zip: zip, Cause: fmt.Errorf("decode response: %w", err)}
	}

	return model.Location{
		Latitude:  wr.Coord.Lat,
		Longitude: wr.Coord.Lon,
		UTCOffset: FormatUTCOffset(wr.Timezone),
	}, nil
}

// Validate implements Lookup. It never returns an error; invalidity is
// encoded in the result.
func (c *Client) Validate(ctx context.Context, zip string) model.ZipValidation {
	loc, err := c.Resolve(ctx, zip)
	if err != nil {
		return model.ZipValidation{Valid: false, Message: err.Error()}
	}
	return model.ZipValidation{
		Valid:     true,
		Latitude:  &loc.Latitude,
		Longitude: &loc.Longitude,
		UTCOffset: loc.UTCOffset,
	}
}

// FormatUTCOffset converts a whole-hour offset in seconds east of UTC to the
// fixed-width form "UTC±HH:MM". Provider data arrives in whole hours; the
// minute component is always ":00".
func FormatUTCOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("UTC%s%02d:00", sign, seconds/3600)
}
