// Package weather provides an adapter for the OpenWeatherMap current
// conditions API. Only the short textual description is surfaced; everything
// else in the payload is context the gateway does not use.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/moodtune-labs/moodtune/backend/internal/core/ports"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ ports.WeatherProvider = (*Client)(nil)

// NewClient constructs a weather client. baseURL may be empty outside tests.
func NewClient(apiKey, baseURL string) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// CurrentConditions fetches the current weather description for a coordinate
// pair, e.g. "light rain".
func (c *Client) CurrentConditions(ctx context.Context, lat, lon float64) (string, error) {
	weatherURL, err := url.Parse(c.baseURL + "/weather")
	if err != nil {
		return "", fmt.Errorf("weather adapter: invalid url: %w", err)
	}

	q := weatherURL.Query()
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	weatherURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, weatherURL.String(), nil)
	if err != nil {
		return "", fmt.Errorf("weather adapter: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("weather adapter: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("weather adapter: status %d", resp.StatusCode)
	}

	var body struct {
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("weather adapter: decode response: %w", err)
	}

	if len(body.Weather) == 0 || body.Weather[0].Description == "" {
		return "", fmt.Errorf("weather adapter: no conditions in response")
	}

	return body.Weather[0].Description, nil
}
