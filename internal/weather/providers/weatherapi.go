package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/weatherly-app/weatherly/internal/weather"
)

// WeatherAPIProvider implements weather.Provider against WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewWeatherAPIProvider(client *http.Client, apiKey string) *WeatherAPIProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weatherapi",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: "https://api.weatherapi.com/v1",
		client:  client,
		circuit: cb,
	}
}

// SetBaseURL points the provider at a different endpoint. Used by tests.
func (p *WeatherAPIProvider) SetBaseURL(u string) {
	p.baseURL = u
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

// FetchForecast requests a multi-day forecast with air quality data and no
// alerts. A non-2xx upstream status is mapped onto *weather.Error carrying
// the upstream's own message and status code.
func (p *WeatherAPIProvider) FetchForecast(ctx context.Context, query string, days int) (*weather.APIForecastResponse, error) {
	if p.apiKey == "" {
		return nil, weather.ErrMissingCredential
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	values.Set("q", query)
	values.Set("days", strconv.Itoa(days))
	values.Set("aqi", "yes")
	values.Set("alerts", "no")

	u := fmt.Sprintf("%s/forecast.json?%s", p.baseURL, values.Encode())

	resp, err := doRequest(ctx, p.client, p.circuit, u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, upstreamError(resp)
	}

	var payload weather.APIForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}
	return &payload, nil
}

// SearchLocations resolves a partial place name against the provider's
// search endpoint.
func (p *WeatherAPIProvider) SearchLocations(ctx context.Context, query string) ([]weather.SearchResultItem, error) {
	if p.apiKey == "" {
		return nil, weather.ErrMissingCredential
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	values.Set("q", query)

	u := fmt.Sprintf("%s/search.json?%s", p.baseURL, values.Encode())

	resp, err := doRequest(ctx, p.client, p.circuit, u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("search: unexpected status %d", resp.StatusCode)
	}

	var payload []struct {
		ID      int64   `json:"id"`
		Name    string  `json:"name"`
		Region  string  `json:"region"`
		Country string  `json:"country"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	results := make([]weather.SearchResultItem, 0, len(payload))
	for _, item := range payload {
		results = append(results, weather.SearchResultItem{
			ID:      item.ID,
			Name:    item.Name,
			Region:  item.Region,
			Country: item.Country,
			Lat:     item.Lat,
			Lon:     item.Lon,
		})
	}
	return results, nil
}

// upstreamError extracts WeatherAPI's error envelope, falling back to a
// generic message when the body is not parseable.
func upstreamError(resp *http.Response) *weather.Error {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	message := ""
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		message = payload.Error.Message
	}
	if message == "" {
		message = "weather provider error"
	}
	return &weather.Error{
		Kind:    weather.KindProviderError,
		Status:  resp.StatusCode,
		Message: message,
	}
}
