package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/weatherly-app/weatherly/internal/weather"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *WeatherAPIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p := NewWeatherAPIProvider(&http.Client{Timeout: 2 * time.Second}, "test-key")
	p.SetBaseURL(server.URL)
	return p
}

func TestFetchForecastRequestShape(t *testing.T) {
	var gotQuery map[string]string

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"key":    q.Get("key"),
			"q":      q.Get("q"),
			"days":   q.Get("days"),
			"aqi":    q.Get("aqi"),
			"alerts": q.Get("alerts"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"location":{"name":"Helsinki"},"current":{},"forecast":{"forecastday":[]}}`))
	})

	resp, err := p.FetchForecast(context.Background(), "Helsinki", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Location.Name != "Helsinki" {
		t.Errorf("location = %q", resp.Location.Name)
	}

	want := map[string]string{
		"key": "test-key", "q": "Helsinki", "days": "7", "aqi": "yes", "alerts": "no",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query param %s = %q, want %q", k, gotQuery[k], v)
		}
	}
}

func TestFetchForecastUpstreamErrorEnvelope(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
	})

	_, err := p.FetchForecast(context.Background(), "xyzzy", 7)

	var werr *weather.Error
	if !errors.As(err, &werr) {
		t.Fatalf("expected *weather.Error, got %v", err)
	}
	if werr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", werr.Status)
	}
	if werr.Message != "No matching location found." {
		t.Errorf("message = %q, want the upstream message", werr.Message)
	}
}

func TestFetchForecastUnparseableErrorBody(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream fell over"))
	})

	_, err := p.FetchForecast(context.Background(), "Helsinki", 7)

	var werr *weather.Error
	if !errors.As(err, &werr) {
		t.Fatalf("expected *weather.Error, got %v", err)
	}
	if werr.Status != http.StatusBadGateway || werr.Message != "weather provider error" {
		t.Errorf("got %+v, want generic provider error with status 502", werr)
	}
}

func TestFetchForecastMissingKey(t *testing.T) {
	p := NewWeatherAPIProvider(&http.Client{}, "")

	_, err := p.FetchForecast(context.Background(), "Helsinki", 7)
	if !errors.Is(err, weather.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}

func TestSearchLocations(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":12345,"name":"Helsinki","region":"Uusimaa","country":"Finland","lat":60.17,"lon":24.94},
			{"id":67890,"name":"Helsingborg","region":"Skane","country":"Sweden","lat":56.05,"lon":12.7}
		]`))
	})

	results, err := p.SearchLocations(context.Background(), "Helsin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].ID != 12345 || results[0].Name != "Helsinki" || results[0].Lat != 60.17 {
		t.Errorf("first result = %+v", results[0])
	}
}

func TestSearchLocationsUpstreamFailure(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := p.SearchLocations(context.Background(), "Helsin"); err == nil {
		t.Fatal("expected an error for a failing upstream")
	}
}

func TestSearchLocationsMissingKey(t *testing.T) {
	p := NewWeatherAPIProvider(&http.Client{}, "")

	_, err := p.SearchLocations(context.Background(), "Helsin")
	if !errors.Is(err, weather.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}

func TestGeocoderFallbackDisabledWithoutKey(t *testing.T) {
	fallback := NewGeocoderFallback("")
	if _, ok := fallback.Resolve("Helsinki"); ok {
		t.Fatal("fallback without a key should never resolve")
	}
}
