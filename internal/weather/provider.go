package weather

import (
	"context"
	"errors"
)

// ErrMissingCredential is returned by providers when no API key is
// configured. It surfaces to callers as a server misconfiguration.
var ErrMissingCredential = errors.New("weather provider api key is not configured")

// Provider abstracts the upstream weather service.
type Provider interface {
	Name() string
	// FetchForecast requests a multi-day forecast for a free-text or
	// "lat,lon" query. A non-2xx upstream response comes back as *Error
	// with the upstream's status code and message.
	FetchForecast(ctx context.Context, query string, days int) (*APIForecastResponse, error)
	// SearchLocations resolves a partial place name to candidates.
	SearchLocations(ctx context.Context, query string) ([]SearchResultItem, error)
}

// SearchFallback resolves a query to a single candidate when the primary
// provider finds nothing. Implementations may hit a geocoding service.
type SearchFallback interface {
	Resolve(query string) (SearchResultItem, bool)
}
