package weather

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode/utf8"
)

// SearchCache memoizes normalized search results per query.
// Implementations decide expiry; a nil cache disables memoization.
type SearchCache interface {
	Get(key string) ([]SearchResultItem, bool)
	Set(key string, results []SearchResultItem)
}

// minSearchLength is the shortest query worth an upstream round trip.
const minSearchLength = 2

// Service orchestrates the upstream provider, the search cache and the
// optional geocoding fallback. It holds no per-request state.
type Service struct {
	provider Provider
	cache    SearchCache
	fallback SearchFallback
}

// NewService creates a Service. cache and fallback may be nil.
func NewService(provider Provider, cache SearchCache, fallback SearchFallback) *Service {
	return &Service{
		provider: provider,
		cache:    cache,
		fallback: fallback,
	}
}

// GetForecast resolves a free-text or "lat,lon" query into the display
// view-model. Failures come back as *Error carrying the response status.
func (s *Service) GetForecast(ctx context.Context, query string) (*ViewModel, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errMissingParameter()
	}

	resp, err := s.provider.FetchForecast(ctx, query, forecastDays)
	if err != nil {
		if errors.Is(err, ErrMissingCredential) {
			log.Printf("forecast: %v", err)
			return nil, errServerMisconfigured()
		}
		var werr *Error
		if errors.As(err, &werr) {
			return nil, werr
		}
		log.Printf("forecast fetch failed for %q: %v", query, err)
		return nil, errFetchFailed()
	}

	if len(resp.Forecast.ForecastDay) == 0 {
		log.Printf("forecast: provider returned no days for %q", query)
		return nil, errFetchFailed()
	}

	return Normalize(resp), nil
}

// Search returns candidate locations for a partial place name. Upstream
// failures degrade to an empty list so a flaky autocomplete never turns
// into a visible error; only a missing credential surfaces.
func (s *Service) Search(ctx context.Context, query string) ([]SearchResultItem, error) {
	if utf8.RuneCountInString(query) < minSearchLength {
		return []SearchResultItem{}, nil
	}

	key := strings.ToLower(strings.TrimSpace(query))
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			return cached, nil
		}
	}

	results, err := s.provider.SearchLocations(ctx, query)
	if err != nil {
		if errors.Is(err, ErrMissingCredential) {
			log.Printf("search: %v", err)
			return nil, errServerMisconfigured()
		}
		log.Printf("search failed for %q: %v", query, err)
		return []SearchResultItem{}, nil
	}

	if len(results) == 0 && s.fallback != nil {
		if item, ok := s.fallback.Resolve(query); ok {
			results = []SearchResultItem{item}
		}
	}

	if results == nil {
		results = []SearchResultItem{}
	}

	if s.cache != nil {
		s.cache.Set(key, results)
	}
	return results, nil
}
