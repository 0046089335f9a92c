package providers

import (
	"log"

	"github.com/kelvins/geocoder"

	"github.com/weatherly-app/weatherly/internal/weather"
)

// GeocoderFallback resolves a query through the Google geocoding API when
// the primary provider finds no candidates. It is best-effort: any failure
// yields "no match" rather than an error, matching the lenient search
// contract.
type GeocoderFallback struct {
	apiKey string
}

func NewGeocoderFallback(apiKey string) *GeocoderFallback {
	return &GeocoderFallback{apiKey: apiKey}
}

func (g *GeocoderFallback) Resolve(query string) (weather.SearchResultItem, bool) {
	if g.apiKey == "" {
		return weather.SearchResultItem{}, false
	}

	geocoder.ApiKey = g.apiKey

	location, err := geocoder.Geocoding(geocoder.Address{City: query})
	if err != nil {
		log.Printf("geocoder fallback failed for %q: %v", query, err)
		return weather.SearchResultItem{}, false
	}

	return weather.SearchResultItem{
		Name: query,
		Lat:  location.Latitude,
		Lon:  location.Longitude,
	}, true
}
