package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// WeatherAPIKey is the upstream forecast/search credential. Requests
	// needing it fail with a server-misconfigured error when unset.
	WeatherAPIKey string

	// GeocoderAPIKey enables the Google geocoding search fallback.
	// Optional; empty disables the fallback.
	GeocoderAPIKey string

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration

	// SearchCacheTTL is how long a cached search result stays fresh.
	SearchCacheTTL time.Duration

	// SearchCacheSweep is the interval of the background purge job.
	SearchCacheSweep time.Duration

	// SQLitePath locates the preferences database.
	SQLitePath string

	// OfflineMode serves deterministic generated forecasts for catalog
	// cities instead of calling the upstream. Demo/development only.
	OfflineMode bool

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.WeatherAPIKey = os.Getenv("WEATHERAPI_API_KEY")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	timeout, err := parseDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	ttl, err := parseDuration("SEARCH_CACHE_TTL", "10m")
	if err != nil {
		return nil, err
	}
	cfg.SearchCacheTTL = ttl

	sweep, err := parseDuration("SEARCH_CACHE_SWEEP", "1m")
	if err != nil {
		return nil, err
	}
	cfg.SearchCacheSweep = sweep

	cfg.SQLitePath = getenvDefault("SQLITE_PATH", "data/weatherly.db")
	cfg.OfflineMode = getenvBool("OFFLINE_MODE", false)
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func parseDuration(key, def string) (time.Duration, error) {
	raw := getenvDefault(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
