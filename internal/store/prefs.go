package store

import (
	"encoding/json"
	"fmt"

	"github.com/weatherly-app/weatherly/internal/weather"
)

// Storage keys. Kept stable so existing user data survives upgrades.
const (
	keyRecent    = "weatherly_recent"
	keyFavorites = "weatherly_favorites"
	keyLastCity  = "weatherly_last_active"
)

// maxRecent bounds the recent-search list; most recent first.
const maxRecent = 6

// Prefs manages the user's recent searches, favorites and last-active
// city on top of the Storage port. Lists are de-duplicated by city name
// only; two places sharing a name collide. This mirrors the persisted
// data's historical identity rule.
type Prefs struct {
	storage Storage
}

func NewPrefs(storage Storage) *Prefs {
	return &Prefs{storage: storage}
}

func (p *Prefs) loadCities(key string) []weather.City {
	raw, err := p.storage.Load(key)
	if err != nil {
		return []weather.City{}
	}
	var cities []weather.City
	if err := json.Unmarshal(raw, &cities); err != nil {
		// Corrupt stored state degrades to empty rather than erroring.
		return []weather.City{}
	}
	if cities == nil {
		cities = []weather.City{}
	}
	return cities
}

func (p *Prefs) saveCities(key string, cities []weather.City) error {
	raw, err := json.Marshal(cities)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return p.storage.Save(key, raw)
}

// RecentSearches returns the recent-search list, most recent first.
func (p *Prefs) RecentSearches() []weather.City {
	return p.loadCities(keyRecent)
}

// AddRecent moves (or inserts) a city to the front of the recent list and
// trims it to the bound.
func (p *Prefs) AddRecent(city weather.City) ([]weather.City, error) {
	recent := p.loadCities(keyRecent)

	updated := make([]weather.City, 0, len(recent)+1)
	updated = append(updated, city)
	for _, c := range recent {
		if c.Name == city.Name {
			continue
		}
		updated = append(updated, c)
	}
	if len(updated) > maxRecent {
		updated = updated[:maxRecent]
	}

	if err := p.saveCities(keyRecent, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveRecent drops a city from the recent list by name.
func (p *Prefs) RemoveRecent(name string) ([]weather.City, error) {
	recent := p.loadCities(keyRecent)

	updated := make([]weather.City, 0, len(recent))
	for _, c := range recent {
		if c.Name == name {
			continue
		}
		updated = append(updated, c)
	}

	if err := p.saveCities(keyRecent, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Favorites returns the favorites list.
func (p *Prefs) Favorites() []weather.City {
	return p.loadCities(keyFavorites)
}

// ToggleFavorite removes the city when already present, else prepends it.
func (p *Prefs) ToggleFavorite(city weather.City) ([]weather.City, error) {
	favorites := p.loadCities(keyFavorites)

	exists := false
	for _, c := range favorites {
		if c.Name == city.Name {
			exists = true
			break
		}
	}

	var updated []weather.City
	if exists {
		updated = make([]weather.City, 0, len(favorites))
		for _, c := range favorites {
			if c.Name == city.Name {
				continue
			}
			updated = append(updated, c)
		}
	} else {
		updated = append([]weather.City{city}, favorites...)
	}

	if err := p.saveCities(keyFavorites, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// LastCity returns the last-active city, or false when none was saved.
func (p *Prefs) LastCity() (weather.City, bool) {
	raw, err := p.storage.Load(keyLastCity)
	if err != nil {
		return weather.City{}, false
	}
	var city weather.City
	if err := json.Unmarshal(raw, &city); err != nil {
		return weather.City{}, false
	}
	return city, true
}

// SaveLastCity overwrites the last-active city.
func (p *Prefs) SaveLastCity(city weather.City) error {
	raw, err := json.Marshal(city)
	if err != nil {
		return fmt.Errorf("marshal last city: %w", err)
	}
	return p.storage.Save(keyLastCity, raw)
}
