package store

import (
	"encoding/json"
	"testing"

	"github.com/weatherly-app/weatherly/internal/weather"
)

func seedCities(t *testing.T, storage Storage, key string, names ...string) {
	t.Helper()
	cities := make([]weather.City, 0, len(names))
	for _, n := range names {
		cities = append(cities, weather.City{Name: n})
	}
	raw, err := json.Marshal(cities)
	if err != nil {
		t.Fatalf("marshal seed: %v", err)
	}
	if err := storage.Save(key, raw); err != nil {
		t.Fatalf("save seed: %v", err)
	}
}

func names(cities []weather.City) []string {
	out := make([]string, 0, len(cities))
	for _, c := range cities {
		out = append(out, c.Name)
	}
	return out
}

func equalNames(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAddRecentDropsOldestAtCapacity(t *testing.T) {
	storage := NewMemoryStorage()
	seedCities(t, storage, keyRecent, "A", "B", "C", "D", "E", "F")

	prefs := NewPrefs(storage)
	updated, err := prefs.AddRecent(weather.City{Name: "G"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"G", "A", "B", "C", "D", "E"}
	if !equalNames(names(updated), want) {
		t.Errorf("recent = %v, want %v", names(updated), want)
	}
}

func TestAddRecentMovesDuplicateToFront(t *testing.T) {
	storage := NewMemoryStorage()
	seedCities(t, storage, keyRecent, "A", "B", "C")

	prefs := NewPrefs(storage)
	updated, err := prefs.AddRecent(weather.City{Name: "B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"B", "A", "C"}
	if !equalNames(names(updated), want) {
		t.Errorf("recent = %v, want %v", names(updated), want)
	}
}

func TestRemoveRecent(t *testing.T) {
	storage := NewMemoryStorage()
	seedCities(t, storage, keyRecent, "A", "B", "C")

	prefs := NewPrefs(storage)
	updated, err := prefs.RemoveRecent("B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"A", "C"}
	if !equalNames(names(updated), want) {
		t.Errorf("recent = %v, want %v", names(updated), want)
	}
}

func TestToggleFavoriteAddsWhenAbsent(t *testing.T) {
	storage := NewMemoryStorage()
	seedCities(t, storage, keyFavorites, "A")

	prefs := NewPrefs(storage)
	updated, err := prefs.ToggleFavorite(weather.City{Name: "B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"B", "A"}
	if !equalNames(names(updated), want) {
		t.Errorf("favorites = %v, want %v", names(updated), want)
	}
}

func TestToggleFavoriteRemovesWhenPresent(t *testing.T) {
	storage := NewMemoryStorage()
	seedCities(t, storage, keyFavorites, "A", "B")

	prefs := NewPrefs(storage)
	updated, err := prefs.ToggleFavorite(weather.City{Name: "A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"B"}
	if !equalNames(names(updated), want) {
		t.Errorf("favorites = %v, want %v", names(updated), want)
	}
}

func TestLastCityOverwrite(t *testing.T) {
	prefs := NewPrefs(NewMemoryStorage())

	if _, ok := prefs.LastCity(); ok {
		t.Fatal("expected no last city initially")
	}

	if err := prefs.SaveLastCity(weather.City{Name: "Paris"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := prefs.SaveLastCity(weather.City{Name: "Oslo"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	city, ok := prefs.LastCity()
	if !ok || city.Name != "Oslo" {
		t.Errorf("last city = %+v, want Oslo", city)
	}
}

func TestCorruptStateDegradesToEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	if err := storage.Save(keyRecent, []byte("{not json")); err != nil {
		t.Fatalf("save: %v", err)
	}

	prefs := NewPrefs(storage)
	if got := prefs.RecentSearches(); len(got) != 0 {
		t.Errorf("recent = %v, want empty for corrupt state", got)
	}
}

func TestMemoryStorageRoundTrip(t *testing.T) {
	storage := NewMemoryStorage()

	if _, err := storage.Load("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := storage.Save("k", []byte("v1")); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := storage.Load("k")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "v1" {
		t.Errorf("loaded %q, want v1", got)
	}
}
