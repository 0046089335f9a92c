package store

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	storage, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer storage.Close()

	if _, err := storage.Load("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := storage.Save("k", []byte(`[{"name":"Helsinki"}]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := storage.Save("k", []byte(`[{"name":"Oslo"}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := storage.Load("k")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `[{"name":"Oslo"}]` {
		t.Errorf("loaded %s, want the overwritten value", got)
	}
}

func TestSQLiteStorageSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	storage, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := storage.Save("k", []byte("v")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := storage.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Load("k")
	if err != nil {
		t.Fatalf("load after reopen: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("loaded %q, want v", got)
	}
}
