package store

import "errors"

// ErrNotFound is returned when a key has never been saved.
var ErrNotFound = errors.New("no value stored for key")

// Storage is the durable key-value port behind user preferences. The
// domain layer never touches a concrete backend directly; tests use the
// in-memory implementation, production uses SQLite.
type Storage interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}
