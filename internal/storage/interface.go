package storage

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when no record exists under a key
	ErrNotFound = errors.New("record not found")
	// ErrNotInitialized is returned when the backing database has not been created yet
	ErrNotInitialized = errors.New("storage not initialized")
	// ErrEmbeddedCredentials is returned for a PostgreSQL URL that carries a password
	ErrEmbeddedCredentials = errors.New("connection string must not embed credentials")
)

// Provider is a string-keyed record store. Values are JSON documents
// written whole on every Put.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Records
	Get(key string) (string, error)
	Put(key, value string) error
	Delete(key string) error
	// Keys returns every stored key that starts with prefix, sorted ascending.
	Keys(prefix string) ([]string, error)

	// Utils
	GetConfigPath() string
}

// IsPostgres reports whether config names a PostgreSQL connection rather
// than a SQLite file path.
func IsPostgres(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}
