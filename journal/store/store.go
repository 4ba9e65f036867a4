// Package store holds journal.Repository implementations.
package store

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rustyeddy/tradedash/journal"
)

// ErrNotFound is returned when a lookup by ID has no match.
var ErrNotFound = errors.New("not found")

// Repository is a journal.Repository that owns resources.
type Repository interface {
	journal.Repository
	io.Closer
}

// Open returns the repository for kind: "json" (path is a file), "sqlite"
// (path is a database file), "postgres" (dsn) or "memory".
func Open(kind, path, dsn string) (Repository, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "json", "":
		return NewKVRepository(NewFileKV(path), EntriesKey), nil
	case "sqlite":
		return NewSQLite(path)
	case "postgres":
		return OpenPostgres(dsn)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store type %q", kind)
	}
}
