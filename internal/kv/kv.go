// Package kv is the opaque key-value persistence used by the finance store.
package kv

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Get for a key that was never written.
var ErrNotFound = errors.New("key not found")

// Store reads and writes whole values by key.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Open returns the store for backend rooted at path. The returned closer
// must be closed when the store is no longer used.
func Open(backend, path string) (Store, io.Closer, error) {
	switch backend {
	case BackendMemory:
		return NewMemory(), nopCloser{}, nil
	case BackendJSON, "":
		return NewDir(path), nopCloser{}, nil
	case BackendSQLite:
		db, err := OpenSQLite(filepath.Join(path, "tally.db"))
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func checkKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
