package kvstore

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/pocketauth/internal/common"
)

// Store is a durable string-keyed byte store. Get returns (nil, nil) for an
// absent key; Delete of an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// UpdateFunc receives the current value (nil if absent) and returns the value
// to store. Returning an error aborts the update without writing; the error
// is passed back to the caller of Update unchanged.
//
// Backends with optimistic concurrency may call fn more than once.
type UpdateFunc func(current []byte) ([]byte, error)

// Updater is implemented by stores that can read-modify-write a key
// atomically.
type Updater interface {
	Update(ctx context.Context, key string, fn UpdateFunc) error
}

// Backend is what Open hands out.
type Backend interface {
	Store
	Updater
	io.Closer
}

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Options select and configure a backend for Open.
type Options struct {
	Driver string

	// SQLitePath is a file path or a modernc.org/sqlite DSN.
	SQLitePath string

	RedisURL    string
	RedisPrefix string
}

// Open creates the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (Backend, error) {
	switch opts.Driver {
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverSQLite:
		return OpenSQLite(ctx, opts.SQLitePath)
	case DriverRedis:
		return OpenRedis(ctx, opts.RedisURL, opts.RedisPrefix)
	}
	return nil, fmt.Errorf("%w: %q", common.ErrUnknownStoreDriver, opts.Driver)
}
