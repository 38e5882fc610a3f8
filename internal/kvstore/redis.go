package kvstore

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// maxUpdateRetries bounds optimistic retries of RedisStore.Update when the
// watched key changes under it.
const maxUpdateRetries = 50

var ErrUpdateContention = errors.New("update aborted after repeated conflicts")

// RedisStore is a Backend over a Redis server, shared by every process that
// uses the same key prefix.
type RedisStore struct {
	rdb    *goredis.Client
	prefix string
}

// NewRedisStore wraps an existing client. Keys are stored as prefix+key.
func NewRedisStore(rdb *goredis.Client, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

// OpenRedis connects to the Redis server at url (e.g. "redis://localhost:6379/0")
// and verifies the connection.
func OpenRedis(ctx context.Context, url, prefix string) (*RedisStore, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	rdb := goredis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return NewRedisStore(rdb, prefix), nil
}

func (s *RedisStore) fullKey(key string) string {
	return s.prefix + key
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.rdb.Get(ctx, s.fullKey(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return v, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if err := s.rdb.Set(ctx, s.fullKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.fullKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

// Update uses WATCH/MULTI/EXEC; fn is re-run when another client modified
// the key between the read and the write.
func (s *RedisStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	rk := s.fullKey(key)

	txf := func(tx *goredis.Tx) error {
		current, err := tx.Get(ctx, rk).Bytes()
		if errors.Is(err, goredis.Nil) {
			current = nil
		} else if err != nil {
			return fmt.Errorf("failed to get kv[%s]: %w", key, err)
		}

		next, err := fn(current)
		if err != nil {
			return err
		}
		if next == nil {
			next = []byte{}
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, rk, next, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := s.rdb.Watch(ctx, txf, rk)
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("update kv[%s]: %w", key, ErrUpdateContention)
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
