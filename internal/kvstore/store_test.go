package kvstore

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/dmitrijs2005/pocketauth/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract exercises the behaviour every Backend must share.
func runContract(t *testing.T, newStore func(t *testing.T) Backend) {
	t.Run("get absent returns nil nil", func(t *testing.T) {
		s := newStore(t)
		v, err := s.Get(context.Background(), "absent")
		require.NoError(t, err)
		require.Nil(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Set(ctx, "@users", []byte(`[]`)))

		v, err := s.Get(ctx, "@users")
		require.NoError(t, err)
		require.Equal(t, []byte(`[]`), v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Set(ctx, "k", []byte("old")))
		require.NoError(t, s.Set(ctx, "k", []byte("new")))

		v, err := s.Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, []byte("new"), v)
	})

	t.Run("delete removes and is idempotent", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Set(ctx, "x", []byte{1}))
		require.NoError(t, s.Delete(ctx, "x"))

		v, err := s.Get(ctx, "x")
		require.NoError(t, err)
		require.Nil(t, v)

		require.NoError(t, s.Delete(ctx, "x"))
		require.NoError(t, s.Delete(ctx, "never-existed"))
	})

	t.Run("update sees nil for absent key", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		var seen []byte
		called := false
		err := s.Update(ctx, "fresh", func(cur []byte) ([]byte, error) {
			called = true
			seen = cur
			return []byte("init"), nil
		})
		require.NoError(t, err)
		require.True(t, called)
		require.Nil(t, seen)

		v, err := s.Get(ctx, "fresh")
		require.NoError(t, err)
		require.Equal(t, []byte("init"), v)
	})

	t.Run("update error aborts write", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Set(ctx, "k", []byte("keep")))

		err := s.Update(ctx, "k", func(cur []byte) ([]byte, error) {
			require.Equal(t, []byte("keep"), cur)
			return []byte("discard"), common.ErrEmailTaken
		})
		require.ErrorIs(t, err, common.ErrEmailTaken)

		v, err := s.Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, []byte("keep"), v)
	})

	t.Run("concurrent updates do not lose writes", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		const n = 10

		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- s.Update(ctx, "counter", func(cur []byte) ([]byte, error) {
					c := 0
					if cur != nil {
						var err error
						if c, err = strconv.Atoi(string(cur)); err != nil {
							return nil, err
						}
					}
					return []byte(strconv.Itoa(c + 1)), nil
				})
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		v, err := s.Get(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(n), string(v))
	})
}

func TestMemoryStore_Contract(t *testing.T) {
	runContract(t, func(t *testing.T) Backend { return NewMemoryStore() })
}

func TestMemoryStore_ValuesAreCopied(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'X'

	out, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), out)

	out[0] = 'Y'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), again)
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Get(ctx, "k")
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, s.Set(ctx, "k", nil), context.Canceled)
	require.ErrorIs(t, s.Delete(ctx, "k"), context.Canceled)
	require.ErrorIs(t, s.Update(ctx, "k", func([]byte) ([]byte, error) { return nil, nil }), context.Canceled)
}

func TestOpen_Memory(t *testing.T) {
	b, err := Open(context.Background(), Options{Driver: DriverMemory})
	require.NoError(t, err)
	require.IsType(t, &MemoryStore{}, b)
	require.NoError(t, b.Close())
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Options{Driver: "etcd"})
	require.Error(t, err)
	require.True(t, errors.Is(err, common.ErrUnknownStoreDriver))
	require.Contains(t, err.Error(), `"etcd"`)
}
