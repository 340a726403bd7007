package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasapolrittideah/streamhub-api/shared/cache"
)

type suggestion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newCaches(t *testing.T) map[string]cache.Cache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return map[string]cache.Cache{
		"redis":  cache.NewRedisCache(client),
		"memory": cache.NewMemoryCache(time.Minute, time.Minute),
	}
}

func TestCache_SetGet(t *testing.T) {
	for name, c := range newCaches(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			want := []suggestion{{ID: "1", Name: "Dark Waters"}}
			require.NoError(t, c.Set(ctx, "catalog:suggestions:dark", want, time.Minute))

			var got []suggestion
			found, err := c.Get(ctx, "catalog:suggestions:dark", &got)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, want, got)

			found, err = c.Get(ctx, "catalog:suggestions:missing", &got)
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestCache_DeletePrefix(t *testing.T) {
	for name, c := range newCaches(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, c.Set(ctx, "catalog:genres", []string{"Drama"}, time.Minute))
			require.NoError(t, c.Set(ctx, "catalog:suggestions:a", []string{"A"}, time.Minute))
			require.NoError(t, c.Set(ctx, "session:keep", "x", time.Minute))

			require.NoError(t, c.DeletePrefix(ctx, "catalog:"))

			var out any
			found, err := c.Get(ctx, "catalog:genres", &out)
			require.NoError(t, err)
			assert.False(t, found)

			found, err = c.Get(ctx, "session:keep", &out)
			require.NoError(t, err)
			assert.True(t, found)
		})
	}
}
