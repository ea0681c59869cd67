package prices

import (
	"testing"
	"time"

	redistesting "github.com/DjordjeVuckovic/news-digest/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache(t *testing.T) {
	ctx := t.Context()
	rc := redistesting.NewRedisContainer(ctx, t)

	cache, err := NewRedisCache(ctx, RedisConfig{Addr: rc.Addr})
	require.NoError(t, err)
	defer cache.Close()

	_, ok, err := cache.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", []byte(`{"a":1}`), time.Minute))
	got, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	_, err := NewRedisCache(t.Context(), RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
