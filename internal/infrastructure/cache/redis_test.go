package cache

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_NilIsBypass(t *testing.T) {
	var r *Redis
	ctx := context.Background()

	var out map[string]int
	hit, err := r.GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, r.SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute))
	assert.NoError(t, r.Delete(ctx, "k"))
	assert.NoError(t, r.DeleteByPattern(ctx, "lmi:*"))
	assert.NoError(t, r.Close())
	assert.Error(t, r.Ping(ctx))

	ok, err := r.SetIfNotExists(ctx, "lock", "1", 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_WithoutClientIsBypass(t *testing.T) {
	r := NewRedisWithClient(nil, 0, zerolog.Nop())
	assert.Equal(t, defaultTTL, r.ttl)
	assert.False(t, r.Available())
	assert.False(t, (*Redis)(nil).Available())
	assert.False(t, (&Redis{}).Available())

	hit, err := r.GetJSON(context.Background(), "k", &struct{}{})
	require.NoError(t, err)
	assert.False(t, hit)
}
