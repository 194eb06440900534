package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

func newTestCache(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisWithClient(client, nil), srv
}

func TestRedis_SetGetRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	in := payload{Name: "frontend intern", Score: 0.88}
	require.NoError(t, c.SetJSON(ctx, "match:test", in, time.Minute))

	var out payload
	hit, err := c.GetJSON(ctx, "match:test", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, in, out)
}

func TestRedis_GetMissingKey(t *testing.T) {
	c, _ := newTestCache(t)

	var out payload
	hit, err := c.GetJSON(context.Background(), "match:absent", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedis_SetAppliesTTL(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "match:ttl", payload{Name: "x"}, time.Minute))
	assert.Equal(t, time.Minute, srv.TTL("match:ttl"))

	// Non-positive TTL falls back to the 60s default instead of
	// persisting forever.
	require.NoError(t, c.SetJSON(ctx, "match:default-ttl", payload{Name: "y"}, 0))
	assert.Equal(t, 60*time.Second, srv.TTL("match:default-ttl"))
}

func TestRedis_ExpiredKeyMisses(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "match:expiring", payload{Name: "x"}, time.Second))
	srv.FastForward(2 * time.Second)

	var out payload
	hit, err := c.GetJSON(ctx, "match:expiring", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedis_Delete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "match:gone", payload{Name: "x"}, time.Minute))
	require.NoError(t, c.Delete(ctx, "match:gone"))

	var out payload
	hit, err := c.GetJSON(ctx, "match:gone", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedis_BypassWhenUnavailable(t *testing.T) {
	c := NewRedisWithClient(nil, nil)
	ctx := context.Background()

	assert.NoError(t, c.SetJSON(ctx, "k", payload{Name: "x"}, time.Minute))

	var out payload
	hit, err := c.GetJSON(ctx, "k", &out)
	assert.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, c.Delete(ctx, "k"))
	assert.Error(t, c.Ping(ctx))
}
