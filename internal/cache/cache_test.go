package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := New("redis://"+mr.Addr(), ttl, logrus.New())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "k", entry{Name: "Lisboa", Value: 548703})

	var got entry
	require.True(t, c.Get(ctx, "k", &got))
	assert.Equal(t, entry{Name: "Lisboa", Value: 548703}, got)
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	var got entry
	assert.False(t, c.Get(context.Background(), "missing", &got))
}

func TestCache_EntryExpires(t *testing.T) {
	c, mr := newTestCache(t, 30*time.Minute)
	ctx := context.Background()

	c.Set(ctx, "k", entry{Name: "Porto"})
	mr.FastForward(31 * time.Minute)

	var got entry
	assert.False(t, c.Get(ctx, "k", &got))
}

func TestCache_DisabledWithoutRedis(t *testing.T) {
	c, err := New("", time.Minute, logrus.New())
	require.NoError(t, err)
	assert.False(t, c.Enabled())

	ctx := context.Background()
	c.Set(ctx, "k", entry{Name: "noop"})

	var got entry
	assert.False(t, c.Get(ctx, "k", &got))
	assert.NoError(t, c.Close())
}

func TestCache_CorruptEntryIsMiss(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	mr.Set("k", "not json")

	var got entry
	assert.False(t, c.Get(context.Background(), "k", &got))
}

func TestNew_BadURL(t *testing.T) {
	_, err := New("not-a-url", time.Minute, logrus.New())
	assert.Error(t, err)
}
