package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetRoundTrip(t *testing.T) {
	c := New(true)

	etag := c.Set("character:eu:ysondre:moussman", []byte(`{"name":"Moussman"}`), time.Minute)
	require.NotEmpty(t, etag)

	data, gotETag, ok := c.Get("character:eu:ysondre:moussman")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"name":"Moussman"}`), data)
	assert.Equal(t, etag, gotETag)
}

func TestGetMissing(t *testing.T) {
	c := New(true)
	_, _, ok := c.Get("character:eu:ysondre:unknownhero")
	assert.False(t, ok)
}

func TestEntryExpires(t *testing.T) {
	c := New(true)
	c.Set("key", []byte("value"), 10*time.Millisecond)

	time.Sleep(25 * time.Millisecond)
	_, _, ok := c.Get("key")
	assert.False(t, ok, "expired entries must read as misses before eviction runs")
}

func TestNegativeEntry(t *testing.T) {
	c := New(true)
	c.SetNegative("character:eu:ysondre:unknownhero", time.Minute)

	data, etag, ok := c.Get("character:eu:ysondre:unknownhero")
	require.True(t, ok, "negative entries are found")
	assert.Nil(t, data)
	assert.Empty(t, etag)
}

func TestNegativeEntryExpires(t *testing.T) {
	c := New(true)
	c.SetNegative("key", 10*time.Millisecond)

	time.Sleep(25 * time.Millisecond)
	_, _, ok := c.Get("key")
	assert.False(t, ok)
}

func TestDisabledCacheIsNoOp(t *testing.T) {
	c := New(false)

	etag := c.Set("key", []byte("value"), time.Minute)
	assert.NotEmpty(t, etag, "a disabled cache still computes ETags")
	c.SetNegative("neg", time.Minute)

	_, _, ok := c.Get("key")
	assert.False(t, ok)
	_, _, ok = c.Get("neg")
	assert.False(t, ok)
}

func TestEvictRemovesExpired(t *testing.T) {
	c := New(true)
	c.Set("fresh", []byte("a"), time.Minute)
	c.Set("stale", []byte("b"), 5*time.Millisecond)
	time.Sleep(15 * time.Millisecond)

	c.evict()

	stats := c.Stats()
	assert.Equal(t, 1, stats["total_keys"])
	assert.Equal(t, 1, stats["active_keys"])
}

func TestComputeETagStable(t *testing.T) {
	a := ComputeETag([]byte("payload"))
	b := ComputeETag([]byte("payload"))
	other := ComputeETag([]byte("different"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, other)
	assert.Contains(t, a, `W/"`)
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("payload"))

	assert.True(t, CheckETagMatch(etag, etag))
	assert.True(t, CheckETagMatch("*", etag))
	assert.False(t, CheckETagMatch("", etag))
	assert.False(t, CheckETagMatch(`W/"bogus"`, etag))
}
