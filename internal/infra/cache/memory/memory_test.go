package memory

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache() *Cache {
	return New(log.New(io.Discard, "", 0))
}

func TestSetGetDel(t *testing.T) {
	c := newTestCache()
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "movie:x")
	require.NoError(t, err)
	assert.False(t, ok, "empty cache must miss")

	require.NoError(t, c.Set(ctx, "movie:x", []byte(`{"title":"Heat"}`), 0))

	b, ok, err := c.Get(ctx, "movie:x")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"title":"Heat"}`, string(b))

	require.NoError(t, c.Del(ctx, "movie:x", "movies:list"))

	_, ok, err = c.Get(ctx, "movie:x")
	require.NoError(t, err)
	assert.False(t, ok, "deleted key must miss")
}

func TestSetCopiesValue(t *testing.T) {
	c := newTestCache()
	ctx := context.Background()

	buf := []byte("before")
	require.NoError(t, c.Set(ctx, "k", buf, 0))
	copy(buf, "mutate")

	b, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "before", string(b), "cache must not alias the caller's buffer")
}

func TestOverwrite(t *testing.T) {
	c := newTestCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("one"), 0))
	require.NoError(t, c.Set(ctx, "k", []byte("two"), 0))

	b, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "two", string(b))
}
