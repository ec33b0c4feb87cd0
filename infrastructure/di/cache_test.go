package di

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCache()

	require.NoError(t, cache.Set(ctx, "k1", "v1", 30))

	value, found := cache.Get(ctx, "k1")
	assert.True(t, found)
	assert.Equal(t, "v1", value)

	_, found = cache.Get(ctx, "missing")
	assert.False(t, found)
}

func TestInMemoryCache_ExpiredEntriesAreMisses(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCache()

	require.NoError(t, cache.Set(ctx, "k1", "v1", 0))
	time.Sleep(time.Millisecond)

	_, found := cache.Get(ctx, "k1")
	assert.False(t, found)
}

func TestInMemoryCache_InvalidateByPrefix(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCache()

	require.NoError(t, cache.Set(ctx, "queries.GetTemplateQuery:{TemplateID:a}", 1, 30))
	require.NoError(t, cache.Set(ctx, "queries.GetTemplateQuery:{TemplateID:b}", 2, 30))
	require.NoError(t, cache.Set(ctx, "queries.ListTemplatesQuery:{OwnerID:o}", 3, 30))

	cache.Invalidate(ctx, "queries.GetTemplateQuery:{TemplateID:a")

	_, found := cache.Get(ctx, "queries.GetTemplateQuery:{TemplateID:a}")
	assert.False(t, found)
	_, found = cache.Get(ctx, "queries.GetTemplateQuery:{TemplateID:b}")
	assert.True(t, found)

	cache.Invalidate(ctx, "queries.ListTemplatesQuery:")
	_, found = cache.Get(ctx, "queries.ListTemplatesQuery:{OwnerID:o}")
	assert.False(t, found)
}
