package bus

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testQuery struct {
	ID string
}

func (q testQuery) Validate() error {
	if q.ID == "" {
		return errors.New("id is required")
	}
	return nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]interface{}
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]interface{})}
}

func (c *fakeCache) Get(ctx context.Context, key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	return value, ok
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	c.sets++
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context, prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.entries, key)
		}
	}
}

func TestQueryBus_AskDispatchesAndReturnsResult(t *testing.T) {
	bus := NewQueryBus()

	require.NoError(t, bus.Register(testQuery{}, QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		return "result-" + query.(testQuery).ID, nil
	})))

	result, err := bus.Ask(context.Background(), testQuery{ID: "42"})
	require.NoError(t, err)
	assert.Equal(t, "result-42", result)
}

func TestQueryBus_AskValidatesFirst(t *testing.T) {
	bus := NewQueryBus()
	require.NoError(t, bus.Register(testQuery{}, QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		t.Fatal("handler must not run for invalid queries")
		return nil, nil
	})))

	_, err := bus.Ask(context.Background(), testQuery{})
	assert.Error(t, err)
}

func TestQueryBus_AskUnregisteredType(t *testing.T) {
	bus := NewQueryBus()

	_, err := bus.Ask(context.Background(), testQuery{ID: "42"})
	assert.Error(t, err)
}

func TestCachingMiddleware_ServesSecondAskFromCache(t *testing.T) {
	cache := newFakeCache()
	middleware := NewCachingMiddleware(cache, 30)

	calls := 0
	handler := middleware.Wrap(QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		calls++
		return "fresh", nil
	}))

	first, err := handler.Handle(context.Background(), testQuery{ID: "42"})
	require.NoError(t, err)
	second, err := handler.Handle(context.Background(), testQuery{ID: "42"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "second ask is a cache hit")
}

func TestCachingMiddleware_DistinctQueriesGetDistinctKeys(t *testing.T) {
	cache := newFakeCache()
	middleware := NewCachingMiddleware(cache, 30)

	handler := middleware.Wrap(QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		return query.(testQuery).ID, nil
	}))

	a, err := handler.Handle(context.Background(), testQuery{ID: "a"})
	require.NoError(t, err)
	b, err := handler.Handle(context.Background(), testQuery{ID: "b"})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, cache.sets)
}

func TestCachingMiddleware_ErrorsAreNotCached(t *testing.T) {
	cache := newFakeCache()
	middleware := NewCachingMiddleware(cache, 30)

	calls := 0
	handler := middleware.Wrap(QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient")
		}
		return "recovered", nil
	}))

	_, err := handler.Handle(context.Background(), testQuery{ID: "42"})
	require.Error(t, err)

	result, err := handler.Handle(context.Background(), testQuery{ID: "42"})
	require.NoError(t, err)
	assert.Equal(t, "recovered", result)
}

func TestCachingMiddleware_InvalidationByPrefix(t *testing.T) {
	cache := newFakeCache()
	middleware := NewCachingMiddleware(cache, 30)

	calls := 0
	handler := middleware.Wrap(QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		calls++
		return calls, nil
	}))

	_, err := handler.Handle(context.Background(), testQuery{ID: "42"})
	require.NoError(t, err)

	cache.Invalidate(context.Background(), "bus.testQuery:{ID:42")

	result, err := handler.Handle(context.Background(), testQuery{ID: "42"})
	require.NoError(t, err)
	assert.Equal(t, 2, result, "invalidated entry forces a re-ask")
}
