package mem

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/goserg/foodlog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSet(t *testing.T) {
	c := New(time.Minute)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "apple")
	require.NoError(t, err)
	assert.False(t, ok)

	want := []domain.SearchResult{{ID: 1, Title: "Apple pie", Image: "pie.jpg"}}
	require.NoError(t, c.Set(ctx, "apple", want))

	got, ok, err := c.Get(ctx, "apple")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestCache_Expiry(t *testing.T) {
	now := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	c := New(time.Minute)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "apple", []domain.SearchResult{{ID: 1}}))
	now = now.Add(59 * time.Second)
	_, ok, _ := c.Get(ctx, "apple")
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok, _ = c.Get(ctx, "apple")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "pear", nil))
	assert.Equal(t, 1, c.size())
}

func TestCache_Concurrent(t *testing.T) {
	c := New(time.Minute)
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = c.Set(ctx, "q", []domain.SearchResult{{ID: i}})
			_, _, _ = c.Get(ctx, "q")
		}(i)
	}
	wg.Wait()
	_, ok, _ := c.Get(ctx, "q")
	assert.True(t, ok)
}
