package mem

import (
	"context"
	"sync"
	"time"

	"github.com/goserg/foodlog/internal/domain"
)

type entry struct {
	results []domain.SearchResult
	expires time.Time
}

// Cache keeps search results in process memory until their ttl runs out.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	results map[string]entry
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		results: make(map[string]entry),
	}
}

func (c *Cache) Get(_ context.Context, query string) ([]domain.SearchResult, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.results[query]
	if !ok || !c.now().Before(e.expires) {
		return nil, false, nil
	}
	return e.results, true, nil
}

func (c *Cache) Set(_ context.Context, query string, results []domain.SearchResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.evictExpired()
	c.results[query] = entry{
		results: results,
		expires: c.now().Add(c.ttl),
	}
	return nil
}

// evictExpired must be called with mu held.
func (c *Cache) evictExpired() {
	now := c.now()
	for k, e := range c.results {
		if !now.Before(e.expires) {
			delete(c.results, k)
		}
	}
}

func (c *Cache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}
