// Package redis stores search results in Redis so that several server
// instances share one cache.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goserg/foodlog/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "foodlog:search:"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

func (c *Cache) Get(ctx context.Context, query string) ([]domain.SearchResult, bool, error) {
	data, err := c.client.Get(ctx, keyPrefix+query).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	var results []domain.SearchResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, false, fmt.Errorf("cache unmarshal: %w", err)
	}
	return results, true, nil
}

func (c *Cache) Set(ctx context.Context, query string, results []domain.SearchResult) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+query, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
