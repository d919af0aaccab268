// Package search proxies food searches to the Spoonacular API.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/goserg/foodlog/internal/domain"
	"github.com/goserg/foodlog/internal/normalize"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const searchPath = "/recipes/complexSearch"

type Cache interface {
	Get(ctx context.Context, query string) ([]domain.SearchResult, bool, error)
	Set(ctx context.Context, query string, results []domain.SearchResult) error
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	cfg   Config
	cache Cache
	log   *logrus.Entry
}

func New(l *logrus.Logger, cfg Config, cache Cache) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg:   cfg,
		cache: cache,
		log:   l.WithField("from", "search"),
	}
}

type providerResponse struct {
	Results []domain.SearchResult `json:"results"`
}

// Search returns provider results for query. Results are cached under the
// case-folded query; a failing cache only costs a provider round trip.
func (c *Client) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	key := normalize.Query(query)
	if key == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrValidation)
	}
	log := c.log.WithField("query", key)

	cached, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		log.WithError(err).Warn("search cache read failed")
	} else if ok {
		log.Debug("search cache hit")
		return cached, nil
	}

	results, err := c.fetch(ctx, normalize.Name(query))
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(ctx, key, results); err != nil {
		log.WithError(err).Warn("search cache write failed")
	}
	return results, nil
}

// fetch calls the provider. The fiber client takes no context, so ctx only
// bounds the request through its deadline.
func (c *Client) fetch(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	timeout := c.cfg.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); timeout <= 0 || left < timeout {
			timeout = left
		}
	}
	if timeout < 0 {
		return nil, context.DeadlineExceeded
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("apiKey", c.cfg.APIKey)

	a := fiber.Get(c.cfg.BaseURL + searchPath)
	a.QueryString(params.Encode())
	if timeout > 0 {
		a.Timeout(timeout)
	}
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return nil, fmt.Errorf("%w: search provider responded %d: %s", domain.ErrUpstream, code, body)
	}
	var resp providerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %v", domain.ErrUpstream, err)
	}
	if resp.Results == nil {
		resp.Results = []domain.SearchResult{}
	}
	return resp.Results, nil
}
