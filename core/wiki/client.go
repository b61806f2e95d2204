// ABOUTME: Shared client for the remote article sources
// ABOUTME: Handles outbound rate limiting, response caching, status checks, and JSON decoding

// Package wiki talks to the three remote sources of an article viewer: the
// wiki parse API, the wiki user query API, and the authorship-diff service.
package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	coreerrors "article-viewer-api/core/errors"
	"article-viewer-api/core/interfaces"
	"golang.org/x/time/rate"
)

const (
	// DefaultDiffServiceBase is the authorship-diff service used when none is configured.
	DefaultDiffServiceBase = "https://api.wikicolor.net"

	maxResponseBytes = 32 << 20
)

// Config holds settings for the remote sources
type Config struct {
	// DiffServiceBase is the base URL of the authorship-diff service
	DiffServiceBase string

	// CacheTTL is how long raw responses are cached; 0 disables caching
	CacheTTL time.Duration

	// RequestsPerSecond limits outbound requests; 0 means unlimited
	RequestsPerSecond float64

	// Burst is the limiter burst size
	Burst int
}

// Client fetches article inputs from the wiki and the authorship-diff service.
// It implements interfaces.ArticleSource.
type Client struct {
	deps    interfaces.Dependencies
	cfg     Config
	limiter *rate.Limiter
}

// NewClient creates a new source client
func NewClient(deps interfaces.Dependencies, cfg Config) *Client {
	if deps.Logger == nil {
		deps.Logger = interfaces.NopLogger{}
	}
	if cfg.DiffServiceBase == "" {
		cfg.DiffServiceBase = DefaultDiffServiceBase
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}

	return &Client{
		deps:    deps,
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, cfg.Burst),
	}
}

// response is a decoded source payload that can check its own shape
type response interface {
	validate(api string) error
}

// apiError is the error object MediaWiki returns with a 200 status
type apiError struct {
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// getJSON fetches url, decodes it into out and validates it. Valid bodies are
// cached under cacheKey and served from the cache on later calls.
func (c *Client) getJSON(ctx context.Context, api, cacheKey, url string, out response) error {
	if body, ok := c.cached(ctx, cacheKey); ok {
		if err := decode(api, body, out); err == nil {
			c.deps.Logger.Debug("Source response served from cache", map[string]interface{}{
				"api": api,
				"key": cacheKey,
			})
			return nil
		}
	}

	if c.deps.HTTPClient == nil {
		return fmt.Errorf("%s: no HTTP client configured", api)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return coreerrors.WrapError(err, api+": rate limiter")
	}

	start := time.Now()
	resp, err := c.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return coreerrors.WrapError(err, "failed to fetch "+api)
	}
	if resp == nil {
		return fmt.Errorf("failed to fetch %s: empty response", api)
	}
	body := resp.Body()
	if body != nil {
		defer body.Close()
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("unexpected status fetching %s", url),
			API:        api,
		}
	}
	if body == nil {
		return &coreerrors.MalformedResponseError{API: api, Field: "body"}
	}

	data, err := io.ReadAll(io.LimitReader(body, maxResponseBytes))
	if err != nil {
		return coreerrors.WrapError(err, "failed to read "+api+" response")
	}

	var apiErr apiError
	if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != nil {
		return &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    apiErr.Error.Code + ": " + apiErr.Error.Info,
			API:        api,
		}
	}

	if err := decode(api, data, out); err != nil {
		return err
	}

	c.deps.Logger.Debug("Source response fetched", map[string]interface{}{
		"api":         api,
		"url":         url,
		"bytes":       len(data),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	c.store(ctx, cacheKey, data)
	return nil
}

func decode(api string, data []byte, out response) error {
	if err := json.Unmarshal(data, out); err != nil {
		return &coreerrors.MalformedResponseError{API: api, Err: err}
	}
	return out.validate(api)
}

func (c *Client) cached(ctx context.Context, key string) ([]byte, bool) {
	if c.deps.Cache == nil || c.cfg.CacheTTL <= 0 || key == "" {
		return nil, false
	}
	data, err := c.deps.Cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

func (c *Client) store(ctx context.Context, key string, data []byte) {
	if c.deps.Cache == nil || c.cfg.CacheTTL <= 0 || key == "" {
		return
	}
	if err := c.deps.Cache.Set(ctx, key, data, c.cfg.CacheTTL); err != nil {
		c.deps.Logger.Warn("Failed to cache source response", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
