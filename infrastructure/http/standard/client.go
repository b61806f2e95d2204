// ABOUTME: Outbound HTTP client for the wiki and authorship-diff services
// ABOUTME: Sends a configurable User-Agent and optionally retries 5xx responses with backoff

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"article-viewer-api/core/interfaces"
)

const (
	// DefaultUserAgent identifies the service to the wiki APIs
	DefaultUserAgent = "ArticleViewer/1.0"

	baseBackoff = 100 * time.Millisecond
)

// Options configures a StandardHTTPClient
type Options struct {
	// Timeout bounds each request, including reading the body
	Timeout time.Duration

	// UserAgent is sent with every request; defaults to DefaultUserAgent
	UserAgent string

	// Attempts is the number of tries for a request answered with a 5xx or a
	// transport error. Values below 1 mean a single try.
	Attempts int

	// Transport overrides http.DefaultTransport, e.g. with a logging round tripper
	Transport http.RoundTripper
}

// StandardHTTPClient implements the HTTPClient interface using net/http
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
	attempts  int
}

// NewStandardHTTPClient creates a single-attempt client with the given timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return NewStandardHTTPClientWithOptions(Options{Timeout: timeout})
}

// NewStandardHTTPClientWithOptions creates a client from opts
func NewStandardHTTPClientWithOptions(opts Options) *StandardHTTPClient {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: opts.Transport,
		},
		userAgent: opts.UserAgent,
		attempts:  opts.Attempts,
	}
}

// Get performs an HTTP GET request. The last response is returned as is, even
// when every attempt was answered with a 5xx.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	var lastErr error

	for attempt := 0; attempt < c.attempts; attempt++ {
		if attempt > 0 {
			// 100ms, 200ms, 400ms, ...
			backoff := baseBackoff << (attempt - 1)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return nil, err
			}
			continue
		}

		if resp.StatusCode < 500 || attempt == c.attempts-1 {
			return &httpResponse{
				statusCode: resp.StatusCode,
				body:       resp.Body,
				headers:    resp.Header,
			}, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
	}

	return nil, lastErr
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
