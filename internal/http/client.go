package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Client handles HTTP requests with base URL resolution
type Client struct {
	doer    HTTPDoer
	baseURL *url.URL
}

// HTTPDoer interface for making HTTP requests
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient creates an HTTP client with any HTTPDoer implementation.
// The base URL must be absolute, its path is kept as a prefix of every request path.
func NewClient(baseURL string, doer HTTPDoer) (*Client, error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	if !parsedURL.IsAbs() || parsedURL.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	// a trailing slash makes ResolveReference append to the path instead of replacing its last segment
	if !strings.HasSuffix(parsedURL.Path, "/") {
		parsedURL.Path += "/"
	}
	if parsedURL.RawPath != "" && !strings.HasSuffix(parsedURL.RawPath, "/") {
		parsedURL.RawPath += "/"
	}

	return &Client{
		doer:    doer,
		baseURL: parsedURL,
	}, nil
}

// BaseURL returns the base URL requests are resolved against.
func (c *Client) BaseURL() string {
	return strings.TrimSuffix(c.baseURL.String(), "/")
}

// Do performs an HTTP request, prepending base URL.
// Request paths are relative to the base URL path, a leading slash is ignored.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	ref := *req.URL
	ref.Path = strings.TrimPrefix(ref.Path, "/")
	ref.RawPath = strings.TrimPrefix(ref.RawPath, "/")
	fullURL := c.baseURL.ResolveReference(&ref)

	newReq := req.Clone(req.Context())
	newReq.URL = fullURL
	newReq.Host = ""

	return c.doer.Do(newReq)
}
