// Package photos resolves best-effort element photo URLs from the
// configured image host.
package photos

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// PlaceholderURL is served whenever a photo cannot be resolved.
const PlaceholderURL = "https://via.placeholder.com/150?text=No+Image"

// DefaultHost is the default image host.
const DefaultHost = "https://images-of-elements.com"

// Client builds and verifies element photo URLs.
type Client struct {
	host string
	http *http.Client
}

// New creates a photo client for the given host.
func New(host string, timeout time.Duration) *Client {
	if host == "" {
		host = DefaultHost
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		host: strings.TrimRight(host, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// URL constructs the photo URL for an element name. An empty name maps to
// the placeholder.
func (c *Client) URL(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return PlaceholderURL
	}
	return fmt.Sprintf("%s/s/%s.jpg", c.host, url.PathEscape(name))
}

// Resolve checks photo availability with a HEAD request. Any failure,
// including timeouts and non-200 statuses, degrades to the placeholder;
// it never returns an error.
func (c *Client) Resolve(ctx context.Context, name string) string {
	photoURL := c.URL(name)
	if photoURL == PlaceholderURL {
		return PlaceholderURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, photoURL, nil)
	if err != nil {
		return PlaceholderURL
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return PlaceholderURL
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return PlaceholderURL
	}
	return photoURL
}
