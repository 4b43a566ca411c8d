// Package fetcher retrieves HTML documents over HTTP for conversion.
// Implement the Fetcher interface to supply documents from elsewhere, for
// example with authentication or a browser.
package fetcher

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Fetcher abstracts page fetching strategies.
type Fetcher interface {
	// Fetch retrieves page content from a URL.
	Fetch(ctx context.Context, url string, opts Options) (Content, error)

	// Close releases any resources.
	Close() error

	// Type returns a string identifying the fetcher type (e.g., "static").
	Type() string
}

// Options controls fetching behavior.
type Options struct {
	UserAgent   string
	Timeout     time.Duration
	MaxBodySize int // Bytes; 0 uses the fetcher default, negative is unlimited
	Headers     map[string]string
}

// Content represents fetched page data.
type Content struct {
	URL         string
	HTML        string
	Title       string
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
	ListCount   int // Outermost ol/ul elements in the document
}

// Error types for distinguishing failure reasons.
// Check with errors.Is(err, fetcher.ErrNotHTML).
var (
	// ErrNotHTML indicates the response declared a non-HTML content type.
	ErrNotHTML = errors.New("response is not HTML")
	// ErrInvalidURL indicates the target is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid URL")
)

// IsURL reports whether s looks like an http(s) URL rather than a path.
func IsURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// isHTML reports whether a Content-Type header denotes an HTML document.
// An empty header is accepted.
func isHTML(contentType string) bool {
	if contentType == "" {
		return true
	}
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml")
}
