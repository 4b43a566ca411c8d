package fetcher

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"github.com/jmylchreest/listconv/internal/logger"
	"github.com/jmylchreest/listconv/pkg/builder"
)

// StaticConfig holds configuration for the static fetcher.
type StaticConfig struct {
	UserAgent   string
	Timeout     time.Duration
	MaxBodySize int // 0 uses the default, negative is unlimited
}

// DefaultStaticConfig returns sensible defaults.
func DefaultStaticConfig() StaticConfig {
	return StaticConfig{
		UserAgent:   defaultUserAgent,
		Timeout:     30 * time.Second,
		MaxBodySize: 10 * 1024 * 1024,
	}
}

const defaultUserAgent = "listconv (+https://github.com/jmylchreest/listconv)"

// StaticFetcher uses Colly for static HTML fetching.
// It implements the Fetcher interface.
type StaticFetcher struct {
	config StaticConfig
}

var _ Fetcher = (*StaticFetcher)(nil)

// NewStatic creates a new static fetcher.
func NewStatic(cfg StaticConfig) *StaticFetcher {
	defaults := DefaultStaticConfig()
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.MaxBodySize == 0 {
		cfg.MaxBodySize = defaults.MaxBodySize
	}
	return &StaticFetcher{config: cfg}
}

// Fetch retrieves page content using Colly.
func (f *StaticFetcher) Fetch(ctx context.Context, targetURL string, opts Options) (Content, error) {
	log := logger.Component("fetcher")

	result := Content{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	u, err := url.Parse(targetURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return result, fmt.Errorf("%w: %q", ErrInvalidURL, targetURL)
	}

	userAgent := coalesce(opts.UserAgent, f.config.UserAgent)
	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.StdlibContext(ctx),
	)

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = f.config.Timeout
	}
	c.SetRequestTimeout(timeout)

	// colly treats 0 as no limit.
	c.MaxBodySize = max(f.config.MaxBodySize, 0)
	switch {
	case opts.MaxBodySize > 0:
		c.MaxBodySize = opts.MaxBodySize
	case opts.MaxBodySize < 0:
		c.MaxBodySize = 0
	}
	log.Debug("fetch configured", "url", targetURL, "timeout", timeout, "max_body_size", c.MaxBodySize)

	if len(opts.Headers) > 0 {
		c.OnRequest(func(r *colly.Request) {
			for k, v := range opts.Headers {
				r.Headers.Set(k, v)
			}
		})
	}

	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		result.StatusCode = r.StatusCode
		result.ContentType = r.Headers.Get("Content-Type")
		result.HTML = string(r.Body)
		log.Debug("response received",
			"status", r.StatusCode,
			"content_type", result.ContentType,
			"body_size", len(r.Body))
	})

	c.OnError(func(r *colly.Response, err error) {
		statusCode := 0
		if r != nil {
			statusCode = r.StatusCode
			result.StatusCode = statusCode
		}
		fetchErr = fmt.Errorf("fetch %s: %w", targetURL, err)
		log.Debug("fetch error", "status", statusCode, "error", err)
	})

	if err := c.Visit(targetURL); err != nil {
		if fetchErr != nil {
			return result, fetchErr
		}
		return result, fmt.Errorf("visit %s: %w", targetURL, err)
	}
	if fetchErr != nil {
		return result, fetchErr
	}

	if !isHTML(result.ContentType) {
		return result, fmt.Errorf("%w: %s", ErrNotHTML, result.ContentType)
	}

	if result.HTML != "" {
		if err := parseContent(&result); err != nil {
			return result, fmt.Errorf("parse %s: %w", targetURL, err)
		}
	}

	log.Debug("fetch complete", "url", targetURL, "title", result.Title, "lists", result.ListCount)
	return result, nil
}

// parseContent fills in the title and list count of fetched HTML.
func parseContent(content *Content) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content.HTML))
	if err != nil {
		return err
	}

	content.Title = strings.Join(strings.Fields(doc.Find("title").First().Text()), " ")
	content.ListCount = builder.FindLists(doc.Selection).Length()
	return nil
}

// Close releases resources.
func (f *StaticFetcher) Close() error {
	return nil
}

// Type returns the fetcher type.
func (f *StaticFetcher) Type() string {
	return "static"
}

// coalesce returns the first non-empty string.
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
