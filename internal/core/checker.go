package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Fetcher retrieves the raw text body for a URL. Implementations must honor
// context cancellation; the Checker applies the configured timeout through
// the context it passes in.
type Fetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// Checker runs update checks against the registry for a single crate.
type Checker struct {
	cfg     Config
	fetcher Fetcher
}

// NewChecker builds a Checker from a Config and a transport.
func NewChecker(cfg Config, fetcher Fetcher) *Checker {
	return &Checker{cfg: cfg, fetcher: fetcher}
}

// Check performs one update check: validate the crate name, consult the
// cache, fetch and extract the newest version on a miss, write the cache
// back, then compare against the current version.
//
// At most one network request, one cache read, and one cache write happen
// per call, and nothing is retried. Returns (nil, nil) when no newer version
// is available.
func (c *Checker) Check(ctx context.Context) (*UpdateInfo, error) {
	if err := ValidateName(c.cfg.Package); err != nil {
		return nil, err
	}

	latest, err := c.latestVersion(ctx)
	if err != nil {
		return nil, err
	}

	return IsUpdateAvailable(c.cfg.Current, latest, c.cfg.IncludePrerelease)
}

// latestVersion resolves the newest published version, from cache when fresh.
func (c *Checker) latestVersion(ctx context.Context) (string, error) {
	var path string
	if c.cfg.CacheDir != "" {
		path = CacheFilePath(c.cfg.CacheDir, c.cfg.Package)
	}

	// A zero TTL skips the read path outright, no stat involved.
	if path != "" && c.cfg.CacheTTL > 0 {
		if cached, ok := ReadCache(path, c.cfg.CacheTTL); ok {
			return cached, nil
		}
	}

	latest, err := c.fetchLatestVersion(ctx)
	if err != nil {
		return "", err
	}

	if path != "" {
		WriteCache(path, latest)
	}
	return latest, nil
}

// fetchLatestVersion asks the registry for the crate and extracts
// newest_version from the response body.
func (c *Checker) fetchLatestVersion(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/api/v1/crates/%s", strings.TrimSuffix(c.cfg.BaseURL, "/"), c.cfg.Package)

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	body, err := c.fetcher.FetchText(ctx, url)
	if err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			return "", err
		}
		return "", &HTTPError{URL: url, Err: err}
	}

	return ExtractNewestVersion(body)
}
