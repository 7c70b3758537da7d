// Package updatecheck checks whether a newer version of a crate has been
// published on crates.io, with a local file cache to bound request
// frequency.
//
// Basic usage:
//
//	import "github.com/git-pkgs/updatecheck"
//
//	update, err := updatecheck.Check("my-crate", "1.0.0")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if update != nil {
//		fmt.Printf("update available: %s -> %s\n", update.Current, update.Latest)
//	}
//
// Results are cached for 24 hours in the platform cache directory by
// default; options override the cache window, timeout, cache location, and
// pre-release policy:
//
//	update, err := updatecheck.Check("my-crate", "1.0.0",
//		updatecheck.WithCacheTTL(time.Hour),
//		updatecheck.WithTimeout(10*time.Second),
//		updatecheck.WithPrerelease(true),
//	)
//
// For cooperative callers, CheckAsync runs the same check off the calling
// goroutine and delivers one Result on the returned channel.
package updatecheck

import (
	"context"
	"sync"

	"github.com/git-pkgs/updatecheck/fetch"
	"github.com/git-pkgs/updatecheck/internal/core"
)

// Re-export types from internal/core
type (
	// Config holds the settings for a single update check.
	Config = core.Config

	// Option overrides a single Config default.
	Option = core.Option

	// UpdateInfo describes an available update.
	UpdateInfo = core.UpdateInfo

	// Checker runs update checks for a single crate.
	Checker = core.Checker

	// Fetcher retrieves the raw text body for a URL.
	Fetcher = core.Fetcher
)

// Error types
type (
	InvalidNameError = core.InvalidNameError
	HTTPError        = core.HTTPError
	ParseError       = core.ParseError
	VersionError     = core.VersionError
)

// Config options
var (
	// WithCacheTTL sets the cache freshness window. Zero disables caching.
	WithCacheTTL = core.WithCacheTTL

	// WithTimeout sets the registry request timeout.
	WithTimeout = core.WithTimeout

	// WithCacheDir sets a custom cache directory. Empty disables caching.
	WithCacheDir = core.WithCacheDir

	// WithBaseURL points the checker at a different registry host.
	WithBaseURL = core.WithBaseURL

	// WithPrerelease includes pre-release versions in update checks.
	WithPrerelease = core.WithPrerelease
)

// DefaultURL is the default registry base URL.
const DefaultURL = core.DefaultURL

// defaultFetcher is shared across checks so the DNS cache and connection
// pool are built once.
var defaultFetcher = sync.OnceValue(func() *fetch.Fetcher {
	return fetch.New()
})

// NewConfig returns a Config with defaults applied: 24h cache in the
// platform cache directory, 5s request timeout, crates.io, pre-releases
// excluded.
func NewConfig(name, current string, opts ...Option) Config {
	return core.NewConfig(name, current, opts...)
}

// NewChecker builds a Checker with an injected transport. Use this to
// supply a custom fetcher; most callers want Check or CheckContext.
func NewChecker(cfg Config, fetcher Fetcher) *Checker {
	return core.NewChecker(cfg, fetcher)
}

// Check checks whether a newer version of the named crate is available.
// Returns nil when the current version is already the latest.
func Check(name, current string, opts ...Option) (*UpdateInfo, error) {
	return CheckContext(context.Background(), NewConfig(name, current, opts...))
}

// CheckContext runs an update check with an explicit Config, blocking until
// done or ctx is cancelled.
func CheckContext(ctx context.Context, cfg Config) (*UpdateInfo, error) {
	return core.NewChecker(cfg, defaultFetcher()).Check(ctx)
}

// Result is the outcome of an asynchronous check.
type Result struct {
	Update *UpdateInfo
	Err    error
}

// CheckAsync runs the check on its own goroutine and delivers exactly one
// Result on the returned channel, which is then closed. The sequencing and
// cache semantics are identical to CheckContext; only the calling
// convention differs.
func CheckAsync(ctx context.Context, cfg Config) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		update, err := CheckContext(ctx, cfg)
		ch <- Result{Update: update, Err: err}
	}()
	return ch
}
