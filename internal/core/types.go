// Package core implements the update check pipeline: crate name validation,
// the freshness-gated file cache, minimal extraction of the newest_version
// field, and semantic version comparison.
package core

import (
	"os"
	"time"
)

// DefaultURL is the default registry base URL.
const DefaultURL = "https://crates.io"

const (
	// DefaultCacheTTL is how long a cached version is trusted before
	// re-fetching.
	DefaultCacheTTL = 24 * time.Hour

	// DefaultTimeout bounds a single registry request.
	DefaultTimeout = 5 * time.Second
)

// UpdateInfo describes an available update. It is only produced when the
// latest published version is strictly newer than the current one.
type UpdateInfo struct {
	// Current is the version the caller is running.
	Current string
	// Latest is the newest version published on the registry.
	Latest string
}

// Config holds the settings for a single update check. Values are fixed
// once the Config is handed to a Checker; build one with NewConfig and
// options rather than mutating fields after the fact.
type Config struct {
	// Package is the crate name to check on the registry.
	Package string

	// Current is the version the caller is running.
	Current string

	// BaseURL is the registry base URL. Defaults to crates.io.
	BaseURL string

	// CacheTTL is how long a cached version is trusted. Zero disables
	// the cache read path entirely.
	CacheTTL time.Duration

	// Timeout bounds the registry request. Zero means no deadline beyond
	// the caller's context.
	Timeout time.Duration

	// CacheDir is where the per-package cache file lives. Empty disables
	// caching altogether.
	CacheDir string

	// IncludePrerelease reports pre-release versions as updates. Off by
	// default: a newest_version of "2.0.0-beta" is not surfaced unless
	// opted in.
	IncludePrerelease bool
}

// Option overrides a single Config default.
type Option func(*Config)

// WithCacheTTL sets the cache freshness window. Zero disables caching.
func WithCacheTTL(d time.Duration) Option {
	return func(c *Config) {
		c.CacheTTL = d
	}
}

// WithTimeout sets the registry request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithCacheDir sets a custom cache directory. Empty disables caching.
func WithCacheDir(dir string) Option {
	return func(c *Config) {
		c.CacheDir = dir
	}
}

// WithBaseURL points the checker at a different registry host.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithPrerelease includes pre-release versions in update checks.
func WithPrerelease(include bool) Option {
	return func(c *Config) {
		c.IncludePrerelease = include
	}
}

// NewConfig returns a Config for the given crate and current version with
// defaults applied: 24h cache in the platform cache directory, 5s request
// timeout, crates.io, pre-releases excluded.
func NewConfig(name, current string, opts ...Option) Config {
	cfg := Config{
		Package:  name,
		Current:  current,
		BaseURL:  DefaultURL,
		CacheTTL: DefaultCacheTTL,
		Timeout:  DefaultTimeout,
	}
	// No usable cache directory just means caching is off.
	if dir, err := os.UserCacheDir(); err == nil {
		cfg.CacheDir = dir
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
