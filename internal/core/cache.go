package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// cacheFileSuffix is appended to the crate name to form the cache file name.
const cacheFileSuffix = "-update-check"

// CacheFilePath returns the cache file location for a crate: one file per
// package, named {name}-update-check, holding the raw latest-version string.
func CacheFilePath(dir, name string) string {
	return filepath.Join(dir, name+cacheFileSuffix)
}

// ReadCache returns the cached version at path if the file exists and its
// last-modified time is within maxAge of now. The stored value is trimmed of
// surrounding whitespace. Any I/O failure is a cache miss: the cache is an
// optimization, never an error source.
func ReadCache(path string, maxAge time.Duration) (string, bool) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	if time.Since(fi.ModTime()) >= maxAge {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// WriteCache stores value at path, best effort. The value lands via a
// temporary file and rename so a cancelled check leaves either the old
// content or the new, never a torn write. Failures are silently dropped.
func WriteCache(path, value string) {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
	}
}
