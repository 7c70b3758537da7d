package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	path := CacheFilePath(t.TempDir(), "serde")

	WriteCache(path, "1.0.228")

	got, ok := ReadCache(path, time.Hour)
	require.True(t, ok, "expected fresh cache hit")
	assert.Equal(t, "1.0.228", got)

	// Repeated reads of a fresh entry keep returning the same value.
	again, ok := ReadCache(path, time.Hour)
	require.True(t, ok)
	assert.Equal(t, got, again)
}

func TestCacheTrimsWhitespace(t *testing.T) {
	path := CacheFilePath(t.TempDir(), "serde")
	require.NoError(t, os.WriteFile(path, []byte("  1.0.228\n"), 0o644))

	got, ok := ReadCache(path, time.Hour)
	require.True(t, ok)
	assert.Equal(t, "1.0.228", got)
}

func TestCacheMissWhenStale(t *testing.T) {
	path := CacheFilePath(t.TempDir(), "serde")
	WriteCache(path, "1.0.228")

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	_, ok := ReadCache(path, 24*time.Hour)
	assert.False(t, ok, "stale entry must read as a miss")
}

func TestCacheMissWhenAbsent(t *testing.T) {
	path := CacheFilePath(t.TempDir(), "serde")

	_, ok := ReadCache(path, time.Hour)
	assert.False(t, ok)
}

func TestCacheOverwrite(t *testing.T) {
	path := CacheFilePath(t.TempDir(), "serde")

	WriteCache(path, "1.0.227")
	WriteCache(path, "1.0.228")

	got, ok := ReadCache(path, time.Hour)
	require.True(t, ok)
	assert.Equal(t, "1.0.228", got)
}

func TestCacheWriteLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := CacheFilePath(dir, "serde")

	WriteCache(path, "1.0.228")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "serde"+cacheFileSuffix, entries[0].Name())
}

func TestCacheWriteFailureIsSilent(t *testing.T) {
	// Writing into a directory that does not exist must not panic or error.
	path := filepath.Join(t.TempDir(), "missing", "serde-update-check")
	WriteCache(path, "1.0.228")

	_, ok := ReadCache(path, time.Hour)
	assert.False(t, ok)
}

func TestCacheFilePath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("/tmp/cache", "serde-update-check"),
		CacheFilePath("/tmp/cache", "serde"))
}
