package updatecheck

import "fmt"

// ReleaseURL returns the crates.io page for a crate version, suitable for
// pointing users at the release that an update check surfaced.
func ReleaseURL(name, version string) string {
	if version != "" {
		return fmt.Sprintf("https://crates.io/crates/%s/%s", name, version)
	}
	return fmt.Sprintf("https://crates.io/crates/%s", name)
}

// DocsURL returns the docs.rs documentation URL for a crate version.
func DocsURL(name, version string) string {
	if version != "" {
		return fmt.Sprintf("https://docs.rs/%s/%s", name, version)
	}
	return fmt.Sprintf("https://docs.rs/%s", name)
}

// DownloadURL returns the static.crates.io download URL for a crate version.
func DownloadURL(name, version string) string {
	if version == "" {
		return ""
	}
	return fmt.Sprintf("https://static.crates.io/crates/%s/%s-%s.crate", name, name, version)
}
