package updatecheck

import (
	"context"
	"fmt"

	"github.com/git-pkgs/purl"
)

// CheckPURL checks for updates using a version PURL such as
// "pkg:cargo/serde@1.0.0". The PURL's name and version stand in for the
// (package, current) pair. Only cargo PURLs are supported, and the PURL
// must carry a version to compare against.
func CheckPURL(ctx context.Context, purlStr string, opts ...Option) (*UpdateInfo, error) {
	p, err := purl.Parse(purlStr)
	if err != nil {
		return nil, fmt.Errorf("parsing purl: %w", err)
	}

	if p.Type != "cargo" {
		return nil, fmt.Errorf("unsupported purl type %q: only cargo is supported", p.Type)
	}
	if p.Version == "" {
		return nil, fmt.Errorf("purl has no version: %s", purlStr)
	}

	return CheckContext(ctx, NewConfig(p.Name, p.Version, opts...))
}
