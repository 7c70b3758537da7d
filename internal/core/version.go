package core

import (
	"errors"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// IsUpdateAvailable compares the current version against the latest published
// one and reports whether an update should be surfaced.
//
// Both inputs must be full semantic versions (major.minor.patch with optional
// pre-release tag and build metadata). When includePrerelease is false, a
// latest version carrying a pre-release tag is never reported as an update,
// regardless of how it compares numerically. Build metadata never affects
// ordering. Equal or older latest versions yield (nil, nil), not an error.
func IsUpdateAvailable(current, latest string, includePrerelease bool) (*UpdateInfo, error) {
	currentVer, err := parseSemver(current, "current")
	if err != nil {
		return nil, err
	}
	latestVer, err := parseSemver(latest, "latest")
	if err != nil {
		return nil, err
	}

	if !includePrerelease && latestVer.Prerelease() != "" {
		return nil, nil
	}

	if latestVer.Compare(currentVer) > 0 {
		return &UpdateInfo{Current: current, Latest: latest}, nil
	}
	return nil, nil
}

// parseSemver parses a strict three-segment semantic version. go-version is
// lenient about missing segments ("1.0" parses as 1.0.0), so the numeric core
// is checked by hand first; ordering is then delegated to go-version, which
// ranks pre-releases below their release and ignores build metadata.
func parseSemver(input, side string) (*goversion.Version, error) {
	core := input
	if i := strings.IndexByte(core, '+'); i >= 0 {
		core = core[:i]
	}
	if i := strings.IndexByte(core, '-'); i >= 0 {
		core = core[:i]
	}

	segments := strings.Split(core, ".")
	if len(segments) != 3 {
		return nil, &VersionError{
			Side:  side,
			Input: input,
			Err:   errors.New("expected major.minor.patch"),
		}
	}
	for _, seg := range segments {
		if !isNumericSegment(seg) {
			return nil, &VersionError{
				Side:  side,
				Input: input,
				Err:   errors.New("non-numeric version segment: " + seg),
			}
		}
	}

	v, err := goversion.NewVersion(input)
	if err != nil {
		return nil, &VersionError{Side: side, Input: input, Err: err}
	}
	return v, nil
}

func isNumericSegment(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isASCIIDigit(s[i]) {
			return false
		}
	}
	return true
}
