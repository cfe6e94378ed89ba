package version

import (
	"github.com/Masterminds/semver/v3"
)

var (
	parsedVersion  *semver.Version
	parseAttempted bool
)

// resetParsedVersion clears the cached parsed version for testing.
func resetParsedVersion() {
	parsedVersion = nil
	parseAttempted = false
}

// Parsed returns the semantic version the binary was stamped with, or
// nil if Version is not valid semver. Parsed lazily, cached after the
// first call.
func Parsed() *semver.Version {
	if parsedVersion != nil || parseAttempted {
		return parsedVersion
	}
	parseAttempted = true

	v, err := semver.NewVersion(Version)
	if err != nil {
		return nil
	}
	parsedVersion = v
	return parsedVersion
}

// IsDevBuild reports whether this binary carries no valid semver, i.e.
// it was built without release ldflags.
func IsDevBuild() bool {
	return Parsed() == nil
}

// IsPrerelease reports whether the current version carries a
// prerelease identifier. Dev builds are not prereleases.
func IsPrerelease() bool {
	v := Parsed()
	if v == nil {
		return false
	}
	return v.Prerelease() != ""
}

// SemverPrerelease returns the prerelease identifier (e.g. "beta.1"),
// or "" for releases and dev builds.
func SemverPrerelease() string {
	v := Parsed()
	if v == nil {
		return ""
	}
	return v.Prerelease()
}
