package neotags

import "github.com/woozymasta/semver"

// Version is overridden at build time:
//
//	go build -ldflags "-X github.com/woozymasta/neotags.Version=1.4.0"
var Version = "dev"

// CanonicalVersion returns raw in canonical vMAJOR.MINOR.PATCH form when it
// parses as SemVer; other strings (e.g. "dev") are returned unchanged.
func CanonicalVersion(raw string) string {
	v, ok := semver.Parse(raw)
	if !ok || !v.IsValid() {
		return raw
	}

	return v.Canonical()
}
