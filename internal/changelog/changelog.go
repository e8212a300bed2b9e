// Package changelog reads pdfchat's release notes, which are embedded from
// CHANGELOG.md, and picks out the releases a user has not seen yet.
package changelog

import (
	_ "embed"
	"regexp"
	"strconv"
	"strings"
)

//go:embed CHANGELOG.md
var Content string

// Release is one version's section of the changelog
type Release struct {
	Version string
	Date    string
	Changes []string
}

// releaseHeader matches "## v0.2.0 (2026-08-14)" and "## 0.2.0"
var releaseHeader = regexp.MustCompile(`^##\s+v?(\d+\.\d+\.\d+)(?:\s+\(([^)]+)\))?`)

// Parse splits markdown release notes into releases, in file order.
// Bullets outside a release section are ignored.
func Parse(content string) []Release {
	var releases []Release
	current := -1

	for line := range strings.Lines(content) {
		line = strings.TrimSpace(line)

		if m := releaseHeader.FindStringSubmatch(line); m != nil {
			releases = append(releases, Release{Version: m[1], Date: m[2]})
			current = len(releases) - 1
			continue
		}

		if current < 0 {
			continue
		}
		if item, ok := bullet(line); ok {
			releases[current].Changes = append(releases[current].Changes, item)
		}
	}
	return releases
}

func bullet(line string) (string, bool) {
	for _, prefix := range []string{"- ", "* "} {
		if item, ok := strings.CutPrefix(line, prefix); ok {
			item = strings.TrimSpace(item)
			return item, item != ""
		}
	}
	return "", false
}

// Since returns the releases newer than lastSeen, keeping their order.
// An empty lastSeen returns every release.
func Since(lastSeen string, releases []Release) []Release {
	if lastSeen == "" {
		return releases
	}

	var newer []Release
	for _, r := range releases {
		if CompareVersions(r.Version, lastSeen) > 0 {
			newer = append(newer, r)
		}
	}
	return newer
}

// ReleaseVersion reports whether version looks like a tagged release.
// Development builds ("dev", "", "1.2.3-4-gabc") never show release notes.
func ReleaseVersion(version string) bool {
	v := strings.TrimPrefix(version, "v")
	parts := strings.Split(v, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if _, err := strconv.Atoi(p); err != nil {
			return false
		}
	}
	return true
}

// CompareVersions compares two semantic versions.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func CompareVersions(a, b string) int {
	av, bv := parseVersion(a), parseVersion(b)
	for i := range av {
		switch {
		case av[i] < bv[i]:
			return -1
		case av[i] > bv[i]:
			return 1
		}
	}
	return 0
}

// parseVersion extracts [major, minor, patch]; missing or malformed parts are 0
func parseVersion(v string) [3]int {
	v = strings.TrimPrefix(v, "v")
	v, _, _ = strings.Cut(v, "-")

	var out [3]int
	for i, p := range strings.SplitN(v, ".", 3) {
		out[i], _ = strconv.Atoi(p)
	}
	return out
}
