package relver

import (
	"strconv"
	"strings"

	"github.com/woozymasta/semver"
)

// Version is a release triple. Ordering is lexicographic over
// (Major, Minor, Patch), each component compared numerically.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a bare MAJOR.MINOR.PATCH string.
// Shorthand (X, X.Y), prerelease, and build metadata are rejected:
// only full release triples name versions here.
// A leading "v" is accepted on input.
func ParseVersion(s string) (Version, bool) {
	v, ok := semver.Parse(s)
	if !ok || !v.Valid {
		return Version{}, false
	}

	if !has(v.Flags, semver.FlagHasPatch) {
		return Version{}, false
	}

	if has(v.Flags, semver.FlagHasPre) || has(v.Flags, semver.FlagHasBuild) {
		return Version{}, false
	}

	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}, true
}

// ParseTag parses a version tag: the literal marker followed by a release
// triple. A tag without the marker is not a version tag, whatever follows.
func ParseTag(tag, marker string) (Version, bool) {
	if marker != "" && !strings.HasPrefix(tag, marker) {
		return Version{}, false
	}

	rest := strings.TrimPrefix(tag, marker)
	// A bare "v" after a non-"v" marker would slip through semver parsing.
	if marker != "v" && strings.HasPrefix(rest, "v") {
		return Version{}, false
	}

	return ParseVersion(rest)
}

// Compare returns -1, 0, or +1 ordering v against o.
func (v Version) Compare(o Version) int {
	if c := cmpInt(v.Major, o.Major); c != 0 {
		return c
	}

	if c := cmpInt(v.Minor, o.Minor); c != 0 {
		return c
	}

	return cmpInt(v.Patch, o.Patch)
}

// Bump returns the next version for the requested release kind.
// KindNone (and anything invalid) returns v unchanged.
func (v Version) Bump(kind ReleaseKind) Version {
	switch kind {
	case KindMajor:
		return Version{Major: v.Major + 1}

	case KindMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}

	case KindPatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}

	default:
		return v
	}
}

// String renders the bare MAJOR.MINOR.PATCH form.
func (v Version) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(v.Major))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(v.Minor))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(v.Patch))

	return b.String()
}

// Tag renders the marker-prefixed tag form.
func (v Version) Tag(marker string) string {
	return marker + v.String()
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func has(f, bit semver.Flags) bool {
	return f&bit != 0
}
