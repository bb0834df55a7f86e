package relver

import "strings"

// TagSet is the read-only collection of raw tag names visible in the
// repository. The resolver never mutates it.
type TagSet []string

// Versions parses every marker-prefixed full release tag in the set.
// Tags without the marker and tags that do not parse as MAJOR.MINOR.PATCH
// are skipped; they never participate in version selection.
func (ts TagSet) Versions(marker string) []Version {
	out := make([]Version, 0, len(ts))
	for _, t := range ts {
		if v, ok := ParseTag(t, marker); ok {
			out = append(out, v)
		}
	}

	return out
}

// Line clips the set to tags belonging to a release line: the
// marker-stripped name must start with the literal prefix ref.
// "22.4" keeps "v22.4.1"; it also keeps "v22.40.0", which mirrors the
// plain prefix match release pipelines apply to maintenance lines.
func (ts TagSet) Line(marker, ref string) TagSet {
	out := make(TagSet, 0, len(ts))
	for _, t := range ts {
		if marker != "" && !strings.HasPrefix(t, marker) {
			continue
		}

		if strings.HasPrefix(strings.TrimPrefix(t, marker), ref) {
			out = append(out, t)
		}
	}

	return out
}

// Latest returns the version-sorted maximum, false when vs is empty.
func Latest(vs []Version) (Version, bool) {
	if len(vs) == 0 {
		return Version{}, false
	}

	best := vs[0]
	for _, v := range vs[1:] {
		if v.Compare(best) > 0 {
			best = v
		}
	}

	return best, true
}

// LatestExcluding returns the version-sorted maximum of vs with every entry
// equal to self removed, so a tag never compares against itself.
func LatestExcluding(vs []Version, self Version) (Version, bool) {
	var (
		best  Version
		found bool
	)

	for _, v := range vs {
		if v.Compare(self) == 0 {
			continue
		}

		if !found || v.Compare(best) > 0 {
			best = v
			found = true
		}
	}

	return best, found
}
