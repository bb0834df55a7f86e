package relver

// ReleaseKind is the requested magnitude of a version increment, or an
// explicit request that no release should occur. The zero value is invalid
// so an unset kind never silently resolves to anything.
type ReleaseKind uint8

const (
	// KindInvalid is the zero value; Resolve rejects it.
	KindInvalid ReleaseKind = iota
	// KindNone requests no release ("no_release").
	KindNone
	// KindPatch increments the patch component.
	KindPatch
	// KindMinor increments the minor component and zeroes patch.
	KindMinor
	// KindMajor increments the major component and zeroes minor and patch.
	KindMajor
)

// String returns a stable textual representation for ReleaseKind.
func (k ReleaseKind) String() string {
	switch k {
	case KindNone:
		return "no_release"
	case KindPatch:
		return "patch"
	case KindMinor:
		return "minor"
	case KindMajor:
		return "major"
	default:
		return "invalid"
	}
}

// ParseKind maps free-form tokens to ReleaseKind.
// Supported aliases (case-insensitive):
//
//	no_release: "no_release","norelease","none","no","skip"
//	patch:      "patch","pth","z"
//	minor:      "minor","min","y"
//	major:      "major","maj","x"
//
// Anything else is KindInvalid; validate at the boundary.
func ParseKind(s string) ReleaseKind {
	switch toTok(s) {
	case "no_release", "norelease", "none", "no", "skip":
		return KindNone

	case "patch", "pth", "z":
		return KindPatch

	case "minor", "min", "y":
		return KindMinor

	case "major", "maj", "x":
		return KindMajor

	default:
		return KindInvalid
	}
}

// RefType identifies what kind of reference triggered the run.
type RefType uint8

const (
	// RefInvalid is the zero value; Resolve rejects it.
	RefInvalid RefType = iota
	// RefBranch means the trigger is a branch head.
	RefBranch
	// RefTag means the trigger is a tag.
	RefTag
)

// String returns a stable textual representation for RefType.
func (t RefType) String() string {
	switch t {
	case RefBranch:
		return "branch"
	case RefTag:
		return "tag"
	default:
		return "invalid"
	}
}

// ParseRefType maps free-form tokens to RefType.
// Supported aliases (case-insensitive):
//
//	branch: "branch","branches","head"
//	tag:    "tag","tags"
func ParseRefType(s string) RefType {
	switch toTok(s) {
	case "branch", "branches", "head":
		return RefBranch

	case "tag", "tags":
		return RefTag

	default:
		return RefInvalid
	}
}
