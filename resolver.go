package relver

import (
	"errors"
	"fmt"
)

// DockerEdge is the moving image tag applied to non-release builds.
const DockerEdge = "edge"

// Sentinel errors for the fail-fast checks in Resolve. First failing check
// aborts the whole computation; there is no partial result.
var (
	// ErrInvalidKind means the release kind was empty or unrecognized.
	ErrInvalidKind = errors.New("release kind is empty or invalid")
	// ErrEmptyReleaseRef means neither base ref nor ref name named a release line.
	ErrEmptyReleaseRef = errors.New("release ref resolved empty")
	// ErrNoVersionOnLine means a non-trunk release line has no version tag
	// to derive the next version from.
	ErrNoVersionOnLine = errors.New("no version tag on release line")
)

// Input carries everything Resolve needs. All state is threaded explicitly;
// nothing is read from the environment.
type Input struct {
	// RefType says whether the trigger is a branch head or a tag.
	RefType RefType
	// RefName is the name of the triggering branch or tag.
	RefName string
	// BaseRef, when non-empty (pull-request context), overrides RefName
	// as the release line identifier.
	BaseRef string
	// Kind is the requested release kind; KindInvalid fails resolution.
	Kind ReleaseKind
	// Tags is the full tag set visible in the repository.
	Tags TagSet
	// Trunk is the trunk branch name. Empty defaults to "main".
	Trunk string
	// Marker is the literal version tag prefix. Empty defaults to "v".
	Marker string
	// Project is the repository short name, echoed into the result.
	Project string
}

// normalized returns a copy with implicit defaults applied.
func (in Input) normalized() Input {
	out := in

	if out.Trunk == "" {
		out.Trunk = "main"
	}

	if out.Marker == "" {
		out.Marker = "v"
	}

	return out
}

// Result is everything downstream automation consumes.
type Result struct {
	// IsVersionTag is true when the trigger is a tag matching marker+X.Y.Z.
	IsVersionTag bool
	// IsLatestTag is true when the triggering tag outranks every prior tag's
	// major line and is not a bare X.0.0 introductory marker.
	IsLatestTag bool
	// DockerTag is "edge" for non-release builds, else the bare X.Y.Z string.
	DockerTag string
	// ReleaseRef is the resolved release line (base ref wins over ref name).
	ReleaseRef string
	// LatestVersion is the highest existing version on the release line.
	// Empty when Kind is KindNone.
	LatestVersion string
	// NewVersion is LatestVersion bumped by Kind. Empty when Kind is KindNone.
	NewVersion string
	// Kind echoes the requested release kind.
	Kind ReleaseKind
	// Project echoes the repository short name.
	Project string
}

// Resolve computes the release facts for one trigger. It is a pure function
// of its input: the tag set is read, never written.
//
// Pipeline:
//  1. validate the release kind
//  2. classify the trigger (version tag or not, docker tag)
//  3. rank the tag against the rest of the set (latest or not)
//  4. resolve the release line
//  5. find the line's latest version and bump it (unless no_release)
func Resolve(in Input) (Result, error) {
	in = in.normalized()

	if in.Kind == KindInvalid {
		return Result{}, ErrInvalidKind
	}

	res := Result{
		Kind:      in.Kind,
		Project:   in.Project,
		DockerTag: DockerEdge,
	}

	var self Version
	if in.RefType == RefTag {
		if v, ok := ParseTag(in.RefName, in.Marker); ok {
			self = v
			res.IsVersionTag = true
			res.DockerTag = v.String()
		}
	}

	if res.IsVersionTag {
		// The prior maximum excludes the tag itself, so a tag never
		// compares against its own entry. An X.0.0 tag counts as latest
		// only when it strictly outranks the prior major line; on its own
		// line (or with no prior tag at all) it is an introductory marker.
		prior, ok := LatestExcluding(in.Tags.Versions(in.Marker), self)
		atHead := !ok || self.Major >= prior.Major
		newMajor := ok && self.Major > prior.Major
		res.IsLatestTag = atHead && (self.Minor != 0 || self.Patch != 0 || newMajor)
	}

	ref := in.BaseRef
	if ref == "" {
		ref = in.RefName
	}
	if ref == "" {
		return Result{}, ErrEmptyReleaseRef
	}
	res.ReleaseRef = ref

	if in.Kind == KindNone {
		return res, nil
	}

	var latest Version
	if ref == in.Trunk {
		v, ok := Latest(in.Tags.Versions(in.Marker))
		if !ok {
			// First release on trunk starts the 0.1 line.
			v = Version{Minor: 1}
		}
		latest = v
	} else {
		v, ok := Latest(in.Tags.Line(in.Marker, ref).Versions(in.Marker))
		if !ok {
			return Result{}, fmt.Errorf("%w: %q", ErrNoVersionOnLine, ref)
		}
		latest = v
	}

	res.LatestVersion = latest.String()
	res.NewVersion = latest.Bump(in.Kind).String()

	return res, nil
}
