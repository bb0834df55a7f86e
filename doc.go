/*
Package relver (Release Version Resolver) computes the release facts a CI
pipeline needs from the repository's tag set and the triggering reference.

The package is network-agnostic: the resolver is a pure function over a slice
of tag strings plus trigger metadata. Typical flow:

 1. Fetch raw tags elsewhere (stdin, or the GitHub API via GitHubSource).
 2. Call Resolve with an Input describing the trigger and the requested release kind.
 3. Feed the Result to downstream automation (see WriteOutputs).

Resolution notes:
  - A version tag is marker + MAJOR.MINOR.PATCH; the marker defaults to "v".
  - Tags that do not parse as a full release triple are skipped during
    discovery and never participate in latest/prior selection.
  - The latest prior version excludes the triggering tag itself, so a tag
    never compares against its own entry in the tag set.
  - On the trunk line the latest version defaults to 0.1.0 when no tag
    exists; on any other line a missing tag is an error.

Usage example, classifying a tag trigger:

	res, err := relver.Resolve(relver.Input{
		RefType: relver.RefTag,
		RefName: "v2.0.0",
		Kind:    relver.KindNone,
		Tags:    relver.TagSet{"v1.0.0", "v1.2.0", "v2.0.0"},
		Project: "scanner",
	})
	if err != nil {
		// first failing check aborts the whole computation
	}

	fmt.Println(res.IsLatestTag) // true
	fmt.Println(res.DockerTag)   // 2.0.0

Computing the next version for a trunk release:

	res, err = relver.Resolve(relver.Input{
		RefType: relver.RefBranch,
		RefName: "main",
		Kind:    relver.KindPatch,
		Tags:    relver.TagSet{"v1.0.0", "v1.2.0", "v2.0.0"},
		Project: "scanner",
	})

	fmt.Println(res.LatestVersion) // 2.0.0
	fmt.Println(res.NewVersion)    // 2.0.1
*/
package relver
