package relver

import (
	"fmt"
	"io"
	"strconv"
)

// WriteOutputs renders a Result as key=value lines in the format GitHub
// Actions reads from the GITHUB_OUTPUT file. Keys are stable and always
// written, empty values included, so downstream steps can rely on presence.
func WriteOutputs(w io.Writer, res Result) error {
	outs := []struct {
		key   string
		value string
	}{
		{"is_latest_tag", strconv.FormatBool(res.IsLatestTag)},
		{"is_version_tag", strconv.FormatBool(res.IsVersionTag)},
		{"docker_tag", res.DockerTag},
		{"new_version", res.NewVersion},
		{"latest_version", res.LatestVersion},
		{"release_kind", res.Kind.String()},
		{"release_ref", res.ReleaseRef},
		{"project", res.Project},
	}

	for _, o := range outs {
		if _, err := fmt.Fprintf(w, "%s=%s\n", o.key, o.value); err != nil {
			return fmt.Errorf("write output %s: %w", o.key, err)
		}
	}

	return nil
}
