package relver

import (
	"strings"
	"testing"
)

func TestWriteOutputs(t *testing.T) {
	t.Parallel()

	res := Result{
		IsVersionTag:  true,
		IsLatestTag:   true,
		DockerTag:     "2.0.0",
		ReleaseRef:    "main",
		LatestVersion: "2.0.0",
		NewVersion:    "2.0.1",
		Kind:          KindPatch,
		Project:       "scanner",
	}

	var b strings.Builder
	if err := WriteOutputs(&b, res); err != nil {
		t.Fatalf("WriteOutputs: %v", err)
	}

	want := `is_latest_tag=true
is_version_tag=true
docker_tag=2.0.0
new_version=2.0.1
latest_version=2.0.0
release_kind=patch
release_ref=main
project=scanner
`
	if b.String() != want {
		t.Fatalf("outputs got:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestWriteOutputsEmptyValues(t *testing.T) {
	t.Parallel()

	// Keys are always present so downstream steps never hit unset outputs.
	var b strings.Builder
	if err := WriteOutputs(&b, Result{Kind: KindNone, ReleaseRef: "main", DockerTag: DockerEdge}); err != nil {
		t.Fatalf("WriteOutputs: %v", err)
	}

	for _, key := range []string{"new_version=", "latest_version=", "project="} {
		if !strings.Contains(b.String(), key+"\n") {
			t.Fatalf("missing empty output %q in:\n%s", key, b.String())
		}
	}

	if !strings.Contains(b.String(), "release_kind=no_release\n") {
		t.Fatalf("missing no_release echo in:\n%s", b.String())
	}
}

func TestShortName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"greenbone/openvas-scanner": "openvas-scanner",
		"scanner":                   "scanner",
		"":                          "",
	}

	for in, want := range cases {
		if got := ShortName(in); got != want {
			t.Fatalf("ShortName(%q) got %q; want %q", in, got, want)
		}
	}
}
