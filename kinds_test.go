package relver

import "testing"

func TestParseKind(t *testing.T) {
	t.Parallel()

	cases := map[string]ReleaseKind{
		"patch":      KindPatch,
		"PATCH":      KindPatch,
		" minor ":    KindMinor,
		"maj":        KindMajor,
		"major":      KindMajor,
		"no_release": KindNone,
		"none":       KindNone,
		"skip":       KindNone,
		"":           KindInvalid,
		"bogus":      KindInvalid,
		"patchh":     KindInvalid,
	}

	for in, want := range cases {
		if got := ParseKind(in); got != want {
			t.Fatalf("ParseKind(%q) got %v; want %v", in, got, want)
		}
	}
}

func TestParseRefType(t *testing.T) {
	t.Parallel()

	cases := map[string]RefType{
		"branch": RefBranch,
		"Tag":    RefTag,
		"tags":   RefTag,
		"":       RefInvalid,
		"commit": RefInvalid,
	}

	for in, want := range cases {
		if got := ParseRefType(in); got != want {
			t.Fatalf("ParseRefType(%q) got %v; want %v", in, got, want)
		}
	}
}

func TestKindStrings(t *testing.T) {
	t.Parallel()

	if got := KindNone.String(); got != "no_release" {
		t.Fatalf("KindNone got %q", got)
	}

	for _, k := range []ReleaseKind{KindPatch, KindMinor, KindMajor} {
		if ParseKind(k.String()) != k {
			t.Fatalf("%v does not round-trip through ParseKind", k)
		}
	}

	if got := RefTag.String(); got != "tag" {
		t.Fatalf("RefTag got %q", got)
	}
}
