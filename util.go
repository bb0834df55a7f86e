package relver

import "strings"

// toTok normalizes a free-form string into a lowercased token.
func toTok(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ShortName returns the repository short name: "owner/repo" -> "repo".
// A string without a slash is returned as-is.
func ShortName(repository string) string {
	if i := strings.LastIndexByte(repository, '/'); i >= 0 {
		return repository[i+1:]
	}

	return repository
}
