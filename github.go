package relver

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v60/github"
)

// GitHubSource lists repository tags through the GitHub API.
type GitHubSource struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGitHubSource builds a source for "owner/repo". An empty token yields an
// unauthenticated client, which is enough for public repositories.
func NewGitHubSource(repository, token string) (*GitHubSource, error) {
	owner, repo, err := splitRepository(repository)
	if err != nil {
		return nil, err
	}

	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}

	return &GitHubSource{client: client, owner: owner, repo: repo}, nil
}

// Tags fetches every tag name, following pagination.
func (s *GitHubSource) Tags(ctx context.Context) ([]string, error) {
	var all []string
	opts := &github.ListOptions{PerPage: 100}

	for {
		tags, resp, err := s.client.Repositories.ListTags(ctx, s.owner, s.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("list tags for %s/%s: %w", s.owner, s.repo, err)
		}

		for _, t := range tags {
			all = append(all, t.GetName())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// splitRepository parses "owner/repo", tolerating URL forms and a trailing ".git".
func splitRepository(repository string) (owner, repo string, err error) {
	r := strings.TrimPrefix(repository, "https://")
	r = strings.TrimPrefix(r, "http://")
	r = strings.TrimPrefix(r, "github.com/")
	r = strings.TrimSuffix(r, ".git")
	r = strings.TrimSuffix(r, "/")

	parts := strings.SplitN(r, "/", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("cannot parse repository from %q", repository)
	}

	return parts[0], parts[1], nil
}
