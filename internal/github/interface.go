package github

import (
	"context"
)

// GitHubClient provides an abstraction over GitHub API operations.
//
// The fetcher asks GitHub about a repository before cloning so a bad
// reference fails fast with a useful message instead of a raw git error,
// and so shorthand references (owner/repo without a scheme) resolve to a
// canonical clone URL.
type GitHubClient interface {
	// Repository operations
	GetRepository(ctx context.Context, owner, repo string) (*Repository, error)
}

// Repository represents a GitHub repository
type Repository struct {
	Owner         string
	Name          string
	FullName      string
	CloneURL      string
	DefaultBranch string
}
