package github

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Client implements GitHubClient using the real GitHub API
type Client struct {
	client *github.Client
}

// NewClient creates a new GitHub API client
func NewClient(token string) *Client {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		client: github.NewClient(tc),
	}
}

// NewClientFromEnv creates a GitHub client using the token from environment
// variables, falling back to an unauthenticated client. Public template
// repositories do not need a token; a token only raises rate limits and
// enables private templates.
func NewClientFromEnv() *Client {
	token := os.Getenv("GH_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return NewClientWithoutAuth()
	}

	return NewClient(token)
}

// NewClientWithoutAuth creates a GitHub client without authentication (for public operations)
func NewClientWithoutAuth() *Client {
	return &Client{
		client: github.NewClient(nil),
	}
}

func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*Repository, error) {
	repository, _, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository %s/%s: %w", owner, repo, err)
	}

	return &Repository{
		Owner:         repository.GetOwner().GetLogin(),
		Name:          repository.GetName(),
		FullName:      repository.GetFullName(),
		CloneURL:      repository.GetCloneURL(),
		DefaultBranch: repository.GetDefaultBranch(),
	}, nil
}

// githubRefRegex matches github.com references with or without a scheme
// and with an optional .git suffix.
var githubRefRegex = regexp.MustCompile(`^(?:https?://)?(?:www\.)?github\.com[:/]([^/]+)/([^/]+?)(?:\.git)?/?$`)

// ParseRepoRef extracts owner and repository name from a github.com
// reference. Returns ok=false for anything that is not a github.com URL
// (other hosts are cloned as-is without API resolution).
func ParseRepoRef(ref string) (owner, repo string, ok bool) {
	matches := githubRefRegex.FindStringSubmatch(ref)
	if matches == nil {
		return "", "", false
	}
	return matches[1], matches[2], true
}
