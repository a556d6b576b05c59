package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// OSGitClient implements GitClient using the real git binary
type OSGitClient struct {
	ctx context.Context
}

// NewOSGitClient creates a new OSGitClient
func NewOSGitClient() *OSGitClient {
	return &OSGitClient{
		ctx: context.Background(),
	}
}

// WithContext returns a new client with the given context
func (g *OSGitClient) WithContext(ctx context.Context) GitClient {
	return &OSGitClient{
		ctx: ctx,
	}
}

// Clone performs a shallow clone of url into dest.
func (g *OSGitClient) Clone(url, dest string) error {
	cmd := exec.CommandContext(g.ctx, "git", "clone", "--depth", "1", "--quiet", url, dest)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := stderr.String(); msg != "" {
			return fmt.Errorf("failed to clone %s: %w: %s", url, err, msg)
		}
		return fmt.Errorf("failed to clone %s: %w", url, err)
	}

	return nil
}

// IsInstalled reports whether git is on PATH.
func (g *OSGitClient) IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}
