package template

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/mcpforge/mcpforge/internal/filesystem"
	"github.com/mcpforge/mcpforge/internal/git"
	"github.com/mcpforge/mcpforge/internal/github"
	"github.com/mcpforge/mcpforge/internal/models"
)

// Fetcher produces filesystem snapshots for classified template
// references. It is the only component in the pipeline that performs
// network I/O (the remote clone), and it does so exactly once per
// invocation with no automatic retry.
type Fetcher struct {
	fs       filesystem.FileSystem
	git      git.GitClient
	github   github.GitHubClient
	tempBase string
}

// NewFetcher creates a Fetcher. ghClient may be nil, in which case
// github.com references are cloned from their normalized URL without API
// resolution.
func NewFetcher(fs filesystem.FileSystem, gitClient git.GitClient, ghClient github.GitHubClient) *Fetcher {
	return &Fetcher{
		fs:       fs,
		git:      gitClient,
		github:   ghClient,
		tempBase: os.TempDir(),
	}
}

// WithTempBase overrides where remote clones are staged. Used by tests.
func (f *Fetcher) WithTempBase(dir string) *Fetcher {
	f.tempBase = dir
	return f
}

// Fetch resolves a classified reference into a Snapshot.
func (f *Fetcher) Fetch(ctx context.Context, ref models.TemplateReference) (*Snapshot, error) {
	switch ref.Kind {
	case models.SourceBuiltIn:
		return f.fetchBuiltin(ref)
	case models.SourceLocalPath:
		return f.fetchLocal(ref)
	case models.SourceRemoteRepository:
		return f.fetchRemote(ctx, ref)
	default:
		return nil, fmt.Errorf("unknown template source kind: %s", ref.Kind)
	}
}

func (f *Fetcher) fetchBuiltin(ref models.TemplateReference) (*Snapshot, error) {
	if !IsBuiltin(ref.Identifier) {
		return nil, &TemplateNotFoundError{Reference: ref.Identifier, Kind: "built-in"}
	}

	root, err := builtinRoot(ref.Identifier)
	if err != nil {
		return nil, &TemplateNotFoundError{Reference: ref.Identifier, Kind: "built-in"}
	}

	return &Snapshot{FS: root}, nil
}

func (f *Fetcher) fetchLocal(ref models.TemplateReference) (*Snapshot, error) {
	path := ref.Identifier
	if !filepath.IsAbs(path) {
		cwd, err := f.fs.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	info, err := f.fs.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, &TemplateNotFoundError{Reference: ref.Identifier, Kind: "local path"}
	}

	return &Snapshot{FS: os.DirFS(path), Dir: path}, nil
}

func (f *Fetcher) fetchRemote(ctx context.Context, ref models.TemplateReference) (*Snapshot, error) {
	cloneURL := f.resolveCloneURL(ctx, ref.Identifier)

	dir, err := f.tempCloneDir()
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary clone directory: %w", err)
	}

	if err := f.git.WithContext(ctx).Clone(cloneURL, dir); err != nil {
		// Best-effort cleanup so repeated failures do not leak disk state.
		_ = f.fs.RemoveAll(dir)
		return nil, &FetchFailedError{URL: cloneURL, Err: err}
	}

	// The clone is a template snapshot, not a working repository.
	if err := f.fs.RemoveAll(filepath.Join(dir, ".git")); err != nil {
		_ = f.fs.RemoveAll(dir)
		return nil, &FetchFailedError{URL: cloneURL, Err: fmt.Errorf("failed to strip VCS metadata: %w", err)}
	}

	return &Snapshot{
		FS:  os.DirFS(dir),
		Dir: dir,
		cleanup: func() error {
			return f.fs.RemoveAll(dir)
		},
	}, nil
}

// resolveCloneURL turns a github.com reference into its canonical clone
// URL via the API when a client is available. Resolution failures fall
// back to the normalized URL; the clone itself surfaces the real error.
func (f *Fetcher) resolveCloneURL(ctx context.Context, identifier string) string {
	owner, repo, ok := github.ParseRepoRef(identifier)
	if !ok {
		return normalizeCloneURL(identifier)
	}

	if f.github != nil {
		if repository, err := f.github.GetRepository(ctx, owner, repo); err == nil {
			return repository.CloneURL
		}
	}

	return fmt.Sprintf("https://github.com/%s/%s.git", owner, repo)
}

func normalizeCloneURL(identifier string) string {
	if strings.HasPrefix(identifier, "http://") ||
		strings.HasPrefix(identifier, "https://") ||
		strings.HasPrefix(identifier, "git@") ||
		strings.HasPrefix(identifier, "git://") {
		return identifier
	}
	return "https://" + identifier
}

// tempCloneDir creates a process-unique staging directory. The name
// combines a wall-clock timestamp with random entropy so concurrent
// invocations in the same temp base can never collide.
func (f *Fetcher) tempCloneDir() (string, error) {
	suffix, err := gonanoid.New(8)
	if err != nil {
		return "", err
	}

	pattern := fmt.Sprintf("mcpforge-%d-%s-*", time.Now().UnixNano(), suffix)
	return f.fs.MkdirTemp(f.tempBase, pattern)
}
