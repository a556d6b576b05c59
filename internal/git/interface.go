package git

import (
	"context"
)

// GitClient provides an abstraction over git operations for testability.
//
// The engine only ever clones: a remote template reference is fetched once,
// shallow, into a directory the caller owns. There is no fetch/pull/push
// surface because the snapshot never lives past a single invocation.
type GitClient interface {
	// Clone clones the repository at url into dest. dest must not exist or
	// must be an empty directory. The clone is shallow (depth 1).
	Clone(url, dest string) error

	// IsInstalled reports whether a usable git binary is available.
	IsInstalled() bool

	// Context support for network operations
	WithContext(ctx context.Context) GitClient
}
