package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/mcpforge/mcpforge/internal/filesystem"
	"github.com/mcpforge/mcpforge/internal/instructions"
	"github.com/mcpforge/mcpforge/internal/template"
)

// Materializer copies a template snapshot into the destination project
// directory. The reserved control file never reaches the destination, and
// entries matched by a template-root .gitignore (stray node_modules or
// build output in a local template) are not copied either.
type Materializer struct {
	fs filesystem.FileSystem
}

// NewMaterializer creates a new Materializer
func NewMaterializer(fs filesystem.FileSystem) *Materializer {
	return &Materializer{fs: fs}
}

// Materialize copies every file under the snapshot into destDir,
// creating directories as needed. Conflict handling for an existing
// destDir is the caller's job; the engine never prompts.
func (m *Materializer) Materialize(snapshot *template.Snapshot, destDir string) error {
	if err := m.fs.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	ignore := loadIgnoreRules(snapshot.FS)

	return fs.WalkDir(snapshot.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." {
			return nil
		}

		if d.IsDir() && d.Name() == ".git" {
			return fs.SkipDir
		}
		if !d.IsDir() && path == instructions.ControlFileName {
			return nil
		}

		if ignore != nil {
			if match := ignore.Relative(path, d.IsDir()); match != nil && match.Ignore() {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
		}

		destPath := filepath.Join(destDir, filepath.FromSlash(path))

		if d.IsDir() {
			if err := m.fs.MkdirAll(destPath, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", destPath, err)
			}
			return nil
		}

		data, err := fs.ReadFile(snapshot.FS, path)
		if err != nil {
			return fmt.Errorf("failed to read %s from snapshot: %w", path, err)
		}

		if err := m.fs.WriteFile(destPath, data, filePerm(d)); err != nil {
			return fmt.Errorf("failed to write %s: %w", destPath, err)
		}

		return nil
	})
}

// loadIgnoreRules parses a .gitignore at the snapshot root, if any.
func loadIgnoreRules(root fs.FS) gitignore.GitIgnore {
	data, err := fs.ReadFile(root, ".gitignore")
	if err != nil {
		return nil
	}
	return gitignore.New(bytes.NewReader(data), ".", nil)
}

// filePerm maps snapshot file modes onto destination permissions.
// Embedded files carry read-only modes, so the executable bit is the only
// thing worth preserving.
func filePerm(d fs.DirEntry) fs.FileMode {
	info, err := d.Info()
	if err == nil && info.Mode()&0o111 != 0 {
		return 0o755
	}
	return 0o644
}
