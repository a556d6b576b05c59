package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mcpforge/mcpforge/internal/filesystem"
	"github.com/mcpforge/mcpforge/internal/manifest"
	"github.com/mcpforge/mcpforge/internal/models"
	"golang.org/x/mod/modfile"
)

// MetadataRewriter stamps the new project's identity onto the manifest
// and documentation of a freshly materialized destination directory.
// Missing files are skipped silently; absence is not an error.
type MetadataRewriter struct {
	fs filesystem.FileSystem
}

// NewMetadataRewriter creates a new MetadataRewriter
func NewMetadataRewriter(fs filesystem.FileSystem) *MetadataRewriter {
	return &MetadataRewriter{fs: fs}
}

// Rewrite applies the identity to the destination's manifest and README.
func (r *MetadataRewriter) Rewrite(destDir string, identity models.ProjectIdentity) error {
	if err := r.rewriteManifest(destDir, identity); err != nil {
		return err
	}
	return r.rewriteReadme(destDir, identity)
}

func (r *MetadataRewriter) rewriteManifest(destDir string, identity models.ProjectIdentity) error {
	pkgPath := filepath.Join(destDir, "package.json")
	if r.fs.Exists(pkgPath) {
		return r.rewritePackageJSON(pkgPath, identity)
	}

	modPath := filepath.Join(destDir, "go.mod")
	if r.fs.Exists(modPath) {
		return r.rewriteGoMod(modPath, identity)
	}

	return nil
}

// rewritePackageJSON overwrites name, description and author; every other
// field is carried through untouched.
func (r *MetadataRewriter) rewritePackageJSON(path string, identity models.ProjectIdentity) error {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read package.json: %w", err)
	}

	doc, err := manifest.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse package.json: %w", err)
	}

	doc.SetString("name", identity.Name)
	doc.SetString("description", identity.Description)
	doc.SetString("author", identity.Author)

	if err := r.fs.WriteFile(path, doc.Serialize(), 0o644); err != nil {
		return fmt.Errorf("failed to write package.json: %w", err)
	}

	return nil
}

// rewriteGoMod renames the module of a Go-flavored template.
func (r *MetadataRewriter) rewriteGoMod(path string, identity models.ProjectIdentity) error {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read go.mod: %w", err)
	}

	file, err := modfile.Parse("go.mod", data, nil)
	if err != nil {
		return fmt.Errorf("failed to parse go.mod: %w", err)
	}

	if err := file.AddModuleStmt(identity.Name); err != nil {
		return fmt.Errorf("failed to set module path: %w", err)
	}

	formatted, err := file.Format()
	if err != nil {
		return fmt.Errorf("failed to format go.mod: %w", err)
	}

	if err := r.fs.WriteFile(path, formatted, 0o644); err != nil {
		return fmt.Errorf("failed to write go.mod: %w", err)
	}

	return nil
}

func (r *MetadataRewriter) rewriteReadme(destDir string, identity models.ProjectIdentity) error {
	readmePath := filepath.Join(destDir, "README.md")
	if !r.fs.Exists(readmePath) {
		return nil
	}

	data, err := r.fs.ReadFile(readmePath)
	if err != nil {
		return fmt.Errorf("failed to read README.md: %w", err)
	}

	rewritten := rewriteReadme(data, identity, destDir)

	if err := r.fs.WriteFile(readmePath, rewritten, 0o644); err != nil {
		return fmt.Errorf("failed to write README.md: %w", err)
	}

	return nil
}

// TitleCase converts a hyphenated project name into its display heading:
// the first letter of each segment is capitalized and the segments are
// concatenated, so "my-cool-server" becomes "MyCoolServer".
func TitleCase(name string) string {
	segments := strings.Split(name, "-")
	var b strings.Builder
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		b.WriteString(strings.ToUpper(segment[:1]))
		b.WriteString(segment[1:])
	}
	return b.String()
}
