package models

import "fmt"

// SourceKind classifies where a template reference points to.
type SourceKind string

const (
	// SourceBuiltIn is a template shipped inside the mcpforge binary.
	SourceBuiltIn SourceKind = "builtin"

	// SourceLocalPath is a template directory on the local filesystem.
	SourceLocalPath SourceKind = "local"

	// SourceRemoteRepository is a template hosted in a remote git repository.
	SourceRemoteRepository SourceKind = "remote"
)

// TemplateReference is a classified template reference.
//
// Raw is the string exactly as the caller supplied it. Identifier is the
// normalized form the fetcher operates on: the registered built-in name,
// the filesystem path, or the repository URL. A reference is immutable
// once classified.
type TemplateReference struct {
	Raw        string
	Kind       SourceKind
	Identifier string
}

// Name returns the short template name used for transport inference and
// reporting: the built-in name, or the last path segment for local and
// remote references.
func (r TemplateReference) Name() string {
	return lastSegment(r.Identifier)
}

func (r TemplateReference) String() string {
	return fmt.Sprintf("%s(%s)", r.Kind, r.Identifier)
}

func lastSegment(s string) string {
	end := len(s)
	for end > 0 && (s[end-1] == '/' || s[end-1] == '\\') {
		end--
	}
	start := end
	for start > 0 && s[start-1] != '/' && s[start-1] != '\\' {
		start--
	}
	name := s[start:end]
	if len(name) > 4 && name[len(name)-4:] == ".git" {
		name = name[:len(name)-4]
	}
	return name
}
