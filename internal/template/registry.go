package template

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed all:templates
var builtinFS embed.FS

// BuiltinNamespacePrefix is the reserved prefix that forces a reference to
// resolve against the built-in registry, e.g. "builtin:basic-stdio".
const BuiltinNamespacePrefix = "builtin:"

// HTTPTemplateMarker is the naming convention that associates a template
// with the HTTP transport. Templates without it default to stdio.
const HTTPTemplateMarker = "http"

// BuiltinNames returns the registered built-in template identifiers in
// stable order.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("templates")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

// IsBuiltin reports whether name exactly matches a registered built-in
// template identifier.
func IsBuiltin(name string) bool {
	info, err := fs.Stat(builtinFS, "templates/"+name)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// builtinRoot returns the embedded filesystem rooted at the named built-in
// template.
func builtinRoot(name string) (fs.FS, error) {
	return fs.Sub(builtinFS, "templates/"+name)
}

// stripNamespace removes the reserved prefix if present.
func stripNamespace(ref string) string {
	return strings.TrimPrefix(ref, BuiltinNamespacePrefix)
}
