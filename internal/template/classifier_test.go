package template

import (
	"testing"

	"github.com/mcpforge/mcpforge/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify_BuiltinRegistry(t *testing.T) {
	for _, name := range BuiltinNames() {
		ref := Classify(name)
		assert.Equal(t, models.SourceBuiltIn, ref.Kind, "builtin %q", name)
		assert.Equal(t, name, ref.Identifier)
	}
}

func TestClassify_BuiltinNamespacePrefix(t *testing.T) {
	ref := Classify("builtin:basic-stdio")
	assert.Equal(t, models.SourceBuiltIn, ref.Kind)
	assert.Equal(t, "basic-stdio", ref.Identifier)
}

func TestClassify_RemoteMarkersWinOverBuiltinNames(t *testing.T) {
	// A repository that happens to be named like a built-in must still
	// resolve remotely.
	ref := Classify("https://github.com/acme/basic-stdio")
	assert.Equal(t, models.SourceRemoteRepository, ref.Kind)
}

func TestClassify_Remote(t *testing.T) {
	remotes := []string{
		"https://github.com/acme/template",
		"github.com/acme/template",
		"https://gitlab.com/acme/template",
		"git@github.com:acme/template.git",
		"git://example.com/template",
		"https://example.com/template.git",
		"example.org/repos/template.git",
	}
	for _, reference := range remotes {
		assert.Equal(t, models.SourceRemoteRepository, Classify(reference).Kind, "reference %q", reference)
	}
}

func TestClassify_LocalPath(t *testing.T) {
	locals := []string{
		"./my-template",
		"../shared/template",
		"/abs/path/template",
		"some-unregistered-name",
	}
	for _, reference := range locals {
		assert.Equal(t, models.SourceLocalPath, Classify(reference).Kind, "reference %q", reference)
	}
}

func TestClassify_ExplicitPathBeatsRegistryName(t *testing.T) {
	// The registry only claims exact matches; a path spelling always
	// classifies as a local path.
	ref := Classify("./basic-stdio")
	assert.Equal(t, models.SourceLocalPath, ref.Kind)
}

func TestBuiltinNames(t *testing.T) {
	names := BuiltinNames()
	assert.Contains(t, names, "basic-stdio")
	assert.Contains(t, names, "basic-http")
}

func TestIsBuiltin(t *testing.T) {
	assert.True(t, IsBuiltin("basic-stdio"))
	assert.True(t, IsBuiltin("basic-http"))
	assert.False(t, IsBuiltin("basic-websocket"))
}
