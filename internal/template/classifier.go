package template

import (
	"strings"

	"github.com/mcpforge/mcpforge/internal/models"
)

// remoteHostMarkers identify references that point at a hosted git
// repository. Checked before the built-in registry so a repository whose
// name collides with a built-in still resolves remotely.
var remoteHostMarkers = []string{
	"github.com",
	"gitlab.com",
	"bitbucket.org",
}

// Classify maps a template reference string to its source kind. It is a
// pure string decision: no network or filesystem access happens here.
//
// Precedence: remote-host markers win over everything; the built-in
// registry wins over local paths (a local directory that happens to share
// a built-in's name must be referenced as an explicit path, e.g.
// "./basic-stdio").
func Classify(reference string) models.TemplateReference {
	ref := strings.TrimSpace(reference)

	if isRemote(ref) {
		return models.TemplateReference{
			Raw:        reference,
			Kind:       models.SourceRemoteRepository,
			Identifier: ref,
		}
	}

	if name := stripNamespace(ref); name != ref || IsBuiltin(ref) {
		return models.TemplateReference{
			Raw:        reference,
			Kind:       models.SourceBuiltIn,
			Identifier: name,
		}
	}

	return models.TemplateReference{
		Raw:        reference,
		Kind:       models.SourceLocalPath,
		Identifier: ref,
	}
}

func isRemote(ref string) bool {
	for _, marker := range remoteHostMarkers {
		if strings.Contains(ref, marker) {
			return true
		}
	}
	if strings.HasPrefix(ref, "git@") || strings.HasPrefix(ref, "git://") {
		return true
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return true
	}
	return strings.HasSuffix(ref, ".git")
}
