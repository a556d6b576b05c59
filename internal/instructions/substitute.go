package instructions

import (
	"encoding/json"
	"regexp"

	"github.com/mcpforge/mcpforge/internal/models"
)

// The closed set of placeholder names recognized inside a control file's
// serialized text. Anything else spelled ${...} is left untouched; this
// is a find-and-replace, not a templating language.
const (
	PlaceholderProjectName = "projectName"
	PlaceholderProjectDir  = "projectDir"
)

var placeholderRegex = regexp.MustCompile(`\$\{([a-zA-Z]+)\}`)

// substituteText replaces known placeholder tokens in text verbatim.
func substituteText(text, projectName, projectDir string) string {
	return placeholderRegex.ReplaceAllStringFunc(text, func(token string) string {
		name := placeholderRegex.FindStringSubmatch(token)[1]
		switch name {
		case PlaceholderProjectName:
			return projectName
		case PlaceholderProjectDir:
			return projectDir
		default:
			return token
		}
	})
}

// Substitute renders the placeholders of a parsed instructions document:
// serialize, replace tokens over the text form, parse back. If the
// substituted text no longer parses (a pathological project name can
// break JSON syntax), the unsubstituted instructions are returned so the
// pipeline keeps going.
func Substitute(instructions *models.ConfigInstructions, projectName, projectDir string) *models.ConfigInstructions {
	if instructions == nil {
		return nil
	}

	serialized, err := json.Marshal(instructions)
	if err != nil {
		return instructions
	}

	substituted := substituteText(string(serialized), projectName, projectDir)

	var result models.ConfigInstructions
	if err := json.Unmarshal([]byte(substituted), &result); err != nil {
		return instructions
	}

	return &result
}
