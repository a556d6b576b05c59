package scaffold

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/mcpforge/mcpforge/internal/filesystem"
	"github.com/mcpforge/mcpforge/internal/manifest"
	"github.com/mcpforge/mcpforge/internal/models"
)

const (
	eslintConfigFile   = ".eslintrc.json"
	prettierConfigFile = ".prettierrc"
)

var lintDevDependencies = map[string]string{
	"eslint":                           "^8.57.0",
	"@typescript-eslint/parser":        "^7.18.0",
	"@typescript-eslint/eslint-plugin": "^7.18.0",
}

var lintScripts = map[string]string{
	"lint":     "eslint src --ext .ts",
	"lint:fix": "eslint src --ext .ts --fix",
}

var formatDevDependencies = map[string]string{
	"prettier": "^3.3.0",
}

var formatScripts = map[string]string{
	"format":       "prettier --write \"src/**/*.ts\"",
	"format:check": "prettier --check \"src/**/*.ts\"",
}

// combinedDevDependencies bridge eslint and prettier so the two do not
// fight over formatting rules. Applied only when both choices are on.
var combinedDevDependencies = map[string]string{
	"eslint-config-prettier": "^9.1.0",
	"eslint-plugin-prettier": "^5.2.0",
}

const eslintConfigDefault = `{
  "root": true,
  "parser": "@typescript-eslint/parser",
  "plugins": ["@typescript-eslint"],
  "extends": ["eslint:recommended", "plugin:@typescript-eslint/recommended"],
  "env": {
    "node": true,
    "es2022": true
  }
}
`

const prettierConfigDefault = `{
  "semi": true,
  "singleQuote": false,
  "trailingComma": "es5",
  "printWidth": 100
}
`

// CustomizationApplier augments a generated manifest with opt-in tooling.
// Merges are declarative key assignments: existing template keys always
// win, so applying the same choices twice yields the same manifest.
type CustomizationApplier struct {
	fs filesystem.FileSystem
}

// NewCustomizationApplier creates a new CustomizationApplier
func NewCustomizationApplier(fs filesystem.FileSystem) *CustomizationApplier {
	return &CustomizationApplier{fs: fs}
}

// Apply merges the tooling declarations for each enabled choice into the
// destination manifest and writes the tool configuration files. Templates
// without a package.json (Go templates) are left alone.
func (a *CustomizationApplier) Apply(destDir string, choices models.CustomizationChoices) error {
	if !choices.Any() {
		return nil
	}

	pkgPath := filepath.Join(destDir, "package.json")
	if !a.fs.Exists(pkgPath) {
		return nil
	}

	data, err := a.fs.ReadFile(pkgPath)
	if err != nil {
		return fmt.Errorf("failed to read package.json: %w", err)
	}

	doc, err := manifest.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse package.json: %w", err)
	}

	if choices.Lint {
		if err := mergeSection(doc, "devDependencies", lintDevDependencies); err != nil {
			return err
		}
		if err := mergeSection(doc, "scripts", lintScripts); err != nil {
			return err
		}
		if err := a.writeConfigIfAbsent(destDir, eslintConfigFile, eslintConfigDefault); err != nil {
			return err
		}
	}

	if choices.Format {
		if err := mergeSection(doc, "devDependencies", formatDevDependencies); err != nil {
			return err
		}
		if err := mergeSection(doc, "scripts", formatScripts); err != nil {
			return err
		}
		if err := a.writeConfigIfAbsent(destDir, prettierConfigFile, prettierConfigDefault); err != nil {
			return err
		}
	}

	if choices.Lint && choices.Format {
		if err := mergeSection(doc, "devDependencies", combinedDevDependencies); err != nil {
			return err
		}
		// Lint config was written above; extend it with the prettier
		// bridge only if it actually exists.
		if err := a.extendESLintConfig(destDir); err != nil {
			return err
		}
	}

	if err := a.fs.WriteFile(pkgPath, doc.Serialize(), 0o644); err != nil {
		return fmt.Errorf("failed to write package.json: %w", err)
	}

	return nil
}

// mergeSection adds entries into a nested manifest object without
// overwriting anything the template already declares.
func mergeSection(doc *manifest.Document, section string, entries map[string]string) error {
	nested, err := doc.Object(section)
	if err != nil {
		return fmt.Errorf("failed to merge %s: %w", section, err)
	}

	for _, key := range sortedKeys(entries) {
		if !nested.Has(key) {
			nested.SetString(key, entries[key])
		}
	}

	doc.SetObject(section, nested)
	return nil
}

func (a *CustomizationApplier) writeConfigIfAbsent(destDir, name, content string) error {
	path := filepath.Join(destDir, name)
	if a.fs.Exists(path) {
		return nil
	}
	if err := a.fs.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// extendESLintConfig appends the prettier preset to the lint config's
// extends list, once.
func (a *CustomizationApplier) extendESLintConfig(destDir string) error {
	path := filepath.Join(destDir, eslintConfigFile)
	if !a.fs.Exists(path) {
		return nil
	}

	data, err := a.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", eslintConfigFile, err)
	}

	doc, err := manifest.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", eslintConfigFile, err)
	}

	var extends []string
	if raw, ok := doc.Get("extends"); ok {
		if err := json.Unmarshal(raw, &extends); err != nil {
			return fmt.Errorf("invalid extends list in %s: %w", eslintConfigFile, err)
		}
	}

	for _, entry := range extends {
		if entry == "prettier" {
			return nil
		}
	}
	extends = append(extends, "prettier")

	encoded, err := json.Marshal(extends)
	if err != nil {
		return err
	}
	doc.SetRaw("extends", encoded)

	if err := a.fs.WriteFile(path, doc.Serialize(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", eslintConfigFile, err)
	}

	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
