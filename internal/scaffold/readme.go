package scaffold

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/mcpforge/mcpforge/internal/models"
)

// The README rewrite is a best-effort textual pass over an unconstrained
// document. Exactly three rules, each applied to the FIRST match only,
// and none of them errors when nothing matches:
//
//  1. the first heading line becomes a heading built from the project name
//  2. the first non-empty, non-heading line becomes the description
//  3. the first inline "key": "value" pair inside a fenced code block is
//     replaced by a full server-configuration stanza
//
// YAML frontmatter, if present, is carried through untouched and not
// scanned by any rule.

var inlineServerEntryRegex = regexp.MustCompile(`^(\s*)"[^"]+":\s*".*",?\s*$`)

// rewriteReadme applies the three rules to a README body.
func rewriteReadme(data []byte, identity models.ProjectIdentity, destDir string) []byte {
	var matter map[string]interface{}
	body, err := frontmatter.Parse(bytes.NewReader(data), &matter)
	if err != nil {
		body = data
	}
	prefix := data[:len(data)-len(body)]

	lines := strings.Split(string(body), "\n")

	headingDone := false
	descriptionDone := false
	stanzaDone := false
	inFence := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}

		if inFence {
			if !stanzaDone && inlineServerEntryRegex.MatchString(line) {
				lines[i] = serverConfigStanza(line, identity.Name, destDir)
				stanzaDone = true
			}
			continue
		}

		if !headingDone && strings.HasPrefix(trimmed, "#") {
			lines[i] = "# " + TitleCase(identity.Name)
			headingDone = true
			continue
		}

		if !descriptionDone && trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			lines[i] = identity.Description
			descriptionDone = true
		}
	}

	return append(prefix, []byte(strings.Join(lines, "\n"))...)
}

// serverConfigStanza builds the canonical multi-line server entry that
// replaces a template's one-line placeholder, preserving the matched
// line's indentation.
func serverConfigStanza(matched, projectName, destDir string) string {
	indent := inlineServerEntryRegex.FindStringSubmatch(matched)[1]
	entryPath := filepath.ToSlash(filepath.Join(destDir, "dist", "index.js"))

	var b strings.Builder
	fmt.Fprintf(&b, "%s%q: {\n", indent, projectName)
	fmt.Fprintf(&b, "%s  \"command\": \"node\",\n", indent)
	fmt.Fprintf(&b, "%s  \"args\": [%q]\n", indent, entryPath)
	fmt.Fprintf(&b, "%s}", indent)
	return b.String()
}
