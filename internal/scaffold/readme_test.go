package scaffold

import (
	"strings"
	"testing"

	"github.com/mcpforge/mcpforge/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRewriteReadme_AllThreeRules(t *testing.T) {
	input := []byte(`# MCP Server

A Model Context Protocol server built with the TypeScript SDK.

## Connecting Claude Desktop

` + "```json" + `
{
  "mcpServers": {
    "mcp-server": "./dist/index.js"
  }
}
` + "```" + `
`)

	got := string(rewriteReadme(input, testIdentity, "/home/dev/weather-server"))

	assert.Contains(t, got, "# WeatherServer\n")
	assert.Contains(t, got, "Fetches weather forecasts over MCP\n")
	assert.Contains(t, got, `"weather-server": {`)
	assert.Contains(t, got, `"command": "node"`)
	assert.Contains(t, got, `"args": ["/home/dev/weather-server/dist/index.js"]`)
	assert.NotContains(t, got, `"mcp-server"`)

	// Later headings are untouched.
	assert.Contains(t, got, "## Connecting Claude Desktop")
}

func TestRewriteReadme_FirstMatchOnly(t *testing.T) {
	input := []byte(`# First Heading

First description line.

# Second Heading

Second paragraph stays.

` + "```json" + `
{
  "first": "entry"
}
` + "```" + `

` + "```json" + `
{
  "second": "entry"
}
` + "```" + `
`)

	got := string(rewriteReadme(input, testIdentity, "/home/dev/weather-server"))

	assert.Contains(t, got, "# WeatherServer")
	assert.Contains(t, got, "# Second Heading")
	assert.Contains(t, got, "Second paragraph stays.")
	assert.NotContains(t, got, "First description line.")

	// Only the first inline entry becomes a stanza.
	assert.Contains(t, got, `"weather-server": {`)
	assert.Contains(t, got, `"second": "entry"`)
	assert.NotContains(t, got, `"first": "entry"`)
}

func TestRewriteReadme_PreservesFrontmatter(t *testing.T) {
	input := []byte(`---
title: template-page
tags: [mcp, server]
---

# MCP Server

Old description.
`)

	got := string(rewriteReadme(input, testIdentity, "/home/dev/weather-server"))

	assert.True(t, strings.HasPrefix(got, "---\ntitle: template-page"))
	assert.Contains(t, got, "tags: [mcp, server]")
	assert.Contains(t, got, "# WeatherServer")
	assert.Contains(t, got, "Fetches weather forecasts over MCP")
}

func TestRewriteReadme_NoMatchesIsANoOp(t *testing.T) {
	input := []byte("")
	assert.Equal(t, "", string(rewriteReadme(input, testIdentity, "/tmp/x")))

	fenceOnly := []byte("```bash\nnpm install\n```\n")
	got := string(rewriteReadme(fenceOnly, models.ProjectIdentity{Name: "x"}, "/tmp/x"))
	assert.Contains(t, got, "npm install")
}

func TestRewriteReadme_StanzaKeepsIndentation(t *testing.T) {
	input := []byte("```json\n{\n      \"mcp-server\": \"./dist/index.js\"\n}\n```\n")

	got := string(rewriteReadme(input, testIdentity, "/home/dev/weather-server"))

	assert.Contains(t, got, "      \"weather-server\": {\n")
	assert.Contains(t, got, "        \"command\": \"node\",\n")
}
