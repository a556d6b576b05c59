package instructions

import (
	"testing"

	"github.com/mcpforge/mcpforge/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstituteText(t *testing.T) {
	got := substituteText(
		"Add ${projectName} under ${projectDir}, keep ${unknownToken} as-is.",
		"weather-server",
		"/home/dev/weather-server",
	)

	assert.Equal(t, "Add weather-server under /home/dev/weather-server, keep ${unknownToken} as-is.", got)
}

func TestSubstitute(t *testing.T) {
	instructions := &models.ConfigInstructions{
		TransportType: models.TransportStdio,
		Platforms: map[string]models.PlatformConfig{
			"Claude Desktop": {
				Instructions: "Register ${projectName} in your client.",
				Snippet:      "{\"mcpServers\": {\"${projectName}\": {\"args\": [\"${projectDir}/dist/index.js\"]}}}",
			},
		},
	}

	got := Substitute(instructions, "weather-server", "/home/dev/weather-server")
	require.NotNil(t, got)

	platform := got.Platforms["Claude Desktop"]
	assert.Equal(t, "Register weather-server in your client.", platform.Instructions)
	assert.Contains(t, platform.Snippet, `"weather-server"`)
	assert.Contains(t, platform.Snippet, "/home/dev/weather-server/dist/index.js")

	// The input document is left untouched.
	assert.Contains(t, instructions.Platforms["Claude Desktop"].Instructions, "${projectName}")
}

func TestSubstitute_Nil(t *testing.T) {
	assert.Nil(t, Substitute(nil, "weather-server", "/tmp/weather-server"))
}

func TestSubstitute_BrokenResultFallsBack(t *testing.T) {
	instructions := &models.ConfigInstructions{
		TransportType: models.TransportStdio,
		Platforms: map[string]models.PlatformConfig{
			"Claude Desktop": {Instructions: "Register ${projectName}."},
		},
	}

	// A project name containing a quote breaks the serialized JSON, so the
	// unsubstituted document is returned instead.
	got := Substitute(instructions, `evil" : { "x`, "/tmp/x")
	assert.Same(t, instructions, got)
}

func TestDefaults_CoverBothTransports(t *testing.T) {
	stdio := Defaults(models.TransportStdio)
	require.NotNil(t, stdio)
	assert.Equal(t, models.TransportStdio, stdio.TransportType)
	assert.NotEmpty(t, stdio.Platforms["Claude Desktop"].Snippet)
	assert.Contains(t, stdio.Platforms["Claude Desktop"].Snippet, "${projectDir}")

	http := Defaults(models.TransportHTTP)
	require.NotNil(t, http)
	assert.Equal(t, models.TransportHTTP, http.TransportType)
	assert.Contains(t, http.Platforms["Claude Desktop"].Snippet, "http://localhost")
}
