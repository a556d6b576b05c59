package instructions

import (
	"github.com/mcpforge/mcpforge/internal/models"
)

// Defaults returns the built-in setup instructions for a transport kind,
// used whenever a template ships no control file. Placeholders are still
// unsubstituted; run the result through Substitute before display.
func Defaults(kind models.TransportKind) *models.ConfigInstructions {
	switch kind {
	case models.TransportHTTP:
		return &models.ConfigInstructions{
			TransportType: models.TransportHTTP,
			Platforms: map[string]models.PlatformConfig{
				"Claude Desktop": {
					Instructions: "Build and start ${projectName} with `npm run build && npm start`, then point your client at the streamable HTTP endpoint.",
					Snippet:      "{\n  \"mcpServers\": {\n    \"${projectName}\": {\n      \"url\": \"http://localhost:3000/mcp\"\n    }\n  }\n}",
				},
			},
		}
	default:
		return &models.ConfigInstructions{
			TransportType: models.TransportStdio,
			Platforms: map[string]models.PlatformConfig{
				"Claude Desktop": {
					ConfigPath:   "~/Library/Application Support/Claude/claude_desktop_config.json (macOS) or %APPDATA%\\Claude\\claude_desktop_config.json (Windows)",
					Instructions: "Build ${projectName} with `npm run build`, then add the snippet below to the mcpServers section of your Claude Desktop configuration and restart Claude Desktop.",
					Snippet:      "{\n  \"mcpServers\": {\n    \"${projectName}\": {\n      \"command\": \"node\",\n      \"args\": [\"${projectDir}/dist/index.js\"]\n    }\n  }\n}",
				},
			},
		}
	}
}
