package create

import (
	"fmt"
	"strings"

	"github.com/mcpforge/mcpforge/internal/models"
	"github.com/mcpforge/mcpforge/internal/tui"
)

// RenderSuccess renders the post-creation summary: a confirmation line
// and the setup instructions inside a panel.
func RenderSuccess(result *models.MaterializationResult, projectName, setupText string) string {
	var b strings.Builder

	b.WriteString(tui.SuccessStyle.Render(fmt.Sprintf("✓ Created %s", projectName)))
	b.WriteString("\n")
	b.WriteString(tui.SubtleStyle.Render(fmt.Sprintf("template: %s · transport: %s", result.TemplateName, result.TransportType)))
	b.WriteString("\n\n")
	b.WriteString(tui.BorderStyle.Render(strings.TrimRight(setupText, "\n")))
	b.WriteString("\n")

	return b.String()
}
