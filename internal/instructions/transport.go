package instructions

import (
	"strings"

	"github.com/mcpforge/mcpforge/internal/models"
	"github.com/mcpforge/mcpforge/internal/template"
)

// DetermineTransportType derives the transport of the generated server.
//
// An explicit transportType in the control file always wins. Without one,
// the template name is inspected for the HTTP naming convention; anything
// else is stdio. Pure and deterministic for the same two inputs.
func DetermineTransportType(instructions *models.ConfigInstructions, templateName string) models.TransportKind {
	if instructions != nil && instructions.TransportType != "" {
		return instructions.TransportType
	}

	if strings.Contains(strings.ToLower(templateName), template.HTTPTemplateMarker) {
		return models.TransportHTTP
	}

	return models.TransportStdio
}
