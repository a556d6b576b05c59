package instructions

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/mcpforge/mcpforge/internal/models"
)

const setupTemplate = `{{ .ProjectName }} is ready ({{ .TransportType }} transport).

Next steps:
  cd {{ .ProjectName }}
{{- if not .Installed }}
  npm install
{{- end }}
  npm run build
{{ range $platform := .PlatformNames }}
{{ $config := index $.Platforms $platform }}{{ $platform }}
{{ repeat (len $platform) "-" }}
{{- if $config.ConfigPath }}
Config file: {{ $config.ConfigPath }}
{{- end }}
{{- if $config.Instructions }}
{{ $config.Instructions | wrap 76 }}
{{- end }}
{{- if $config.Snippet }}
{{ $config.Snippet | indent 2 }}
{{- end }}
{{ end }}`

type setupData struct {
	ProjectName   string
	TransportType models.TransportKind
	Installed     bool
	PlatformNames []string
	Platforms     map[string]models.PlatformConfig
}

// Render produces the human-readable setup text for a completed run.
// The instructions passed in should already be placeholder-substituted.
func Render(result *models.MaterializationResult, projectName string, installed bool) (string, error) {
	resolved := result.ConfigInstructions
	if resolved == nil {
		resolved = Defaults(result.TransportType)
	}

	tmpl, err := template.New("setup").Funcs(sprig.TxtFuncMap()).Parse(setupTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse setup template: %w", err)
	}

	data := setupData{
		ProjectName:   projectName,
		TransportType: result.TransportType,
		Installed:     installed,
		PlatformNames: resolved.PlatformNames(),
		Platforms:     resolved.Platforms,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render setup instructions: %w", err)
	}

	return buf.String(), nil
}
