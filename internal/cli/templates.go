package cli

import (
	"fmt"

	"github.com/mcpforge/mcpforge/internal/template"
	"github.com/spf13/cobra"
)

// NewTemplatesCommand lists the built-in templates.
func NewTemplatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List built-in templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range template.BuiltinNames() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
