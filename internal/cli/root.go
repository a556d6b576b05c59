package cli

import (
	"fmt"

	"github.com/mcpforge/mcpforge/internal/filesystem"
	"github.com/mcpforge/mcpforge/internal/git"
	"github.com/mcpforge/mcpforge/internal/github"
	"github.com/mcpforge/mcpforge/internal/installer"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command. Running mcpforge without a
// subcommand scaffolds a project, matching the create-tool convention.
func NewRootCommand(fs filesystem.FileSystem, gitClient git.GitClient, ghClient github.GitHubClient, inst installer.Installer) *cobra.Command {
	create := &CreateCommand{
		fs:        fs,
		git:       gitClient,
		github:    ghClient,
		installer: inst,
	}

	rootCmd := &cobra.Command{
		Use:   "mcpforge [project-name]",
		Short: "Scaffold Model Context Protocol servers",
		Long: `mcpforge materializes a ready-to-build MCP server project from a
template: a built-in one, a local directory, or a remote git repository.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         create.Run,
	}

	create.RegisterFlags(rootCmd)

	rootCmd.AddCommand(NewTemplatesCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	gitClient := git.NewOSGitClient()
	ghClient := github.NewClientFromEnv()
	inst := installer.NewNpmInstaller()

	rootCmd := NewRootCommand(fs, gitClient, ghClient, inst)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
