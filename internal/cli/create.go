package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mcpforge/mcpforge/internal/filesystem"
	"github.com/mcpforge/mcpforge/internal/git"
	"github.com/mcpforge/mcpforge/internal/github"
	"github.com/mcpforge/mcpforge/internal/installer"
	"github.com/mcpforge/mcpforge/internal/instructions"
	"github.com/mcpforge/mcpforge/internal/models"
	"github.com/mcpforge/mcpforge/internal/scaffold"
	"github.com/mcpforge/mcpforge/internal/template"
	"github.com/mcpforge/mcpforge/internal/tui/create"
	"github.com/spf13/cobra"
)

// CreateCommand handles project creation
type CreateCommand struct {
	fs        filesystem.FileSystem
	git       git.GitClient
	github    github.GitHubClient
	installer installer.Installer

	templateRef string
	description string
	author      string
	lint        bool
	format      bool
	force       bool
	skipInstall bool
	noPrompt    bool
}

// RegisterFlags attaches the create flags to cmd.
func (c *CreateCommand) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.templateRef, "template", "t", "", "template: built-in name, local path, or git repository URL")
	cmd.Flags().StringVarP(&c.description, "description", "d", "", "project description")
	cmd.Flags().StringVarP(&c.author, "author", "a", "", "project author")
	cmd.Flags().BoolVar(&c.lint, "lint", false, "add ESLint configuration")
	cmd.Flags().BoolVar(&c.format, "format", false, "add Prettier configuration")
	cmd.Flags().BoolVar(&c.force, "force", false, "materialize into an existing directory")
	cmd.Flags().BoolVar(&c.skipInstall, "skip-install", false, "do not run npm install after scaffolding")
	cmd.Flags().BoolVar(&c.noPrompt, "no-prompt", false, "fail instead of prompting for missing inputs")
}

// Run executes the create command
func (c *CreateCommand) Run(cmd *cobra.Command, args []string) error {
	inputs := create.Inputs{
		Description: c.description,
		Author:      c.author,
		Template:    c.templateRef,
		Lint:        c.lint,
		Format:      c.format,
		LintSet:     cmd.Flags().Changed("lint"),
		FormatSet:   cmd.Flags().Changed("format"),
	}
	if len(args) > 0 {
		inputs.Name = args[0]
	}

	resolved, err := c.resolveInputs(inputs)
	if err != nil {
		return err
	}
	if resolved == nil {
		// User aborted a prompt; nothing was created.
		return nil
	}

	if err := create.ValidateProjectName(resolved.Name); err != nil {
		return err
	}

	ref := template.Classify(resolved.Template)
	if ref.Kind == models.SourceRemoteRepository && !c.git.IsInstalled() {
		return fmt.Errorf("git is required to fetch remote templates; install git or pick a built-in template")
	}

	cwd, err := c.fs.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	destDir := filepath.Join(cwd, resolved.Name)

	if c.fs.Exists(destDir) && !c.force {
		if c.noPrompt {
			return fmt.Errorf("destination %s already exists (use --force to materialize into it)", destDir)
		}
		proceed, err := create.ConfirmOverwrite(resolved.Name)
		if err != nil {
			return err
		}
		if !proceed {
			return nil
		}
	}

	engine := scaffold.NewEngine(c.fs, c.git, c.github)
	engine.Warnings = cmd.ErrOrStderr()

	result, err := engine.CreateProject(cmd.Context(), scaffold.CreateOptions{
		TemplateRef: resolved.Template,
		DestDir:     destDir,
		Identity: models.ProjectIdentity{
			Name:        resolved.Name,
			Description: resolved.Description,
			Author:      resolved.Author,
		},
		Choices: models.CustomizationChoices{
			Lint:   resolved.Lint,
			Format: resolved.Format,
		},
	})
	if err != nil {
		return err
	}

	installed := false
	if !c.skipInstall && c.installer != nil && c.installer.IsAvailable() {
		if err := c.installer.Install(cmd.Context(), destDir); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		} else {
			installed = true
		}
	}

	setupText, err := instructions.Render(result, resolved.Name, installed)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), create.RenderSuccess(result, resolved.Name, setupText))

	return nil
}

// resolveInputs fills missing answers interactively, or fails fast when
// prompting is disabled.
func (c *CreateCommand) resolveInputs(inputs create.Inputs) (*create.Inputs, error) {
	complete := inputs.Name != "" && inputs.Template != "" && inputs.Description != ""
	if complete && inputs.LintSet && inputs.FormatSet {
		return &inputs, nil
	}

	if c.noPrompt {
		if inputs.Name == "" {
			return nil, fmt.Errorf("project name is required with --no-prompt")
		}
		if inputs.Template == "" {
			inputs.Template = "basic-stdio"
		}
		if inputs.Description == "" {
			inputs.Description = "A Model Context Protocol server"
		}
		return &inputs, nil
	}

	return create.NewFlow().Run(inputs)
}
