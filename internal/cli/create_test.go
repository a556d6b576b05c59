package cli

import (
	"bytes"
	"testing"

	"github.com/mcpforge/mcpforge/internal/filesystem"
	"github.com/mcpforge/mcpforge/internal/git"
	"github.com/mcpforge/mcpforge/internal/installer"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliFixture struct {
	fs        *filesystem.MockFileSystem
	git       *git.MockGitClient
	installer *installer.MockInstaller
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	cmd       *cobra.Command
}

func newCLIFixture() *cliFixture {
	f := &cliFixture{
		fs:        filesystem.NewMockFileSystem(),
		git:       git.NewMockGitClient(),
		installer: installer.NewMockInstaller(),
		stdout:    &bytes.Buffer{},
		stderr:    &bytes.Buffer{},
	}
	f.fs.AddDir("/workspace")

	f.cmd = NewRootCommand(f.fs, f.git, nil, f.installer)
	f.cmd.SetOut(f.stdout)
	f.cmd.SetErr(f.stderr)
	return f
}

func (f *cliFixture) run(args ...string) error {
	f.cmd.SetArgs(args)
	return f.cmd.Execute()
}

func TestCreate_NoPrompt(t *testing.T) {
	f := newCLIFixture()

	require.NoError(t, f.run("weather-server", "--no-prompt", "--skip-install"))

	// basic-stdio is the default template.
	assert.True(t, f.fs.Exists("/workspace/weather-server/package.json"))
	assert.True(t, f.fs.Exists("/workspace/weather-server/src/index.ts"))

	pkg, err := f.fs.ReadFile("/workspace/weather-server/package.json")
	require.NoError(t, err)
	assert.Contains(t, string(pkg), `"name": "weather-server"`)
	assert.Contains(t, string(pkg), `"description": "A Model Context Protocol server"`)

	assert.Contains(t, f.stdout.String(), "weather-server")
	assert.Empty(t, f.installer.Installed)
}

func TestCreate_NoPromptRequiresName(t *testing.T) {
	f := newCLIFixture()

	err := f.run("--no-prompt")
	assert.ErrorContains(t, err, "project name is required")
}

func TestCreate_InvalidProjectName(t *testing.T) {
	f := newCLIFixture()

	err := f.run("Weather_Server!", "--no-prompt", "--skip-install")
	require.Error(t, err)
	assert.False(t, f.fs.Exists("/workspace/Weather_Server!"))
}

func TestCreate_ExistingDestination(t *testing.T) {
	f := newCLIFixture()
	f.fs.AddDir("/workspace/weather-server")

	err := f.run("weather-server", "--no-prompt", "--skip-install")
	assert.ErrorContains(t, err, "already exists")
}

func TestCreate_ForceIntoExistingDestination(t *testing.T) {
	f := newCLIFixture()
	f.fs.AddDir("/workspace/weather-server")

	require.NoError(t, f.run("weather-server", "--no-prompt", "--skip-install", "--force"))
	assert.True(t, f.fs.Exists("/workspace/weather-server/package.json"))
}

func TestCreate_HTTPTemplateFlag(t *testing.T) {
	f := newCLIFixture()

	require.NoError(t, f.run("api-server", "--no-prompt", "--skip-install",
		"--template", "basic-http",
		"--description", "An HTTP MCP server",
		"--author", "Jane Developer"))

	assert.True(t, f.fs.Exists("/workspace/api-server/package.json"))
	assert.False(t, f.fs.Exists("/workspace/api-server/config-instructions.json"))
	assert.Contains(t, f.stdout.String(), "http")
}

func TestCreate_CustomizationFlags(t *testing.T) {
	f := newCLIFixture()

	require.NoError(t, f.run("weather-server", "--no-prompt", "--skip-install", "--lint", "--format"))

	assert.True(t, f.fs.Exists("/workspace/weather-server/.eslintrc.json"))
	assert.True(t, f.fs.Exists("/workspace/weather-server/.prettierrc"))
}

func TestCreate_RunsInstaller(t *testing.T) {
	f := newCLIFixture()

	require.NoError(t, f.run("weather-server", "--no-prompt"))

	require.Len(t, f.installer.Installed, 1)
	assert.Equal(t, "/workspace/weather-server", f.installer.Installed[0])

	// Installed projects do not get the npm install step in the output.
	assert.NotContains(t, f.stdout.String(), "npm install")
}

func TestCreate_InstallerFailureIsAWarning(t *testing.T) {
	f := newCLIFixture()
	f.installer.InstallError = assert.AnError

	require.NoError(t, f.run("weather-server", "--no-prompt"))

	assert.Contains(t, f.stderr.String(), "Warning:")
	assert.True(t, f.fs.Exists("/workspace/weather-server/package.json"))

	// An uninstalled project keeps the npm install step.
	assert.Contains(t, f.stdout.String(), "npm install")
}

func TestCreate_RemoteTemplateRequiresGit(t *testing.T) {
	f := newCLIFixture()
	f.git.NotInstalled = true

	err := f.run("weather-server", "--no-prompt", "--skip-install",
		"--template", "https://github.com/acme/remote-template.git")

	assert.ErrorContains(t, err, "git is required")
	assert.Empty(t, f.git.Clones())
	assert.False(t, f.fs.Exists("/workspace/weather-server"))
}

func TestCreate_BuiltinTemplateDoesNotNeedGit(t *testing.T) {
	f := newCLIFixture()
	f.git.NotInstalled = true

	require.NoError(t, f.run("weather-server", "--no-prompt", "--skip-install"))
	assert.True(t, f.fs.Exists("/workspace/weather-server/package.json"))
}

func TestTemplatesCommand(t *testing.T) {
	f := newCLIFixture()

	require.NoError(t, f.run("templates"))

	assert.Contains(t, f.stdout.String(), "basic-stdio")
	assert.Contains(t, f.stdout.String(), "basic-http")
}
