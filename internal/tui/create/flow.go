package create

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	huh "github.com/charmbracelet/huh"
	"github.com/mcpforge/mcpforge/internal/template"
	"github.com/mcpforge/mcpforge/internal/tui"
)

// customTemplateOption is the select entry that opens a free-form input
// for a local path or repository URL.
const customTemplateOption = "custom"

var projectNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Inputs carries the answers the create command needs. Fields already
// filled from flags are not prompted for again.
type Inputs struct {
	Name        string
	Description string
	Author      string
	Template    string
	Lint        bool
	Format      bool

	// LintSet/FormatSet record whether the corresponding flag was given
	// on the command line, since false is a meaningful flag value.
	LintSet   bool
	FormatSet bool
}

// Flow prompts for whatever the command line left open.
type Flow struct {
	theme *huh.Theme
}

// NewFlow constructs a Flow with the shared theme.
func NewFlow() *Flow {
	return &Flow{
		theme: tui.NewHuhTheme(),
	}
}

// Run fills the missing inputs interactively; returns nil on user abort.
func (f *Flow) Run(in Inputs) (*Inputs, error) {
	steps := []func(*Inputs) error{
		f.inputName,
		f.inputDescription,
		f.inputAuthor,
		f.selectTemplate,
		f.confirmTooling,
	}

	for _, step := range steps {
		if err := step(&in); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, nil
			}
			return nil, err
		}
	}

	return &in, nil
}

func (f *Flow) inputName(in *Inputs) error {
	if in.Name != "" {
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Placeholder("my-mcp-server").
				Value(&in.Name).
				Validate(ValidateProjectName),
		),
	).WithTheme(f.theme)

	return form.Run()
}

func (f *Flow) inputDescription(in *Inputs) error {
	if in.Description != "" {
		return nil
	}

	in.Description = "A Model Context Protocol server"
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Value(&in.Description),
		),
	).WithTheme(f.theme)

	return form.Run()
}

func (f *Flow) inputAuthor(in *Inputs) error {
	if in.Author != "" {
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Author").
				Placeholder("optional").
				Value(&in.Author),
		),
	).WithTheme(f.theme)

	return form.Run()
}

func (f *Flow) selectTemplate(in *Inputs) error {
	if in.Template != "" {
		return nil
	}

	opts := make([]huh.Option[string], 0, 3)
	for _, name := range template.BuiltinNames() {
		opts = append(opts, huh.NewOption(name, name))
	}
	opts = append(opts, huh.NewOption("custom (path or git URL)", customTemplateOption))

	selected := ""
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Template").
				Options(opts...).
				Value(&selected),
		),
	).WithTheme(f.theme)

	if err := form.Run(); err != nil {
		return err
	}

	if selected != customTemplateOption {
		in.Template = selected
		return nil
	}

	custom := ""
	customForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Template path or repository URL").
				Value(&custom).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("template reference cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(f.theme)

	if err := customForm.Run(); err != nil {
		return err
	}

	in.Template = strings.TrimSpace(custom)
	return nil
}

func (f *Flow) confirmTooling(in *Inputs) error {
	if in.LintSet && in.FormatSet {
		return nil
	}

	var fields []huh.Field
	if !in.LintSet {
		fields = append(fields, huh.NewConfirm().
			Title("Add ESLint?").
			Value(&in.Lint))
	}
	if !in.FormatSet {
		fields = append(fields, huh.NewConfirm().
			Title("Add Prettier?").
			Value(&in.Format))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(f.theme)
	return form.Run()
}

// ConfirmOverwrite asks whether to materialize into an existing
// directory. Aborting the prompt counts as declining.
func ConfirmOverwrite(name string) (bool, error) {
	proceed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Directory %s already exists. Continue anyway?", name)).
				Value(&proceed),
		),
	).WithTheme(tui.NewHuhTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return proceed, nil
}

// ValidateProjectName enforces npm-friendly project names: lowercase
// letters, digits and hyphens, starting with a letter or digit.
func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if !projectNameRegex.MatchString(name) {
		return fmt.Errorf("project name must be lowercase letters, digits and hyphens")
	}
	return nil
}
