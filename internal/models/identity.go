package models

// ProjectIdentity carries the new project's metadata.
//
// It is assembled by the CLI layer before materialization starts and is
// never mutated afterwards; every rewrite step reads from the same value.
type ProjectIdentity struct {
	// Name is the project (and destination directory) name, e.g. "my-cool-server"
	Name string

	// Description is a one-line human readable description
	Description string

	// Author is the manifest author field
	Author string
}

// CustomizationChoices captures the opt-in tooling selections.
type CustomizationChoices struct {
	Lint   bool
	Format bool
}

// Any reports whether at least one customization was selected.
func (c CustomizationChoices) Any() bool {
	return c.Lint || c.Format
}
