package instructions

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/mcpforge/mcpforge/internal/models"
)

// ControlFileName is the reserved, engine-private document a template may
// carry at its root. It configures setup instructions and is never copied
// into the generated project.
const ControlFileName = "config-instructions.json"

// ParseError marks a malformed control file. It is recoverable: the
// pipeline logs it as a warning and continues with the built-in defaults,
// because a broken template file must not block project creation.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", ControlFileName, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Resolve looks for the control file at the snapshot root.
//
// Absent file: (nil, nil), the caller falls back to built-in defaults.
// Malformed file: (nil, *ParseError), same fallback but worth a warning.
// Placeholders are NOT substituted here; see Substitute.
func Resolve(snapshot fs.FS) (*models.ConfigInstructions, error) {
	data, err := fs.ReadFile(snapshot, ControlFileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &ParseError{Err: err}
	}

	var instructions models.ConfigInstructions
	if err := json.Unmarshal(data, &instructions); err != nil {
		return nil, &ParseError{Err: err}
	}

	return &instructions, nil
}
