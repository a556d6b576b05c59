package template

import "fmt"

// TemplateNotFoundError is fatal: the reference names a built-in that is
// not registered or a local path that does not exist. It is never retried.
type TemplateNotFoundError struct {
	Reference string
	Kind      string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template not found: %s (%s)", e.Reference, e.Kind)
}

// FetchFailedError is fatal: the remote clone did not complete. The
// partially created temporary directory has already been removed
// best-effort by the time this error surfaces.
type FetchFailedError struct {
	URL string
	Err error
}

func (e *FetchFailedError) Error() string {
	return fmt.Sprintf("failed to fetch template from %s: %v", e.URL, e.Err)
}

func (e *FetchFailedError) Unwrap() error {
	return e.Err
}
