package template

import (
	"io/fs"
)

// Snapshot is a read-only view of a fetched template's file tree.
//
// A snapshot is consumed exactly once by the materializer. Remote
// snapshots own a temporary clone directory and must be released after
// the copy, success or failure; built-in and local snapshots release as
// a no-op since they do not own disk state.
type Snapshot struct {
	// FS is the template's file tree rooted at the template root.
	FS fs.FS

	// Dir is the on-disk location of the snapshot, empty for built-in
	// templates that live inside the binary.
	Dir string

	cleanup func() error
}

// Release frees any disk state owned by the snapshot. Safe to call more
// than once.
func (s *Snapshot) Release() error {
	if s.cleanup == nil {
		return nil
	}
	cleanup := s.cleanup
	s.cleanup = nil
	return cleanup()
}

// Temporary reports whether the snapshot owns disk state that Release
// will remove.
func (s *Snapshot) Temporary() bool {
	return s.cleanup != nil
}
