// Package installer runs the package-manager install step for a
// generated project. The destination path is passed explicitly; the
// process working directory is never changed.
package installer

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Installer installs a generated project's dependencies.
type Installer interface {
	Install(ctx context.Context, projectDir string) error
	IsAvailable() bool
}

// NpmInstaller implements Installer by shelling out to npm.
type NpmInstaller struct{}

// NewNpmInstaller creates a new NpmInstaller
func NewNpmInstaller() *NpmInstaller {
	return &NpmInstaller{}
}

// Install runs `npm install` inside projectDir.
func (n *NpmInstaller) Install(ctx context.Context, projectDir string) error {
	cmd := exec.CommandContext(ctx, "npm", "install")
	cmd.Dir = projectDir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := stderr.String(); msg != "" {
			return fmt.Errorf("npm install failed: %w: %s", err, msg)
		}
		return fmt.Errorf("npm install failed: %w", err)
	}

	return nil
}

// IsAvailable reports whether npm is on PATH.
func (n *NpmInstaller) IsAvailable() bool {
	_, err := exec.LookPath("npm")
	return err == nil
}

// MockInstaller implements Installer for testing
type MockInstaller struct {
	Installed []string

	// Hooks for testing error scenarios
	InstallError error
	Unavailable  bool
}

// NewMockInstaller creates a new MockInstaller
func NewMockInstaller() *MockInstaller {
	return &MockInstaller{}
}

func (m *MockInstaller) Install(ctx context.Context, projectDir string) error {
	if m.InstallError != nil {
		return m.InstallError
	}
	m.Installed = append(m.Installed, projectDir)
	return nil
}

func (m *MockInstaller) IsAvailable() bool {
	return !m.Unavailable
}
