package git

import (
	"context"
	"sync"
)

// MockGitClient implements GitClient for testing. Derived clients from
// WithContext share the same recorded state, so tests can assert on the
// original instance.
type MockGitClient struct {
	state *mockGitState
	ctx   context.Context

	// CloneFunc, when set, is invoked instead of recording a no-op clone.
	// Tests use it to populate the destination directory.
	CloneFunc func(url, dest string) error

	// Hooks for testing error scenarios
	CloneError   error
	NotInstalled bool
}

type mockGitState struct {
	mu     sync.Mutex
	clones []MockClone
}

// MockClone records a single Clone call
type MockClone struct {
	URL  string
	Dest string
}

// NewMockGitClient creates a new MockGitClient
func NewMockGitClient() *MockGitClient {
	return &MockGitClient{
		state: &mockGitState{},
		ctx:   context.Background(),
	}
}

// WithContext returns a new client sharing the recorded state
func (m *MockGitClient) WithContext(ctx context.Context) GitClient {
	clone := *m
	clone.ctx = ctx
	return &clone
}

// Clone records the call, then either fails with CloneError or delegates
// to CloneFunc.
func (m *MockGitClient) Clone(url, dest string) error {
	m.state.mu.Lock()
	m.state.clones = append(m.state.clones, MockClone{URL: url, Dest: dest})
	m.state.mu.Unlock()

	if m.CloneError != nil {
		return m.CloneError
	}
	if m.CloneFunc != nil {
		return m.CloneFunc(url, dest)
	}
	return nil
}

// IsInstalled reports the configured availability.
func (m *MockGitClient) IsInstalled() bool {
	return !m.NotInstalled
}

// Clones returns all recorded Clone calls (helper for testing)
func (m *MockGitClient) Clones() []MockClone {
	m.state.mu.Lock()
	defer m.state.mu.Unlock()

	result := make([]MockClone, len(m.state.clones))
	copy(result, m.state.clones)
	return result
}
