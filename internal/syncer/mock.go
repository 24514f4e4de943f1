package syncer

import (
	"context"
	"slices"
	"sync"
)

// MockClient is an in-memory Client for tests. It applies deltas to a
// per-set completed list, unless an error has been queued for the next call.
type MockClient struct {
	mu     sync.Mutex
	sets   map[string][]string
	errs   []error
	Posted []Delta
	Gets   int
}

// NewMockClient creates a MockClient with empty sets.
func NewMockClient() *MockClient {
	return &MockClient{sets: make(map[string][]string)}
}

// FailNext makes the next len(errs) calls fail with errs in order.
func (m *MockClient) FailNext(errs ...error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs = append(m.errs, errs...)
}

// SetCompleted replaces the server-side list for set.
func (m *MockClient) SetCompleted(set string, ids ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets[set] = append([]string{}, ids...)
}

// Completed returns a copy of the server-side list for set.
func (m *MockClient) Completed(set string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.sets[set]...)
}

// PostedCount returns the number of deltas the mock accepted.
func (m *MockClient) PostedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Posted)
}

func (m *MockClient) GetProgress(_ context.Context, set string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Gets++
	if err := m.popErr(); err != nil {
		return nil, err
	}
	return append([]string{}, m.sets[set]...), nil
}

func (m *MockClient) PostProgress(_ context.Context, set string, d Delta) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.popErr(); err != nil {
		return nil, err
	}
	m.Posted = append(m.Posted, d)

	ids := m.sets[set]
	i := slices.Index(ids, d.ItemID)
	switch {
	case d.IsCompleting && i < 0:
		ids = append(ids, d.ItemID)
	case !d.IsCompleting && i >= 0:
		ids = slices.Delete(ids, i, i+1)
	}
	m.sets[set] = ids
	return append([]string{}, ids...), nil
}

func (m *MockClient) popErr() error {
	if len(m.errs) == 0 {
		return nil
	}
	err := m.errs[0]
	m.errs = m.errs[1:]
	return err
}
